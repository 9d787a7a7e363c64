package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/rs/zerolog/log"
)

const nameTagFilter = "tag:Name"

// Instance is the slice of EC2 instance state the CLI cares about.
type Instance struct {
	ID    string
	Name  string
	State string
	Type  string
	AZ    string
}

// StateChange records a lifecycle transition reported by a start or stop call.
type StateChange struct {
	InstanceID    string
	PreviousState string
	CurrentState  string
}

// LookupInstancesByName returns all instances whose Name tag equals name.
func (c *Client) LookupInstancesByName(ctx context.Context, name string) ([]Instance, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{Name: aws.String(nameTagFilter), Values: []string{name}},
		},
	}
	return c.describeInstances(ctx, input)
}

// ListInstances returns every instance in the region.
func (c *Client) ListInstances(ctx context.Context) ([]Instance, error) {
	return c.describeInstances(ctx, &ec2.DescribeInstancesInput{})
}

func (c *Client) describeInstances(ctx context.Context, input *ec2.DescribeInstancesInput) ([]Instance, error) {
	var instances []Instance

	for {
		output, err := c.ec2Client.DescribeInstances(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("describe instances: %w", err)
		}

		for _, reservation := range output.Reservations {
			for _, instance := range reservation.Instances {
				instances = append(instances, convertInstance(instance))
			}
		}

		if output.NextToken == nil {
			break
		}
		input.NextToken = output.NextToken
	}

	return instances, nil
}

func convertInstance(instance ec2types.Instance) Instance {
	i := Instance{
		ID:   aws.ToString(instance.InstanceId),
		Name: extractNameTag(instance.Tags),
		Type: string(instance.InstanceType),
	}
	if instance.State != nil {
		i.State = string(instance.State.Name)
	}
	if instance.Placement != nil {
		i.AZ = aws.ToString(instance.Placement.AvailabilityZone)
	}
	return i
}

// ResolveInstanceIDs maps a Name tag value to the instance IDs a mutating
// call should target. Zero matches is a NotFoundError. Multiple matches are
// an AmbiguousError unless allowMultiple is set, in which case every match
// is returned.
func ResolveInstanceIDs(name string, instances []Instance, allowMultiple bool) ([]string, error) {
	if len(instances) == 0 {
		return nil, &NotFoundError{Name: name}
	}

	ids := make([]string, 0, len(instances))
	for _, instance := range instances {
		ids = append(ids, instance.ID)
	}

	if len(ids) > 1 && !allowMultiple {
		return nil, &AmbiguousError{Name: name, IDs: ids}
	}
	return ids, nil
}

// StartInstancesByName resolves name to instance IDs and starts them.
// No start call is made when resolution fails.
func (c *Client) StartInstancesByName(ctx context.Context, name string, allowMultiple bool) ([]StateChange, error) {
	ids, err := c.resolveByName(ctx, name, allowMultiple)
	if err != nil {
		return nil, err
	}
	return c.StartInstances(ctx, ids)
}

// StopInstancesByName resolves name to instance IDs and stops them.
func (c *Client) StopInstancesByName(ctx context.Context, name string, allowMultiple bool) ([]StateChange, error) {
	ids, err := c.resolveByName(ctx, name, allowMultiple)
	if err != nil {
		return nil, err
	}
	return c.StopInstances(ctx, ids)
}

func (c *Client) resolveByName(ctx context.Context, name string, allowMultiple bool) ([]string, error) {
	instances, err := c.LookupInstancesByName(ctx, name)
	if err != nil {
		return nil, err
	}
	ids, err := ResolveInstanceIDs(name, instances, allowMultiple)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("name", name).Strs("instance_ids", ids).Msg("resolved instances")
	return ids, nil
}

// StartInstances issues a single start request for the given instance IDs.
func (c *Client) StartInstances(ctx context.Context, ids []string) ([]StateChange, error) {
	output, err := c.ec2Client.StartInstances(ctx, &ec2.StartInstancesInput{InstanceIds: ids})
	if err != nil {
		return nil, fmt.Errorf("start instances: %w", err)
	}
	return convertStateChanges(output.StartingInstances), nil
}

// StopInstances issues a single stop request for the given instance IDs.
func (c *Client) StopInstances(ctx context.Context, ids []string) ([]StateChange, error) {
	output, err := c.ec2Client.StopInstances(ctx, &ec2.StopInstancesInput{InstanceIds: ids})
	if err != nil {
		return nil, fmt.Errorf("stop instances: %w", err)
	}
	return convertStateChanges(output.StoppingInstances), nil
}

func convertStateChanges(changes []ec2types.InstanceStateChange) []StateChange {
	result := make([]StateChange, 0, len(changes))
	for _, change := range changes {
		sc := StateChange{InstanceID: aws.ToString(change.InstanceId)}
		if change.PreviousState != nil {
			sc.PreviousState = string(change.PreviousState.Name)
		}
		if change.CurrentState != nil {
			sc.CurrentState = string(change.CurrentState.Name)
		}
		result = append(result, sc)
	}
	return result
}

func extractNameTag(tags []ec2types.Tag) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == "Name" {
			return aws.ToString(tag.Value)
		}
	}
	return ""
}
