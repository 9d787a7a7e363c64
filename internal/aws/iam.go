package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/rs/zerolog/log"
)

// CreatePolicy creates an IAM policy from the given JSON document. The
// document is submitted verbatim; grammar validation happens server-side.
// Returns the new policy's ARN.
func (c *Client) CreatePolicy(ctx context.Context, name, document string) (string, error) {
	log.Debug().Str("policy", name).Msg("creating iam policy")

	output, err := c.iamClient.CreatePolicy(ctx, &iam.CreatePolicyInput{
		PolicyName:     aws.String(name),
		PolicyDocument: aws.String(document),
	})
	if err != nil {
		return "", fmt.Errorf("create policy %s: %w", name, err)
	}

	if output.Policy == nil {
		return "", fmt.Errorf("create policy %s: empty response", name)
	}
	return aws.ToString(output.Policy.Arn), nil
}
