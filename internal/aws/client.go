// Package aws wraps the handful of AWS operations the CLI performs.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client issues single-shot calls against EC2, S3 and IAM.
type Client struct {
	region string

	// AWS clients (interfaces for testability)
	ec2Client EC2API
	s3Client  S3API
	iamClient IAMAPI
}

// Config holds client configuration. Credentials come from the SDK's
// default chain; this tool adds no credential logic of its own.
type Config struct {
	Region  string
	Profile string
}

// New creates a client backed by real AWS service clients.
func New(ctx context.Context, cfg Config) (*Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Client{
		region:    cfg.Region,
		ec2Client: ec2.NewFromConfig(awsCfg),
		s3Client:  s3.NewFromConfig(awsCfg),
		iamClient: iam.NewFromConfig(awsCfg),
	}, nil
}

// Region returns the region the client was configured with.
func (c *Client) Region() string {
	return c.region
}
