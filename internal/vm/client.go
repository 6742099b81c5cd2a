package vm

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

var ErrClientConfig = fmt.Errorf("failed to assemble provider client configuration")

// NewClient constructs the EC2 client bound to the resolved region and
// credential set. Construction is offline; the client is safe for concurrent
// use and should be shared across all lifecycle operations for a run.
func NewClient(ctx context.Context, creds Credentials) (*ec2.Client, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(creds.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			creds.AccessKeyID,
			creds.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClientConfig, err)
	}
	return ec2.NewFromConfig(cfg), nil
}
