package vm

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Credentials holds the provider credentials and fixed launch configuration
// resolved from the environment. Immutable once resolved; never persisted.
type Credentials struct {
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY"`
	RoleARN         string `envconfig:"AWS_ROLE_ARN"`
	AMIID           string `envconfig:"AWS_AMI_ID"`
	KeyPairName     string `envconfig:"AWS_KEY_PAIR_NAME"`

	Region       string `envconfig:"AWS_REGION" default:"us-east-1"`
	InstanceType string `envconfig:"VM_INSTANCE_TYPE" default:"t3.large"`
}

var (
	ErrConfigExtract = errors.New("failed to extract configuration from environment")

	// ErrIncompleteConfig deliberately does not name the missing key.
	ErrIncompleteConfig = errors.New("provider configuration is incomplete")
)

// ResolveCredentials reads the provider credentials from the environment and
// fails fast if any required value is absent. It has no side effects beyond
// reading the process environment.
func ResolveCredentials() (Credentials, error) {
	var creds Credentials
	if err := envconfig.Process("", &creds); err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", ErrConfigExtract, err)
	}
	for _, required := range []string{
		creds.AccessKeyID,
		creds.SecretAccessKey,
		creds.RoleARN,
		creds.AMIID,
		creds.KeyPairName,
	} {
		if required == "" {
			return Credentials{}, ErrIncompleteConfig
		}
	}
	return creds, nil
}
