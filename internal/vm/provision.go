package vm

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"
)

var (
	ErrProvision            = errors.New("failed to provision instance")
	ErrProvisionNoInstances = errors.New("encountered no error during instance " +
		"launch, but no instance was actually created")
	ErrProvisionIncomplete = errors.New("instance launch succeeded, but the " +
		"response is missing required instance fields")
)

// Instance is the normalized result of a successful provisioning call. It is
// a point-in-time snapshot, not a live handle; the provider remains the
// source of truth for the instance's state.
type Instance struct {
	InstanceID   string
	ImageID      string
	InstanceType string
	KeyName      string
	// LaunchTime is the creation timestamp in RFC 3339 form.
	LaunchTime string
}

// ProvisionOptions carries the per-run launch parameters.
type ProvisionOptions struct {
	// Script is the ordered startup command sequence; it is serialized and
	// base64-encoded into the instance's boot-time user data.
	Script []string

	// InstanceType overrides the resolved machine profile when non-empty.
	InstanceType string

	// RootVolumeGiB sizes the root volume; zero keeps the image default.
	RootVolumeGiB int32
}

// Provision launches exactly one instance and returns its descriptor. Any
// non-success provider response, and any success response with a missing
// field, yields an error and no descriptor.
func Provision(ctx context.Context, api InstanceAPI, creds Credentials, opts ProvisionOptions) (Instance, error) {
	log := clog.FromContext(ctx)

	instanceType := opts.InstanceType
	if instanceType == "" {
		instanceType = creds.InstanceType
	}
	name := "p0tion-" + uuid.New().String()

	input := &ec2.RunInstancesInput{
		ImageId:      aws.String(creds.AMIID),
		MinCount:     aws.Int32(1),
		MaxCount:     aws.Int32(1),
		InstanceType: types.InstanceType(instanceType),
		KeyName:      aws.String(creds.KeyPairName),
		IamInstanceProfile: &types.IamInstanceProfileSpecification{
			Arn: aws.String(creds.RoleARN),
		},
		UserData: aws.String(encodeUserData(opts.Script)),
		TagSpecifications: []types.TagSpecification{
			{
				ResourceType: types.ResourceTypeInstance,
				Tags: []types.Tag{
					{Key: aws.String("Name"), Value: aws.String(name)},
				},
			},
		},
	}
	if opts.RootVolumeGiB > 0 {
		input.BlockDeviceMappings = []types.BlockDeviceMapping{
			{
				DeviceName: aws.String("/dev/sda1"),
				Ebs: &types.EbsBlockDevice{
					VolumeSize:          aws.Int32(opts.RootVolumeGiB),
					VolumeType:          types.VolumeTypeGp2,
					DeleteOnTermination: aws.Bool(true),
				},
			},
		}
	}

	log.Info(
		"launching instance",
		"instance_type", instanceType,
		"ami_id", creds.AMIID,
		"name", name,
	)
	launchResult, err := api.RunInstances(ctx, input)
	if err != nil {
		return Instance{}, fmt.Errorf("%w: %w", ErrProvision, err)
	}
	if len(launchResult.Instances) < 1 {
		return Instance{}, ErrProvisionNoInstances
	}

	launched := &launchResult.Instances[0]
	if launched.InstanceId == nil ||
		launched.ImageId == nil ||
		launched.InstanceType == "" ||
		launched.KeyName == nil ||
		launched.LaunchTime == nil {
		return Instance{}, ErrProvisionIncomplete
	}

	descriptor := Instance{
		InstanceID:   *launched.InstanceId,
		ImageID:      *launched.ImageId,
		InstanceType: string(launched.InstanceType),
		KeyName:      *launched.KeyName,
		LaunchTime:   launched.LaunchTime.UTC().Format(time.RFC3339),
	}
	log.Info(
		"instance launched",
		"instance_id", descriptor.InstanceID,
		"launch_time", descriptor.LaunchTime,
	)
	return descriptor, nil
}

func encodeUserData(script []string) string {
	return base64.StdEncoding.EncodeToString([]byte(strings.Join(script, "\n")))
}
