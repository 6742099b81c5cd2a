package vm

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// API operation names used to verify call ordering in tests.
const (
	opRunInstances       = "RunInstances"
	opDescribeInstances  = "DescribeInstances"
	opStartInstances     = "StartInstances"
	opStopInstances      = "StopInstances"
	opTerminateInstances = "TerminateInstances"
)

// mockInstanceAPI simulates the provider. Unset func fields fall back to a
// well-formed success response.
type mockInstanceAPI struct {
	runInstancesFunc       func(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error)
	describeInstancesFunc  func(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	startInstancesFunc     func(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error)
	stopInstancesFunc      func(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
	terminateInstancesFunc func(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error)

	// Track operations for testing.
	operations []string
}

var _ InstanceAPI = (*mockInstanceAPI)(nil)

const (
	mockInstanceID = "i-0123456789abcdef0"
	mockImageID    = "ami-0123456789abcdef0"
	mockKeyName    = "p0tion-key"
)

var mockLaunchTime = time.Date(2023, 10, 5, 12, 30, 0, 0, time.UTC)

func (m *mockInstanceAPI) RunInstances(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error) {
	m.operations = append(m.operations, opRunInstances)
	if m.runInstancesFunc != nil {
		return m.runInstancesFunc(ctx, params, optFns...)
	}
	return &ec2.RunInstancesOutput{
		Instances: []types.Instance{
			{
				InstanceId:   aws.String(mockInstanceID),
				ImageId:      params.ImageId,
				InstanceType: params.InstanceType,
				KeyName:      params.KeyName,
				LaunchTime:   aws.Time(mockLaunchTime),
			},
		},
	}, nil
}

func (m *mockInstanceAPI) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	m.operations = append(m.operations, opDescribeInstances)
	if m.describeInstancesFunc != nil {
		return m.describeInstancesFunc(ctx, params, optFns...)
	}
	return describeOutput(params.InstanceIds[0], types.InstanceStateNameRunning), nil
}

func (m *mockInstanceAPI) StartInstances(ctx context.Context, params *ec2.StartInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StartInstancesOutput, error) {
	m.operations = append(m.operations, opStartInstances)
	if m.startInstancesFunc != nil {
		return m.startInstancesFunc(ctx, params, optFns...)
	}
	return &ec2.StartInstancesOutput{}, nil
}

func (m *mockInstanceAPI) StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error) {
	m.operations = append(m.operations, opStopInstances)
	if m.stopInstancesFunc != nil {
		return m.stopInstancesFunc(ctx, params, optFns...)
	}
	return &ec2.StopInstancesOutput{}, nil
}

func (m *mockInstanceAPI) TerminateInstances(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error) {
	m.operations = append(m.operations, opTerminateInstances)
	if m.terminateInstancesFunc != nil {
		return m.terminateInstancesFunc(ctx, params, optFns...)
	}
	return &ec2.TerminateInstancesOutput{}, nil
}

// describeOutput builds a well-formed describe response reporting the given
// state name.
func describeOutput(instanceID string, state types.InstanceStateName) *ec2.DescribeInstancesOutput {
	return &ec2.DescribeInstancesOutput{
		Reservations: []types.Reservation{
			{
				Instances: []types.Instance{
					{
						InstanceId: aws.String(instanceID),
						State:      &types.InstanceState{Name: state},
					},
				},
			},
		},
	}
}
