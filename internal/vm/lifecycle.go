package vm

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/chainguard-dev/clog"
)

var (
	ErrStatusQuery          = errors.New("failed to query instance status")
	ErrStatusNoReservations = errors.New("describe instances call produced no " +
		"errors, but returned no reservations")
	ErrStatusNoInstances = errors.New("describe instances call produced no " +
		"errors, but returned no instances")
	ErrStatusStateNil = errors.New("describe instances call produced no " +
		"errors, but the returned instance state was nil")

	ErrStart     = errors.New("failed to request instance start")
	ErrStop      = errors.New("failed to request instance stop")
	ErrTerminate = errors.New("failed to request instance termination")
)

// Status reports whether the instance's provider-side state name is exactly
// 'running'. It performs one describe call with no retry; a caller waiting
// for a transition must loop with its own delay and give-up policy.
func Status(ctx context.Context, api InstanceAPI, instanceID string) (bool, error) {
	result, err := api.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStatusQuery, err)
	}
	if len(result.Reservations) == 0 {
		return false, ErrStatusNoReservations
	}
	reservation := result.Reservations[0]
	if len(reservation.Instances) == 0 {
		return false, ErrStatusNoInstances
	}
	instance := reservation.Instances[0]
	if instance.State == nil {
		return false, ErrStatusStateNil
	}
	clog.FromContext(ctx).Debug(
		"instance state reported",
		"instance_id", instanceID,
		"state", instance.State.Name,
	)
	return instance.State.Name == types.InstanceStateNameRunning, nil
}

// Start requests a transition to running. Fire-and-forget: the call returns
// as soon as the provider accepts the request, without waiting for the
// transition to complete.
func Start(ctx context.Context, api InstanceAPI, instanceID string) error {
	_, err := api.StartInstances(ctx, &ec2.StartInstancesInput{
		InstanceIds: []string{instanceID},
		DryRun:      aws.Bool(false),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStart, err)
	}
	clog.FromContext(ctx).Info("instance start requested", "instance_id", instanceID)
	return nil
}

// Stop requests a transition to stopped, with the same contract as Start.
func Stop(ctx context.Context, api InstanceAPI, instanceID string) error {
	_, err := api.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{instanceID},
		DryRun:      aws.Bool(false),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStop, err)
	}
	clog.FromContext(ctx).Info("instance stop requested", "instance_id", instanceID)
	return nil
}

// Terminate requests irreversible destruction of the instance. Whether the
// request is legal for the instance's current state is the provider's call;
// an illegal request surfaces as whatever failure the provider reports.
func Terminate(ctx context.Context, api InstanceAPI, instanceID string) error {
	_, err := api.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
		InstanceIds: []string{instanceID},
		DryRun:      aws.Bool(false),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTerminate, err)
	}
	clog.FromContext(ctx).Info("instance termination requested", "instance_id", instanceID)
	return nil
}
