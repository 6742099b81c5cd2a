package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"
	"github.com/zkp2p/p0tion/internal/vm"
)

func provisionCommand() *cobra.Command {
	var (
		r1cs         string
		zkey         string
		ptau         string
		transcript   string
		instanceType string
		volumeGiB    int32
		zkeyBytes    int64
		ptauBytes    int64
		wait         bool
		pollInterval time.Duration
		timeout      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Launch an instance that verifies a ceremony contribution",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := clog.FromContext(ctx)

			creds, err := vm.ResolveCredentials()
			if err != nil {
				return err
			}
			client, err := vm.NewClient(ctx, creds)
			if err != nil {
				return err
			}

			script := vm.VerificationScript(vm.Artifacts{
				R1CS:       r1cs,
				ZKey:       zkey,
				PTau:       ptau,
				Transcript: transcript,
			})
			instance, err := vm.Provision(ctx, client, creds, vm.ProvisionOptions{
				Script:        script,
				InstanceType:  instanceType,
				RootVolumeGiB: rootVolumeSize(volumeGiB, zkeyBytes, ptauBytes),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), instance.InstanceID)

			if !wait {
				return nil
			}
			// If the wait fails, unwind what we provisioned.
			var stack vm.Stack
			stack.Push(func(ctx context.Context) error {
				log.Info("terminating instance after failed wait", "instance_id", instance.InstanceID)
				return vm.Terminate(ctx, client, instance.InstanceID)
			})
			waitCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			if err := waitRunning(waitCtx, client, instance.InstanceID, pollInterval); err != nil {
				return errors.Join(err, stack.Unwind(ctx))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&r1cs, "r1cs", "", "'bucket/key' locator of the circuit r1cs artifact")
	cmd.Flags().StringVar(&zkey, "zkey", "", "'bucket/key' locator of the contribution zkey artifact")
	cmd.Flags().StringVar(&ptau, "ptau", "", "'bucket/key' locator of the powers-of-tau artifact")
	cmd.Flags().StringVar(&transcript, "transcript", "", "'bucket/key' locator the verification transcript is uploaded to")
	cmd.Flags().StringVar(&instanceType, "instance-type", "", "machine profile override (defaults to VM_INSTANCE_TYPE)")
	cmd.Flags().Int32Var(&volumeGiB, "volume-size", 0, "explicit root volume size in GiB (overrides the derived size)")
	cmd.Flags().Int64Var(&zkeyBytes, "zkey-size", 0, "zkey artifact size in bytes, used to derive the root volume size")
	cmd.Flags().Int64Var(&ptauBytes, "ptau-size", 0, "ptau artifact size in bytes, used to derive the root volume size")
	cmd.Flags().BoolVar(&wait, "wait", false, "poll until the instance reports 'running'")
	cmd.Flags().DurationVar(&pollInterval, "poll-interval", 10*time.Second, "delay between status polls when --wait is set")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "give-up deadline for --wait")
	for _, required := range []string{"r1cs", "zkey", "ptau", "transcript"} {
		_ = cmd.MarkFlagRequired(required)
	}
	return cmd
}

// rootVolumeSize prefers an explicit volume size; otherwise it derives one
// from the artifact sizes when either is known, and falls back to the image
// default when neither is.
func rootVolumeSize(volumeGiB int32, zkeyBytes, ptauBytes int64) int32 {
	if volumeGiB > 0 {
		return volumeGiB
	}
	if zkeyBytes > 0 || ptauBytes > 0 {
		return vm.DiskSize(zkeyBytes, ptauBytes)
	}
	return 0
}
