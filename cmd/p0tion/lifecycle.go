package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zkp2p/p0tion/internal/vm"
)

func statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <instance-id>",
		Short: "Report whether an instance is running",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, api vm.InstanceAPI) error {
				running, err := vm.Status(ctx, api, args[0])
				if err != nil {
					return err
				}
				if running {
					fmt.Fprintln(cmd.OutOrStdout(), "running")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "not running")
				}
				return nil
			})
		},
	}
}

func startCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start <instance-id>",
		Short: "Request an instance transition to running",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, api vm.InstanceAPI) error {
				return vm.Start(ctx, api, args[0])
			})
		},
	}
}

func stopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <instance-id>",
		Short: "Request an instance transition to stopped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, api vm.InstanceAPI) error {
				return vm.Stop(ctx, api, args[0])
			})
		},
	}
}

func terminateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "terminate <instance-id>",
		Short: "Request irreversible destruction of an instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, func(ctx context.Context, api vm.InstanceAPI) error {
				return vm.Terminate(ctx, api, args[0])
			})
		},
	}
}

// withClient resolves credentials, builds the shared client and hands both
// off to the command body.
func withClient(cmd *cobra.Command, run func(ctx context.Context, api vm.InstanceAPI) error) error {
	ctx := cmd.Context()
	creds, err := vm.ResolveCredentials()
	if err != nil {
		return err
	}
	client, err := vm.NewClient(ctx, creds)
	if err != nil {
		return err
	}
	return run(ctx, client)
}
