package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zkp2p/p0tion/internal/vm"
)

func smokeCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Launch an instance that only checks object-storage connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			creds, err := vm.ResolveCredentials()
			if err != nil {
				return err
			}
			client, err := vm.NewClient(ctx, creds)
			if err != nil {
				return err
			}
			instance, err := vm.Provision(ctx, client, creds, vm.ProvisionOptions{
				Script: vm.SmokeScript(output),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), instance.InstanceID)
			return nil
		},
	}
	cmd.Flags().StringVar(&output, "output", "", "'bucket/key' locator the connectivity check writes to")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
