package main

import (
	"context"
	"fmt"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/zkp2p/p0tion/internal/vm"
)

// waitRunning polls the instance until it reports 'running'. Interval and
// deadline policy live here with the caller; the vm package itself never
// retries or waits.
func waitRunning(ctx context.Context, api vm.InstanceAPI, instanceID string, interval time.Duration) error {
	log := clog.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("deadlined waiting for instance to reach 'running': %w", ctx.Err())
		case <-time.After(interval):
			running, err := vm.Status(ctx, api, instanceID)
			if err != nil {
				return err
			}
			if running {
				log.Info("instance is running", "instance_id", instanceID)
				return nil
			}
			log.Debug("instance not yet running, waiting longer", "instance_id", instanceID)
		}
	}
}
