// Package vm manages the lifecycle of the ephemeral EC2 instances used to
// verify zero-knowledge ceremony contributions: resolving provider
// credentials, building the startup script an instance runs on first boot,
// launching the instance, polling its state, and tearing it down.
//
// Every operation is a single blocking provider call. The package holds no
// state of its own; the provider is the sole owner of instance state, and
// retry, wait and timeout policy belong entirely to the caller.
package vm
