package vm

import (
	"context"
	"errors"
)

// Destructor releases one provisioned resource.
type Destructor func(ctx context.Context) error

// Stack is a LIFO queue of destructors. Callers push one destructor per
// resource as it is provisioned, then call Unwind to release everything in
// reverse order when a run finishes or fails partway.
type Stack struct {
	destructors []Destructor
}

func (s *Stack) Push(d Destructor) {
	s.destructors = append(s.destructors, d)
}

// Unwind calls the accumulated destructors in the reverse order they were
// pushed, returning all encountered errors joined.
func (s *Stack) Unwind(ctx context.Context) error {
	var errs error
	for i := len(s.destructors) - 1; i >= 0; i-- {
		errs = errors.Join(errs, s.destructors[i](ctx))
	}
	return errs
}
