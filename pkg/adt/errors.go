package adt

import "fmt"

// BadAccessError is the panic value raised when an accessor is called on
// the inactive alternative of a Result, e.g. Value on a failure or Err on
// a success.
type BadAccessError struct {
	Container string // container kind, e.g. "result"
	Op        string // accessor that was called
	Status    Status // actual status at the time of the call
}

func (e *BadAccessError) Error() string {
	return fmt.Sprintf("adt: bad %s access: %s called on %s", e.Container, e.Op, e.Status)
}
