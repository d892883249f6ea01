package adt

// Status indicates which alternative of a Result is currently live.
type Status uint8

const (
	// StatusSuccess indicates that the result holds a value.
	// It is the zero value, so a zero Result is a success holding
	// the zero value of its value type.
	StatusSuccess Status = iota
	// StatusFailure indicates that the result holds an error value.
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}
