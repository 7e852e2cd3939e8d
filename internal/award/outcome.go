package award

// Status is the disposition of a single normalization step.
type Status int

const (
	// StatusKept means the value survived and carries a canonical form.
	StatusKept Status = iota
	// StatusDropped means a rule decided the award should be excluded.
	StatusDropped
	// StatusFailed means the input could not be processed at all.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusKept:
		return "kept"
	case StatusDropped:
		return "dropped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome carries the result of a normalization step. Exactly one of Value
// (kept), Reason (dropped) or Err (failed) is meaningful, selected by Status.
type Outcome[T any] struct {
	Value  T
	Status Status
	Reason string
	Err    error
}

// Keep wraps a surviving value
func Keep[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v, Status: StatusKept}
}

// Drop records a drop decision with a human-readable reason
func Drop[T any](reason string) Outcome[T] {
	return Outcome[T]{Status: StatusDropped, Reason: reason}
}

// Fail records an error that prevented processing
func Fail[T any](err error) Outcome[T] {
	return Outcome[T]{Status: StatusFailed, Err: err}
}

// Kept reports whether the outcome holds a value
func (o Outcome[T]) Kept() bool {
	return o.Status == StatusKept
}
