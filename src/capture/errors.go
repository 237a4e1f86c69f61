package capture

// The three failure classes of a capture attempt. Each wraps the underlying
// platform error so callers can errors.As on the class and still reach the
// cause. A missing display surfaces as screenshot.ErrNoDisplay unchanged.

type EnumerationError struct {
	Err error
}

func (e *EnumerationError) Error() string {
	return "display enumeration failed: " + e.Err.Error()
}

func (e *EnumerationError) Unwrap() error { return e.Err }

type GrabError struct {
	Err error
}

func (e *GrabError) Error() string {
	return "screen grab failed: " + e.Err.Error()
}

func (e *GrabError) Unwrap() error { return e.Err }

type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string {
	return "failed to write image: " + e.Err.Error()
}

func (e *EncodeError) Unwrap() error { return e.Err }
