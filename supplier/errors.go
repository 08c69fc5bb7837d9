package supplier

import "fmt"

// TransportError is a network or HTTP-layer failure: the request never
// produced a Status envelope. Callers may retry the same action; it carries
// no domain meaning.
type TransportError struct {
	Op         string
	StatusCode int // HTTP status, 0 when the request never completed
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream returned HTTP %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectionError is a domain-level "no": the supplier answered with a Status
// envelope carrying a non-success code (price changed, hold expired, unknown
// confirmation number). It is not retryable as-is.
type RejectionError struct {
	Op          string
	BookingCode string // set for prebook rejections
	Status      Status
}

func (e *RejectionError) Error() string {
	if e.BookingCode != "" {
		return fmt.Sprintf("%s rejected for %s: %s %s", e.Op, e.BookingCode, e.Status.Code, e.Status.Description)
	}
	return fmt.Sprintf("%s rejected: %s %s", e.Op, e.Status.Code, e.Status.Description)
}
