package lifecycle

// State is the booking lifecycle position of a session. The flow the UI
// drives is Search -> Select -> PrebookAll -> Book, with Cancel reachable
// only from Booked.
type State string

const (
	// StateIdle is the initial state; no search has succeeded yet.
	StateIdle State = "idle"
	// StateSearching is held while an availability search is in flight.
	StateSearching State = "searching"
	// StateResults means a search succeeded and results are available.
	StateResults State = "results"
	// StateSelecting means at least one room has been picked.
	StateSelecting State = "selecting"
	// StatePrebooking is held while the prebook batch is in flight.
	StatePrebooking State = "prebooking"
	// StatePrebooked means every selection's booking code revalidated.
	StatePrebooked State = "prebooked"
	// StatePrebookFailed means at least one booking code was rejected;
	// the unavailable set names the codes that must be replaced.
	StatePrebookFailed State = "prebook_failed"
	// StateBooked means the reservation is committed upstream.
	StateBooked State = "booked"
	// StateBookFailed means the commit was rejected; held prebooks are
	// stale and a fresh prebook pass is required.
	StateBookFailed State = "book_failed"
	// StateCancelled is terminal.
	StateCancelled State = "cancelled"
)

func (s State) String() string { return string(s) }

// Terminal reports whether no further lifecycle operation is possible.
func (s State) Terminal() bool { return s == StateCancelled }

// canSearch: a fresh search discards results and selections, so it is only
// allowed while nothing is committed or in flight.
func (s State) canSearch() bool {
	switch s {
	case StateIdle, StateResults, StateSelecting, StatePrebookFailed:
		return true
	}
	return false
}

// canSelect: selection is open while results are on screen and after a
// failed prebook pass (the user replaces the rejected choices).
func (s State) canSelect() bool {
	switch s {
	case StateResults, StateSelecting, StatePrebookFailed:
		return true
	}
	return false
}

// canPrebook: from Selecting, after a failed pass (retrying the corrected
// set), or after a rejected commit when the held prebooks went stale and the
// whole set must revalidate.
func (s State) canPrebook() bool {
	switch s {
	case StateSelecting, StatePrebookFailed, StateBookFailed:
		return true
	}
	return false
}
