package lifecycle

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"booking-gateway/supplier"
)

// SelectedRoom is one selection event. SelectionID is unique per event, not
// per booking code, so the same offer can be picked twice ("2 of the same
// room type") up to the room limit.
type SelectedRoom struct {
	SelectionID string             `json:"selectionId"`
	BookingCode string             `json:"bookingCode"`
	RoomIndex   int                `json:"roomIndex"`
	Offer       supplier.RoomOffer `json:"room"`
}

// Session holds the per-user booking flow: the last search, the bounded
// selection set, prebook outcomes, and the committed booking. All entities
// live only as long as the session; confirmed outcomes are persisted
// separately by the caller.
type Session struct {
	ID string

	mu           sync.Mutex
	state        State
	criteria     supplier.SearchRequest
	maxRooms     int
	hotels       []supplier.HotelResult
	selections   []SelectedRoom
	prebooks     map[string]*supplier.PrebookResult
	unavailable  map[string]struct{}
	booking      *supplier.BookResult
	cancellation *supplier.CancelResult
	lastErr      string
}

func newSession() *Session {
	return &Session{
		ID:          uuid.NewString(),
		state:       StateIdle,
		prebooks:    map[string]*supplier.PrebookResult{},
		unavailable: map[string]struct{}{},
	}
}

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	ID               string                  `json:"id"`
	State            State                   `json:"state"`
	Criteria         supplier.SearchRequest  `json:"criteria"`
	MaxRooms         int                     `json:"maxRooms"`
	Hotels           []supplier.HotelResult  `json:"hotels,omitempty"`
	Selections       []SelectedRoom          `json:"selections"`
	UnavailableRooms []string                `json:"unavailableRooms,omitempty"`
	Booking          *supplier.BookResult    `json:"booking,omitempty"`
	Cancellation     *supplier.CancelResult  `json:"cancellation,omitempty"`
	LastError        string                  `json:"lastError,omitempty"`
}

// Snapshot copies the current session view under the lock.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:           s.ID,
		State:        s.state,
		Criteria:     s.criteria,
		MaxRooms:     s.maxRooms,
		Hotels:       s.hotels,
		Selections:   append([]SelectedRoom(nil), s.selections...),
		Booking:      s.booking,
		Cancellation: s.cancellation,
		LastError:    s.lastErr,
	}
	for code := range s.unavailable {
		snap.UnavailableRooms = append(snap.UnavailableRooms, code)
	}
	sort.Strings(snap.UnavailableRooms)
	return snap
}

// distinctCodes returns the distinct booking codes among current selections,
// in first-selected order.
func (s *Session) distinctCodes() []string {
	seen := map[string]struct{}{}
	var codes []string
	for _, sel := range s.selections {
		if _, ok := seen[sel.BookingCode]; ok {
			continue
		}
		seen[sel.BookingCode] = struct{}{}
		codes = append(codes, sel.BookingCode)
	}
	return codes
}

// Store is an in-memory session registry.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: map[string]*Session{}}
}

// Create registers a fresh Idle session.
func (st *Store) Create() *Session {
	s := newSession()
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get looks a session up by ID.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	s, ok := st.sessions[id]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Delete drops a session; missing IDs are a no-op.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}
