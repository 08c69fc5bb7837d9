package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"booking-gateway/supplier"
	"booking-gateway/utils"
)

// API is the slice of the supplier client the coordinator drives.
type API interface {
	SearchHotels(ctx context.Context, req supplier.SearchRequest) ([]supplier.HotelResult, error)
	PreBook(ctx context.Context, bookingCode, paymentMode string) (*supplier.PrebookResult, error)
	Book(ctx context.Context, req supplier.BookRequest) (*supplier.BookResult, error)
	Cancel(ctx context.Context, confirmationNumber string) (*supplier.CancelResult, error)
}

// CancelPolicy bounds the accepted confirmation-number length. The bounds
// are an observed upstream convention, not a protocol invariant, so they
// stay configurable.
type CancelPolicy struct {
	MinLength int
	MaxLength int
}

// DefaultCancelPolicy matches what the live gateway accepts today.
var DefaultCancelPolicy = CancelPolicy{MinLength: 3, MaxLength: 20}

// Validate rejects confirmation numbers that the upstream would never
// accept, before any network call.
func (p CancelPolicy) Validate(confirmationNumber string) error {
	n := len(strings.TrimSpace(confirmationNumber))
	if n == 0 {
		return &ValidationError{Field: "confirmationNumber", Reason: "must not be empty"}
	}
	if n < p.MinLength || n > p.MaxLength {
		return &ValidationError{Field: "confirmationNumber", Reason: "invalid length"}
	}
	return nil
}

// GuestDetails is what book() needs beyond the prebooked selections.
type GuestDetails struct {
	Title            string                  `json:"title"`
	FirstName        string                  `json:"firstName"`
	LastName         string                  `json:"lastName"`
	Email            string                  `json:"email"`
	Phone            int64                   `json:"phone"`
	Nationality      string                  `json:"nationality"`
	AdditionalGuests []supplier.CustomerName `json:"additionalGuests,omitempty"`
}

// Coordinator sequences Search -> Select -> PrebookAll -> Book over a
// session and guards every step with the state machine, so a commit can
// never race ahead of an unresolved or failed prebook.
//
// One lifecycle operation runs per session at a time: the session mutex is
// held across the upstream call. That is what makes "no two book() calls in
// flight for one session" a structural property instead of a UI discipline.
type Coordinator struct {
	api    API
	store  *Store
	policy CancelPolicy
	logger *slog.Logger
}

func NewCoordinator(api API, store *Store, policy CancelPolicy, logger *slog.Logger) *Coordinator {
	return &Coordinator{api: api, store: store, policy: policy, logger: logger}
}

// Store exposes the session registry for session create/read endpoints.
func (c *Coordinator) Store() *Store { return c.store }

// validateCriteria applies the client-side preconditions. Violations never
// reach the network.
func validateCriteria(req supplier.SearchRequest) error {
	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		return &ValidationError{Field: "CheckIn", Reason: "must be YYYY-MM-DD"}
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		return &ValidationError{Field: "CheckOut", Reason: "must be YYYY-MM-DD"}
	}
	if !checkOut.After(checkIn) {
		return &ValidationError{Field: "CheckOut", Reason: "must be after CheckIn"}
	}
	if strings.TrimSpace(req.CityCode) == "" && strings.TrimSpace(req.HotelCodes) == "" {
		return &ValidationError{Field: "CityCode", Reason: "a city code or hotel codes are required"}
	}
	if len(req.PaxRooms) == 0 {
		return &ValidationError{Field: "PaxRooms", Reason: "at least one room occupancy is required"}
	}
	for _, room := range req.PaxRooms {
		if room.Adults < 1 {
			return &ValidationError{Field: "PaxRooms", Reason: "each room needs at least one adult"}
		}
	}
	return nil
}

// maxRoomsFor derives the selection bound from the search criteria. It is
// fixed for the rest of the session.
func maxRoomsFor(req supplier.SearchRequest) int {
	if req.Filters != nil && req.Filters.NoOfRooms > 0 {
		return req.Filters.NoOfRooms
	}
	if len(req.PaxRooms) > 0 {
		return len(req.PaxRooms)
	}
	return 1
}

// Search validates the criteria, runs the availability search, and replaces
// the session's results wholesale. An empty result list is success. On
// failure the session drops back to Idle with the error surfaced; nothing is
// retried automatically.
func (c *Coordinator) Search(ctx context.Context, sessionID string, req supplier.SearchRequest) (Snapshot, error) {
	s, err := c.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.canSearch() {
		return s.snapshotLocked(), &InvalidTransitionError{Op: "search", State: s.state}
	}
	if err := validateCriteria(req); err != nil {
		return s.snapshotLocked(), err
	}

	s.state = StateSearching
	s.lastErr = ""

	hotels, err := c.api.SearchHotels(ctx, req)
	if err != nil {
		s.state = StateIdle
		s.lastErr = err.Error()
		c.logger.Error("search failed", "session_id", s.ID, "city", req.CityCode, "error", err)
		return s.snapshotLocked(), err
	}

	s.state = StateResults
	s.criteria = req
	s.maxRooms = maxRoomsFor(req)
	s.hotels = hotels
	s.selections = nil
	s.prebooks = map[string]*supplier.PrebookResult{}
	s.unavailable = map[string]struct{}{}
	s.booking = nil

	c.logger.Info("search completed",
		"session_id", s.ID,
		"city", req.CityCode,
		"hotels", len(hotels),
		"max_rooms", s.maxRooms,
	)
	return s.snapshotLocked(), nil
}

// Select appends a selection record. At capacity it is a silent no-op: the
// contract puts the burden of checking capacity on the caller, and the
// selection set is returned unchanged. Repeated picks of the same offer each
// get their own selection ID.
func (c *Coordinator) Select(sessionID, bookingCode string, roomIndex int) (Snapshot, error) {
	s, err := c.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.canSelect() {
		return s.snapshotLocked(), &InvalidTransitionError{Op: "select", State: s.state}
	}
	if len(s.selections) >= s.maxRooms {
		return s.snapshotLocked(), nil
	}

	offer, err := s.findOffer(bookingCode, roomIndex)
	if err != nil {
		return s.snapshotLocked(), err
	}

	s.selections = append(s.selections, SelectedRoom{
		SelectionID: uuid.NewString(),
		BookingCode: bookingCode,
		RoomIndex:   roomIndex,
		Offer:       offer,
	})
	s.state = StateSelecting
	return s.snapshotLocked(), nil
}

// findOffer resolves the offer snapshot for a selection from the current
// results.
func (s *Session) findOffer(bookingCode string, roomIndex int) (supplier.RoomOffer, error) {
	for _, hotel := range s.hotels {
		for i, room := range hotel.Rooms {
			if room.BookingCode == bookingCode && i == roomIndex {
				return room, nil
			}
		}
	}
	return supplier.RoomOffer{}, &ValidationError{Field: "bookingCode", Reason: "not part of the current results"}
}

// Deselect removes one selection record; unknown IDs are a no-op. After a
// failed prebook pass, touching the selection moves the session back to
// Selecting so the corrected set can be revalidated.
func (c *Coordinator) Deselect(sessionID, selectionID string) (Snapshot, error) {
	s, err := c.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.canSelect() {
		return s.snapshotLocked(), &InvalidTransitionError{Op: "deselect", State: s.state}
	}

	for i, sel := range s.selections {
		if sel.SelectionID == selectionID {
			s.selections = append(s.selections[:i], s.selections[i+1:]...)
			if s.state == StatePrebookFailed {
				s.state = StateSelecting
			}
			break
		}
	}
	return s.snapshotLocked(), nil
}

// PrebookAll revalidates every selection's booking code concurrently, one
// upstream call per distinct code; the result fans out to every selection
// sharing it. The aggregate is decided only after all calls settle:
//
//   - any domain rejection  -> PrebookFailed, with the complete set of
//     rejected codes (not just the first), forcing re-selection;
//   - otherwise any transport failure -> the state rolls back unchanged and
//     the same action may be retried;
//   - all succeed -> Prebooked, from which book() becomes legal.
func (c *Coordinator) PrebookAll(ctx context.Context, sessionID, paymentMode string) (Snapshot, error) {
	s, err := c.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.canPrebook() {
		return s.snapshotLocked(), &InvalidTransitionError{Op: "prebook", State: s.state}
	}
	if len(s.selections) == 0 {
		return s.snapshotLocked(), &ValidationError{Field: "selections", Reason: "nothing selected"}
	}

	prior := s.state
	s.state = StatePrebooking
	s.unavailable = map[string]struct{}{}
	s.prebooks = map[string]*supplier.PrebookResult{}
	s.lastErr = ""

	codes := s.distinctCodes()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		results   = map[string]*supplier.PrebookResult{}
		rejected  = map[string]struct{}{}
		transport error
	)
	for _, code := range codes {
		wg.Add(1)
		go func(code string) {
			defer wg.Done()
			res, err := c.api.PreBook(ctx, code, paymentMode)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				results[code] = res
			case isRejection(err):
				rejected[code] = struct{}{}
			default:
				if transport == nil {
					transport = err
				}
			}
		}(code)
	}
	wg.Wait()

	if len(rejected) > 0 {
		s.state = StatePrebookFailed
		s.unavailable = rejected
		c.logger.Warn("prebook batch rejected",
			"session_id", s.ID,
			"rejected", len(rejected),
			"total", len(codes),
		)
		return s.snapshotLocked(), &RejectedSelectionError{Codes: unavailableList(rejected)}
	}
	if transport != nil {
		// No domain "no" was received, so the selection is still valid;
		// roll back and let the user retry the same action.
		s.state = prior
		s.lastErr = transport.Error()
		return s.snapshotLocked(), transport
	}

	s.state = StatePrebooked
	s.prebooks = results
	c.logger.Info("prebook batch succeeded", "session_id", s.ID, "codes", len(codes))
	return s.snapshotLocked(), nil
}

// Book commits the prebooked selection. It is legal only in Prebooked, which
// together with PrebookAll's aggregate rule guarantees it can never run
// while any prebook is unresolved or failed.
//
// On a domain rejection (e.g. the hold expired between prebook and book) the
// held prebooks are treated as stale: the session moves to BookFailed and a
// fresh PrebookAll pass is required before another commit. A transport
// failure leaves the session in Prebooked so the same book() can be retried.
func (c *Coordinator) Book(ctx context.Context, sessionID string, guest GuestDetails) (Snapshot, error) {
	s, err := c.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StatePrebooked {
		return s.snapshotLocked(), &InvalidTransitionError{Op: "book", State: s.state}
	}
	if len(s.unavailable) > 0 {
		// Unreachable by construction; kept as a hard stop.
		return s.snapshotLocked(), &InvalidTransitionError{Op: "book", State: s.state}
	}
	if strings.TrimSpace(guest.FirstName) == "" || strings.TrimSpace(guest.LastName) == "" {
		return s.snapshotLocked(), &ValidationError{Field: "guest", Reason: "first and last name are required"}
	}

	req := s.buildBookRequest(guest)

	res, err := c.api.Book(ctx, req)
	if err != nil {
		if isRejection(err) {
			s.state = StateBookFailed
			s.prebooks = map[string]*supplier.PrebookResult{}
			s.lastErr = err.Error()
			c.logger.Warn("book rejected", "session_id", s.ID, "error", err)
		} else {
			s.lastErr = err.Error()
			c.logger.Error("book failed", "session_id", s.ID, "error", err)
		}
		return s.snapshotLocked(), err
	}

	s.state = StateBooked
	s.booking = res
	c.logger.Info("booking confirmed",
		"session_id", s.ID,
		"confirmation_number", res.ConfirmationNumber,
		"reference", req.ClientReferenceId,
	)
	return s.snapshotLocked(), nil
}

// buildBookRequest assembles the commit payload: the primary selection's
// booking code, one customer-details block per selected room, and the fare
// summed across the set.
func (s *Session) buildBookRequest(guest GuestDetails) supplier.BookRequest {
	primary := supplier.CustomerName{
		Title:     guest.Title,
		FirstName: guest.FirstName,
		LastName:  guest.LastName,
		Type:      "Adult",
	}
	if primary.Title == "" {
		primary.Title = "Mr"
	}

	var details []supplier.CustomerDetail
	var totalFare float64
	for _, sel := range s.selections {
		names := append([]supplier.CustomerName{primary}, guest.AdditionalGuests...)
		details = append(details, supplier.CustomerDetail{CustomerNames: names})
		totalFare += sel.Offer.TotalFare
	}

	nationality := guest.Nationality
	if nationality == "" {
		nationality = s.criteria.GuestNationality
	}

	ref := utils.GenerateClientReferenceID()
	return supplier.BookRequest{
		BookingCode:        s.selections[0].BookingCode,
		CustomerDetails:    details,
		BookingType:        "Voucher",
		ClientReferenceId:  ref,
		BookingReferenceId: ref,
		PaymentMode:        "Limit",
		GuestNationality:   nationality,
		TotalFare:          totalFare,
		EmailId:            guest.Email,
		PhoneNumber:        guest.Phone,
	}
}

// Cancel reverses the session's committed booking. Legal only in Booked and
// terminal on success. Both rejection and transport failure leave the
// session in Booked; re-cancelling an already-cancelled session is an
// invalid transition locally, whatever the upstream would say.
func (c *Coordinator) Cancel(ctx context.Context, sessionID string) (Snapshot, error) {
	s, err := c.store.Get(sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateBooked {
		return s.snapshotLocked(), &InvalidTransitionError{Op: "cancel", State: s.state}
	}
	confirmation := ""
	if s.booking != nil {
		confirmation = s.booking.ConfirmationNumber
	}
	if err := c.policy.Validate(confirmation); err != nil {
		return s.snapshotLocked(), err
	}

	res, err := c.api.Cancel(ctx, confirmation)
	if err != nil {
		s.lastErr = err.Error()
		c.logger.Error("cancel failed", "session_id", s.ID, "confirmation_number", confirmation, "error", err)
		return s.snapshotLocked(), err
	}

	s.state = StateCancelled
	s.cancellation = res
	c.logger.Info("booking cancelled", "session_id", s.ID, "confirmation_number", confirmation)
	return s.snapshotLocked(), nil
}

// isRejection distinguishes a domain-level "no" from a transport failure;
// only rejections drive state transitions.
func isRejection(err error) bool {
	var rej *supplier.RejectionError
	return errors.As(err, &rej)
}

func unavailableList(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for code := range set {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// RejectedSelectionError reports a prebook pass where at least one booking
// code was refused. Codes is the complete unavailable set.
type RejectedSelectionError struct {
	Codes []string
}

func (e *RejectedSelectionError) Error() string {
	return fmt.Sprintf("prebook rejected for %d room(s): %s", len(e.Codes), strings.Join(e.Codes, ", "))
}
