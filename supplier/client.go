package supplier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Client talks to the remote hotel-inventory gateway. All calls are plain
// POST with a JSON body; domain success/failure rides in the Status envelope,
// independent of the HTTP status.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client. username/password go out as HTTP basic auth on
// every request; timeout bounds each call.
func NewClient(baseURL, username, password string, timeout time.Duration, logger *slog.Logger) *Client {
	auth := ""
	if username != "" || password != "" {
		auth = "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
	}
	return &Client{
		baseURL:    baseURL,
		authHeader: auth,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// post issues the request and decodes the body into out. A nil JSON body
// ("null") is reported via the ok return so callers can synthesize an
// empty-result envelope instead of failing.
func (c *Client) post(ctx context.Context, op, path string, body, out any) (ok bool, err error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return false, &TransportError{Op: op, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return false, &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.authHeader != "" {
		req.Header.Set("Authorization", c.authHeader)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("supplier call failed", "op", op, "error", err)
		return false, &TransportError{Op: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug("supplier call",
		"op", op,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, &TransportError{Op: op, StatusCode: resp.StatusCode}
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return false, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(raw) == 0 || string(raw) == "null" {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, &TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return true, nil
}

// SearchHotels runs an availability search. An empty result list is a valid
// success outcome: the upstream signals "nothing found" either with a null
// body or with code 201/204, and neither is an error here. No retries.
func (c *Client) SearchHotels(ctx context.Context, req SearchRequest) ([]HotelResult, error) {
	const op = "search"

	var resp searchResponse
	ok, err := c.post(ctx, op, "/hotel-search", req, &resp)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []HotelResult{}, nil
	}

	switch resp.Status.Code {
	case "200":
	case "201", "204":
		// no rooms / no results
		return []HotelResult{}, nil
	default:
		return nil, &RejectionError{Op: op, Status: resp.Status}
	}

	return decodeHotelResults(op, resp.HotelResult)
}

// decodeHotelResults tolerates the upstream sending either a single object
// or an array under HotelResult.
func decodeHotelResults(op string, raw json.RawMessage) ([]HotelResult, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []HotelResult{}, nil
	}

	var list []HotelResult
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var single HotelResult
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, &TransportError{Op: op, Err: fmt.Errorf("decode hotel results: %w", err)}
	}
	return []HotelResult{single}, nil
}

// PreBook revalidates price and availability for a booking code before
// commitment. A non-success envelope means the offer is gone and comes back
// as a *RejectionError carrying the code.
func (c *Client) PreBook(ctx context.Context, bookingCode, paymentMode string) (*PrebookResult, error) {
	const op = "prebook"

	if paymentMode == "" {
		paymentMode = "Limit"
	}

	var resp PrebookResult
	ok, err := c.post(ctx, op, "/hotel-prebook", PrebookRequest{BookingCode: bookingCode, PaymentMode: paymentMode}, &resp)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &RejectionError{
			Op:          op,
			BookingCode: bookingCode,
			Status:      Status{Code: "400", Description: "no prebook response received"},
		}
	}
	if !resp.Status.OK() {
		return nil, &RejectionError{Op: op, BookingCode: bookingCode, Status: resp.Status}
	}
	return &resp, nil
}

// Book commits a reservation. The upstream can answer Code 200 and still
// flag BookingStatus "Failed"; that counts as a rejection too.
func (c *Client) Book(ctx context.Context, req BookRequest) (*BookResult, error) {
	const op = "book"

	var resp BookResult
	ok, err := c.post(ctx, op, "/hotel-book", req, &resp)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &RejectionError{
			Op:     op,
			Status: Status{Code: "400", Description: "no booking response received"},
		}
	}
	if !resp.Status.OK() || resp.BookingStatus == "Failed" {
		return nil, &RejectionError{Op: op, BookingCode: req.BookingCode, Status: resp.Status}
	}
	return &resp, nil
}

// Cancel reverses a committed booking by confirmation number.
func (c *Client) Cancel(ctx context.Context, confirmationNumber string) (*CancelResult, error) {
	const op = "cancel"

	var resp CancelResult
	ok, err := c.post(ctx, op, "/hotel-cancel", cancelRequest{ConfirmationNumber: confirmationNumber}, &resp)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &RejectionError{
			Op:     op,
			Status: Status{Code: "400", Description: "no cancel response received"},
		}
	}
	if !resp.Status.OK() {
		return nil, &RejectionError{Op: op, Status: resp.Status}
	}
	if resp.ConfirmationNumber == "" {
		resp.ConfirmationNumber = confirmationNumber
	}
	return &resp, nil
}

// HotelDetails fetches static hotel content for a hotel code.
func (c *Client) HotelDetails(ctx context.Context, hotelCode string) (*HotelDetails, error) {
	const op = "hotel-details"

	var resp HotelDetails
	ok, err := c.post(ctx, op, "/hotel-details", hotelDetailsRequest{Hotelcodes: hotelCode, Language: "en"}, &resp)
	if err != nil {
		return nil, err
	}
	if !ok || !resp.Status.OK() {
		return nil, &RejectionError{Op: op, Status: resp.Status}
	}
	return &resp, nil
}

// RoomDetails fetches the priced room behind a booking code.
func (c *Client) RoomDetails(ctx context.Context, bookingCode string) (*RoomDetails, error) {
	const op = "hotel-room"

	var resp RoomDetails
	ok, err := c.post(ctx, op, "/hotel-room", roomDetailsRequest{BookingCode: bookingCode}, &resp)
	if err != nil {
		return nil, err
	}
	if !ok || !resp.Status.OK() {
		return nil, &RejectionError{Op: op, Status: resp.Status}
	}
	return &resp, nil
}

// HotelCodes lists the hotel codes the supplier knows for a city.
func (c *Client) HotelCodes(ctx context.Context, cityCode string) (*HotelCodeList, error) {
	const op = "hotel-codes"

	var resp HotelCodeList
	ok, err := c.post(ctx, op, "/hotel-codes", hotelCodesRequest{CityCode: cityCode}, &resp)
	if err != nil {
		return nil, err
	}
	if !ok || !resp.Status.OK() {
		return nil, &RejectionError{Op: op, Status: resp.Status}
	}
	return &resp, nil
}
