package supplier_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking-gateway/supplier"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *supplier.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return supplier.NewClient(srv.URL, "user", "pass", 2*time.Second, logger)
}

func searchRequest() supplier.SearchRequest {
	return supplier.SearchRequest{
		CheckIn:               "2025-10-27",
		CheckOut:              "2025-10-28",
		CityCode:              "DXB",
		GuestNationality:      "AE",
		PreferredCurrencyCode: "AED",
		PaxRooms:              []supplier.PaxRoom{{Adults: 1, ChildrenAges: []int{}}},
	}
}

func TestSearchHotels_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/hotel-search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") == "" {
			t.Error("expected basic auth header")
		}
		var req supplier.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.CityCode != "DXB" {
			t.Errorf("expected CityCode DXB, got %s", req.CityCode)
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"Status": map[string]any{"Code": "200", "Description": "Successful"},
			"HotelResult": []map[string]any{
				{
					"HotelCode": "H001",
					"HotelName": "Marina View",
					"Rooms": []map[string]any{
						{"BookingCode": "BC1", "TotalFare": 150.0, "IsRefundable": true},
					},
				},
			},
		})
	})

	hotels, err := client.SearchHotels(context.Background(), searchRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hotels) != 1 || hotels[0].HotelCode != "H001" {
		t.Fatalf("unexpected hotels: %+v", hotels)
	}
	if len(hotels[0].Rooms) != 1 || hotels[0].Rooms[0].BookingCode != "BC1" {
		t.Fatalf("unexpected rooms: %+v", hotels[0].Rooms)
	}
}

func TestSearchHotels_SingleObjectResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Status":      map[string]any{"Code": 200, "Description": "Successful"},
			"HotelResult": map[string]any{"HotelCode": "H002"},
		})
	})

	hotels, err := client.SearchHotels(context.Background(), searchRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hotels) != 1 || hotels[0].HotelCode != "H002" {
		t.Fatalf("expected the single object normalized to one result, got %+v", hotels)
	}
}

func TestSearchHotels_NoResultsIsSuccess(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"null body": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("null"))
		},
		"code 204": func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"Status": map[string]any{"Code": "204", "Description": "No results found"},
			})
		},
		"code 201": func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"Status": map[string]any{"Code": "201", "Description": "No available rooms"},
			})
		},
	}

	for name, handler := range cases {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, handler)
			hotels, err := client.SearchHotels(context.Background(), searchRequest())
			if err != nil {
				t.Fatalf("empty result must be success, got %v", err)
			}
			if len(hotels) != 0 {
				t.Fatalf("expected no hotels, got %d", len(hotels))
			}
		})
	}
}

func TestSearchHotels_HTTPErrorIsTransport(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := client.SearchHotels(context.Background(), searchRequest())
	var transport *supplier.TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if transport.StatusCode != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", transport.StatusCode)
	}
}

func TestSearchHotels_EnvelopeRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Status": map[string]any{"Code": "500", "Description": "Supplier unavailable"},
		})
	})

	_, err := client.SearchHotels(context.Background(), searchRequest())
	var rejection *supplier.RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
	if rejection.Status.Code != "500" {
		t.Errorf("expected envelope code 500, got %s", rejection.Status.Code)
	}
}

func TestPreBook_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req supplier.PrebookRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.BookingCode != "BC1" {
			t.Errorf("expected BookingCode BC1, got %s", req.BookingCode)
		}
		if req.PaymentMode != "Limit" {
			t.Errorf("expected default payment mode Limit, got %s", req.PaymentMode)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Status":      map[string]any{"Code": "200", "Description": "Successful"},
			"TotalAmount": 150.0,
			"Currency":    "AED",
		})
	})

	res, err := client.PreBook(context.Background(), "BC1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalAmount != 150 {
		t.Errorf("expected total amount 150, got %v", res.TotalAmount)
	}
}

func TestPreBook_RejectionCarriesBookingCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Status": map[string]any{"Code": "400", "Description": "Price changed"},
		})
	})

	_, err := client.PreBook(context.Background(), "BC9", "Limit")
	var rejection *supplier.RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
	if rejection.BookingCode != "BC9" {
		t.Errorf("expected booking code BC9 on the rejection, got %q", rejection.BookingCode)
	}
}

func TestBook_FailedBookingStatusIsRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Status":             map[string]any{"Code": "200", "Description": "Successful"},
			"BookingStatus":      "Failed",
			"ConfirmationNumber": "CONF1",
		})
	})

	_, err := client.Book(context.Background(), supplier.BookRequest{BookingCode: "BC1"})
	var rejection *supplier.RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected RejectionError for failed booking status, got %v", err)
	}
}

func TestCancel_SuccessFillsConfirmationNumber(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["ConfirmationNumber"] != "ABC123" {
			t.Errorf("expected ConfirmationNumber ABC123, got %q", req["ConfirmationNumber"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Status":       map[string]any{"Code": "200", "Description": "Successful"},
			"RefundAmount": 80.0,
			"Currency":     "AED",
		})
	})

	res, err := client.Cancel(context.Background(), "ABC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ConfirmationNumber != "ABC123" {
		t.Errorf("expected the request confirmation number echoed back, got %q", res.ConfirmationNumber)
	}
	if res.RefundAmount == nil || *res.RefundAmount != 80 {
		t.Errorf("expected refund amount 80, got %v", res.RefundAmount)
	}
}

func TestCancel_Rejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Status": map[string]any{"Code": "404", "Description": "Unknown confirmation number"},
		})
	})

	_, err := client.Cancel(context.Background(), "NOPE123")
	var rejection *supplier.RejectionError
	if !errors.As(err, &rejection) {
		t.Fatalf("expected RejectionError, got %v", err)
	}
}

func TestClient_Timeout(t *testing.T) {
	client := func() *supplier.Client {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		t.Cleanup(srv.Close)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		return supplier.NewClient(srv.URL, "", "", 20*time.Millisecond, logger)
	}()

	_, err := client.SearchHotels(context.Background(), searchRequest())
	var transport *supplier.TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected timeout to surface as TransportError, got %v", err)
	}
}
