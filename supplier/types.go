package supplier

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ---------------------------
// Status envelope
// ---------------------------

// Status is the domain-level result envelope the supplier attaches to every
// response. Code is a string ("200"), not an HTTP status.
type Status struct {
	Code        string `json:"Code"`
	Description string `json:"Description"`
}

// OK reports whether the envelope signals domain-level success.
func (s Status) OK() bool {
	return s.Code == "200" || s.Code == "201"
}

// UnmarshalJSON accepts both string and numeric codes; the upstream is not
// consistent about which it sends.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code        any    `json:"Code"`
		Description string `json:"Description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.Code.(type) {
	case string:
		s.Code = v
	case float64:
		s.Code = strconv.FormatInt(int64(v), 10)
	case nil:
		s.Code = ""
	default:
		s.Code = fmt.Sprintf("%v", v)
	}
	s.Description = raw.Description
	return nil
}

// ---------------------------
// Search
// ---------------------------

type PaxRoom struct {
	Adults       int   `json:"Adults"`
	Children     int   `json:"Children"`
	ChildrenAges []int `json:"ChildrenAges"`
}

type SearchFilters struct {
	MealType   string `json:"MealType"`
	Refundable string `json:"Refundable"` // "true"/"false", upstream wants a string
	NoOfRooms  int    `json:"NoOfRooms"`
}

type SearchRequest struct {
	CheckIn                string         `json:"CheckIn"`
	CheckOut               string         `json:"CheckOut"`
	HotelCodes             string         `json:"HotelCodes,omitempty"`
	CityCode               string         `json:"CityCode,omitempty"`
	GuestNationality       string         `json:"GuestNationality"`
	PreferredCurrencyCode  string         `json:"PreferredCurrencyCode"`
	PaxRooms               []PaxRoom      `json:"PaxRooms"`
	IsDetailResponse       bool           `json:"IsDetailResponse,omitempty"`
	ResponseTime           int            `json:"ResponseTime,omitempty"`
	Filters                *SearchFilters `json:"Filters,omitempty"`
}

type RoomOffer struct {
	BookingCode   string   `json:"BookingCode"`
	Name          []string `json:"Name,omitempty"`
	RoomType      string   `json:"RoomType,omitempty"`
	MealType      string   `json:"MealType,omitempty"`
	TotalFare     float64  `json:"TotalFare"`
	TotalTax      float64  `json:"TotalTax,omitempty"`
	Currency      string   `json:"Currency,omitempty"`
	IsRefundable  bool     `json:"IsRefundable"`
	WithTransfers bool     `json:"WithTransfers,omitempty"`
}

type HotelResult struct {
	HotelCode  string      `json:"HotelCode"`
	HotelName  string      `json:"HotelName,omitempty"`
	Address    string      `json:"Address,omitempty"`
	StarRating string      `json:"StarRating,omitempty"`
	Currency   string      `json:"Currency,omitempty"`
	Rooms      []RoomOffer `json:"Rooms,omitempty"`
}

type searchResponse struct {
	Status      Status          `json:"Status"`
	HotelResult json.RawMessage `json:"HotelResult"`
}

// ---------------------------
// PreBook / Book / Cancel
// ---------------------------

type PrebookRequest struct {
	BookingCode string `json:"BookingCode"`
	PaymentMode string `json:"PaymentMode"`
}

type PrebookResult struct {
	Status           Status  `json:"Status"`
	BookingId        string  `json:"BookingId,omitempty"`
	BookingReference string  `json:"BookingReference,omitempty"`
	TotalAmount      float64 `json:"TotalAmount,omitempty"`
	Currency         string  `json:"Currency,omitempty"`
	ExpiryTime       string  `json:"ExpiryTime,omitempty"`
}

type CustomerName struct {
	Title     string `json:"Title"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Type      string `json:"Type"` // "Adult" or "Child"
}

type CustomerDetail struct {
	CustomerNames []CustomerName `json:"CustomerNames"`
}

type BookRequest struct {
	BookingCode        string           `json:"BookingCode"`
	CustomerDetails    []CustomerDetail `json:"CustomerDetails"`
	BookingType        string           `json:"BookingType"` // "Confirm" or "Voucher"
	ClientReferenceId  string           `json:"ClientReferenceId"`
	BookingReferenceId string           `json:"BookingReferenceId"`
	PaymentMode        string           `json:"PaymentMode"`
	GuestNationality   string           `json:"GuestNationality"`
	TotalFare          float64          `json:"TotalFare"`
	EmailId            string           `json:"EmailId"`
	PhoneNumber        int64            `json:"PhoneNumber"`
}

type BookResult struct {
	Status             Status `json:"Status"`
	BookingStatus      string `json:"BookingStatus,omitempty"`
	ConfirmationNumber string `json:"ConfirmationNumber,omitempty"`
	ClientReferenceId  string `json:"ClientReferenceId,omitempty"`
	InvoiceNumber      string `json:"InvoiceNumber,omitempty"`
}

type cancelRequest struct {
	ConfirmationNumber string `json:"ConfirmationNumber"`
}

type CancelResult struct {
	Status             Status  `json:"Status"`
	ConfirmationNumber string  `json:"ConfirmationNumber,omitempty"`
	CancellationFee    float64 `json:"CancellationFee,omitempty"`
	RefundAmount       *float64 `json:"RefundAmount,omitempty"`
	Currency           string  `json:"Currency,omitempty"`
}

// ---------------------------
// Lookups
// ---------------------------

type hotelDetailsRequest struct {
	Hotelcodes string `json:"Hotelcodes"`
	Language   string `json:"Language"`
}

type HotelDetails struct {
	Status Status          `json:"Status"`
	Hotels json.RawMessage `json:"HotelDetails,omitempty"`
}

type roomDetailsRequest struct {
	BookingCode string `json:"BookingCode"`
}

type RoomDetails struct {
	Status Status          `json:"Status"`
	Rooms  json.RawMessage `json:"HotelResult,omitempty"`
}

type hotelCodesRequest struct {
	CityCode string `json:"CityCode"`
	IsDetail bool   `json:"IsDetailedResponse"`
}

type HotelCodeList struct {
	Status Status          `json:"Status"`
	Hotels json.RawMessage `json:"Hotels,omitempty"`
}
