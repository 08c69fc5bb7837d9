package utils_test

import (
	"regexp"
	"strings"
	"testing"

	"booking-gateway/supplier"
	"booking-gateway/utils"
)

func TestFormatCancellationMessage_IncludesRefundWhenPresent(t *testing.T) {
	refund := 80.5
	res := &supplier.CancelResult{
		Status:             supplier.Status{Code: "200", Description: "Successful"},
		ConfirmationNumber: "ABC123",
		CancellationFee:    10,
		RefundAmount:       &refund,
		Currency:           "AED",
	}

	msg := utils.FormatCancellationMessage(res)
	if !strings.Contains(msg, "Booking cancelled successfully") {
		t.Errorf("missing success line in %q", msg)
	}
	if !strings.Contains(msg, "Confirmation Number: ABC123") {
		t.Errorf("missing confirmation number in %q", msg)
	}
	if !strings.Contains(msg, "Cancellation Fee: AED 10.00") {
		t.Errorf("missing fee line in %q", msg)
	}
	if !strings.Contains(msg, "Refund Amount: AED 80.50") {
		t.Errorf("missing refund line in %q", msg)
	}
}

func TestFormatCancellationMessage_OmitsAbsentAmounts(t *testing.T) {
	res := &supplier.CancelResult{
		Status:             supplier.Status{Code: "200", Description: "Successful"},
		ConfirmationNumber: "ABC123",
	}

	msg := utils.FormatCancellationMessage(res)
	if strings.Contains(msg, "Refund Amount") {
		t.Errorf("refund line should be absent when upstream omitted it: %q", msg)
	}
	if strings.Contains(msg, "Cancellation Fee") {
		t.Errorf("fee line should be absent when zero: %q", msg)
	}
	// Currency falls back to USD only when an amount line is printed, so no
	// currency should appear here at all.
	if strings.Contains(msg, "USD") {
		t.Errorf("no currency expected without amount lines: %q", msg)
	}
}

func TestFormatCancellationMessage_Failure(t *testing.T) {
	res := &supplier.CancelResult{
		Status: supplier.Status{Code: "404", Description: "Unknown confirmation number"},
	}

	msg := utils.FormatCancellationMessage(res)
	if !strings.Contains(msg, "Cancellation failed") {
		t.Errorf("expected failure message, got %q", msg)
	}
	if !strings.Contains(msg, "Unknown confirmation number") {
		t.Errorf("expected upstream description, got %q", msg)
	}
}

func TestGenerateClientReferenceID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{14}#\d{3}$`)
	for i := 0; i < 10; i++ {
		ref := utils.GenerateClientReferenceID()
		if !pattern.MatchString(ref) {
			t.Fatalf("reference %q does not match timestamp#NNN", ref)
		}
	}
}
