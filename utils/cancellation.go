package utils

import (
	"fmt"
	"strings"

	"booking-gateway/supplier"
)

// FormatCancellationMessage renders a cancellation outcome for display. Fee
// and refund lines appear only when the upstream reported them.
func FormatCancellationMessage(res *supplier.CancelResult) string {
	if !res.Status.OK() {
		return fmt.Sprintf("Cancellation failed: %s", res.Status.Description)
	}

	currency := res.Currency
	if currency == "" {
		currency = "USD"
	}

	var sb strings.Builder
	sb.WriteString("Booking cancelled successfully\n")
	confirmation := res.ConfirmationNumber
	if confirmation == "" {
		confirmation = "N/A"
	}
	fmt.Fprintf(&sb, "Confirmation Number: %s\n", confirmation)
	if res.CancellationFee > 0 {
		fmt.Fprintf(&sb, "Cancellation Fee: %s %.2f\n", currency, res.CancellationFee)
	}
	if res.RefundAmount != nil {
		fmt.Fprintf(&sb, "Refund Amount: %s %.2f\n", currency, *res.RefundAmount)
	}
	return sb.String()
}
