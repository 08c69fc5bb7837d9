package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// SendBookingConfirmationEmail sends the post-booking confirmation. Without
// SMTP configuration it logs the payload instead of failing, so booking
// never breaks on a mail outage.
func SendBookingConfirmationEmail(recipientEmail, guestName, confirmationNumber, hotelName string, totalFare float64, currency string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] confirmation to:%s number:%s hotel:%s", recipientEmail, confirmationNumber, hotelName)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	guestName = safe(guestName)
	confirmationNumber = safe(confirmationNumber)
	hotelName = safe(hotelName)

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := fmt.Sprintf("Booking confirmed: %s", confirmationNumber)

	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your booking at %s is confirmed.\n"+
			"Confirmation number: %s\n"+
			"Total fare: %s %.2f\n\n"+
			"Keep the confirmation number; you will need it to cancel.\n",
		guestName, hotelName, confirmationNumber, currency, totalFare,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("Failed to send confirmation email to %s: %v", recipientEmail, err)
		return err
	}

	log.Printf("Confirmation email sent to %s", recipientEmail)
	return nil
}
