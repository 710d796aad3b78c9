package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

//
// ===========================================================
//  BOOKING CONFIRMATION EMAIL
// ===========================================================
//

// BookingEmailData carries what the confirmation message needs; keeping it
// flat avoids importing models here.
type BookingEmailData struct {
	BookingID    uint
	Status       string
	Total        string
	CheckInDate  string // "2006-01-02" or "N/A"
	CheckOutDate string
	RoomNumbers  []string
}

// SendBookingConfirmationEmail sends a plain-text confirmation over SMTP.
// SMTP settings come from env (SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS,
// SMTP_FROM). Callers treat failures as best-effort.
func SendBookingConfirmationEmail(recipient string, data BookingEmailData) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return fmt.Errorf("recipient email empty")
	}

	smtpHost := EnvOrDefault("SMTP_HOST", "")
	if smtpHost == "" {
		return fmt.Errorf("SMTP_HOST not configured")
	}
	smtpPort := EnvOrDefault("SMTP_PORT", "587")
	smtpUser := EnvOrDefault("SMTP_USER", "")
	smtpPass := EnvOrDefault("SMTP_PASS", "")
	from := EnvOrDefault("SMTP_FROM", smtpUser)

	rooms := "N/A"
	if len(data.RoomNumbers) > 0 {
		rooms = strings.Join(data.RoomNumbers, ", ")
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: Booking #%d %s\r\n\r\n", data.BookingID, data.Status))
	sb.WriteString("Your booking has been received.\r\n\r\n")
	sb.WriteString(fmt.Sprintf("Rooms: %s\r\n", rooms))
	sb.WriteString(fmt.Sprintf("Check-in: %s\r\n", data.CheckInDate))
	sb.WriteString(fmt.Sprintf("Check-out: %s\r\n", data.CheckOutDate))
	sb.WriteString(fmt.Sprintf("Total: %s\r\n", data.Total))

	addr := smtpHost + ":" + smtpPort
	var auth smtp.Auth
	if smtpUser != "" {
		auth = smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	}

	if err := smtp.SendMail(addr, auth, from, []string{recipient}, []byte(sb.String())); err != nil {
		log.Printf("❌ Failed to send confirmation email to %s: %v", recipient, err)
		return err
	}
	log.Printf("📨 Confirmation email sent to %s (booking #%d)", recipient, data.BookingID)
	return nil
}
