package services

import (
	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"
)

// Notifier delivers a booking confirmation. Implementations are
// best-effort: callers log failures and move on.
type Notifier interface {
	SendBookingConfirmation(b *models.Booking, u *models.User) error
}

// EmailNotifier sends confirmations over SMTP.
type EmailNotifier struct{}

func NewEmailNotifier() *EmailNotifier {
	return &EmailNotifier{}
}

func (n *EmailNotifier) SendBookingConfirmation(b *models.Booking, u *models.User) error {
	data := utils.BookingEmailData{
		BookingID:    b.ID,
		Status:       string(b.Status),
		Total:        b.TotalAmount.StringFixed(2),
		CheckInDate:  "N/A",
		CheckOutDate: "N/A",
	}
	if b.CheckInDate != nil {
		data.CheckInDate = b.CheckInDate.Format("2006-01-02")
	}
	if b.CheckOutDate != nil {
		data.CheckOutDate = b.CheckOutDate.Format("2006-01-02")
	}
	for _, room := range b.Rooms {
		data.RoomNumbers = append(data.RoomNumbers, room.RoomNumber)
	}
	return utils.SendBookingConfirmationEmail(u.Email, data)
}
