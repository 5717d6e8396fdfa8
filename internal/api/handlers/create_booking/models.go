package create_booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	commitBooking "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/commit_booking"
)

// CreateBookingRequest HTTP request model.
// Прямая фиксация бронирования без оплаты (телефонные и офлайн продажи)
type CreateBookingRequest struct {
	Date      string `json:"date"`      // "2025-11-01"
	StartTime string `json:"startTime"` // "10:00"
	Package   string `json:"package"`

	// Ключ идемпотентности клиента; если пуст, генерируется сервером
	IdempotencyKey string `json:"idempotencyKey,omitempty"`

	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Venue string `json:"venue,omitempty"`

	MainBar       string `json:"mainBar,omitempty"`
	SecondBar     string `json:"secondBar,omitempty"`
	SecondSize    string `json:"secondSize,omitempty"`
	FountainSize  string `json:"fountainSize,omitempty"`
	FountainWhite bool   `json:"fountainWhite,omitempty"`
	PayMode       string `json:"payMode,omitempty"`

	AffiliatePIN string `json:"pin,omitempty"`
	Notes        string `json:"notes,omitempty"`

	TotalDollars int64 `json:"total,omitempty"`
	PaidDollars  int64 `json:"paid,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	CommitmentID string `json:"commitmentId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	WindowStart  string `json:"windowStart"`
	WindowEnd    string `json:"windowEnd"`
	Replayed     bool   `json:"replayed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest(idempotencyKey string) (*commitBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	hour, minute, err := parseClock(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &commitBooking.Request{
		Date:           date,
		Hour:           hour,
		Minute:         minute,
		Package:        r.Package,
		IdempotencyKey: idempotencyKey,
		Customer: commitBooking.Customer{
			Name:  r.Name,
			Phone: r.Phone,
			Email: r.Email,
			Venue: r.Venue,
		},
		MainBar:       r.MainBar,
		SecondBar:     r.SecondBar,
		SecondSize:    r.SecondSize,
		FountainSize:  r.FountainSize,
		FountainWhite: r.FountainWhite,
		PayMode:       r.PayMode,
		AffiliatePIN:  r.AffiliatePIN,
		Notes:         r.Notes,
		TotalDollars:  r.TotalDollars,
		PaidDollars:   r.PaidDollars,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *commitBooking.Response) *BookingResponse {
	return &BookingResponse{
		CommitmentID: resp.CommitmentID,
		Date:         resp.Start.Format(domain.DateFormat),
		StartTime:    resp.Start.Format(domain.TimeFormat),
		WindowStart:  resp.Window.Start.Format(time.RFC3339),
		WindowEnd:    resp.Window.End.Format(time.RFC3339),
		Replayed:     resp.Replayed,
	}
}

// parseClock разбирает время вида "10:30"
func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %v", s, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %v", s, err)
	}
	return hour, minute, nil
}
