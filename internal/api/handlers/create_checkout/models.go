package create_checkout

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	createCheckout "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/create_checkout"
)

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	Date      string `json:"date"`      // "2025-11-01"
	StartTime string `json:"startTime"` // "10:00"
	Package   string `json:"package"`
	MainBar   string `json:"mainBar"`

	SecondBar  string `json:"secondBar,omitempty"`
	SecondSize string `json:"secondSize,omitempty"`

	FountainSize  string `json:"fountainSize,omitempty"`
	FountainWhite bool   `json:"fountainWhite,omitempty"`

	DiscountMode  string  `json:"discountMode,omitempty"`
	DiscountValue float64 `json:"discountValue,omitempty"`
	PayMode       string  `json:"payMode,omitempty"`

	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Venue string `json:"venue,omitempty"`

	AffiliatePIN string `json:"pin,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
	Subtotal  int64  `json:"subtotal"`
	Discount  int64  `json:"discount"`
	Total     int64  `json:"total"`
	DueNow    int64  `json:"dueNow"`
	Balance   int64  `json:"balance"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *CheckoutRequest) ToUseCaseRequest() (*createCheckout.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	hour, minute, err := parseClock(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createCheckout.Request{
		Date:          date,
		Hour:          hour,
		Minute:        minute,
		Package:       r.Package,
		MainBar:       r.MainBar,
		SecondBar:     r.SecondBar,
		SecondSize:    r.SecondSize,
		FountainSize:  r.FountainSize,
		FountainWhite: r.FountainWhite,
		DiscountMode:  r.DiscountMode,
		DiscountValue: r.DiscountValue,
		PayMode:       r.PayMode,
		Name:          r.Name,
		Phone:         r.Phone,
		Email:         r.Email,
		Venue:         r.Venue,
		AffiliatePIN:  r.AffiliatePIN,
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createCheckout.Response) *CheckoutResponse {
	return &CheckoutResponse{
		SessionID: resp.SessionID,
		URL:       resp.URL,
		Subtotal:  resp.Quote.Subtotal,
		Discount:  resp.Quote.Discount,
		Total:     resp.Quote.Total,
		DueNow:    resp.Quote.DueNow,
		Balance:   resp.Quote.Balance(),
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
