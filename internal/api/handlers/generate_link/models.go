package generate_link

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	createCheckout "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/create_checkout"
	generateLink "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/generate_link"
)

// GenerateLinkRequest HTTP request model
type GenerateLinkRequest struct {
	PIN string `json:"pin"`

	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Package   string `json:"package"`
	MainBar   string `json:"mainBar"`

	SecondBar  string `json:"secondBar,omitempty"`
	SecondSize string `json:"secondSize,omitempty"`

	FountainSize  string `json:"fountainSize,omitempty"`
	FountainWhite bool   `json:"fountainWhite,omitempty"`

	PayMode string `json:"payMode,omitempty"`

	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Venue string `json:"venue,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// GenerateLinkResponse HTTP response model
type GenerateLinkResponse struct {
	SessionID     string          `json:"sessionId"`
	URL           string          `json:"url"`
	Total         int64           `json:"total"`
	DueNow        int64           `json:"dueNow"`
	AffiliateName string          `json:"affiliateName"`
	Commission    CommissionModel `json:"commission"`
}

// CommissionModel расчет комиссии аффилиата за это бронирование
type CommissionModel struct {
	Main     int64 `json:"main"`
	Second   int64 `json:"second"`
	Fountain int64 `json:"fountain"`
	Total    int64 `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *GenerateLinkRequest) ToUseCaseRequest() (*generateLink.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %v", err)
	}

	hour, minute, err := parseClock(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &generateLink.Request{
		PIN: r.PIN,
		Booking: createCheckout.Request{
			Date:          date,
			Hour:          hour,
			Minute:        minute,
			Package:       r.Package,
			MainBar:       r.MainBar,
			SecondBar:     r.SecondBar,
			SecondSize:    r.SecondSize,
			FountainSize:  r.FountainSize,
			FountainWhite: r.FountainWhite,
			PayMode:       r.PayMode,
			Name:          r.Name,
			Phone:         r.Phone,
			Email:         r.Email,
			Venue:         r.Venue,
			Notes:         r.Notes,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateLink.Response) *GenerateLinkResponse {
	return &GenerateLinkResponse{
		SessionID:     resp.SessionID,
		URL:           resp.URL,
		Total:         resp.Quote.Total,
		DueNow:        resp.Quote.DueNow,
		AffiliateName: resp.AffiliateName,
		Commission: CommissionModel{
			Main:     resp.Commissions.Main,
			Second:   resp.Commissions.Second,
			Fountain: resp.Commissions.Fountain,
			Total:    resp.Commissions.Total,
		},
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
