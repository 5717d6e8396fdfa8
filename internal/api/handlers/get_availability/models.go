package get_availability

import (
	"time"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	getAvailability "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date    string   `json:"date"`
	Package string   `json:"package"`
	Slots   []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.StartTime
	}

	return &AvailabilityResponse{
		Date:    resp.Date.Format(domain.DateFormat),
		Package: string(resp.Package),
		Slots:   slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, pkg string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		Date:    date,
		Package: pkg,
	}, nil
}
