package stripe_webhook

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v76"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
	"github.com/Admin-dev32/Manna-Affiliate/internal/integrations/stripeapi"
	commitBooking "github.com/Admin-dev32/Manna-Affiliate/internal/usecase/commit_booking"
)

// toCommitRequest восстанавливает запрос на фиксацию бронирования
// из metadata оплаченной checkout-сессии.
// ID сессии служит ключом идемпотентности: повторная доставка события
// не создаст второе обязательство
func toCommitRequest(session *stripe.CheckoutSession) (*commitBooking.Request, error) {
	meta := session.Metadata

	date, err := time.Parse(domain.DateFormat, meta[stripeapi.MetaDate])
	if err != nil {
		return nil, fmt.Errorf("metadata date: %v", err)
	}

	hour, minute, err := parseClock(meta[stripeapi.MetaTime])
	if err != nil {
		return nil, fmt.Errorf("metadata time: %v", err)
	}

	total, _ := strconv.ParseInt(meta[stripeapi.MetaTotal], 10, 64)
	paid, _ := strconv.ParseInt(meta[stripeapi.MetaDueNow], 10, 64)

	return &commitBooking.Request{
		Date:           date,
		Hour:           hour,
		Minute:         minute,
		Package:        meta[stripeapi.MetaPackage],
		IdempotencyKey: session.ID,
		Customer: commitBooking.Customer{
			Name:  meta[stripeapi.MetaName],
			Phone: meta[stripeapi.MetaPhone],
			Email: meta[stripeapi.MetaEmail],
			Venue: meta[stripeapi.MetaVenue],
		},
		MainBar:       meta[stripeapi.MetaMainBar],
		SecondBar:     meta[stripeapi.MetaSecondBar],
		FountainSize:  meta[stripeapi.MetaFountainSize],
		FountainWhite: meta[stripeapi.MetaFountainType] == "white",
		PayMode:       meta[stripeapi.MetaPayMode],
		AffiliatePIN:  meta[stripeapi.MetaAffiliatePIN],
		Notes:         meta[stripeapi.MetaNotes],
		TotalDollars:  total,
		PaidDollars:   paid,
	}, nil
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
