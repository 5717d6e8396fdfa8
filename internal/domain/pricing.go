package domain

import (
	"errors"
	"fmt"
	"math"
)

// Bar is a closed enumeration of bookable snack bars
type Bar string

const (
	BarPancake   Bar = "pancake"
	BarEsquites  Bar = "esquites"
	BarMaruchan  Bar = "maruchan"
	BarTostiloco Bar = "tostiloco"
	BarSnack     Bar = "snack"
)

// FountainSize размер шоколадного фонтана (количество гостей)
type FountainSize string

const (
	Fountain50  FountainSize = "50"
	Fountain100 FountainSize = "100"
	Fountain150 FountainSize = "150"
)

// DiscountMode режим менеджерской скидки
type DiscountMode string

const (
	DiscountNone    DiscountMode = "none"
	DiscountAmount  DiscountMode = "amount"
	DiscountPercent DiscountMode = "percent"
)

// PayMode способ оплаты
type PayMode string

const (
	PayDeposit PayMode = "deposit"
	PayFull    PayMode = "full"
)

var (
	// ErrUnknownBar возвращается для нераспознанного кода бара
	ErrUnknownBar = errors.New("domain: unknown bar code")

	// ErrUnknownFountainSize возвращается для нераспознанного размера фонтана
	ErrUnknownFountainSize = errors.New("domain: unknown fountain size")

	// ErrInvalidQuote возвращается при некорректных входных данных расчета
	ErrInvalidQuote = errors.New("domain: invalid quote input")
)

// Прайс в долларах США. Цены фиксированы, меняются только релизом.
var (
	basePrices = map[Package]int64{
		PackageSmall:  550,
		PackageMedium: 700,
		PackageLarge:  900,
	}

	// Скидка на второй бар, по размеру второго бара
	secondBarDiscount = map[Package]int64{
		PackageSmall:  50,
		PackageMedium: 75,
		PackageLarge:  100,
	}

	fountainPrices = map[FountainSize]int64{
		Fountain50:  350,
		Fountain100: 450,
		Fountain150: 550,
	}

	barSurcharge = map[Bar]int64{
		BarPancake:   0,
		BarEsquites:  0,
		BarMaruchan:  0,
		BarTostiloco: 50,
		BarSnack:     0,
	}

	barTitles = map[Bar]string{
		BarPancake:   "Mini Pancake",
		BarEsquites:  "Esquites (Corn Cups)",
		BarMaruchan:  "Maruchan",
		BarTostiloco: "Tostiloco (Premium)",
		BarSnack:     "Manna Snack Bar — Classic",
	}
)

// FountainWhiteUpcharge надбавка за белый или смешанный шоколад
const FountainWhiteUpcharge int64 = 50

// PayFullFlatOff фиксированная скидка за полную оплату сразу
const PayFullFlatOff int64 = 20

// ParseBar converts a wire code into a Bar or fails with ErrUnknownBar
func ParseBar(code string) (Bar, error) {
	if _, ok := barSurcharge[Bar(code)]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBar, code)
	}
	return Bar(code), nil
}

// Title returns the human-readable bar name
func (b Bar) Title() string {
	if t, ok := barTitles[b]; ok {
		return t
	}
	return string(b)
}

// QuoteInput входные данные расчета стоимости бронирования
type QuoteInput struct {
	Package         Package
	MainBar         Bar
	SecondEnabled   bool
	SecondBar       Bar
	SecondSize      Package // размер второго бара задается кодом пакета
	FountainEnabled bool
	FountainSize    FountainSize
	FountainWhite   bool // белый или смешанный шоколад
	DiscountMode    DiscountMode
	DiscountValue   float64
	PayMode         PayMode
}

// Quote итог расчета стоимости, все суммы в долларах
type Quote struct {
	Subtotal int64
	Discount int64
	Total    int64
	DueNow   int64
	Savings  int64
}

// ComputeQuote рассчитывает стоимость бронирования.
// Детерминированная арифметика по фиксированному прайсу:
// базовая цена пакета + надбавка бара + второй бар со скидкой + фонтан,
// затем менеджерская скидка, затем -$20 за полную оплату
// или депозит 25% от итога.
func ComputeQuote(in QuoteInput) (Quote, error) {
	base, ok := basePrices[in.Package]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", ErrUnknownPackage, in.Package)
	}

	surcharge, ok := barSurcharge[in.MainBar]
	if !ok {
		return Quote{}, fmt.Errorf("%w: %q", ErrUnknownBar, in.MainBar)
	}

	subtotal := base + surcharge

	if in.SecondEnabled {
		secondBase, ok := basePrices[in.SecondSize]
		if !ok {
			return Quote{}, fmt.Errorf("%w: second bar size %q", ErrUnknownPackage, in.SecondSize)
		}
		discounted := secondBase - secondBarDiscount[in.SecondSize]
		if discounted < 0 {
			discounted = 0
		}
		subtotal += discounted
	}

	if in.FountainEnabled {
		fountain, ok := fountainPrices[in.FountainSize]
		if !ok {
			return Quote{}, fmt.Errorf("%w: %q", ErrUnknownFountainSize, in.FountainSize)
		}
		if in.FountainWhite {
			fountain += FountainWhiteUpcharge
		}
		subtotal += fountain
	}

	// Менеджерская скидка
	var discount int64
	switch in.DiscountMode {
	case DiscountNone, "":
		// без скидки
	case DiscountAmount:
		if in.DiscountValue < 0 {
			return Quote{}, fmt.Errorf("%w: negative discount amount", ErrInvalidQuote)
		}
		discount = int64(math.Round(in.DiscountValue))
	case DiscountPercent:
		if in.DiscountValue < 0 || in.DiscountValue > 100 {
			return Quote{}, fmt.Errorf("%w: discount percent out of range", ErrInvalidQuote)
		}
		discount = int64(math.Round(float64(subtotal) * in.DiscountValue / 100))
	default:
		return Quote{}, fmt.Errorf("%w: unknown discount mode %q", ErrInvalidQuote, in.DiscountMode)
	}

	total := subtotal - discount
	if total < 0 {
		total = 0
	}

	q := Quote{Subtotal: subtotal, Discount: discount, Total: total}

	switch in.PayMode {
	case PayFull:
		q.Savings = PayFullFlatOff
		q.DueNow = total - PayFullFlatOff
		if q.DueNow < 0 {
			q.DueNow = 0
		}
	case PayDeposit, "":
		q.DueNow = int64(math.Round(float64(total) * DefaultDepositFraction))
	default:
		return Quote{}, fmt.Errorf("%w: unknown pay mode %q", ErrInvalidQuote, in.PayMode)
	}

	return q, nil
}

// Balance остаток после оплаты "due now"
func (q Quote) Balance() int64 {
	balance := q.Total - q.DueNow
	if balance < 0 {
		return 0
	}
	return balance
}

// Cents converts whole dollars to cents for the payment provider
func Cents(dollars int64) int64 {
	return dollars * 100
}
