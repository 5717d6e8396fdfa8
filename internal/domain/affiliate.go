package domain

// Affiliate represents a partner who sells bookings by PIN.
// Профиль хранится в Postgres; PIN — внешний идентификатор для входа
// и генерации платежных ссылок.
type Affiliate struct {
	ID                 int64
	PIN                string
	Name               string
	Email              *string
	BundleRate         float64 // доля комиссии за второй бар от основной
	CommissionByPkg    map[Package]int64
	FountainCommission int64
}

// CommissionBreakdown итог расчета комиссии афилиата, в долларах
type CommissionBreakdown struct {
	Main     int64
	Second   int64
	Fountain int64
	Total    int64
}

// Commissions рассчитывает комиссию афилиата за бронирование.
// Второй бар дает долю (BundleRate) от основной комиссии,
// фонтан — фиксированную сумму.
func (a *Affiliate) Commissions(pkg Package, secondEnabled, fountainEnabled bool) CommissionBreakdown {
	main := a.CommissionByPkg[pkg]
	if main < 0 {
		main = 0
	}

	var second int64
	if secondEnabled {
		rate := a.BundleRate
		if rate <= 0 {
			rate = DefaultBundleRate
		}
		second = int64(float64(main)*rate + 0.5)
	}

	var fountain int64
	if fountainEnabled {
		fountain = a.FountainCommission
		if fountain < 0 {
			fountain = 0
		}
	}

	return CommissionBreakdown{
		Main:     main,
		Second:   second,
		Fountain: fountain,
		Total:    main + second + fountain,
	}
}

// DefaultBundleRate доля комиссии за второй бар, если у афилиата не задана своя
const DefaultBundleRate = 0.7
