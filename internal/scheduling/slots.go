package scheduling

import "time"

// Generator enumerates candidate start instants for a calendar date within
// business hours at a fixed step. Pure computation: no state, no filtering
// by "now" or capacity - это ответственность вызывающего кода.
type Generator struct {
	resolver *Resolver
}

// NewGenerator создает генератор слотов поверх резолвера таймзоны
func NewGenerator(resolver *Resolver) *Generator {
	return &Generator{resolver: resolver}
}

// GenerateCandidates returns ascending candidate start instants for the
// date, one per step from openHour (inclusive) up to closeHour (exclusive):
// the closing hour itself is not an eligible start.
//
// closeHour <= openHour дает пустой список, не ошибку. Кандидаты никогда
// не выходят за границу календарных суток, даже в дни перевода часов.
func (g *Generator) GenerateCandidates(date time.Time, stepMinutes, openHour, closeHour int) []time.Time {
	candidates := make([]time.Time, 0)
	if stepMinutes <= 0 || closeHour <= openHour {
		return candidates
	}

	year, month, day := date.Date()
	dayStart := g.resolver.LocalWallClock(year, month, day, 0, 0)
	nextDay := g.resolver.LocalWallClock(year, month, day+1, 0, 0)

	var last time.Time
	for minutes := openHour * 60; minutes < closeHour*60; minutes += stepMinutes {
		t := g.resolver.LocalWallClock(year, month, day, minutes/60, minutes%60)

		// Страховка от выхода за границы суток
		if t.Before(dayStart) || !t.Before(nextDay) {
			continue
		}

		// Пропущенный час дает дубликаты после нормализации:
		// 02:00 и 03:00 резолвятся в один и тот же момент
		if !last.IsZero() && !t.After(last) {
			continue
		}

		// Нормализация могла перенести кандидата за час закрытия
		if t.Hour()*60+t.Minute() >= closeHour*60 {
			continue
		}

		candidates = append(candidates, t)
		last = t
	}

	return candidates
}
