package scheduling

import (
	"fmt"
	"time"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

// Resolver converts (local calendar date, wall-clock time) pairs in the
// configured IANA zone into absolute instants. All interval math in the
// service runs on the instants this resolver produces, never on local
// wall-clock strings.
//
// DST policy:
//   - повторенный час (перевод назад): берем ранний из двух валидных
//     моментов;
//   - пропущенный час (перевод вперед): сдвигаемся вперед за пропуск.
type Resolver struct {
	loc *time.Location
}

// NewResolver загружает зону из системной базы tz.
// Ошибка здесь фатальна для процесса: конфигурация с несуществующей
// зоной не должна дожить до обработки запросов.
func NewResolver(tz string) (*Resolver, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("scheduling: load timezone %q: %w", tz, err)
	}
	return &Resolver{loc: loc}, nil
}

// Location returns the resolved timezone
func (r *Resolver) Location() *time.Location {
	return r.loc
}

// LocalWallClock resolves a wall-clock time on the given calendar date to
// an absolute instant, deterministically across DST transitions.
func (r *Resolver) LocalWallClock(year int, month time.Month, day, hour, minute int) time.Time {
	t := time.Date(year, month, day, hour, minute, 0, 0, r.loc)

	// Перевод назад: если момент часом раньше имеет те же локальные
	// часы и минуты, значит запрошенное время существует дважды и t -
	// поздний вариант. Политика: предпочитаем ранний оффсет.
	earlier := t.Add(-time.Hour)
	if sameWallClock(earlier, year, month, day, hour, minute) {
		return earlier
	}

	// Перевод вперед: time.Date уже нормализовал несуществующее время,
	// сдвинув его за пропущенный час. Это и есть нужная политика.
	return t
}

// CalendarDay returns the half-open local calendar day [00:00, next 00:00)
// containing the instant. On DST days the interval is 23 or 25 hours long.
func (r *Resolver) CalendarDay(t time.Time) domain.OperationalWindow {
	local := t.In(r.loc)
	year, month, day := local.Date()
	return domain.OperationalWindow{
		Start: r.LocalWallClock(year, month, day, 0, 0),
		End:   r.LocalWallClock(year, month, day+1, 0, 0),
	}
}

func sameWallClock(t time.Time, year int, month time.Month, day, hour, minute int) bool {
	y, m, d := t.Date()
	return y == year && m == month && d == day && t.Hour() == hour && t.Minute() == minute
}
