package scheduling

import (
	"fmt"
	"time"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

// WindowCalculator derives the operational window a booking occupies:
// prep buffer before the advertised start, live service, cleanup buffer
// after. Buffers are fixed configuration, strictly positive.
type WindowCalculator struct {
	catalog *domain.PackageCatalog
	prep    time.Duration
	cleanup time.Duration
}

// NewWindowCalculator создает калькулятор операционных окон
func NewWindowCalculator(catalog *domain.PackageCatalog, prep, cleanup time.Duration) (*WindowCalculator, error) {
	if prep <= 0 {
		return nil, fmt.Errorf("scheduling: prep buffer must be positive, got %s", prep)
	}
	if cleanup <= 0 {
		return nil, fmt.Errorf("scheduling: cleanup buffer must be positive, got %s", cleanup)
	}
	return &WindowCalculator{catalog: catalog, prep: prep, cleanup: cleanup}, nil
}

// Window computes [serviceStart - prep, serviceStart + live + cleanup).
// Fails only on an unrecognized package.
func (c *WindowCalculator) Window(serviceStart time.Time, pkg domain.Package) (domain.OperationalWindow, error) {
	live, err := c.catalog.LiveDuration(pkg)
	if err != nil {
		return domain.OperationalWindow{}, err
	}

	return domain.OperationalWindow{
		Start: serviceStart.Add(-c.prep),
		End:   serviceStart.Add(live + c.cleanup),
	}, nil
}

// MaxSpan returns the longest possible operational window across all
// packages. Используется для расширения диапазона запроса к календарю:
// commitment, начавшийся за MaxSpan до интересующего интервала, еще
// может его пересекать.
func (c *WindowCalculator) MaxSpan() time.Duration {
	var maxLive time.Duration
	for _, pkg := range domain.AllPackages {
		if live, err := c.catalog.LiveDuration(pkg); err == nil && live > maxLive {
			maxLive = live
		}
	}
	return c.prep + maxLive + c.cleanup
}
