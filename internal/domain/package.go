package domain

import (
	"errors"
	"fmt"
	"time"
)

// Package is a closed enumeration of bookable service packages.
// The string values are the wire codes the front-end and Stripe metadata use.
type Package string

const (
	PackageSmall  Package = "50-150-5h"
	PackageMedium Package = "150-250-5h"
	PackageLarge  Package = "250-350-6h"
)

// ErrUnknownPackage возвращается для нераспознанного кода пакета.
// Неизвестный код - это ошибка клиента, а не повод подставить дефолт.
var ErrUnknownPackage = errors.New("domain: unknown package code")

// AllPackages список всех пакетов в каноническом порядке
var AllPackages = []Package{PackageSmall, PackageMedium, PackageLarge}

// ParsePackage converts a wire code into a Package or fails with
// ErrUnknownPackage. There is deliberately no fallback default.
func ParsePackage(code string) (Package, error) {
	switch Package(code) {
	case PackageSmall, PackageMedium, PackageLarge:
		return Package(code), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPackage, code)
	}
}

// Label returns the human-readable package name used in event summaries
func (p Package) Label() string {
	switch p {
	case PackageSmall:
		return "50–150 (5 hrs)"
	case PackageMedium:
		return "150–250 (5 hrs)"
	case PackageLarge:
		return "250–350 (6 hrs)"
	default:
		return string(p)
	}
}

// PackageCatalog maps each package to its live-service duration.
// Built once from configuration at startup; immutable afterwards.
type PackageCatalog struct {
	liveMinutes map[Package]int
}

// NewPackageCatalog строит каталог из конфигурации.
// Каждый пакет перечисления обязан иметь длительность.
func NewPackageCatalog(liveMinutes map[Package]int) (*PackageCatalog, error) {
	for _, p := range AllPackages {
		minutes, ok := liveMinutes[p]
		if !ok {
			return nil, fmt.Errorf("domain: package %q has no live duration configured", p)
		}
		if minutes <= 0 {
			return nil, fmt.Errorf("domain: package %q live duration must be positive, got %d", p, minutes)
		}
	}
	// Копируем, чтобы каталог нельзя было изменить снаружи
	copied := make(map[Package]int, len(liveMinutes))
	for p, m := range liveMinutes {
		copied[p] = m
	}
	return &PackageCatalog{liveMinutes: copied}, nil
}

// LiveDuration returns the advertised service duration for the package
func (c *PackageCatalog) LiveDuration(p Package) (time.Duration, error) {
	minutes, ok := c.liveMinutes[p]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPackage, p)
	}
	return time.Duration(minutes) * time.Minute, nil
}
