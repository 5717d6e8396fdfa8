package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/Admin-dev32/Manna-Affiliate/internal/domain"
)

// Config конфигурация сервиса. Загружается один раз при старте,
// после этого не изменяется. Никаких чтений из env в рантайме.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
	Calendar CalendarConfig `toml:"calendar"`
	Stripe   StripeConfig   `toml:"stripe"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`     // секунды
	WriteTimeout    int      `toml:"write_timeout"`    // секунды
	IdleTimeout     int      `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int      `toml:"shutdown_timeout"` // секунды
	AllowedOrigins  []string `toml:"allowed_origins"`  // пустой список = разрешить все
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DatabaseConfig настройки подключения к PostgreSQL (реестр афилиатов)
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// CalendarConfig настройки внешнего календаря (Google Calendar)
type CalendarConfig struct {
	CalendarID      string `toml:"calendar_id"`
	CredentialsFile string `toml:"credentials_file"` // JSON сервисного аккаунта
	RequestTimeout  int    `toml:"request_timeout"`  // секунды, ограничивает каждый вызов store
}

// StripeConfig настройки Stripe Checkout
type StripeConfig struct {
	SecretKey        string `toml:"secret_key"`
	WebhookSecret    string `toml:"webhook_secret"`
	PublicURL        string `toml:"public_url"` // база для success/cancel URL
	WebhookTolerance int    `toml:"webhook_tolerance"` // секунды, допуск подписи
}

// BookingConfig операционные ограничения бронирования.
// Все значения фиксируются на старте процесса.
type BookingConfig struct {
	TimeZone      string         `toml:"timezone"` // IANA идентификатор
	OpenHour      int            `toml:"open_hour"`
	CloseHour     int            `toml:"close_hour"` // час закрытия, сам по себе не является стартом
	StepMinutes   int            `toml:"step_minutes"`
	PrepHours     int            `toml:"prep_hours"`
	CleanupHours  int            `toml:"cleanup_hours"`
	MaxPerDay     int            `toml:"max_per_day"`
	MaxConcurrent int            `toml:"max_concurrent"`
	Packages      map[string]int `toml:"packages"` // код пакета -> live минуты
}

// Limits возвращает лимиты вместимости
func (b BookingConfig) Limits() domain.CapacityLimits {
	return domain.CapacityLimits{
		MaxPerDay:     b.MaxPerDay,
		MaxConcurrent: b.MaxConcurrent,
	}
}

// PrepBuffer буфер подготовки перед началом обслуживания
func (b BookingConfig) PrepBuffer() time.Duration {
	return time.Duration(b.PrepHours) * time.Hour
}

// CleanupBuffer буфер уборки после окончания обслуживания
func (b BookingConfig) CleanupBuffer() time.Duration {
	return time.Duration(b.CleanupHours) * time.Hour
}

// PackageLiveMinutes возвращает типизированную карту длительностей пакетов
func (b BookingConfig) PackageLiveMinutes() (map[domain.Package]int, error) {
	result := make(map[domain.Package]int, len(b.Packages))
	for code, minutes := range b.Packages {
		pkg, err := domain.ParsePackage(code)
		if err != nil {
			return nil, fmt.Errorf("config: booking.packages: %w", err)
		}
		result[pkg] = minutes
	}
	return result, nil
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "manna-affiliate"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Calendar.CalendarID == "" {
		c.Calendar.CalendarID = "primary"
	}
	if c.Calendar.RequestTimeout == 0 {
		c.Calendar.RequestTimeout = 10
	}
	if c.Stripe.WebhookTolerance == 0 {
		c.Stripe.WebhookTolerance = 300
	}

	b := &c.Booking
	if b.TimeZone == "" {
		b.TimeZone = domain.DefaultTimeZone
	}
	if b.OpenHour == 0 {
		b.OpenHour = domain.DefaultOpenHour
	}
	if b.CloseHour == 0 {
		b.CloseHour = domain.DefaultCloseHour
	}
	if b.StepMinutes == 0 {
		b.StepMinutes = domain.DefaultStepMinutes
	}
	if b.PrepHours == 0 {
		b.PrepHours = domain.DefaultPrepHours
	}
	if b.CleanupHours == 0 {
		b.CleanupHours = domain.DefaultCleanupHours
	}
	if b.MaxPerDay == 0 {
		b.MaxPerDay = domain.DefaultMaxPerDay
	}
	if b.MaxConcurrent == 0 {
		b.MaxConcurrent = domain.DefaultMaxConcurrent
	}
	if len(b.Packages) == 0 {
		b.Packages = make(map[string]int, len(domain.DefaultPackageLiveMinutes))
		for pkg, minutes := range domain.DefaultPackageLiveMinutes {
			b.Packages[string(pkg)] = minutes
		}
	}
}

func (c *Config) validate() error {
	b := c.Booking

	// Некорректная таймзона должна валить процесс на старте, не во время запроса
	if _, err := time.LoadLocation(b.TimeZone); err != nil {
		return fmt.Errorf("config: booking.timezone %q: %w", b.TimeZone, err)
	}

	if b.OpenHour < 0 || b.OpenHour > 23 {
		return fmt.Errorf("config: booking.open_hour must be in [0, 23], got %d", b.OpenHour)
	}
	if b.CloseHour < 0 || b.CloseHour > 24 {
		return fmt.Errorf("config: booking.close_hour must be in [0, 24], got %d", b.CloseHour)
	}
	if b.StepMinutes < domain.MinStepMinutes || b.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("config: booking.step_minutes must be in [%d, %d], got %d",
			domain.MinStepMinutes, domain.MaxStepMinutes, b.StepMinutes)
	}
	if b.PrepHours <= 0 {
		return fmt.Errorf("config: booking.prep_hours must be positive, got %d", b.PrepHours)
	}
	if b.CleanupHours <= 0 {
		return fmt.Errorf("config: booking.cleanup_hours must be positive, got %d", b.CleanupHours)
	}
	if b.MaxPerDay <= 0 {
		return fmt.Errorf("config: booking.max_per_day must be positive, got %d", b.MaxPerDay)
	}
	if b.MaxConcurrent <= 0 {
		return fmt.Errorf("config: booking.max_concurrent must be positive, got %d", b.MaxConcurrent)
	}

	if _, err := b.PackageLiveMinutes(); err != nil {
		return err
	}

	return nil
}
