package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig selects the gorm dialector. Driver is "sqlite" (Path is used)
// or "mysql" (the network fields are used).
type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Path            string `mapstructure:"path"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// CounterConfig picks where daily ticket sequences live: "database" or "redis".
type CounterConfig struct {
	Backend string `mapstructure:"backend"`
}

// BillingConfig holds the policy defaults. Runtime settings override them.
type BillingConfig struct {
	MinIncrementHours           float64 `mapstructure:"min_increment_hours"`
	InternalConferenceCapPerDay float64 `mapstructure:"internal_conference_cap_per_day"`
	MaxSimultaneousBillable     int     `mapstructure:"max_simultaneous_billable"`
	TravelHalfRate              bool    `mapstructure:"travel_half_rate"`
	InvoiceCadenceDays          int     `mapstructure:"invoice_cadence_days"`
	InvoiceDueDays              int     `mapstructure:"invoice_due_days"`
	RequireRetainer             bool    `mapstructure:"require_retainer"`
}

type AuthConfig struct {
	StaffUserIDs []string `mapstructure:"staff_user_ids"`
}

// RateLimitConfig bounds requests per actor. It needs Redis; disabled means unlimited.
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	RequestsPerHour   int  `mapstructure:"requests_per_hour"`
}

// InvoiceConfig controls invoice rendering. An empty TemplatePath uses the
// built-in layout.
type InvoiceConfig struct {
	FirmName     string `mapstructure:"firm_name"`
	TemplatePath string `mapstructure:"template_path"`
}
