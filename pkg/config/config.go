package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/bodegapp/bodegapp-api/internal/domain/analytics"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	DB        DBConfig
	JWT       JWTConfig
	HTTP      HTTPConfig
	Cache     CacheConfig
	Metrics   MetricsConfig
	Analytics AnalyticsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Supabase).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int32
}

// ConnectionString devuelve DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN arma el connection string con URL encoding para la contraseña.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CacheConfig configuración del caché de snapshots en Redis.
// Con Enabled=false el caso de uso lee siempre del data store.
type CacheConfig struct {
	Enabled     bool
	RedisURL    string // redis://:password@host:6379/0; tiene prioridad sobre Host/Port
	Host        string
	Port        int
	Password    string
	DB          int
	SnapshotTTL time.Duration
}

// Addr devuelve host:port de Redis.
func (c CacheConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MetricsConfig configuración de Prometheus.
type MetricsConfig struct {
	Enabled bool
	Prefix  string
}

// AnalyticsConfig umbrales del motor de analítica.
type AnalyticsConfig struct {
	DeadStockDays         int
	SlowStockDays         int
	HighVolumeUnits       decimal.Decimal
	HighMarginPct         decimal.Decimal
	MediumMarginPct       decimal.Decimal
	LookbackDays          int
	LeadTimeDays          int
	WarningLeadMultiplier int
	ReorderCoverDays      int
}

// Thresholds convierte la configuración al tipo del motor.
func (c AnalyticsConfig) Thresholds() analytics.Thresholds {
	return analytics.Thresholds{
		DeadStockDays:         c.DeadStockDays,
		SlowStockDays:         c.SlowStockDays,
		HighVolumeUnits:       c.HighVolumeUnits,
		HighMarginPct:         c.HighMarginPct,
		MediumMarginPct:       c.MediumMarginPct,
		LookbackDays:          c.LookbackDays,
		LeadTimeDays:          c.LeadTimeDays,
		WarningLeadMultiplier: c.WarningLeadMultiplier,
		ReorderCoverDays:      c.ReorderCoverDays,
	}
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, REDIS_URL, ANALYTICS_DEAD_STOCK_DAYS, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	def := analytics.DefaultThresholds()

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "bodegapp-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "bodegapp"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			MaxConns:    int32(getInt(v, "DB_MAX_CONNS", 10)),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "bodegapp"),
		},
		HTTP: HTTPConfig{
			Host:            getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:            getInt(v, "HTTP_PORT", 8080),
			ShutdownTimeout: time.Duration(getInt(v, "HTTP_SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Cache: CacheConfig{
			Enabled:     getBool(v, "CACHE_ENABLED", false),
			RedisURL:    getString(v, "REDIS_URL", ""),
			Host:        getString(v, "REDIS_HOST", "localhost"),
			Port:        getInt(v, "REDIS_PORT", 6379),
			Password:    getString(v, "REDIS_PASSWORD", ""),
			DB:          getInt(v, "REDIS_DB", 0),
			SnapshotTTL: time.Duration(getInt(v, "CACHE_SNAPSHOT_TTL_SECONDS", 60)) * time.Second,
		},
		Metrics: MetricsConfig{
			Enabled: getBool(v, "METRICS_ENABLED", true),
			Prefix:  getString(v, "METRICS_PREFIX", "bodegapp"),
		},
		Analytics: AnalyticsConfig{
			DeadStockDays:         getInt(v, "ANALYTICS_DEAD_STOCK_DAYS", def.DeadStockDays),
			SlowStockDays:         getInt(v, "ANALYTICS_SLOW_STOCK_DAYS", def.SlowStockDays),
			HighVolumeUnits:       getDecimal(v, "ANALYTICS_HIGH_VOLUME_UNITS", def.HighVolumeUnits),
			HighMarginPct:         getDecimal(v, "ANALYTICS_HIGH_MARGIN_PCT", def.HighMarginPct),
			MediumMarginPct:       getDecimal(v, "ANALYTICS_MEDIUM_MARGIN_PCT", def.MediumMarginPct),
			LookbackDays:          getInt(v, "ANALYTICS_LOOKBACK_DAYS", def.LookbackDays),
			LeadTimeDays:          getInt(v, "ANALYTICS_LEAD_TIME_DAYS", def.LeadTimeDays),
			WarningLeadMultiplier: getInt(v, "ANALYTICS_WARNING_LEAD_MULTIPLIER", def.WarningLeadMultiplier),
			ReorderCoverDays:      getInt(v, "ANALYTICS_REORDER_COVER_DAYS", def.ReorderCoverDays),
		},
	}

	if err := cfg.Analytics.Thresholds().Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}

func getDecimal(v *viper.Viper, key string, def decimal.Decimal) decimal.Decimal {
	if v.IsSet(key) {
		d, err := decimal.NewFromString(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return d
	}
	return def
}
