package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Email     EmailConfig     `yaml:"email"`
	OTPStore  OTPStoreConfig  `yaml:"otp_store"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"3001"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
	MetricsEnabled  bool          `yaml:"metrics_enabled"  env:"SERVER_METRICS_ENABLED"  env-default:"true"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds session and one-time code settings, plus the optional
// Supabase identity provider.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"central-ring"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
	OTPTTL         time.Duration `yaml:"otp_ttl"          env:"AUTH_OTP_TTL"          env-default:"5m"`
	OTPMaxAttempts int           `yaml:"otp_max_attempts" env:"AUTH_OTP_MAX_ATTEMPTS" env-default:"5"`
	OTPHashCost    int           `yaml:"otp_hash_cost"    env:"AUTH_OTP_HASH_COST"    env-default:"10"`

	SupabaseURL       string `yaml:"supabase_url"        env:"SUPABASE_URL"`
	SupabaseAnonKey   string `yaml:"supabase_anon_key"   env:"SUPABASE_ANON_KEY"`
	SupabaseJWTSecret string `yaml:"supabase_jwt_secret" env:"SUPABASE_JWT_SECRET"`
}

// SupabaseJWTEnabled reports whether Supabase access tokens can be verified locally.
func (c AuthConfig) SupabaseJWTEnabled() bool {
	return c.SupabaseJWTSecret != ""
}

// SupabaseRemoteEnabled reports whether the Supabase user endpoint can be queried.
func (c AuthConfig) SupabaseRemoteEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseAnonKey != ""
}

// EmailConfig holds transactional email settings.
type EmailConfig struct {
	ResendAPIKey string `yaml:"resend_api_key" env:"RESEND_API_KEY"`
	From         string `yaml:"from"           env:"EMAIL_FROM"     env-default:"Central Ring <onboarding@resend.dev>"`
	BaseURL      string `yaml:"base_url"       env:"EMAIL_BASE_URL"`
}

// OTP store backends.
const (
	OTPBackendPostgres = "postgres"
	OTPBackendRedis    = "redis"
)

// OTPStoreConfig selects where one-time codes are kept.
type OTPStoreConfig struct {
	Backend       string `yaml:"backend"        env:"OTP_STORE_BACKEND"  env-default:"postgres"`
	RedisAddr     string `yaml:"redis_addr"     env:"OTP_REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"OTP_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"       env:"OTP_REDIS_DB"       env-default:"0"`
	KeyPrefix     string `yaml:"key_prefix"     env:"OTP_REDIS_PREFIX"   env-default:"otp:"`
}

// RateLimitConfig limits the unauthenticated sign-in endpoints per client IP.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	RPS     float64 `yaml:"rps"     env:"RATE_LIMIT_RPS"     env-default:"0.2"`
	Burst   int     `yaml:"burst"   env:"RATE_LIMIT_BURST"   env-default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
