package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	defaultDBUser     = "user"
	defaultDBPassword = "password"
	defaultDBHost     = "localhost"
	defaultDBPort     = "5432"
	defaultDBName     = "mydatabase"

	defaultJWTSecret = "change-me-jwt-secret"
	defaultJWTTTL    = "24h"

	defaultListenAddr = ":8080"
	defaultMailFrom   = "noreply@freightsite.example"
)

// Config is the full runtime configuration resolved from the environment.
type Config struct {
	AppEnv     string
	ListenAddr string

	DatabaseDSN string

	JWTSecret string
	JWTTTL    time.Duration

	AdminUsername string
	AdminEmail    string
	AdminPassword string

	ResendAPIKey string
	MailFrom     string
	AdminNotify  string

	CORSOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.ListenAddr = getEnv("LISTEN_ADDR", defaultListenAddr)
	cfg.DatabaseDSN = ResolveDSN()

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.AdminUsername = getEnv("ADMIN_USERNAME", "admin")
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", "admin@freightsite.example")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	cfg.ResendAPIKey = strings.TrimSpace(os.Getenv("RESEND_API_KEY"))
	cfg.MailFrom = getEnv("MAIL_FROM", defaultMailFrom)
	cfg.AdminNotify = strings.TrimSpace(os.Getenv("ADMIN_NOTIFY_EMAIL"))

	cfg.CORSOrigins = resolveCORSOrigins()

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ResolveDSN returns the database connection string. An explicit DATABASE_URL
// wins; otherwise a postgres URL is assembled from the discrete PG*/DB_*
// variables with local-development defaults (localhost:5432).
func ResolveDSN() string {
	if dsn := strings.TrimSpace(os.Getenv("DATABASE_URL")); dsn != "" {
		return dsn
	}

	user := firstEnv("PGUSER", "DB_USER", defaultDBUser)
	password := firstEnv("PGPASSWORD", "DB_PASSWORD", defaultDBPassword)
	host := firstEnv("PGHOST", "DB_HOST", defaultDBHost)
	port := firstEnv("PGPORT", "DB_PORT", defaultDBPort)
	name := firstEnv("PGDATABASE", "DB_NAME", defaultDBName)

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(user), url.QueryEscape(password), host, port, name)
}

// resolveCORSOrigins returns the browser origins the API accepts. The local
// dev ports for the marketing site and the admin panel are always included;
// production origins are appended from CORS_ALLOWED_ORIGINS (comma-separated).
func resolveCORSOrigins() []string {
	origins := []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"http://127.0.0.1:3000",
		"http://127.0.0.1:5173",
	}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// HostPort extracts the target host and port from a connection string for
// logging. Non-URL DSNs (sqlite paths) report localhost.
func HostPort(dsn string) (string, string) {
	u, err := url.Parse(dsn)
	if err != nil || u.Hostname() == "" {
		return "localhost", defaultDBPort
	}
	port := u.Port()
	if port == "" {
		port = defaultDBPort
	}
	return u.Hostname(), port
}

func validate(cfg *Config) error {
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.AdminPassword == "" {
			return fmt.Errorf("in prod/release ADMIN_PASSWORD must be set")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstEnv(primary, fallback, def string) string {
	if v := strings.TrimSpace(os.Getenv(primary)); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(fallback)); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, raw, err)
	}
	return d, nil
}
