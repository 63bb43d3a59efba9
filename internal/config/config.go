package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

var (
	errInvalidValue error = errors.New("invalid environment variable value")

	identifierRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

const (
	dbDriverEnvKey     = "DB_DRIVER"
	dbHostEnvKey       = "DB_HOST"
	dbPortEnvKey       = "DB_PORT"
	dbUserEnvKey       = "DB_USER"
	dbPasswordEnvKey   = "DB_PASSWORD"
	dbNameEnvKey       = "DB_NAME"
	dbCharsetEnvKey    = "DB_CHARSET"
	dbCollationEnvKey  = "DB_COLLATION"
	secretKeyEnvKey    = "SECRET_KEY"
	appEnvEnvKey       = "APP_ENV"
	appHostEnvKey      = "APP_HOST"
	appPortEnvKey      = "APP_PORT"
	logLevelEnvKey     = "LOG_LEVEL"
	logFileEnvKey      = "LOG_FILE"
	sessionTTLEnvKey   = "SESSION_TTL"
	cookieSecureEnvKey = "COOKIE_SECURE"
	adminUserEnvKey    = "ADMIN_USERNAME"
	adminPassEnvKey    = "ADMIN_PASSWORD"
	contentFileEnvKey  = "CONTENT_FILE"
	corsOriginsEnvKey  = "CORS_ALLOWED_ORIGINS"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	DefaultSecretKey = "your-secret-key-change-this-in-production"
)

// Database holds the connection settings of the relational store.
type Database struct {
	Driver    string
	Host      string
	Port      int
	User      string
	Password  string
	Name      string
	Charset   string
	Collation string
}

// App is the process configuration. It is built once at startup and passed
// by value to every component that needs it.
type App struct {
	DB            Database
	SecretKey     string
	Debug         bool
	Host          string
	Port          int
	LogLevel      zapcore.Level
	LogFile       string
	SessionTTL    time.Duration
	CookieSecure  bool
	AdminUsername string
	AdminPassword string
	ContentFile   string
	CORSOrigins   []string
}

// Addr returns the listen address of the HTTP server.
func (a App) Addr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// UsesDefaultSecret reports whether the session secret was left unset.
func (a App) UsesDefaultSecret() bool {
	return a.SecretKey == DefaultSecretKey
}

// NewApp reads the configuration from the environment, falling back to
// documented defaults for unset variables.
func NewApp() (App, error) {
	driver := strings.ToLower(getEnv(dbDriverEnvKey, DriverMySQL))
	defaultDBPort := "3306"
	switch driver {
	case DriverMySQL:
	case DriverPostgres:
		defaultDBPort = "5432"
	case DriverSQLite:
		defaultDBPort = "0"
	default:
		return App{}, fmt.Errorf("%w: %s=%q", errInvalidValue, dbDriverEnvKey, driver)
	}

	dbPort, err := getInt(dbPortEnvKey, defaultDBPort)
	if err != nil {
		return App{}, err
	}

	dbName := getEnv(dbNameEnvKey, "portfolio_db")
	if driver != DriverSQLite && !identifierRegex.MatchString(dbName) {
		return App{}, fmt.Errorf("%w: %s=%q", errInvalidValue, dbNameEnvKey, dbName)
	}

	charset := getEnv(dbCharsetEnvKey, "utf8mb4")
	if !identifierRegex.MatchString(charset) {
		return App{}, fmt.Errorf("%w: %s=%q", errInvalidValue, dbCharsetEnvKey, charset)
	}

	collation := getEnv(dbCollationEnvKey, "utf8mb4_unicode_ci")
	if !identifierRegex.MatchString(collation) {
		return App{}, fmt.Errorf("%w: %s=%q", errInvalidValue, dbCollationEnvKey, collation)
	}

	port, err := getInt(appPortEnvKey, "5000")
	if err != nil {
		return App{}, err
	}

	level, err := parseLogLevel(getEnv(logLevelEnvKey, "INFO"))
	if err != nil {
		return App{}, err
	}

	ttl, err := time.ParseDuration(getEnv(sessionTTLEnvKey, "24h"))
	if err != nil || ttl <= 0 {
		return App{}, fmt.Errorf("%w: %s", errInvalidValue, sessionTTLEnvKey)
	}

	secure, err := strconv.ParseBool(getEnv(cookieSecureEnvKey, "false"))
	if err != nil {
		return App{}, fmt.Errorf("%w: %s: %w", errInvalidValue, cookieSecureEnvKey, err)
	}

	secret := getEnv(secretKeyEnvKey, DefaultSecretKey)
	if secret == "" {
		return App{}, fmt.Errorf("%w: %s must not be empty", errInvalidValue, secretKeyEnvKey)
	}

	return App{
		DB: Database{
			Driver:    driver,
			Host:      getEnv(dbHostEnvKey, "localhost"),
			Port:      dbPort,
			User:      getEnv(dbUserEnvKey, "root"),
			Password:  getEnv(dbPasswordEnvKey, ""),
			Name:      dbName,
			Charset:   charset,
			Collation: collation,
		},
		SecretKey:     secret,
		Debug:         getEnv(appEnvEnvKey, "development") == "development",
		Host:          getEnv(appHostEnvKey, "0.0.0.0"),
		Port:          port,
		LogLevel:      level,
		LogFile:       getEnv(logFileEnvKey, "logs/app.log"),
		SessionTTL:    ttl,
		CookieSecure:  secure,
		AdminUsername: getEnv(adminUserEnvKey, "arifin123"),
		AdminPassword: getEnv(adminPassEnvKey, "arifin 123"),
		ContentFile:   getEnv(contentFileEnvKey, ""),
		CORSOrigins:   splitList(getEnv(corsOriginsEnvKey, "")),
	}, nil
}

func getEnv(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return value
}

func getInt(key, fallback string) (int, error) {
	raw := getEnv(key, fallback)
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 || value > 65535 {
		return 0, fmt.Errorf("%w: %s=%q", errInvalidValue, key, raw)
	}
	return value, nil
}

func parseLogLevel(raw string) (zapcore.Level, error) {
	switch strings.ToUpper(raw) {
	case "WARNING":
		return zapcore.WarnLevel, nil
	case "CRITICAL":
		return zapcore.FatalLevel, nil
	}

	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: %s: %w", errInvalidValue, logLevelEnvKey, err)
	}
	return level, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
