package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"tracking/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	SpreadsheetSourceFile       = "file"
	SpreadsheetSourceSharePoint = "sharepoint"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBVerbose  bool

	SuperUserEmail string

	AzureClientID     string
	AzureClientSecret string
	AzureTenantID     string
	OAuthRedirectURL  string

	SessionType   string
	SessionDir    string
	SessionSecret string
	SessionSecure bool

	SpreadsheetSource    string
	SpreadsheetPath      string
	SharePointSharingURL string
	SpreadsheetSheet     string

	SyncSchedule     string
	SyncOnStart      bool
	WatchSpreadsheet bool
	WatchDebounce    time.Duration

	ChecklistFile string
	PortalsFile   string
	StaticDir     string
	Timezone      string

	LogLevel  string
	LogFormat string
}

// LoadConfig reads .env from the working directory when it exists and then
// the process environment. Environment variables win over .env entries.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds a Config from lookup, applying defaults.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	var parseErrs []error
	flag := func(key string, fallback bool) bool {
		raw := get(key, "")
		if raw == "" {
			return fallback
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause(key, err))
			return fallback
		}
		return v
	}
	duration := func(key string, fallback time.Duration) time.Duration {
		raw := get(key, "")
		if raw == "" {
			return fallback
		}
		v, err := time.ParseDuration(raw)
		if err != nil {
			parseErrs = append(parseErrs, errs.NewValueIsInvalidErrorWithCause(key, err))
			return fallback
		}
		return v
	}

	cfg := Config{
		HTTPPort: get("HTTP_PORT", "5001"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", ""),
		DBName:     get("DB_NAME", "tracking"),
		DBSslMode:  get("DB_SSLMODE", "disable"),
		DBVerbose:  flag("DB_VERBOSE", false),

		SuperUserEmail: get("SUPER_USER_EMAIL", ""),

		AzureClientID:     get("AZURE_CLIENT_ID", ""),
		AzureClientSecret: get("AZURE_CLIENT_SECRET", ""),
		AzureTenantID:     get("AZURE_TENANT_ID", ""),
		OAuthRedirectURL:  get("OAUTH_REDIRECT_URL", ""),

		SessionType:   get("SESSION_TYPE", "filesystem"),
		SessionDir:    get("SESSION_DIR", "./.sessions/"),
		SessionSecret: get("SESSION_SECRET", ""),
		SessionSecure: flag("SESSION_SECURE", false),

		SpreadsheetSource:    get("SPREADSHEET_SOURCE", SpreadsheetSourceSharePoint),
		SpreadsheetPath:      get("SPREADSHEET_PATH", ""),
		SharePointSharingURL: get("SHAREPOINT_SHARING_URL", ""),
		SpreadsheetSheet:     get("SPREADSHEET_SHEET", "General"),

		SyncSchedule:     get("SYNC_SCHEDULE", ""),
		SyncOnStart:      flag("SYNC_ON_START", true),
		WatchSpreadsheet: flag("WATCH_SPREADSHEET", false),
		WatchDebounce:    duration("WATCH_DEBOUNCE", 2*time.Second),

		ChecklistFile: get("CHECKLIST_FILE", ""),
		PortalsFile:   get("PORTALS_FILE", "portales.json"),
		StaticDir:     get("STATIC_DIR", "web"),
		Timezone:      get("TIMEZONE", "America/Mexico_City"),

		LogLevel:  get("LOG_LEVEL", "info"),
		LogFormat: get("LOG_FORMAT", "json"),
	}

	if err := errors.Join(parseErrs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing or inconsistent setting at once. Database
// settings are checked by ValidateDatabase since every command needs them
// but only serve needs the rest.
func (c Config) Validate() error {
	var all []error

	all = append(all, c.ValidateDatabase())

	if c.AzureClientID == "" {
		all = append(all, errs.NewValueIsRequiredError("AZURE_CLIENT_ID"))
	}
	if c.AzureClientSecret == "" {
		all = append(all, errs.NewValueIsRequiredError("AZURE_CLIENT_SECRET"))
	}
	if c.AzureTenantID == "" {
		all = append(all, errs.NewValueIsRequiredError("AZURE_TENANT_ID"))
	}
	if c.OAuthRedirectURL == "" {
		all = append(all, errs.NewValueIsRequiredError("OAUTH_REDIRECT_URL"))
	}
	if c.SuperUserEmail == "" {
		all = append(all, errs.NewValueIsRequiredError("SUPER_USER_EMAIL"))
	}

	all = append(all, c.ValidateSpreadsheet())

	if c.WatchSpreadsheet && c.SpreadsheetSource != SpreadsheetSourceFile {
		all = append(all, errs.NewValueIsInvalidErrorWithCause("WATCH_SPREADSHEET",
			errors.New("watching needs SPREADSHEET_SOURCE=file")))
	}
	if _, err := c.Location(); err != nil {
		all = append(all, errs.NewValueIsInvalidErrorWithCause("TIMEZONE", err))
	}

	return errors.Join(all...)
}

func (c Config) ValidateDatabase() error {
	var all []error
	if c.DBHost == "" {
		all = append(all, errs.NewValueIsRequiredError("DB_HOST"))
	}
	if c.DBName == "" {
		all = append(all, errs.NewValueIsRequiredError("DB_NAME"))
	}
	return errors.Join(all...)
}

// ValidateSpreadsheet checks the settings the import needs.
func (c Config) ValidateSpreadsheet() error {
	switch c.SpreadsheetSource {
	case SpreadsheetSourceFile:
		if c.SpreadsheetPath == "" {
			return errs.NewValueIsRequiredError("SPREADSHEET_PATH")
		}
	case SpreadsheetSourceSharePoint:
		var all []error
		if c.SharePointSharingURL == "" {
			all = append(all, errs.NewValueIsRequiredError("SHAREPOINT_SHARING_URL"))
		}
		if c.AzureClientID == "" || c.AzureClientSecret == "" || c.AzureTenantID == "" {
			all = append(all, errs.NewValueIsRequiredError("AZURE_CLIENT_ID/AZURE_CLIENT_SECRET/AZURE_TENANT_ID"))
		}
		return errors.Join(all...)
	default:
		return errs.NewValueIsInvalidError("SPREADSHEET_SOURCE")
	}
	return nil
}

// Location resolves Timezone.
func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
