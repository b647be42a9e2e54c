package trackbear

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Version is the library release identifier reported in the default
// User-Agent header.
const Version = "0.1.0"

const (
	envToken     = "TRACKBEAR_APP_TOKEN"
	envUserAgent = "TRACKBEAR_USER_AGENT"
	envBaseURL   = "TRACKBEAR_BASE_URL"

	defaultBaseURL   = "https://trackbear.app/api/v1"
	defaultUserAgent = "trackbear-go/" + Version + " (https://github.com/quillhq/trackbear-go)"
)

// LoadEnv loads variables from .env files into the process environment as a
// convenience for application startup. Variables already present in the
// environment are never overridden, so OS-level configuration wins. With no
// arguments it loads ./.env; missing files are reported as an error by
// godotenv.
//
// New never reads files itself; call LoadEnv explicitly before constructing a
// client if dotenv-style configuration is wanted.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

type config struct {
	token     string
	userAgent string
	baseURL   *url.URL
}

// resolveConfig applies the precedence explicit option > environment variable
// > built-in default. The token is the only value without a default.
func resolveConfig(o options) (config, error) {
	token := strings.TrimSpace(o.token)
	if token == "" {
		token = strings.TrimSpace(os.Getenv(envToken))
	}
	if token == "" {
		return config{}, &ConfigurationError{
			Reason: "missing api token: provide WithToken or set the " + envToken + " environment variable",
		}
	}

	userAgent := firstNonEmpty(o.userAgent, os.Getenv(envUserAgent), defaultUserAgent)

	rawBase := firstNonEmpty(o.baseURL, os.Getenv(envBaseURL), defaultBaseURL)
	base, err := parseBaseURL(rawBase)
	if err != nil {
		return config{}, &ConfigurationError{Reason: fmt.Sprintf("invalid base url %q: %v", rawBase, err)}
	}

	return config{token: token, userAgent: userAgent, baseURL: base}, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, fmt.Errorf("missing host in %q", raw)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
