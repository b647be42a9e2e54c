package trackbear

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Client is the public entry point to the TrackBear API. It owns the
// authenticated transport and exposes one sub-client per resource collection.
// A Client is safe for concurrent use; nothing is mutated after construction.
type Client struct {
	api *apiClient

	Projects     *ProjectClient
	Tags         *TagClient
	Tallies      *TallyClient
	Stats        *StatClient
	Leaderboards *LeaderboardClient
}

type options struct {
	token      string
	userAgent  string
	baseURL    string
	httpClient *http.Client
	logger     *zerolog.Logger
}

// Option configures a Client during construction.
type Option func(*options)

// WithToken sets the API token, taking precedence over TRACKBEAR_APP_TOKEN.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithUserAgent sets the User-Agent header value used to identify the calling
// application, taking precedence over TRACKBEAR_USER_AGENT.
func WithUserAgent(userAgent string) Option {
	return func(o *options) { o.userAgent = userAgent }
}

// WithBaseURL overrides the API base URL, taking precedence over
// TRACKBEAR_BASE_URL. Useful for testing against a local stand-in.
func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

// WithHTTPClient supplies the underlying transport. Timeouts, retries, and
// instrumentation belong to this collaborator; the library adds none of its
// own beyond a default 30 second timeout when no client is given.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithLogger attaches a zerolog logger. Without one the client is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = &logger }
}

// New constructs a Client. The API token is the one mandatory setting and is
// resolved with the precedence explicit option > environment variable; a
// missing token fails immediately with a *ConfigurationError. No network I/O
// happens during construction.
func New(opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := zerolog.Nop()
	if o.logger != nil {
		logger = *o.logger
	}

	cfg, err := resolveConfig(o)
	if err != nil {
		logger.Error().Err(err).Msg("trackbear client configuration failed")
		return nil, err
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	api := &apiClient{
		baseURL:   cfg.baseURL,
		http:      httpClient,
		token:     cfg.token,
		userAgent: cfg.userAgent,
		log:       logger,
	}

	return &Client{
		api:          api,
		Projects:     &ProjectClient{api: api},
		Tags:         &TagClient{api: api},
		Tallies:      &TallyClient{api: api},
		Stats:        &StatClient{api: api},
		Leaderboards: &LeaderboardClient{api: api},
	}, nil
}

// UserAgent returns the resolved User-Agent header value.
func (c *Client) UserAgent() string { return c.api.userAgent }

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string { return c.api.baseURL.String() }
