package trackbear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/rs/zerolog"
)

// apiClient is the single authenticated transport shared by every sub-client
// of a Client. Headers are fixed at construction; nothing is mutated after.
type apiClient struct {
	baseURL   *url.URL
	http      *http.Client
	token     string
	userAgent string
	log       zerolog.Logger
}

// response is the decoded envelope every TrackBear reply uses. When Success
// is true Data holds the payload; otherwise Code and Message describe the
// failure. The rate budget fields are populated from response headers when
// the service sends them.
type response struct {
	StatusCode        int
	Success           bool
	Data              json.RawMessage
	Code              string
	Message           string
	RemainingRequests int
	RateReset         int
}

// apiErr translates a success=false envelope into an *APIResponseError.
// Returns nil for successful envelopes.
func (r *response) apiErr() error {
	if r.Success {
		return nil
	}
	return &APIResponseError{StatusCode: r.StatusCode, Code: r.Code, Message: r.Message}
}

func (a *apiClient) get(ctx context.Context, path string, query url.Values) (*response, error) {
	return a.do(ctx, http.MethodGet, path, query, nil)
}

func (a *apiClient) post(ctx context.Context, path string, body any) (*response, error) {
	return a.do(ctx, http.MethodPost, path, nil, body)
}

func (a *apiClient) patch(ctx context.Context, path string, body any) (*response, error) {
	return a.do(ctx, http.MethodPatch, path, nil, body)
}

func (a *apiClient) delete(ctx context.Context, path string) (*response, error) {
	return a.do(ctx, http.MethodDelete, path, nil, nil)
}

func (a *apiClient) do(ctx context.Context, method, path string, query url.Values, body any) (*response, error) {
	reqURL := a.baseURL.JoinPath(path)
	if len(query) > 0 {
		reqURL.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.token)
	req.Header.Set("User-Agent", a.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var wire struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	out := &response{
		StatusCode:        resp.StatusCode,
		Success:           wire.Success,
		Data:              wire.Data,
		RemainingRequests: headerInt(resp.Header, "X-RateLimit-Remaining"),
		RateReset:         headerInt(resp.Header, "X-RateLimit-Reset"),
	}
	if wire.Error != nil {
		out.Code = wire.Error.Code
		out.Message = wire.Error.Message
	}

	a.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Bool("success", wire.Success).
		Msg("trackbear api call")

	return out, nil
}

func headerInt(header http.Header, key string) int {
	value := header.Get(key)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// decodeObject unpacks an envelope payload expected to hold one JSON object.
func decodeObject(raw json.RawMessage) (map[string]any, error) {
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	return data, nil
}

// decodeList unpacks an envelope payload expected to hold an array of JSON
// objects.
func decodeList(raw json.RawMessage) ([]map[string]any, error) {
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	return items, nil
}

var dateRE = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validateDate rejects filter dates that do not match YYYY-MM-DD before any
// request is issued.
func validateDate(field, value string) error {
	if !dateRE.MatchString(value) {
		return &FormatError{Field: field, Value: value}
	}
	return nil
}
