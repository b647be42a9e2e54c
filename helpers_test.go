package trackbear

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

// recordedRequest captures what the mock API server saw for one call.
type recordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Query    url.Values
	Body     []byte
	Header   http.Header
}

// newTestClient starts a mock API server wrapping handler and returns a
// client pointed at it plus the requests the server received.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *[]recordedRequest) {
	t.Helper()

	requests := &[]recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*requests = append(*requests, recordedRequest{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Query:    r.URL.Query(),
			Body:     body,
			Header:   r.Header.Clone(),
		})
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	opts = append([]Option{WithToken("test-token"), WithBaseURL(server.URL + "/api/v1")}, opts...)
	client, err := New(opts...)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return client, requests
}

// jsonHandler answers every request with status and body.
func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// successBody wraps data in a success envelope.
func successBody(data string) string {
	return `{"success": true, "data": ` + data + `}`
}

// successListBody wraps n copies of data in a success envelope holding an
// array payload.
func successListBody(data string, n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = data
	}
	return fmt.Sprintf(`{"success": true, "data": [%s]}`, strings.Join(items, ","))
}
