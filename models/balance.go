package models

import "fmt"

// Balance holds the six progress counters tracked by TrackBear. It appears
// nested inside projects (starting balance and totals) and stats (per-day
// counts).
type Balance struct {
	Word    int `json:"word"`
	Time    int `json:"time"`
	Page    int `json:"page"`
	Chapter int `json:"chapter"`
	Scene   int `json:"scene"`
	Line    int `json:"line"`
}

// BuildBalance constructs a Balance from a decoded JSON object. Every counter
// is optional and defaults to zero; present counters must be non-negative
// integers.
func BuildBalance(data map[string]any) (Balance, error) {
	balance, err := buildBalance(data)
	if err != nil {
		return Balance{}, buildError("Balance", data, err)
	}
	return balance, nil
}

func buildBalance(data map[string]any) (Balance, error) {
	var balance Balance
	for _, counter := range []struct {
		key string
		dst *int
	}{
		{"word", &balance.Word},
		{"time", &balance.Time},
		{"page", &balance.Page},
		{"chapter", &balance.Chapter},
		{"scene", &balance.Scene},
		{"line", &balance.Line},
	} {
		v, ok := data[counter.key]
		if !ok || v == nil {
			continue
		}
		n, isInt := asInt(v)
		if !isInt {
			return Balance{}, fmt.Errorf("key %q: expected integer, got %T", counter.key, v)
		}
		if n < 0 {
			return Balance{}, fmt.Errorf("key %q: negative count %d", counter.key, n)
		}
		*counter.dst = n
	}
	return balance, nil
}
