package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/quillhq/trackbear-go/enums"
)

// ModelBuildError reports a payload that does not match the expected record
// shape. It carries the serialized input for bug reports against the service
// contract.
type ModelBuildError struct {
	Model string
	Data  string
	Err   error
}

func (e *ModelBuildError) Error() string {
	return fmt.Sprintf("failure to build the %s model from the provided data: %v (data: %s)", e.Model, e.Err, e.Data)
}

func (e *ModelBuildError) Unwrap() error { return e.Err }

// buildError wraps err into a single ModelBuildError for the outermost model.
// A nested ModelBuildError is reduced to its cause so callers see one error
// naming the record they asked for.
func buildError(model string, data map[string]any, err error) error {
	var nested *ModelBuildError
	if errors.As(err, &nested) {
		err = nested.Err
	}
	serialized, marshalErr := json.Marshal(data)
	if marshalErr != nil {
		serialized = fmt.Appendf(nil, "%v", data)
	}
	return &ModelBuildError{Model: model, Data: string(serialized), Err: err}
}

// rawObject walks a decoded JSON object, remembering the first extraction
// failure. Accessors return zero values once an error is recorded, so Build
// functions can assign every field and check err once.
type rawObject struct {
	data map[string]any
	err  error
}

func newRawObject(data map[string]any) *rawObject {
	return &rawObject{data: data}
}

func (r *rawObject) fail(format string, args ...any) {
	if r.err == nil {
		r.err = fmt.Errorf(format, args...)
	}
}

func (r *rawObject) value(key string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.data[key]
	if !ok {
		r.fail("missing required key %q", key)
		return nil, false
	}
	return v, true
}

func (r *rawObject) str(key string) string {
	v, ok := r.value(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail("key %q: expected string, got %T", key, v)
		return ""
	}
	return s
}

// nullStr reads a required key whose value may be JSON null.
func (r *rawObject) nullStr(key string) *string {
	v, ok := r.value(key)
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		r.fail("key %q: expected string or null, got %T", key, v)
		return nil
	}
	return &s
}

func (r *rawObject) integer(key string) int {
	v, ok := r.value(key)
	if !ok {
		return 0
	}
	n, ok := asInt(v)
	if !ok {
		r.fail("key %q: expected integer, got %T", key, v)
		return 0
	}
	return n
}

// nullInt reads a required key holding an integer or JSON null.
func (r *rawObject) nullInt(key string) *int {
	v, ok := r.value(key)
	if !ok || v == nil {
		return nil
	}
	n, ok := asInt(v)
	if !ok {
		r.fail("key %q: expected integer or null, got %T", key, v)
		return nil
	}
	return &n
}

func (r *rawObject) boolean(key string) bool {
	v, ok := r.value(key)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		r.fail("key %q: expected bool, got %T", key, v)
		return false
	}
	return b
}

// optBool reads an optional key, defaulting to false when absent.
func (r *rawObject) optBool(key string) bool {
	if r.err != nil {
		return false
	}
	v, ok := r.data[key]
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		r.fail("key %q: expected bool, got %T", key, v)
		return false
	}
	return b
}

func (r *rawObject) uuid(key string) uuid.UUID {
	raw := r.str(key)
	if r.err != nil {
		return uuid.UUID{}
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		r.fail("key %q: %v", key, err)
		return uuid.UUID{}
	}
	return id
}

func (r *rawObject) state(key string) enums.State {
	raw := r.str(key)
	if r.err != nil {
		return ""
	}
	state, err := enums.ParseState(raw)
	if err != nil {
		r.fail("key %q: %v", key, err)
		return ""
	}
	return state
}

func (r *rawObject) phase(key string) enums.Phase {
	raw := r.str(key)
	if r.err != nil {
		return ""
	}
	phase, err := enums.ParsePhase(raw)
	if err != nil {
		r.fail("key %q: %v", key, err)
		return ""
	}
	return phase
}

func (r *rawObject) measure(key string) enums.Measure {
	raw := r.str(key)
	if r.err != nil {
		return ""
	}
	measure, err := enums.ParseMeasure(raw)
	if err != nil {
		r.fail("key %q: %v", key, err)
		return ""
	}
	return measure
}

func (r *rawObject) color(key string) enums.Color {
	raw := r.str(key)
	if r.err != nil {
		return ""
	}
	color, err := enums.ParseColor(raw)
	if err != nil {
		r.fail("key %q: %v", key, err)
		return ""
	}
	return color
}

func (r *rawObject) object(key string) map[string]any {
	v, ok := r.value(key)
	if !ok {
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		r.fail("key %q: expected object, got %T", key, v)
		return nil
	}
	return obj
}

func (r *rawObject) list(key string) []any {
	v, ok := r.value(key)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		r.fail("key %q: expected array, got %T", key, v)
		return nil
	}
	return items
}

// balance reads a required Balance-shaped sub-object. The sub-object itself
// must be present; counters missing inside it default to zero.
func (r *rawObject) balance(key string) Balance {
	obj := r.object(key)
	if r.err != nil {
		return Balance{}
	}
	balance, err := buildBalance(obj)
	if err != nil {
		r.fail("key %q: %v", key, err)
		return Balance{}
	}
	return balance
}

func (r *rawObject) measures(key string) []enums.Measure {
	items := r.list(key)
	if r.err != nil {
		return nil
	}
	measures := make([]enums.Measure, 0, len(items))
	for _, item := range items {
		raw, ok := item.(string)
		if !ok {
			r.fail("key %q: expected string, got %T", key, item)
			return nil
		}
		measure, err := enums.ParseMeasure(raw)
		if err != nil {
			r.fail("key %q: %v", key, err)
			return nil
		}
		measures = append(measures, measure)
	}
	return measures
}

// asInt normalizes the numeric forms a decoded JSON object can hold. Floats
// are accepted only when integral.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(parsed), true
	}
	return 0, false
}
