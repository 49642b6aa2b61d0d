package expected

import (
	"errors"

	json "github.com/goccy/go-json"
)

type resultJSON[T, E any] struct {
	Value *T `json:"value,omitempty"`
	Error *E `json:"error,omitempty"`
}

// MarshalJSON encodes the active branch as {"value": v} or {"error": e}.
func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	if r.hasValue {
		return json.Marshal(resultJSON[T, E]{Value: &r.value})
	}
	return json.Marshal(resultJSON[T, E]{Error: &r.err})
}

// UnmarshalJSON decodes the format produced by MarshalJSON, selecting the
// branch by key. Exactly one of "value" and "error" must be present.
func (r *Result[T, E]) UnmarshalJSON(data []byte) error {
	var raw resultJSON[T, E]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Value != nil && raw.Error != nil:
		return errors.New("expected: both value and error present")
	case raw.Value != nil:
		*r = Ok[T, E](*raw.Value)
	case raw.Error != nil:
		*r = FromWrapped[T, E](Wrap(*raw.Error))
	default:
		return errors.New("expected: neither value nor error present")
	}
	return nil
}
