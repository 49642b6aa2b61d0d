package status

import (
	"errors"

	json "github.com/goccy/go-json"
)

type statusJSON[E any] struct {
	Ok    bool `json:"ok"`
	Error *E   `json:"error,omitempty"`
}

// MarshalJSON encodes success as {"ok":true} and failure as
// {"ok":false,"error":...}.
func (s Status[E]) MarshalJSON() ([]byte, error) {
	if s.Ok() {
		return json.Marshal(statusJSON[E]{Ok: true})
	}
	return json.Marshal(statusJSON[E]{Ok: false, Error: &s.err})
}

// UnmarshalJSON decodes the format produced by MarshalJSON.
func (s *Status[E]) UnmarshalJSON(data []byte) error {
	var raw statusJSON[E]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Ok {
		if raw.Error != nil {
			return errors.New("status: both ok and error present")
		}
		*s = OK[E]()
		return nil
	}
	if raw.Error == nil {
		return errors.New("status: failed status without error payload")
	}
	*s = Fail(*raw.Error)
	return nil
}
