package protocol

import (
	"encoding/json"
	"fmt"
)

const (
	StatusOK   = "OK"
	StatusFail = "FAIL"
)

// Envelope is the wrapper every EMS response is expected to follow.
type Envelope struct {
	Status      *string         `json:"status"`
	Data        json.RawMessage `json:"data"`
	Description string          `json:"description"`
}

// Decode unwraps a raw response body. An OK envelope yields its data
// untouched, a FAIL envelope yields a *RemoteError and anything else a
// *ParseError.
func Decode(raw []byte) (json.RawMessage, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &ParseError{Body: raw, Err: err}
	}
	if env.Status == nil {
		return nil, &ParseError{Body: raw, Err: fmt.Errorf("missing status field")}
	}

	switch *env.Status {
	case StatusOK:
		if env.Data == nil {
			return json.RawMessage("null"), nil
		}
		return env.Data, nil
	case StatusFail:
		return nil, &RemoteError{Description: env.Description}
	default:
		return nil, &ParseError{Body: raw, Err: fmt.Errorf("unknown status %q", *env.Status)}
	}
}

// DecodeInto decodes the payload of an OK envelope into v.
func DecodeInto(raw []byte, v interface{}) error {
	data, err := Decode(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &ParseError{Body: raw, Err: err}
	}
	return nil
}
