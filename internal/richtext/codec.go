package richtext

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrStyledFormat is returned when a styled blob cannot be decoded.
var ErrStyledFormat = errors.New("unsupported styled format")

const styledVersion = 1

type styledPayload struct {
	Version int   `json:"v"`
	Runs    []Run `json:"runs"`
}

// MarshalStyled encodes d with its attributes for round-trip storage.
func MarshalStyled(d Document) ([]byte, error) {
	runs := d.Runs()
	if runs == nil {
		runs = []Run{}
	}
	return json.Marshal(styledPayload{Version: styledVersion, Runs: runs})
}

// UnmarshalStyled decodes a blob produced by MarshalStyled.
func UnmarshalStyled(data []byte) (Document, error) {
	if len(data) == 0 {
		return Document{}, fmt.Errorf("%w: empty", ErrStyledFormat)
	}
	var p styledPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrStyledFormat, err)
	}
	if p.Version != styledVersion {
		return Document{}, fmt.Errorf("%w: version %d", ErrStyledFormat, p.Version)
	}
	return FromRuns(p.Runs), nil
}
