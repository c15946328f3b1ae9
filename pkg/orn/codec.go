package orn

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// decodeJSONStrict is the probe behind the generated untagged decoders. A
// case accepts a payload only if it decodes completely, with unknown object
// fields rejected; plain json.Unmarshal would let a struct case swallow
// payloads meant for a later case.
func decodeJSONStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("orn: trailing data after value")
	}
	return nil
}
