package action

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// MarshalJSON encodes {type, payload?, meta?, error?}. Absent fields are
// omitted and a present nil payload encodes as null.
func (a Action) MarshalJSON() ([]byte, error) {
	data, err := sjson.SetBytes([]byte(`{}`), "type", a.Type)
	if err != nil {
		return nil, fmt.Errorf("encode type: %w", err)
	}

	if a.HasPayload() {
		if data, err = sjson.SetBytes(data, "payload", a.Payload); err != nil {
			return nil, fmt.Errorf("encode payload of %s: %w", a.Type, err)
		}
	}

	if a.HasMeta() {
		if data, err = sjson.SetBytes(data, "meta", a.Meta); err != nil {
			return nil, fmt.Errorf("encode meta of %s: %w", a.Type, err)
		}
	}

	if a.Error {
		if data, err = sjson.SetBytes(data, "error", true); err != nil {
			return nil, fmt.Errorf("encode error flag of %s: %w", a.Type, err)
		}
	}

	return data, nil
}

// UnmarshalJSON decodes an action, restoring payload and meta presence from
// key existence. Decoded values use the generic JSON shapes (float64,
// string, bool, []any, map[string]any).
func (a *Action) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("decode action: invalid json")
	}

	typ := gjson.GetBytes(data, "type")
	if typ.Type != gjson.String || typ.Str == "" {
		return fmt.Errorf("decode action: %w", ErrEmptyType)
	}

	decoded := Of(typ.Str)

	if payload := gjson.GetBytes(data, "payload"); payload.Exists() {
		decoded = decoded.WithPayload(payload.Value())
	}

	if meta := gjson.GetBytes(data, "meta"); meta.Exists() {
		decoded = decoded.WithMeta(meta.Value())
	}

	decoded.Error = gjson.GetBytes(data, "error").Bool()

	*a = decoded
	return nil
}
