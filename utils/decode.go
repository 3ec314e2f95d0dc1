package utils

import (
	"bytes"
	"encoding/json"
)

// JsonDecode converts loosely typed config values (maps from yaml) into out.
// Unknown fields are rejected.
func JsonDecode(in any, out any) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	return decoder.Decode(out)
}
