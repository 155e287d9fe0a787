package helpers

import (
	"encoding/json"
)

// MarshalUnmarshal copies a value through its JSON form.
func MarshalUnmarshal(in interface{}, out interface{}) error {

	b, err := json.Marshal(in)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, out)
}

func TruncateString(text string, max int, tail string) string {

	if len(text) <= max {
		return text
	}
	return text[0:max] + tail
}
