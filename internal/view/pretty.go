package view

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PrettyJSON renders v as indented JSON without HTML escaping. Values that
// cannot be encoded are shown as {"unserializable": "<value>"}.
func PrettyJSON(v any) string {
	out, err := encode(v)
	if err != nil {
		out, _ = encode(map[string]string{"unserializable": fmt.Sprintf("%v", v)})
	}
	return out
}

func encode(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
