package handler

import (
	"encoding/json"
)

// EncodeTags serializes a tag list the way the record store keeps it:
// a JSON array string, never null.
func EncodeTags(tags []string) string {
	if tags == nil {
		tags = []string{}
	}

	out, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}

	return string(out)
}
