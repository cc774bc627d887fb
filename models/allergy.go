package models

import (
	"encoding/json"
	"strings"
)

// AllergyList accepts either a JSON array of strings or a single
// comma-separated string ("nuts, dairy"), the two shapes callers send.
type AllergyList []string

func (a *AllergyList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = list
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "none") {
		*a = nil
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	*a = out
	return nil
}
