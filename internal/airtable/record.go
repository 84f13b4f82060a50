package airtable

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is a raw Airtable row. It does not leave the repository layer.
type Record struct {
	ID          string         `json:"id"`
	Fields      map[string]any `json:"fields"`
	CreatedTime string         `json:"createdTime"`
}

// String returns a text field. Lookup and link fields yield their first element.
func (r Record) String(field string) string {
	switch v := r.Fields[field].(type) {
	case string:
		return v
	case []any:
		if len(v) == 0 {
			return ""
		}
		if s, ok := v[0].(string); ok {
			return s
		}
		return fmt.Sprint(v[0])
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Strings returns a multi-value field such as a link or multi-select.
func (r Record) Strings(field string) []string {
	switch v := r.Fields[field].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		return []string{v}
	default:
		return nil
	}
}

// Float returns a numeric field, or nil when it is empty or not a number.
func (r Record) Float(field string) *float64 {
	switch v := r.Fields[field].(type) {
	case float64:
		return &v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// Time parses a date or date-time field.
func (r Record) Time(field string) (time.Time, bool) {
	return ParseTime(r.String(field))
}

// Created returns the record creation time.
func (r Record) Created() time.Time {
	t, _ := ParseTime(r.CreatedTime)
	return t
}

// ParseTime accepts Airtable's ISO date-times and bare dates.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Quote renders s as a formula string literal.
func Quote(s string) string {
	return `"` + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`) + `"`
}

// RecordIDFormula matches any of the given record ids.
func RecordIDFormula(ids []string) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = "RECORD_ID()=" + Quote(id)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "OR(" + strings.Join(parts, ",") + ")"
}

// AnyOfFormula matches records whose field equals one of values.
func AnyOfFormula(field string, values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = "{" + field + "}=" + Quote(v)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "OR(" + strings.Join(parts, ",") + ")"
}
