package bisect

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AllowedFormats lists the accepted value formats for sequence input.
var AllowedFormats = []string{"comma", "newline", "space", "json"}

func checkInStringSlice(value string, slice []string) bool {
	for _, f := range slice {
		if value == f {
			return true
		}
	}
	return false
}

// CheckFormats validates a --format selection. The separator formats may be
// combined freely; "json" stands alone.
func CheckFormats(formats []string) error {
	for _, format := range formats {
		if !checkInStringSlice(format, AllowedFormats) {
			return fmt.Errorf("invalid format: %s, allowed formats are: %v", format, AllowedFormats)
		}
	}
	if checkInStringSlice("json", formats) && len(formats) > 1 {
		return fmt.Errorf("format 'json' cannot be combined with other formats")
	}
	return nil
}

func splitAndTrim(s string, seps string) []string {
	isSep := func(r rune) bool { return strings.ContainsRune(seps, r) }
	parts := strings.FieldsFunc(s, isSep) // empty pieces are dropped
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// ParseValues splits the raw inputs into individual sequence values
// according to formats. With no formats the inputs are taken verbatim.
// The "json" format decodes each input as a JSON array (or single scalar)
// of strings or numbers; the separator formats split on the corresponding
// characters and may be combined.
func ParseValues(formats []string, rawValues []string) ([]string, error) {
	if rawValues == nil {
		return nil, nil
	}
	if len(rawValues) == 0 {
		return []string{}, nil
	}
	if len(formats) == 0 {
		return rawValues, nil
	}
	if err := CheckFormats(formats); err != nil {
		return nil, err
	}
	if checkInStringSlice("json", formats) {
		var result []string
		for _, raw := range rawValues {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			vals, err := decodeJSONValues(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid json value %s: %w", raw, err)
			}
			result = append(result, vals...)
		}
		return result, nil
	}

	sepsBuilder := strings.Builder{}
	for _, format := range formats {
		switch format {
		case "comma":
			sepsBuilder.WriteString(",")
		case "newline":
			sepsBuilder.WriteString("\r\n")
		case "space":
			sepsBuilder.WriteString(" \t")
		}
	}
	seps := sepsBuilder.String()
	var result []string
	for _, raw := range rawValues {
		result = append(result, splitAndTrim(raw, seps)...)
	}
	return result, nil
}

// decodeJSONValues decodes raw as a JSON array of strings or numbers, or a
// single such scalar. Numbers keep their literal text so the element
// parser decides precision later.
func decodeJSONValues(raw string) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var arr []any
	if err := dec.Decode(&arr); err == nil {
		return jsonScalarsToStrings(arr)
	}

	dec = json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var single any
	if err := dec.Decode(&single); err != nil {
		return nil, err
	}
	return jsonScalarsToStrings([]any{single})
}

func jsonScalarsToStrings(vals []any) ([]string, error) {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		switch t := v.(type) {
		case string:
			out = append(out, t)
		case json.Number:
			out = append(out, t.String())
		default:
			return nil, fmt.Errorf("unsupported element %v, only strings and numbers are allowed", v)
		}
	}
	return out, nil
}
