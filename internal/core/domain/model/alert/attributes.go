package alert

import (
	"fmt"
	"strings"
	"unicode"

	"opsworker/internal/pkg/errs"
)

// ParseAttributes splits s into key/value pairs. Pairs are separated by
// commas or whitespace, keys and values by '='. A value may be wrapped in
// double quotes to contain separators. Later keys overwrite earlier ones.
func ParseAttributes(s string) (map[string]string, error) {
	attrs := make(map[string]string)
	for _, token := range splitOutsideQuotes(s) {
		key, value, ok := strings.Cut(token, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errs.NewValueIsInvalidErrorWithCause("attributes",
				fmt.Errorf("%q is not a key=value pair", token))
		}
		attrs[key] = unquote(strings.TrimSpace(value))
	}
	return attrs, nil
}

func splitOutsideQuotes(s string) []string {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
	)
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			current.WriteRune(r)
		case !quoted && (r == ',' || unicode.IsSpace(r)):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

func unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		return v[1 : len(v)-1]
	}
	return v
}
