package polingo

import (
	"fmt"
	"regexp"
)

// Vars holds named values substituted into `{name}` placeholders.
type Vars map[string]any

// placeholderPattern matches `{identifier}` where identifier is one or more
// word characters. Malformed placeholders (unmatched braces) never match and
// are left as literal text.
var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

// Interpolate replaces every `{name}` placeholder in template with the
// stringified value from vars. Placeholders whose name is not a key in vars
// are preserved verbatim, braces included. Numeric values, including zero,
// count as present. Interpolate never fails and never drops text.
func Interpolate(template string, vars Vars) string {
	if len(vars) == 0 {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]

		value, ok := vars[name]
		if !ok {
			return match
		}

		return stringify(value)
	})
}

func stringify(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
