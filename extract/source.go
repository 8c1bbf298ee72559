package extract

import (
	"regexp"
	"strconv"
)

// quoted matches one double-quoted string literal including escapes.
const quoted = `"((?:[^"\\]|\\.)*)"`

// Call patterns for the four lookup methods. TN and TNP capture the plural
// msgid as well; TP and TNP capture the leading context argument.
var (
	tPattern   = regexp.MustCompile(`\bT\(\s*` + quoted)
	tpPattern  = regexp.MustCompile(`\bTP\(\s*` + quoted + `\s*,\s*` + quoted)
	tnPattern  = regexp.MustCompile(`\bTN\(\s*` + quoted + `\s*,\s*` + quoted)
	tnpPattern = regexp.MustCompile(`\bTNP\(\s*` + quoted + `\s*,\s*` + quoted + `\s*,\s*` + quoted)
)

// ScanSource scans source text for translation calls (T, TP, TN, TNP) and
// returns the messages they reference, with file:line references. The scan
// is purely lexical; only calls whose message arguments are string literals
// are found, which is also what keeps extracted msgids stable.
func ScanSource(file string, src []byte) []Entry {
	text := string(src)

	var entries []Entry

	for _, m := range tPattern.FindAllStringSubmatchIndex(text, -1) {
		entries = append(entries, Entry{
			MsgID: unquote(text, m, 1),
			Refs:  []Ref{{File: file, Line: lineOf(text, m[0])}},
		})
	}

	for _, m := range tpPattern.FindAllStringSubmatchIndex(text, -1) {
		entries = append(entries, Entry{
			MsgCtxt: unquote(text, m, 1),
			MsgID:   unquote(text, m, 2),
			Refs:    []Ref{{File: file, Line: lineOf(text, m[0])}},
		})
	}

	for _, m := range tnPattern.FindAllStringSubmatchIndex(text, -1) {
		entries = append(entries, Entry{
			MsgID:       unquote(text, m, 1),
			MsgIDPlural: unquote(text, m, 2),
			Refs:        []Ref{{File: file, Line: lineOf(text, m[0])}},
		})
	}

	for _, m := range tnpPattern.FindAllStringSubmatchIndex(text, -1) {
		entries = append(entries, Entry{
			MsgCtxt:     unquote(text, m, 1),
			MsgID:       unquote(text, m, 2),
			MsgIDPlural: unquote(text, m, 3),
			Refs:        []Ref{{File: file, Line: lineOf(text, m[0])}},
		})
	}

	return entries
}

// unquote resolves capture group n of a submatch index set, undoing string
// escapes. Falls back to the raw text when the literal does not unquote.
func unquote(text string, m []int, n int) string {
	raw := text[m[2*n]:m[2*n+1]]

	s, err := strconv.Unquote(`"` + raw + `"`)
	if err != nil {
		return raw
	}

	return s
}

// lineOf returns the 1-based line number of a byte offset.
func lineOf(text string, offset int) int {
	line := 1
	for _, c := range text[:offset] {
		if c == '\n' {
			line++
		}
	}
	return line
}
