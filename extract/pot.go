package extract

import (
	"fmt"
	"io"
	"sort"
)

// WritePOT emits entries as a gettext POT template. Entries are written in
// Set order (sorted); references are deduplicated and sorted per entry.
func WritePOT(w io.Writer, entries []Entry) error {
	if _, err := fmt.Fprint(w, potHeader); err != nil {
		return err
	}

	for i, entry := range entries {
		if err := writeRefs(w, entry.Refs); err != nil {
			return err
		}

		if entry.MsgCtxt != "" {
			if _, err := fmt.Fprintf(w, "msgctxt %q\n", entry.MsgCtxt); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "msgid %q\n", entry.MsgID); err != nil {
			return err
		}

		if entry.MsgIDPlural != "" {
			if _, err := fmt.Fprintf(w, "msgid_plural %q\nmsgstr[0] \"\"\nmsgstr[1] \"\"\n", entry.MsgIDPlural); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprint(w, "msgstr \"\"\n"); err != nil {
				return err
			}
		}

		// Separating blank line, but not after the very last entry.
		if i < len(entries)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}

	return nil
}

const potHeader = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Plural-Forms: nplurals=2; plural=(n != 1);\n"

`

func writeRefs(w io.Writer, refs []Ref) error {
	if len(refs) == 0 {
		return nil
	}

	sorted := make([]Ref, len(refs))
	copy(sorted, refs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].File != sorted[j].File {
			return sorted[i].File < sorted[j].File
		}
		return sorted[i].Line < sorted[j].Line
	})

	if _, err := fmt.Fprint(w, "#:"); err != nil {
		return err
	}

	lastFile, lastLine := "", -1
	for _, ref := range sorted {
		if ref.File == lastFile && ref.Line == lastLine {
			continue
		}

		lastFile, lastLine = ref.File, ref.Line

		if ref.Line > 0 {
			if _, err := fmt.Fprintf(w, " %s:%d", ref.File, ref.Line); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w, " %s", ref.File); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w)
	return err
}
