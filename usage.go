package flagset

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

const usageIndent = "    "

// Usage writes line-wrapped help text for the registered flags to w.
// Flags are listed in name order as "--name / -c" followed by the
// description and the default value rendered as text; flags without a
// description or marked hidden are skipped. Descriptions wrap at word
// boundaries so each line fits within width columns.
func (s *FlagSet) Usage(w io.Writer, width int) error {
	names := make([]string, 0, len(s.flags))
	for name := range s.flags {
		names = append(names, name)
	}
	sort.Strings(names)

	maxDescWidth := width - len(usageIndent)

	first := true
	for _, name := range names {
		f := s.flags[name]
		if f.description == "" || f.hidden {
			continue
		}

		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false

		header := "--" + f.name
		if c, ok := f.Shorthand(); ok {
			header += " / -" + string(c)
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}

		desc := fmt.Sprintf("%s (default: %s)", f.description, f.def)
		for _, line := range wrapText(desc, maxDescWidth) {
			if _, err := fmt.Fprintf(w, "%s%s\n", usageIndent, line); err != nil {
				return err
			}
		}
	}
	return nil
}

// UsageString renders Usage into a string.
func (s *FlagSet) UsageString(width int) string {
	var b strings.Builder
	if err := s.Usage(&b, width); err != nil {
		panic(fmt.Sprintf("flagset: failed to render usage: %v", err))
	}
	return b.String()
}

// wrapText greedily wraps text at word boundaries. Words longer than
// width occupy a line of their own.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
