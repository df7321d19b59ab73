package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wayfinder-nav/wayfinder/internal/wferr"
)

// Section renders a section header with a separator line.
func Section(title string) string {
	return Header(title) + "\n" + Dim(strings.Repeat("─", len([]rune(title))))
}

// FormatKeyValue formats a key-value pair.
func FormatKeyValue(key, value string) string {
	return Dim(key+": ") + value
}

// FormatCount formats a count with singular/plural form.
func FormatCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Indent indents all non-empty lines by the given number of spaces.
func Indent(content string, spaces int) string {
	indent := strings.Repeat(" ", spaces)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

// FormatError renders an error for terminal display. Structured errors get
// their code, context, notes, and help suggestions laid out on separate
// lines; plain errors render as a single error line.
func FormatError(err error) string {
	werr, ok := err.(*wferr.Error)
	if !ok {
		return Error(err.Error())
	}

	var b strings.Builder
	b.WriteString(Error(fmt.Sprintf("[%s] %s", werr.GetCode(), werr.GetMessage())))

	ctx := werr.GetContext()
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		if k == "notes" || k == "helps" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("\n  " + FormatKeyValue(k, fmt.Sprintf("%v", ctx[k])))
	}

	if cause := werr.GetCause(); cause != nil {
		b.WriteString("\n  " + FormatKeyValue("cause", cause.Error()))
	}
	for _, note := range werr.Notes() {
		b.WriteString("\n  " + Dim("note: ") + note)
	}
	for _, help := range werr.Helps() {
		b.WriteString("\n  " + Warning("help: "+help))
	}

	return b.String()
}
