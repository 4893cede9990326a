package nbt

import (
	"fmt"
	"strings"
)

// DefaultIndent is the indentation string PrettyPrint uses when a caller
// doesn't specify one explicitly (via File.PrettyPrint). It is a
// process-wide default read at pretty-print time, mutable for tests —
// callers that need per-call control should pass their own indent to the
// PrettyPrint method instead of mutating this.
var DefaultIndent = "    "

func tagLabel(t Tag) string {
	name, named := t.Name()
	if named {
		return fmt.Sprintf("TAG_%s(%q)", t.Type(), name)
	}
	return fmt.Sprintf("TAG_%s(None)", t.Type())
}

func prettyScalar(indent string, level int, t Tag, body string) string {
	return strings.Repeat(indent, level) + tagLabel(t) + ": " + body
}

func prettyArray(indent string, level int, t Tag, length int, unit string) string {
	return fmt.Sprintf("%s%s: [%d %s]", strings.Repeat(indent, level), tagLabel(t), length, unit)
}

func prettyContainer(indent string, level int, t Tag, childCount int, noun string) string {
	return fmt.Sprintf("%s%s: %d %s", strings.Repeat(indent, level), tagLabel(t), childCount, noun)
}
