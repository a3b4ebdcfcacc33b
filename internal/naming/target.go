package naming

import (
	"regexp"
	"strings"
)

// TargetName assembles the renamed file's base name. The suffix is appended
// verbatim and may contain any characters.
func TargetName(dirBase, token, suffix, ext string) string {
	var b strings.Builder
	b.Grow(len(dirBase) + 1 + len(token) + len(suffix) + len(ext))
	b.WriteString(dirBase)
	b.WriteByte('_')
	b.WriteString(token)
	b.WriteString(suffix)
	b.WriteString(ext)
	return b.String()
}

// ProcessedPattern matches names that start with "<dirBase>_" followed by a
// digit, i.e. the numeric output of an earlier run. Special tokens such as
// "_00" or "__X" do not match.
func ProcessedPattern(dirBase string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(dirBase) + `_[0-9]`)
}

// IsProcessedName reports whether name looks like numeric output of an
// earlier run in a directory named dirBase.
func IsProcessedName(dirBase, name string) bool {
	return ProcessedPattern(dirBase).MatchString(name)
}
