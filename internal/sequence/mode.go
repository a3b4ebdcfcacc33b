package sequence

import "strings"

// StartMode selects which special tokens precede numeric sequencing.
type StartMode int

const (
	Default         StartMode = iota // Numbers from the first position.
	ZeroStart                        // "0", then numbers.
	DoubleZeroStart                  // "_00", "0", then numbers.
	ExtendedStart                    // "__X", "_00", "0", then numbers.
)

// Special tokens, ordered so that each sorts before the numeric tokens.
const (
	TokenExtended   = "__X"
	TokenDoubleZero = "_00"
	TokenZero       = "0"
)

// ParseStartMode resolves the raw CLI value once. "x" is matched
// case-insensitively; "0" and "00" must match exactly. Anything else,
// including the empty string, selects Default.
func ParseStartMode(raw string) StartMode {
	switch {
	case strings.EqualFold(raw, "x"):
		return ExtendedStart
	case raw == "0":
		return ZeroStart
	case raw == "00":
		return DoubleZeroStart
	default:
		return Default
	}
}

// Reserved returns how many leading positions receive special tokens.
func (m StartMode) Reserved() int {
	return len(m.prefix())
}

// prefix lists the special tokens for the leading positions.
func (m StartMode) prefix() []string {
	switch m {
	case ZeroStart:
		return []string{TokenZero}
	case DoubleZeroStart:
		return []string{TokenDoubleZero, TokenZero}
	case ExtendedStart:
		return []string{TokenExtended, TokenDoubleZero, TokenZero}
	default:
		return nil
	}
}

func (m StartMode) String() string {
	switch m {
	case ZeroStart:
		return "zero"
	case DoubleZeroStart:
		return "double-zero"
	case ExtendedStart:
		return "extended"
	default:
		return "default"
	}
}
