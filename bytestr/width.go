package bytestr

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// Width returns the display width of s in terminal cells, see StringWidth.
func Width(s *Str, ctx *uax11.Context) int {
	return StringWidth(s.String(), ctx)
}

// StringWidth returns the display width of s in terminal cells. Printable
// ASCII counts one cell per byte; every other run of text is measured by
// UAX#11 over grapheme clusters. A nil context selects uax11.LatinContext.
func StringWidth(s string, ctx *uax11.Context) int {
	width := 0
	for len(s) > 0 {
		n := asciiPrefix(s)
		width += n
		s = s[n:]
		if len(s) == 0 {
			break
		}
		n = strings.IndexFunc(s, isPrintableASCII)
		if n < 0 {
			n = len(s)
		}
		width += uaxWidth(s[:n], ctx)
		s = s[n:]
	}
	return width
}

func isPrintableASCII(r rune) bool {
	return r >= 0x20 && r < 0x7f
}

func asciiPrefix(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] >= 0x7f {
			return i
		}
	}
	return len(s)
}

func uaxWidth(s string, ctx *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}
