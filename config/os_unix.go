//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// SafeFileName drops path separators and leading dots so name could be used
// as a single file name component.
func SafeFileName(name string) string {
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if sym == os.PathSeparator || sym == os.PathListSeparator {
			return -1
		}
		return sym
	}, name), ".")
	if len(out) == 0 {
		out = "_unnamed_"
	}
	return out
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
