// Package util holds small helpers shared by the CLI and the pipeline.
package util

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/tscribe-cli/tscribe/filesystem"
	"golang.org/x/exp/constraints"
	"golang.org/x/term"
)

// Quantify returns "1 transcript" or "3 transcripts".
func Quantify(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, lo.Ternary(count == 1, singular, plural))
}

// Capitalize upper-cases the first rune.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// PadRight pads s with spaces to width runes. Longer strings are returned unchanged.
func PadRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// PrintErasable writes msg on the current line of w and returns a func that blanks it again.
func PrintErasable(w io.Writer, msg string) (eraser func()) {
	fmt.Fprintf(w, "\r%s", msg)
	return func() {
		fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", utf8.RuneCountInString(msg)))
	}
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Ignore calls f and drops its error. Meant for deferred Close calls.
func Ignore(f func() error) {
	_ = f()
}

// Max returns the largest item, or the zero value when there are none.
func Max[T constraints.Ordered](items ...T) T {
	var max T
	for i, item := range items {
		if i == 0 || item > max {
			max = item
		}
	}
	return max
}

// Delete removes path through the filesystem backend, recursively for directories.
func Delete(path string) error {
	fs := filesystem.API()
	if isDir, err := fs.IsDir(path); err != nil {
		return err
	} else if isDir {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}
