// Package transcript lays transcripts out on disk.
package transcript

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/tscribe-cli/tscribe/filesystem"
	"github.com/tscribe-cli/tscribe/source"
)

// ErrFilesystem wraps every failure to create a directory or write a file.
var ErrFilesystem = errors.New("filesystem error")

// Separator sits between the header and the body.
var Separator = strings.Repeat("=", 50)

// Filename derives a file name from an episode title. Distinct titles may collide.
// Every Unicode space, including non-breaking ones, separates words.
func Filename(title string) string {
	kept := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) || r == '_' || r == '-' {
			return r
		}
		return -1
	}, title)
	return strings.Join(strings.Fields(kept), "_") + ".txt"
}

// SeasonDirname derives a directory name from a season label.
func SeasonDirname(label string) string {
	return strings.NewReplacer(" ", "_", "(", "", ")", "").Replace(label)
}

// Path returns where the transcript of episode belongs under root.
func Path(root string, episode *source.Episode) string {
	return filepath.Join(root, SeasonDirname(episode.SeasonLabel()), Filename(episode.Title))
}

// Format renders the file contents for an episode.
func Format(episode *source.Episode, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Episode: %s\n", episode.Title)
	fmt.Fprintf(&b, "Source: %s\n", episode.URL)
	b.WriteString(Separator)
	b.WriteString("\n\n")
	b.WriteString(body)
	return b.String()
}

// Write stores body under dir, creating dir when needed, and returns the path written.
// An existing file with the same name is overwritten.
func Write(dir string, episode *source.Episode, body string) (string, error) {
	fs := filesystem.API()
	if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("%w: create %s: %w", ErrFilesystem, dir, err)
	}

	path := filepath.Join(dir, Filename(episode.Title))
	if err := fs.WriteFile(path, []byte(Format(episode, body)), 0o644); err != nil {
		return "", fmt.Errorf("%w: write %s: %w", ErrFilesystem, path, err)
	}

	return path, nil
}
