package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var errNoInputs = errors.New("no song files given; pass file arguments or --glob")

// resolveInputs returns the song files named by args plus every match of
// pattern, sorted and without duplicates.
func resolveInputs(args []string, pattern string) ([]string, error) {
	files := slices.Clone(args)

	if pattern != "" {
		if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
			return nil, fmt.Errorf("invalid glob %q", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob %q matched no files", pattern)
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return nil, errNoInputs
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

// outputPath places the export of song with extension ext in dir, or next
// to the song when dir is empty.
func outputPath(song, dir, ext string) string {
	base := strings.TrimSuffix(filepath.Base(song), filepath.Ext(song)) + ext
	if dir == "" {
		return filepath.Join(filepath.Dir(song), base)
	}
	return filepath.Join(dir, base)
}
