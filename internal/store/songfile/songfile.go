// Package songfile persists songs to disk. The format follows the file
// extension: .json is JSON, .yaml, .yml or no extension is YAML.
package songfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/leadsheet/internal/core/chord"
	"github.com/hay-kot/leadsheet/internal/core/song"
)

// ErrUnsupportedFormat is returned for paths whose extension is neither
// JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported song format")

// Format is an on-disk encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding for path.
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml", "":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Encode writes s to w.
func Encode(w io.Writer, f Format, s *song.Song) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Decode reads a song from r and validates it.
func Decode(r io.Reader, f Format) (*song.Song, error) {
	var s song.Song

	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&s); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	for i := range s.Sections {
		for j := range s.Sections[i].Bars {
			if s.Sections[i].Bars[j].Slots == nil {
				s.Sections[i].Bars[j].Slots = map[int]chord.Chord{}
			}
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid song: %w", err)
	}

	return &s, nil
}

// Load reads the song at path. A missing file keeps fs.ErrNotExist
// reachable through the returned error.
func Load(path string) (*song.Song, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read song: %w", err)
	}

	s, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path atomically, creating parent directories.
func Save(path string, s *song.Song) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := Encode(&buf, f, s); err != nil {
		return fmt.Errorf("encode song: %w", err)
	}

	return writeAtomic(path, buf.Bytes())
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write song: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write song: %w", err)
	}
	return nil
}

// Exists reports whether a file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
