package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/leadsheet/internal/core/song"
)

// SaveHTML writes the printable chart of s to path.
func SaveHTML(path string, s *song.Song) error {
	page, err := HTML(s)
	if err != nil {
		return err
	}
	return writeFile(path, []byte(page))
}

// SaveMIDI writes s to path as a Standard MIDI File.
func SaveMIDI(path string, s *song.Song, opts MIDIOptions) error {
	var buf bytes.Buffer
	if err := WriteMIDI(&buf, s, opts); err != nil {
		return err
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
