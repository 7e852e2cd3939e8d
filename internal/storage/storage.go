package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/isfdb-awards/internal/award"
)

// Stdio is the path that selects stdin/stdout
const Stdio = "-"

// ExpandPath expands a leading "~/" to the home directory
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// DecodeWorks reads a JSON array of works
func DecodeWorks(r io.Reader) ([]award.Work, error) {
	var works []award.Work
	if err := json.NewDecoder(r).Decode(&works); err != nil {
		return nil, fmt.Errorf("parsing works: %w", err)
	}
	for i := range works {
		if works[i].Awards == nil {
			works[i].Awards = make([]award.Award, 0)
		}
	}
	return works, nil
}

// EncodeWorks writes works as a JSON array
func EncodeWorks(w io.Writer, works []award.Work, pretty bool) error {
	if works == nil {
		works = make([]award.Work, 0)
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(works); err != nil {
		return fmt.Errorf("encoding works: %w", err)
	}
	return nil
}

// LoadWorks reads the artifact at path, or stdin for "-".
func LoadWorks(path string) ([]award.Work, error) {
	if path == Stdio {
		return DecodeWorks(os.Stdin)
	}

	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening works file: %w", err)
	}
	defer f.Close()

	return DecodeWorks(f)
}

// SaveWorks writes the artifact to path, or stdout for "-". Parent
// directories are created as needed.
func SaveWorks(path string, works []award.Work, pretty bool) error {
	if path == Stdio {
		return EncodeWorks(os.Stdout, works, pretty)
	}

	path, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating works file: %w", err)
	}
	if err := EncodeWorks(f, works, pretty); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing works file: %w", err)
	}
	return nil
}
