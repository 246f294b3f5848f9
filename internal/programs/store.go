// Package programs reads saved block programs from the programs directory.
package programs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"pondeditor/internal/blocks"
)

const (
	// DirEnv is the env var override for the programs directory (for testing).
	DirEnv = "PONDEDITOR_PROGRAMS_DIR"
	// DefaultBase is the default programs directory under $HOME.
	DefaultBase = ".pondeditor/programs"

	ext = ".xml"
)

// ErrNotFound is returned when no program file exists for a name.
var ErrNotFound = errors.New("program not found")

// Store reads block programs stored as Blockly XML.
// Layout: ~/.pondeditor/programs/<name>.xml
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at dir, or at $PONDEDITOR_PROGRAMS_DIR,
// or at the user's home + DefaultBase.
func NewStore(dir string) (*Store, error) {
	base := dir
	if base == "" {
		base = os.Getenv(DirEnv)
	}
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, DefaultBase)
	}
	return &Store{baseDir: base}, nil
}

// BaseDir returns the programs directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Path returns the file path for a program by name.
func (s *Store) Path(name string) string {
	// Normalize: lowercase, replace spaces with hyphens
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	return filepath.Join(s.baseDir, normalized+ext)
}

// Load reads and decodes the named program.
func (s *Store) Load(name string) (*blocks.Program, error) {
	return LoadFile(s.Path(name))
}

// List returns the stored program names, sorted. A missing directory
// yields no names.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(names)
	return names, nil
}

// LoadFile reads and decodes a program file at path.
func LoadFile(path string) (*blocks.Program, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read program: %w", err)
	}
	p, err := blocks.UnmarshalXML(b)
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", filepath.Base(path), err)
	}
	return p, nil
}
