package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"huectl/internal/color"
	"huectl/pkg/logging"
)

const (
	fileName = "palettes.yaml"

	// MaxColors bounds a saved palette.
	MaxColors = 16
	// MaxNameLength bounds a palette name, in characters.
	MaxNameLength = 64
)

var (
	ErrNotFound       = errors.New("palette not found")
	ErrInvalidName    = errors.New("invalid palette name")
	ErrInvalidPalette = errors.New("invalid palette")
)

// Palette is a named, saved sequence of canonical hex colors.
type Palette struct {
	ID        string    `yaml:"id" json:"id"`
	Name      string    `yaml:"name" json:"name"`
	Colors    []string  `yaml:"colors" json:"colors"`
	CreatedAt time.Time `yaml:"createdAt" json:"created_at"`
	UpdatedAt time.Time `yaml:"updatedAt" json:"updated_at"`
}

type document struct {
	Palettes []Palette `yaml:"palettes"`
}

// Store is a file-backed palette collection. It is safe for concurrent use
// within one process.
type Store struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// New returns a Store rooted at dir. The directory is created on first write.
func New(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("store directory is not configured")
	}
	return &Store{
		path: filepath.Join(dir, fileName),
		now:  time.Now,
	}, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Save creates or replaces the palette called name (case-insensitive).
// Colors may be in any format color.Parse accepts.
func (s *Store) Save(name string, colors []string) (Palette, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return Palette{}, err
	}
	canonical, err := canonicalize(colors)
	if err != nil {
		return Palette{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return Palette{}, err
	}

	now := s.now().UTC()
	saved := Palette{
		ID:        uuid.NewString(),
		Name:      name,
		Colors:    canonical,
		CreatedAt: now,
		UpdatedAt: now,
	}

	replaced := false
	for i, p := range doc.Palettes {
		if strings.EqualFold(p.Name, name) {
			saved.ID = p.ID
			saved.CreatedAt = p.CreatedAt
			doc.Palettes[i] = saved
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Palettes = append(doc.Palettes, saved)
	}

	if err := s.write(doc); err != nil {
		return Palette{}, err
	}
	logging.Debug("Store", "Saved palette %q (%d colors, replaced=%t)", name, len(canonical), replaced)
	return saved, nil
}

// List returns all palettes sorted by name.
func (s *Store) List() ([]Palette, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	palettes := doc.Palettes
	sort.Slice(palettes, func(i, j int) bool {
		return strings.ToLower(palettes[i].Name) < strings.ToLower(palettes[j].Name)
	})
	return palettes, nil
}

// Get looks a palette up by name (case-insensitive) or ID.
func (s *Store) Get(name string) (Palette, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return Palette{}, err
	}
	if i := find(doc.Palettes, name); i >= 0 {
		return doc.Palettes[i], nil
	}
	return Palette{}, notFound(name, doc.Palettes)
}

// Delete removes a palette by name or ID.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	i := find(doc.Palettes, name)
	if i < 0 {
		return notFound(name, doc.Palettes)
	}
	doc.Palettes = append(doc.Palettes[:i], doc.Palettes[i+1:]...)
	if err := s.write(doc); err != nil {
		return err
	}
	logging.Debug("Store", "Deleted palette %q", name)
	return nil
}

func (s *Store) read() (document, error) {
	var doc document
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return doc, nil
}

func (s *Store) write(doc document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to encode palettes: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), fileName+".*")
	if err != nil {
		return fmt.Errorf("failed to write palettes: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write palettes: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write palettes: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

func find(palettes []Palette, key string) int {
	key = strings.TrimSpace(key)
	for i, p := range palettes {
		if p.ID == key || strings.EqualFold(p.Name, key) {
			return i
		}
	}
	return -1
}

func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	case utf8.RuneCountInString(name) > MaxNameLength:
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidName, MaxNameLength)
	case strings.ContainsAny(name, "\n\r\t"):
		return fmt.Errorf("%w: name contains control characters", ErrInvalidName)
	}
	return nil
}

func canonicalize(colors []string) ([]string, error) {
	if len(colors) == 0 || len(colors) > MaxColors {
		return nil, fmt.Errorf("%w: need 1 to %d colors, got %d", ErrInvalidPalette, MaxColors, len(colors))
	}
	out := make([]string, len(colors))
	for i, c := range colors {
		hex, err := color.Parse(c)
		if err != nil {
			return nil, fmt.Errorf("%w: color %d: %w", ErrInvalidPalette, i, err)
		}
		out[i] = hex
	}
	return out, nil
}

// maxSuggestionDistance is the largest edit distance still offered as a
// suggestion.
const maxSuggestionDistance = 3

func notFound(name string, palettes []Palette) error {
	if suggestion := suggest(name, palettes); suggestion != "" {
		return fmt.Errorf("%w: %q (did you mean %q?)", ErrNotFound, name, suggestion)
	}
	return fmt.Errorf("%w: %q", ErrNotFound, name)
}

func suggest(name string, palettes []Palette) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, p := range palettes {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(p.Name))
		if d < bestDistance {
			best, bestDistance = p.Name, d
		}
	}
	return best
}
