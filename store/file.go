package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	leitner "github.com/dra1n/leitner-box"
)

var (
	// ErrNotFound is returned by Load when the snapshot file does not exist.
	// It wraps os.ErrNotExist.
	ErrNotFound = fmt.Errorf("store: box not found: %w", os.ErrNotExist)

	// ErrUnsupportedFormat is returned when the file extension names no known format.
	ErrUnsupportedFormat = errors.New("store: unsupported file format")
)

// Format names a snapshot encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFor returns the format implied by the extension of path.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

func (f Format) marshal(v any) ([]byte, error) {
	if f == JSON {
		return json.MarshalIndent(v, "", "  ")
	}
	return yaml.Marshal(v)
}

func (f Format) unmarshal(data []byte, v any) error {
	if f == JSON {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// File stores a box of cards of type C in a single snapshot file.
// A File is safe for concurrent use; Save and Load are serialized.
type File[C any] struct {
	mu     sync.Mutex
	path   string
	format Format
	logger *zap.Logger
}

// NewFile creates a File for path. The format is chosen from the extension.
// A nil logger is replaced with zap.NewNop().
func NewFile[C any](path string, logger *zap.Logger) (*File[C], error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &File[C]{
		path:   path,
		format: format,
		logger: logger.With(zap.String("path", path), zap.String("format", string(format))),
	}, nil
}

// Path returns the snapshot file path.
func (s *File[C]) Path() string { return s.path }

// Exists reports whether the snapshot file exists.
func (s *File[C]) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads and decodes the snapshot. A missing file returns ErrNotFound;
// a snapshot that does not describe a valid box returns the leitner
// configuration error.
func (s *File[C]) Load(ctx context.Context) (*leitner.Box[C], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	box := new(leitner.Box[C])
	if err := s.format.unmarshal(data, box); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	s.logger.Debug("box loaded",
		zap.Int("cards", box.Len()),
		zap.Int("repetitions", box.Repetitions()),
		zap.Int("current_lesson", box.CurrentLesson()))
	return box, nil
}

// Save encodes box and replaces the snapshot file. The data is written to
// a temporary file in the same directory and renamed into place, so a
// failed save leaves the previous snapshot intact.
func (s *File[C]) Save(ctx context.Context, box *leitner.Box[C]) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if box == nil {
		return errors.New("store: nil box")
	}

	data, err := s.format.marshal(box)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", s.path, err)
	}

	s.logger.Debug("box saved", zap.Int("cards", box.Len()), zap.Int("bytes", len(data)))
	return nil
}
