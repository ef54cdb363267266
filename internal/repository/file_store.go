package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the on-disk encoding of a snapshot.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported format %q (want json or yaml)", s)
}

// FormatForPath guesses the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Encode writes c to w in the given format.
func Encode(w io.Writer, c *Collection, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	}
}

// Decode reads a collection from r. Missing enums get their defaults and
// projects are reconciled so complex budgets and deadlines match their tasks.
func Decode(r io.Reader, f Format) (*Collection, error) {
	var c Collection
	switch f {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	}
	for i := range c.Projects {
		c.Projects[i].FillDefaults()
		c.Projects[i].Reconcile()
	}
	return &c, nil
}

// FileStore keeps the whole collection in a single JSON or YAML file.
type FileStore struct {
	path   string
	format Format
}

func NewFileStore(path string, f Format) *FileStore {
	return &FileStore{path: path, format: f}
}

// Load returns an empty collection when the file does not exist yet.
func (s *FileStore) Load(_ context.Context) (*Collection, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &Collection{Version: CollectionVersion}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return Decode(bytes.NewReader(data), s.format)
}

// Save writes to a temporary sibling and renames it over the target.
func (s *FileStore) Save(_ context.Context, c *Collection) error {
	if c.Version == 0 {
		c.Version = CollectionVersion
	}
	var buf bytes.Buffer
	if err := Encode(&buf, c, s.format); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
