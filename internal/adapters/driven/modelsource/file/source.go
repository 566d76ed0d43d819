// Package file provides the file-backed model source.
//
// The external model provider leaves the event model as a JSON or YAML
// document on disk; this adapter decodes it into a domain.ModelSnapshot.
// Structural problems surface as errors wrapping domain.ErrMalformedModel
// so rebuilds can fail fast without touching the published artifacts.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/emap-labs/emap-cli/internal/core/domain"
	"github.com/emap-labs/emap-cli/internal/core/ports/driven"
	"github.com/emap-labs/emap-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.ModelSource = (*Source)(nil)

// Source loads model snapshots from a JSON or YAML file.
type Source struct {
	path string
}

// NewSource creates a file source for the given path. The extension decides
// the decoder: .json, .yaml or .yml.
func NewSource(path string) (*Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return &Source{path: path}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported model file extension %q",
			domain.ErrInvalidInput, filepath.Ext(path))
	}
}

// Describe returns the backing file path.
func (s *Source) Describe() string {
	return s.path
}

// Path returns the backing file path for watchers.
func (s *Source) Path() string {
	return s.path
}

// Load reads and decodes the snapshot. Read failures wrap
// domain.ErrModelSourceUnavailable; decode failures wrap
// domain.ErrMalformedModel.
func (s *Source) Load(_ context.Context) (*domain.ModelSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrModelSourceUnavailable, s.path, err)
	}

	logger.Debug("Loading model from %s (%d bytes)", s.path, len(data))

	if strings.ToLower(filepath.Ext(s.path)) != ".json" {
		data, err = yamlToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedModel, s.path, err)
		}
	}

	var snapshot domain.ModelSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedModel, s.path, err)
	}

	return &snapshot, nil
}

// yamlToJSON re-encodes a YAML document as JSON so the snapshot decodes
// through one permissive path. Keeps the domain package free of YAML.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return out, nil
}
