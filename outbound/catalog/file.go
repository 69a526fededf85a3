package catalog

import (
	"context"
	"event-map/model"
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

type catalogFile struct {
	Events []model.Event `yaml:"events"`
}

// FileSource reads the catalog from a YAML document with a top-level events list.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]model.Event, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", s.Path, err)
	}

	return doc.Events, nil
}
