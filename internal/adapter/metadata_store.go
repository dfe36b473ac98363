package adapter

import (
	"encoding/json"
	"fmt"
	"os"

	m "github.com/mouse-blink/bufsafe/internal/model"
)

// MetadataStore persists and retrieves corpus metadata.
type MetadataStore interface {
	Save(path m.Path, md m.Metadata) error
	Load(path m.Path) (m.Metadata, error)
}

type metadataStore struct{}

// NewMetadataStore constructs a JSON-backed MetadataStore.
func NewMetadataStore() MetadataStore {
	return &metadataStore{}
}

func (ms *metadataStore) Save(path m.Path, md m.Metadata) error {
	data, err := json.Marshal(md)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata %s: %w", path, err)
	}

	return nil
}

func (ms *metadataStore) Load(path m.Path) (m.Metadata, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Metadata{}, fmt.Errorf("failed to read metadata %s: %w", path, err)
	}

	var md m.Metadata
	if err := json.Unmarshal(data, &md); err != nil {
		return m.Metadata{}, fmt.Errorf("failed to parse metadata %s: %w", path, err)
	}

	for name, tags := range md.Tags {
		for _, tag := range tags {
			if !tag.Valid() {
				return m.Metadata{}, fmt.Errorf("metadata %s: file %s has unknown tag %d", path, name, int(tag))
			}
		}
	}

	return md, nil
}
