package schema

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry holds validated content-type schemas indexed by uid. It is
// safe for concurrent use: registration happens at startup, lookups
// happen on every validation pass.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]*Schema
}

// NewRegistry creates an empty schema registry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register validates a schema and adds it to the registry. Registering
// the same uid twice is an error: schema identity is global.
func (r *Registry) Register(s *Schema) error {
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.schemas[s.UID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSchema, s.UID)
	}
	r.schemas[s.UID] = s
	return nil
}

// Get returns the schema registered under a uid.
func (r *Registry) Get(uid string) (*Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemas[uid]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, uid)
	}
	return s, nil
}

// UIDs returns all registered schema uids.
func (r *Registry) UIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uids := make([]string, 0, len(r.schemas))
	for uid := range r.schemas {
		uids = append(uids, uid)
	}
	return uids
}

// ParseYAML decodes a single schema document from YAML bytes and
// validates it.
func ParseYAML(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Join(ErrFailedToParseSchema, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFS parses and registers every *.yaml and *.yml schema document
// found in the filesystem tree. Used at startup to populate the registry
// from a schema directory.
func (r *Registry) LoadFS(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
		default:
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		s, err := ParseYAML(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return r.Register(s)
	})
}
