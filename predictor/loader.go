package predictor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"
)

// Load reads a model artifact from disk. The decoder is picked from the file
// extension: .json, .yaml/.yml or .hjson.
func Load(path string) (Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w: %s", ErrModelLoad, ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrModelLoad, err)
	}

	m := &TrainedModel{source: path}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, m)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, m)
	case ".hjson":
		err = hjson.Unmarshal(data, m)
	default:
		err = fmt.Errorf("unsupported artifact extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrModelLoad, path, err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrModelLoad, path, err)
	}
	return m, nil
}

// ModelCache loads the artifact at most once for the lifetime of the process.
type ModelCache struct {
	path string
	load func(string) (Model, error)

	once  sync.Once
	model Model
	err   error
}

// NewModelCache creates a cache for the artifact at path.
func NewModelCache(path string) *ModelCache {
	return &ModelCache{path: path, load: Load}
}

// Get returns the cached model, loading it on the first call.
func (c *ModelCache) Get() (Model, error) {
	c.once.Do(func() {
		c.model, c.err = c.load(c.path)
	})
	return c.model, c.err
}

func (c *ModelCache) Path() string { return c.path }
