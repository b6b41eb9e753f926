// Package assets loads models, textures and sounds from the media directory
// and caches them.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/roam3d/internal/engine/model"
	"github.com/Faultbox/roam3d/internal/engine/texture"
	"github.com/Faultbox/roam3d/internal/logger"
	"github.com/Faultbox/roam3d/pkg/formats"
)

// ErrNotFound is returned when an asset does not exist.
var ErrNotFound = errors.New("asset not found")

// Manager resolves asset paths against a media directory. Absolute paths
// are used as given.
type Manager struct {
	dir   string
	cache *Cache

	mu     sync.RWMutex
	meshes map[string]*model.Mesh
}

// NewManager creates a manager rooted at dir.
func NewManager(dir string) *Manager {
	return &Manager{
		dir:    dir,
		cache:  NewCache(),
		meshes: make(map[string]*model.Mesh),
	}
}

// Dir returns the media directory.
func (m *Manager) Dir() string {
	return m.dir
}

// Resolve returns the filesystem path for an asset.
func (m *Manager) Resolve(path string) string {
	if filepath.IsAbs(path) || m.dir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(m.dir, path)
}

// Load reads an asset's bytes.
func (m *Manager) Load(path string) ([]byte, error) {
	full := m.Resolve(path)
	if data, ok := m.cache.Get(full); ok {
		return data, nil
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, full)
		}
		return nil, fmt.Errorf("reading %s: %w", full, err)
	}
	m.cache.Set(full, data)
	return data, nil
}

// LoadMesh parses an OBJ file and builds its mesh. Meshes are shared: every
// call with the same path returns the same *model.Mesh.
func (m *Manager) LoadMesh(path string) (*model.Mesh, error) {
	full := m.Resolve(path)

	m.mu.RLock()
	mesh, ok := m.meshes[full]
	m.mu.RUnlock()
	if ok {
		return mesh, nil
	}

	obj, err := formats.ParseOBJFile(full)
	if err != nil {
		return nil, err
	}
	mesh, err = model.BuildMesh(obj)
	if err != nil {
		return nil, fmt.Errorf("building mesh from %s: %w", full, err)
	}

	m.mu.Lock()
	if cached, ok := m.meshes[full]; ok {
		mesh = cached
	} else {
		m.meshes[full] = mesh
	}
	m.mu.Unlock()

	logger.Debug("mesh loaded",
		zap.String("path", full),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("faces", mesh.FaceCount()),
	)
	return mesh, nil
}

// LoadImage decodes a PNG, JPEG or BMP file, flipped for GL upload.
func (m *Manager) LoadImage(path string) (*image.RGBA, error) {
	data, err := m.Load(path)
	if err != nil {
		return nil, err
	}
	img, format, err := texture.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	logger.Debug("image decoded", zap.String("path", path), zap.String("format", format))
	return img, nil
}

// MeshCount returns the number of cached meshes.
func (m *Manager) MeshCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.meshes)
}

// Stats returns byte cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Close drops every cached asset.
func (m *Manager) Close() {
	m.mu.Lock()
	m.meshes = make(map[string]*model.Mesh)
	m.mu.Unlock()
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
