// Package export renders normalized items into password-manager import
// files. Each output format is an Exporter registered with the format
// registry; adding a format means adding an Exporter, not branching the
// conversion pipeline.
package export

import (
	"fmt"
	"sort"
	"sync"

	"github.com/opxport/opxport/internal/model"
)

// Exporter defines the interface for output format adapters.
type Exporter interface {
	// Name returns the unique identifier for this format (e.g. "icloud").
	Name() string

	// Description returns a human-readable description of the format.
	Description() string

	// OutputName returns the output file name for the given input stem.
	OutputName(stem string) string

	// Export writes the eligible items to outputPath and returns the
	// number of records written. A failed export never leaves a partial
	// file at outputPath.
	Export(items []model.Item, outputPath string) (int, error)
}

// ErrFileSystem indicates that the output file could not be written.
type ErrFileSystem struct {
	Path string // Output file path
	Op   string // Operation that failed (create, write, rename, ...)
	Err  error  // Underlying error
}

func (e *ErrFileSystem) Error() string {
	msg := fmt.Sprintf("cannot %s %q", e.Op, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrFileSystem) Unwrap() error {
	return e.Err
}

// ErrUnknownFormat indicates that no exporter is registered under the
// requested name.
type ErrUnknownFormat struct {
	Name string
}

func (e *ErrUnknownFormat) Error() string {
	return fmt.Sprintf("unknown output format: %q", e.Name)
}

// Registry manages the available output format exporters.
type Registry struct {
	mu        sync.RWMutex
	exporters map[string]Exporter
}

// NewRegistry creates a new empty format registry.
func NewRegistry() *Registry {
	return &Registry{
		exporters: make(map[string]Exporter),
	}
}

// Register adds an exporter to the registry.
// If an exporter with the same name already exists, it will be replaced.
func (r *Registry) Register(e Exporter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exporters[e.Name()] = e
}

// Get retrieves an exporter by format name.
func (r *Registry) Get(name string) (Exporter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.exporters[name]
	return e, ok
}

// List returns all registered exporters sorted by name.
func (r *Registry) List() []Exporter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Exporter, 0, len(r.exporters))
	for _, e := range r.exporters {
		result = append(result, e)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})

	return result
}

// Names returns the names of all registered formats sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.exporters))
	for name := range r.exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry is the global registry instance.
var defaultRegistry *Registry
var defaultRegistryOnce sync.Once

// DefaultRegistry returns the default global registry with all built-in
// formats. Built-in exporters register themselves via init().
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// RegisterDefault registers an exporter with the default registry.
func RegisterDefault(e Exporter) {
	DefaultRegistry().Register(e)
}
