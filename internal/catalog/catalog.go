package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/skeletonlabs/create-skeleton-app/internal/manifest"
)

// DefaultTemplate is the template used in quiet mode when none is given.
const DefaultTemplate = "bare"

//go:embed templates
var embedded embed.FS

var (
	// ErrMetadata marks a template directory without a usable meta.json.
	ErrMetadata = errors.New("template metadata")
	// ErrNotFound is returned by Find for unknown or disabled templates.
	ErrNotFound = errors.New("template not found")
)

// Descriptor describes one selectable template.
type Descriptor struct {
	ID          string // directory name
	Title       string
	Description string
	Position    int
	Enabled     bool
}

// Embedded returns the catalog compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return sub
}

// Open returns the catalog rooted at dir, or the embedded catalog when dir is empty.
func Open(dir string) (fs.FS, error) {
	if dir == "" {
		return Embedded(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template directory %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// List scans every immediate subdirectory of fsys and returns the enabled
// templates ordered by position. Ties keep directory order. The directory is
// re-read on every call.
func List(fsys fs.FS) ([]Descriptor, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading template catalog: %w", err)
	}

	var result []Descriptor
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		id := entry.Name()
		meta, err := manifest.ReadFS(fsys, path.Join(id, manifest.MetaFileName))
		if err != nil {
			return nil, fmt.Errorf("%w: template %q: %v", ErrMetadata, id, err)
		}
		if !meta.Enabled {
			continue
		}

		result = append(result, Descriptor{
			ID:          id,
			Title:       meta.Title,
			Description: meta.Description,
			Position:    meta.Position,
			Enabled:     meta.Enabled,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Position < result[j].Position
	})
	return result, nil
}

// Find returns the enabled template with the given id.
func Find(fsys fs.FS, id string) (*Descriptor, error) {
	all, err := List(fsys)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
}

// IDs returns the ids of descriptors, in order.
func IDs(descriptors []Descriptor) []string {
	ids := make([]string, len(descriptors))
	for i, d := range descriptors {
		ids[i] = d.ID
	}
	return ids
}
