package manifest

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Parse validates data against the metadata schema and decodes it.
// Schema violations are reported as a single error listing every issue.
func Parse(data []byte) (*TemplateMeta, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid template metadata: %s", result.Summary())
	}

	var meta TemplateMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("decoding template metadata: %w", err)
	}
	return &meta, nil
}

// ReadFS reads and parses the metadata file at name inside fsys.
func ReadFS(fsys fs.FS, name string) (*TemplateMeta, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	meta, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return meta, nil
}

// ParseFile reads and parses a metadata file from disk.
func ParseFile(path string) (*TemplateMeta, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	meta, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return meta, nil
}

// Summary joins all issues into one line, e.g. "/position: got string, want integer".
func (r *ValidationResult) Summary() string {
	msgs := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
