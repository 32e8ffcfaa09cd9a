package manifest

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/meta.schema.json
var schemaBytes []byte

const schemaURL = "meta.schema.json"

// metaSchema compiles the embedded meta.json schema on first use.
var metaSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	schema, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return schema, nil
})

var printer = message.NewPrinter(language.English)

// ValidationResult contains the outcome of validating one meta.json.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is one schema violation.
type ValidationIssue struct {
	Path    string // JSON pointer into meta.json, e.g. "/position"
	Message string
	Keyword string // failing schema keyword, e.g. "type"
}

// Validate checks raw meta.json bytes against the template metadata schema.
// Schema violations are reported in the result; the error is reserved for
// malformed JSON and schema problems.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := metaSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	issues := leafIssues(ve, nil, map[ValidationIssue]bool{})
	if len(issues) == 0 {
		issues = []ValidationIssue{{Message: ve.Error()}}
	}
	return &ValidationResult{Issues: issues}, nil
}

// ValidateFile validates the meta.json at path.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

// leafIssues appends the distinct leaf errors of the tree rooted at ve.
// Wrapper keywords like allOf and $ref are skipped since their causes carry
// the detail.
func leafIssues(ve *jsonschema.ValidationError, issues []ValidationIssue, seen map[ValidationIssue]bool) []ValidationIssue {
	for _, cause := range ve.Causes {
		issues = leafIssues(cause, issues, seen)
	}
	if len(ve.Causes) > 0 || ve.ErrorKind == nil {
		return issues
	}

	path := ve.ErrorKind.KeywordPath()
	if len(path) == 0 {
		return issues
	}
	issue := ValidationIssue{
		Keyword: path[len(path)-1],
		Message: ve.ErrorKind.LocalizedString(printer),
	}
	if issue.Keyword == "allOf" || issue.Keyword == "$ref" {
		return issues
	}
	if len(ve.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	if seen[issue] {
		return issues
	}
	seen[issue] = true
	return append(issues, issue)
}
