package manifest

import "testing"

func TestValidateFile_ValidMetadata(t *testing.T) {
	for _, file := range []string{"valid-meta.json", "valid-disabled.json"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", file, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidateFile_InvalidMetadata(t *testing.T) {
	tests := []struct {
		file    string
		keyword string
	}{
		{"invalid-missing-enabled.json", "required"},
		{"invalid-position-type.json", "type"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			result, err := ValidateFile(testPath(tt.file))
			if err != nil {
				t.Fatalf("ValidateFile(%s) unexpected error: %v", tt.file, err)
			}
			if result.Valid {
				t.Fatalf("expected invalid for %s", tt.file)
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.keyword {
					found = true
				}
				if issue.Message == "" {
					t.Errorf("issue %+v has an empty message", issue)
				}
			}
			if !found {
				t.Errorf("expected an issue with keyword %q, got %+v", tt.keyword, result.Issues)
			}
		})
	}
}

func TestValidate_NotJSON(t *testing.T) {
	if _, err := ValidateFile(testPath("invalid-not-json.json")); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := metaSchema()
	if err != nil {
		t.Fatalf("metaSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("metaSchema() returned nil schema")
	}
}

func TestSummary(t *testing.T) {
	r := &ValidationResult{Issues: []ValidationIssue{
		{Path: "/position", Message: "got string, want integer"},
		{Message: "missing property 'enabled'"},
	}}
	want := "/position: got string, want integer; missing property 'enabled'"
	if got := r.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}
