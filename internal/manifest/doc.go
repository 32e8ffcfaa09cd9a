// Package manifest handles parsing and validation of template metadata files
// (meta.json). Every template directory in the catalog carries one; it decides
// the title, description, display position and whether the template is offered
// at all. Files are validated against the JSON Schema embedded in schema/.
package manifest
