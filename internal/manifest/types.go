package manifest

// MetaFileName is the metadata file expected in every template directory.
const MetaFileName = "meta.json"

// TemplateMeta is the content of a template's meta.json.
type TemplateMeta struct {
	Position    int    `json:"position"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}
