package main

import (
	"bytes"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// Front matter in the Hinode docs is ----delimited YAML; pin the format
// instead of relying on autodetection.
var yamlFrontmatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// parseDocument splits raw markdown bytes into front matter metadata
// and body text. Malformed or absent front matter degrades to empty
// metadata with the whole source as body, never an error.
func parseDocument(source []byte) (map[string]any, string) {
	meta := map[string]any{}
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta, yamlFrontmatter)
	if err != nil {
		return map[string]any{}, string(source)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, string(body)
}
