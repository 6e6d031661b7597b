// Package templates provides embedded YAML configuration templates.
package templates

import _ "embed"

// ReferenceYAML contains the default reference.yaml with citizenship
// coordinates, country and continent names.
//
//go:embed reference.yaml
var ReferenceYAML string

// ConfigYAML contains the default config.yaml template for application configuration.
//
//go:embed config.yaml
var ConfigYAML string
