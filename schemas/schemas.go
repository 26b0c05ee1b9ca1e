// Package schemas embeds the JSON Schema documents for serialized decision
// checks and result bundles. The structural validator and the verify CLI
// command validate stored data against these before it re-enters the
// pipeline.
package schemas

import _ "embed"

// Check is the JSON Schema for a single serialized check.
//
//go:embed check.schema.json
var Check string

// Bundle is the JSON Schema for a full serialized result bundle.
//
//go:embed bundle.schema.json
var Bundle string
