// Package schemas embeds the JSON Schema documents shipped with the portfolio.
package schemas

import _ "embed"

// Content is the schema for a content override file.
//
//go:embed content.schema.json
var Content string
