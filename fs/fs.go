// Package appfs holds the files shipped inside the binaries.
package appfs

import "embed"

// FS contains the goose migrations and the routine document templates.
//
//go:embed migrations templates
var FS embed.FS
