// Package web embeds the page templates and static assets.
package web

import "embed"

// EmbeddedFS holds templates/ and static/. Debug mode reads web/ from disk
// instead.
//
//go:embed templates static
var EmbeddedFS embed.FS
