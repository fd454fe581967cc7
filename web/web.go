// Package web embeds the static screening page.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
