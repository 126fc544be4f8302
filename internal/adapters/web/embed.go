// Package web serves the distance API and its calculator page over HTTP.
// The page is embedded in the binary; there are no files to deploy.
package web

import _ "embed"

//go:embed static/index.html
var indexHTML []byte
