// Package resources holds static files served under /static.
package resources

import "embed"

//go:embed logo.svg
var FS embed.FS

// FallbackLogo is the path of the bundled logo under /static.
const FallbackLogo = "/static/logo.svg"
