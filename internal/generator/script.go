package generator

import _ "embed"

//go:embed templates/widget.js
var script string

// RenderScript returns the behavior script. It does not depend on the
// configuration: everything it needs is found in the markup at runtime.
func RenderScript() string {
	return script
}
