package validation

import "github.com/alexisbeaulieu97/socialwidget/internal/widget"

// Result captures the outcome of checking one enabled platform.
type Result struct {
	Platform widget.PlatformID
	Passed   bool
	Message  string
	Err      error
}

// Report holds the results for every enabled platform in canonical order.
type Report struct {
	Results []Result
}

// Valid reports whether every checked platform passed.
func (r Report) Valid() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failed returns the results that did not pass.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed {
			failed = append(failed, res)
		}
	}
	return failed
}

// Errors returns the failure messages keyed by platform id.
func (r Report) Errors() map[widget.PlatformID]string {
	out := make(map[widget.PlatformID]string)
	for _, res := range r.Failed() {
		out[res.Platform] = res.Message
	}
	return out
}
