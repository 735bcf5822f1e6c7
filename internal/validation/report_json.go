package validation

import "github.com/alexisbeaulieu97/socialwidget/internal/platform"

// ResultJSON is the serialized form of a Result.
type ResultJSON struct {
	Platform string `json:"platform"`
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Message  string `json:"message"`
}

// ReportJSON is the serialized form of a Report.
type ReportJSON struct {
	Valid   bool         `json:"valid"`
	Results []ResultJSON `json:"results"`
}

// JSON converts the report for machine-readable output.
func (r Report) JSON() ReportJSON {
	out := ReportJSON{Valid: r.Valid(), Results: make([]ResultJSON, 0, len(r.Results))}
	for _, res := range r.Results {
		out.Results = append(out.Results, ResultJSON{
			Platform: string(res.Platform),
			Name:     platform.Name(res.Platform),
			Passed:   res.Passed,
			Message:  res.Message,
		})
	}
	return out
}
