package validation

import (
	"errors"

	"github.com/alexisbeaulieu97/socialwidget/internal/platform"
	"github.com/alexisbeaulieu97/socialwidget/internal/widget"
	swerrors "github.com/alexisbeaulieu97/socialwidget/pkg/errors"
)

// ValidateConfig checks the contact id of every enabled platform. Disabled
// platforms are skipped entirely. The report is advisory: callers surface it
// to the user and keep generating regardless.
func ValidateConfig(cfg widget.Config) Report {
	enabled := cfg.EnabledPlatforms()
	report := Report{Results: make([]Result, 0, len(enabled))}

	for _, id := range enabled {
		result := Result{Platform: id}

		if err := platform.Validate(id, cfg.Platform(id)); err != nil {
			result.Passed = false
			result.Message = messageOf(err)
			result.Err = err
		} else {
			result.Passed = true
			result.Message = "ok"
		}

		report.Results = append(report.Results, result)
	}

	return report
}

func messageOf(err error) string {
	var contactErr *swerrors.ContactError
	if errors.As(err, &contactErr) {
		return contactErr.Message
	}
	return err.Error()
}
