// Package validate checks that a project's configuration files and layout
// carry the markers the test infrastructure expects: build-manifest
// targets, coverage thresholds, ignore patterns and the test-package
// directory structure. Checks are pure reads; a finding either names a
// missing marker or carries the setup error that prevented the check.
package validate

import (
	"os"
	"strings"

	"github.com/arthur-debert/testkit/pkg/errors"
	"github.com/arthur-debert/testkit/pkg/logging"
)

var logger = logging.GetLogger("validate")

// Finding is one failed expectation. Err is non-nil when the check could
// not run at all (unreadable file), distinguishing infrastructure
// breakage from a missing marker.
type Finding struct {
	File   string
	Marker string
	Err    error
}

// Setup reports whether this finding is an infrastructure failure rather
// than a failed expectation.
func (f Finding) Setup() bool {
	return f.Err != nil && errors.IsSetupError(f.Err)
}

// String renders the finding for reports.
func (f Finding) String() string {
	if f.Err != nil {
		return f.File + ": " + f.Err.Error()
	}
	return f.File + ": missing marker " + f.Marker
}

// Report aggregates findings from one or more checks.
type Report struct {
	Checked  []string
	Findings []Finding
}

// OK reports whether every expectation held.
func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

// Merge appends another report's results.
func (r *Report) Merge(other *Report) {
	r.Checked = append(r.Checked, other.Checked...)
	r.Findings = append(r.Findings, other.Findings...)
}

// CheckFile asserts that path exists and contains every marker. Each
// missing marker is reported as its own finding.
func CheckFile(path string, markers ...string) *Report {
	report := &Report{Checked: []string{path}}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			report.Findings = append(report.Findings, Finding{
				File: path,
				Err:  errors.Wrap(err, errors.ErrFileNotFound, "required file missing"),
			})
		} else {
			report.Findings = append(report.Findings, Finding{
				File: path,
				Err:  errors.Wrap(err, errors.ErrFileAccess, "required file unreadable"),
			})
		}
		return report
	}

	text := string(content)
	for _, marker := range markers {
		if !strings.Contains(text, marker) {
			logger.Debug().Str("file", path).Str("marker", marker).Msg("marker missing")
			report.Findings = append(report.Findings, Finding{File: path, Marker: marker})
		}
	}
	return report
}
