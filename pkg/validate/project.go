package validate

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/testkit/pkg/errors"
)

// ManifestMarkers are the substrings the build manifest must carry: the
// dependency tooling section, the test/tests runner entry points, and the
// coverage threshold.
var ManifestMarkers = []string{
	"## Dependencies",
	"test:",
	"tests:",
	"go test",
	"-cover",
	"COVERAGE_THRESHOLD=80",
}

// IgnoreMarkers are the cache/coverage artifact patterns the ignore file
// must list.
var IgnoreMarkers = []string{
	"coverage.out",
	"coverage.html",
	"*.test",
	".testkit-cache/",
}

// Manifest checks the build manifest (Makefile) under root.
func Manifest(root string) *Report {
	return CheckFile(filepath.Join(root, "Makefile"), ManifestMarkers...)
}

// Ignore checks the ignore-rules file under root.
func Ignore(root string) *Report {
	return CheckFile(filepath.Join(root, ".gitignore"), IgnoreMarkers...)
}

// lintConfig is the subset of .golangci.yml the validation cares about.
type lintConfig struct {
	Linters struct {
		Enable []string `yaml:"enable"`
	} `yaml:"linters"`
}

// LintConfig checks that .golangci.yml under root parses and enables at
// least one linter.
func LintConfig(root string) *Report {
	path := filepath.Join(root, ".golangci.yml")
	report := &Report{Checked: []string{path}}

	content, err := os.ReadFile(path)
	if err != nil {
		code := errors.ErrFileAccess
		if os.IsNotExist(err) {
			code = errors.ErrFileNotFound
		}
		report.Findings = append(report.Findings, Finding{
			File: path,
			Err:  errors.Wrap(err, code, "lint config unavailable"),
		})
		return report
	}

	var cfg lintConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		report.Findings = append(report.Findings, Finding{
			File: path,
			Err:  errors.Wrap(err, errors.ErrConfigLoad, "lint config unparsable"),
		})
		return report
	}

	if len(cfg.Linters.Enable) == 0 {
		report.Findings = append(report.Findings, Finding{File: path, Marker: "linters.enable"})
	}
	return report
}

// Layout checks the test-package directory structure under root: a
// top-level tests package with unit and integration sub-packages, each
// holding a doc.go marker file.
func Layout(root string) *Report {
	report := &Report{}

	dirs := []string{
		filepath.Join(root, "tests"),
		filepath.Join(root, "tests", "unit"),
		filepath.Join(root, "tests", "integration"),
	}
	for _, dir := range dirs {
		report.Checked = append(report.Checked, dir)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			report.Findings = append(report.Findings, Finding{
				File: dir,
				Err:  errors.New(errors.ErrLayoutInvalid, "test directory missing"),
			})
			continue
		}

		marker := filepath.Join(dir, "doc.go")
		if _, err := os.Stat(marker); err != nil {
			report.Findings = append(report.Findings, Finding{
				File: marker,
				Err:  errors.New(errors.ErrLayoutInvalid, "package marker file missing"),
			})
		}
	}
	return report
}

// Project runs every project-level check under root and merges the
// results.
func Project(root string) *Report {
	report := &Report{}
	report.Merge(Manifest(root))
	report.Merge(Ignore(root))
	report.Merge(LintConfig(root))
	report.Merge(Layout(root))
	return report
}
