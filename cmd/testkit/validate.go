package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/testkit/pkg/errors"
	"github.com/arthur-debert/testkit/pkg/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check a project's test-infrastructure files for expected markers",
	Long: `Validate reads the project's build manifest, ignore rules, lint config
and test-package layout, and reports every missing marker. Setup failures
(unreadable files) are reported separately from failed expectations.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		report := validate.Project(root)
		printReport(report)

		if !report.OK() {
			return errors.Newf(errors.ErrMarkerMissing, "%d finding(s) in %s", len(report.Findings), root)
		}
		return nil
	},
}

func printReport(report *validate.Report) {
	printSection("Project validation")
	fmt.Printf("checked %d file(s)/dir(s)\n\n", len(report.Checked))

	if report.OK() {
		fmt.Println(styleOK("all expected markers present"))
		return
	}

	for _, finding := range report.Findings {
		if finding.Setup() {
			fmt.Println(styleSetupFail("setup  " + finding.String()))
		} else {
			fmt.Println(styleFail("fail   " + finding.String()))
		}
	}
	fmt.Fprintf(os.Stderr, "\n%d finding(s)\n", len(report.Findings))
}
