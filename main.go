package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/sj99642/CS-Coursework/logging"
	"github.com/sj99642/CS-Coursework/minitest"
	"github.com/sj99642/CS-Coursework/suite"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	var params commandParams
	if !params.Read(args) {
		return 1
	}

	if params.list {
		for _, p := range suite.Procedures() {
			fmt.Println(p.Name)
		}
		return 0
	}

	suite.DescribeFilters(os.Stdout, params.filters)

	// In quiet mode the report goes to a capture buffer and is shown only
	// when something failed.
	var capture *logging.CaptureWriter
	var reporter *minitest.Reporter
	if params.quiet {
		capture = &logging.CaptureWriter{}
		reporter = minitest.New(capture)
	} else {
		reporter = minitest.New(os.Stdout)
	}

	results := suite.Run(reporter, params.filters.AsFilter)
	reporter.FinalReport()

	fmt.Println()
	printResults(args[0], results, capture)
	if !results.OK() {
		return 1
	}
	return 0
}

func printResults(command string, results suite.Results, capture *logging.CaptureWriter) {
	if results.OK() {
		color.Green("ALL PASSED (%d procedures)", len(results.Procedures))
		return
	}

	color.Red("FAILURES (%d of %d procedures)", len(results.Failures), len(results.Procedures))
	for _, f := range results.Failures {
		color.Red("  %s", f.Name)
		fmt.Printf("    to re-run: %s\n", rerunCommand(command, f.Name))
	}
	if capture != nil {
		fmt.Println()
		fmt.Println("Report from the failed run:")
		capture.Dump(os.Stdout, "  ")
	}
}
