package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/sj99642/CS-Coursework/suite"
)

type commandParams struct {
	filters suite.RegexFilters
	quiet   bool
	list    bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select procedures to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select procedures not to run")
	fs.BoolVar(&c.quiet, "quiet", false, "show the report only if a procedure fails")
	fs.BoolVar(&c.list, "list", false, "list procedure names without running anything")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a shell command that re-runs a single procedure by
// anchoring its name as the -run pattern.
func rerunCommand(command string, procedureName string) string {
	var b commandBuilder
	b.add(command, "-run", "^"+regexp.QuoteMeta(procedureName)+"$")
	return b.String()
}
