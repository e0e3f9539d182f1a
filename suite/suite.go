package suite

import (
	"github.com/sj99642/CS-Coursework/minitest"
)

// Procedure is a named test procedure. Run drives the Reporter itself,
// calling StartTest/EndTest and whatever sub-tests and assertions it needs.
type Procedure struct {
	Name string
	Run  func(r *minitest.Reporter)
}

// Filter decides whether a procedure should be run.
type Filter func(name string) bool

// Results aggregates the outcome of a suite run.
type Results struct {
	Procedures []ProcedureResult
	Failures   []ProcedureResult
}

// ProcedureResult is the outcome of a single procedure.
type ProcedureResult struct {
	Name   string
	Failed bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// Run executes every registered procedure that passes the filter, in
// registration order, against the given Reporter. A nil filter runs
// everything.
func Run(r *minitest.Reporter, filter Filter) Results {
	return RunProcedures(r, filter, Procedures())
}

// RunProcedures is like Run but over an explicit procedure list. The
// major-test counter is advanced here, before each procedure, because
// StartTest only reads it. Filtered-out procedures are not counted as
// performed.
func RunProcedures(r *minitest.Reporter, filter Filter, procs []Procedure) Results {
	var results Results
	for _, p := range procs {
		if filter != nil && !filter(p.Name) {
			continue
		}
		r.AdvanceTest()
		p.Run(r)
		result := ProcedureResult{Name: p.Name, Failed: r.TestFailed()}
		results.Procedures = append(results.Procedures, result)
		if result.Failed {
			results.Failures = append(results.Failures, result)
		}
	}
	return results
}

var registry []Procedure

// Register adds a procedure to the suite run by Run. Registration order is
// execution order.
func Register(name string, run func(r *minitest.Reporter)) {
	registry = append(registry, Procedure{Name: name, Run: run})
}

// Procedures returns a copy of the registered procedure list.
func Procedures() []Procedure {
	return append([]Procedure(nil), registry...)
}
