package suite

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sj99642/CS-Coursework/minitest"
)

func passingProcedure(name string) Procedure {
	return Procedure{Name: name, Run: func(r *minitest.Reporter) {
		r.StartTest(name)
		r.Assert(true, "should not fail")
		r.EndTest()
	}}
}

func failingProcedure(name string) Procedure {
	return Procedure{Name: name, Run: func(r *minitest.Reporter) {
		r.StartTest(name)
		r.StartSubTest("always fails")
		r.Assert(false, "deliberate failure")
		r.EndSubTest()
		r.EndTest()
	}}
}

func TestRunProceduresAdvancesMajorTestCount(t *testing.T) {
	var buf bytes.Buffer
	r := minitest.New(&buf)

	results := RunProcedures(r, nil, []Procedure{passingProcedure("a"), passingProcedure("b")})

	assert.Equal(t, 2, r.MajorTestCount())
	require.Len(t, results.Procedures, 2)
	assert.True(t, results.OK())
	assert.Contains(t, buf.String(), "Starting test 1: a")
	assert.Contains(t, buf.String(), "Starting test 2: b")
}

func TestRunProceduresRecordsFailures(t *testing.T) {
	var buf bytes.Buffer
	r := minitest.New(&buf)

	results := RunProcedures(r, nil, []Procedure{passingProcedure("good"), failingProcedure("bad")})

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "bad", results.Failures[0].Name)
	assert.False(t, results.Procedures[0].Failed)
	assert.True(t, results.Procedures[1].Failed)
}

func TestRunProceduresSkipsFilteredNames(t *testing.T) {
	var buf bytes.Buffer
	r := minitest.New(&buf)

	only := func(name string) bool { return name == "b" }
	results := RunProcedures(r, only, []Procedure{passingProcedure("a"), passingProcedure("b")})

	assert.Equal(t, 1, r.MajorTestCount())
	require.Len(t, results.Procedures, 1)
	assert.Equal(t, "b", results.Procedures[0].Name)
	assert.NotContains(t, buf.String(), "Starting test 1: a")
}

func TestBuiltInProceduresAllPass(t *testing.T) {
	var buf bytes.Buffer
	r := minitest.New(&buf)

	results := Run(r, nil)

	assert.True(t, results.OK(), "built-in procedures should pass:\n%s", buf.String())
	assert.True(t, strings.HasPrefix(buf.String(), "Starting test 1: "))
	assert.Equal(t, len(Procedures()), r.MajorTestCount())
}
