package suite

import (
	"strings"

	"github.com/sj99642/CS-Coursework/minitest"
)

// The built-in procedures give the harness something to report on and double
// as usage examples. Each one owns its full StartTest/EndTest bracket.

func init() {
	Register("integer arithmetic", doArithmeticProcedure)
	Register("string handling", doStringProcedure)
	Register("direct assertions", doDirectAssertionProcedure)
}

func doArithmeticProcedure(r *minitest.Reporter) {
	r.StartTest("Integer arithmetic")

	r.StartSubTest("addition")
	r.Assert(2+2 == 4, "2+2 did not equal 4")
	r.Assert(-1+1 == 0, "-1+1 did not equal 0")
	r.EndSubTest()

	r.StartSubTest("division")
	r.Assert(7/2 == 3, "integer division of 7/2 did not truncate to 3")
	r.Assert(-7/2 == -3, "integer division of -7/2 did not truncate to -3")
	r.EndSubTest()

	r.StartSubTest("wraparound")
	x := int8(127)
	x++
	r.Assert(x == -128, "int8 did not wrap from 127 to -128")
	r.EndSubTest()

	r.EndTest()
}

func doStringProcedure(r *minitest.Reporter) {
	r.StartTest("String handling")

	r.StartSubTest("concatenation")
	r.Assert("mini"+"test" == "minitest", "concatenation gave the wrong string")
	r.EndSubTest()

	r.StartSubTest("case folding")
	r.Assert(strings.EqualFold("MiniTest", "MINITEST"), "case-insensitive compare failed")
	r.EndSubTest()

	r.EndTest()
}

func doDirectAssertionProcedure(r *minitest.Reporter) {
	r.StartTest("Direct assertions")
	r.Assert(len("") == 0, "empty string had nonzero length")
	r.Assert(cap([]int(nil)) == 0, "nil slice had nonzero capacity")
	r.EndTest()
}
