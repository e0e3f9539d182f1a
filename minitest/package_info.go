// Package minitest is a minimal procedural test-reporting harness: calling
// code declares a sequence of major tests, each optionally divided into
// sub-tests, records assertion results against whichever scope is active,
// and gets a human-readable progress report as it goes.
//
// There is no test discovery and no parallelism; the Reporter is a plain
// in-process accounting and logging facility driven entirely by the caller.
package minitest
