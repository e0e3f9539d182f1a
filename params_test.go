package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParams(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"minitest", "-run", "arith", "-quiet"}))

	assert.True(t, p.quiet)
	assert.False(t, p.list)
	assert.True(t, p.filters.AsFilter("integer arithmetic"))
	assert.False(t, p.filters.AsFilter("string handling"))
}

func TestReadParamsDefaults(t *testing.T) {
	var p commandParams
	require.True(t, p.Read([]string{"minitest"}))

	assert.False(t, p.quiet)
	assert.True(t, p.filters.AsFilter("anything"))
}

func TestRerunCommandQuotesPattern(t *testing.T) {
	cmd := rerunCommand("./minitest", "string handling")
	assert.Equal(t, "./minitest -run '^string handling$'", cmd)
}
