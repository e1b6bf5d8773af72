package intcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputs(t *testing.T) {
	outs, err := Outputs(mustParse(t, quine), nil)
	require.NoError(t, err)
	assert.Equal(t, mustParse(t, quine), outs, "expected the program to output itself")

	outs, err = Outputs(mustParse(t, "104,1,3,0,4,0,99"), nil)
	assert.True(t, errors.Is(err, ErrInputStarved), "expected starved input, got %v", err)
	assert.Equal(t, []int64{1}, outs, "expected outputs before starving")

	_, err = Outputs(mustParse(t, "104,1,77"), nil)
	assert.True(t, IsFault(err), "expected a fault, got %v", err)
}

func TestDiagnostic(t *testing.T) {
	code, err := Diagnostic(mustParse(t, "104,0,104,0,104,7,99"), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(7), code)

	code, err = Diagnostic(mustParse(t, compare8), []int64{9})
	require.NoError(t, err)
	assert.Equal(t, int64(1001), code)

	code, err = Diagnostic(mustParse(t, "104,0,104,3,104,7,99"), nil)
	assert.Equal(t, DiagnosticFailure{Test: 1, Value: 3}, err)
	assert.EqualError(t, err, "diagnostic test #2 failed with 3")
	assert.Equal(t, int64(7), code)

	_, err = Diagnostic(mustParse(t, "99"), nil)
	assert.EqualError(t, err, "diagnostic program produced no output")
}

func TestRunPatched(t *testing.T) {
	program := mustParse(t, "1,9,10,3,2,3,11,0,99,30,40,50")
	val, err := RunPatched(program, 9, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3500), val)
	assert.Equal(t, int64(9), program[1], "must not modify the program")

	val, err = RunPatched(program, 9, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), val)

	_, err = RunPatched(mustParse(t, "1,0,0,0"), 0, 0)
	assert.True(t, IsFault(err), "expected a fault, got %v", err)
}

func TestFindNounVerb(t *testing.T) {
	answer, err := FindNounVerb(mustParse(t, "1101,0,0,0,99"), 150)
	require.NoError(t, err)
	assert.Equal(t, int64(5199), answer)

	answer, err = FindNounVerb(mustParse(t, "1102,0,0,0,99"), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(101), answer)

	_, err = FindNounVerb(mustParse(t, "1101,0,0,0,99"), 1000)
	assert.EqualError(t, err, "no noun and verb produce 1000")
}
