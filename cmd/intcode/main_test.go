package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jcorbin/intcode"
	"github.com/jcorbin/intcode/internal/flushio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runModeTest(t *testing.T, mode string, cfg config, program string) (string, error) {
	values, err := intcode.ParseProgramString(program)
	require.NoError(t, err)
	cfg.opts = append(cfg.opts, intcode.WithLogf(t.Logf))
	if cfg.stdin == nil {
		cfg.stdin = strings.NewReader("")
	}
	var buf bytes.Buffer
	out := flushio.NewWriteFlusher(&buf)
	err = modes[mode](context.Background(), &cfg, values, out)
	require.NoError(t, out.Flush())
	return buf.String(), err
}

func TestRunMode(t *testing.T) {
	out, err := runModeTest(t, "run", config{input: "8"}, "3,9,8,9,10,9,4,9,99,-1,8")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, err = runModeTest(t, "run", config{stdin: strings.NewReader("\n7\n8\n")},
		"3,0,4,0,3,0,4,0,99")
	require.NoError(t, err)
	assert.Equal(t, "7\n8\n", out, "expected input read from stdin lines")

	out, err = runModeTest(t, "run", config{input: "1"}, "3,0,4,0,3,0,99")
	assert.True(t, errors.Is(err, intcode.ErrInputStarved), "expected starved input, got %v", err)
	assert.Equal(t, "1\n", out)

	_, err = runModeTest(t, "run", config{input: "x"}, "99")
	assert.Error(t, err)
}

func TestRunMode_dump(t *testing.T) {
	out, err := runModeTest(t, "run", config{dump: true}, "104,5,99")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"5\n"+
		"# Machine Dump\n"+
		"  ip: 2\n"+
		"  rb: 0\n"+
		"  input: []\n"+
		"  state: halted\n"+
		"  @0  out 5\t; 104,5\n"+
		"> @2  halt\t; 99\n", out)
}

func TestDiagMode(t *testing.T) {
	out, err := runModeTest(t, "diag", config{input: "9"},
		"3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99")
	require.NoError(t, err)
	assert.Equal(t, "1001\n", out)
}

func TestNounVerbMode(t *testing.T) {
	out, err := runModeTest(t, "nounverb", config{noun: 9, verb: 10, target: -1},
		"1,9,10,3,2,3,11,0,99,30,40,50")
	require.NoError(t, err)
	assert.Equal(t, "3500\n", out)

	out, err = runModeTest(t, "nounverb", config{target: 150}, "1101,0,0,0,99")
	require.NoError(t, err)
	assert.Equal(t, "5199\n", out)
}

func TestAmpMode(t *testing.T) {
	out, err := runModeTest(t, "amp", config{phases: "0,1,2,3,4"},
		"3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0")
	require.NoError(t, err)
	assert.Equal(t, "43210 4,3,2,1,0\n", out)
}

func TestArcadeMode(t *testing.T) {
	out, err := runModeTest(t, "arcade", config{quarters: 2},
		"1,12,13,14,104,-1,104,0,4,14,99,0,5,7,0")
	require.NoError(t, err)
	assert.Equal(t, "blocks: 0\nscore: 35\n", out)
}

func TestHullMode(t *testing.T) {
	out, err := runModeTest(t, "hull", config{},
		"3,100,4,100,104,0,3,100,4,100,104,1,99")
	require.NoError(t, err)
	assert.Equal(t, "painted: 2\n#\n", out, "expected a count from black and a render from white")

	_, err = runModeTest(t, "hull", config{}, "3,100,104,7,104,0,99")
	assert.EqualError(t, err, "painting from a black panel: invalid paint color 7 @(0,0)")
}

func TestDisasmMode(t *testing.T) {
	out, err := runModeTest(t, "disasm", config{}, "1102,34915192,34915192,7,4,7,99,0")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"  @0  mul 34915192, 34915192, @7\t; 1102,34915192,34915192,7\n"+
		"  @4  out @7\t; 4,7\n"+
		"  @6  halt\t; 99\n"+
		"  @7  data 0\n", out)
}
