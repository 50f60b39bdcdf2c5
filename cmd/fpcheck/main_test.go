package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-fpcore/fpc"
	"github.com/ajroetker/go-fpcore/internal/verify"
)

var quickArgs = []string{"-stride", "65537", "-samples", "500", "-workers", "2"}

func TestParseChecks(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"all", nil},
		{"", nil},
		{"half", []string{"half"}},
		{" rounding, next ,", []string{"rounding", "next"}},
		{"all,rounding", nil},
		{"half, all", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseChecks(tt.in), "parseChecks(%q)", tt.in)
	}
}

func TestRunTextOutput(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), append([]string{"-checks", "rounding,next"}, quickArgs...), &out)
	require.NoError(t, err, out.String())
	assert.Contains(t, out.String(), "check passed")
	assert.Contains(t, out.String(), "report.check=rounding")
	assert.Contains(t, out.String(), "report.check=next")
	assert.NotContains(t, out.String(), "starting", "debug records need -v")
}

func TestRunJSONOutput(t *testing.T) {
	before := fpc.CurrentPath()
	var out bytes.Buffer
	args := append([]string{"-json", "-v", "-soft", "-width", "64", "-checks", "interval"}, quickArgs...)
	require.NoError(t, run(context.Background(), args, &out))

	var records []map[string]any
	sc := bufio.NewScanner(&out)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec), sc.Text())
		records = append(records, rec)
	}
	require.NotEmpty(t, records)
	assert.Equal(t, "starting", records[0]["msg"])
	assert.Equal(t, "software", records[0]["path"])

	var found bool
	for _, rec := range records {
		if report, ok := rec["report"].(map[string]any); ok {
			found = true
			assert.Equal(t, "interval", report["check"])
			assert.Equal(t, "software", report["path"])
			assert.Equal(t, float64(0), report["failures"])
		}
	}
	assert.True(t, found, "no report record in %v", records)
	assert.Equal(t, before, fpc.CurrentPath(), "-soft must not leak past run")
}

func TestRunAllInList(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), append([]string{"-checks", "all,rounding"}, quickArgs...), &out))
	for _, name := range verify.Checks() {
		assert.Contains(t, out.String(), "report.check="+name)
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), []string{"-checks", "nope"}, &out)
	assert.ErrorIs(t, err, verify.ErrUnknownCheck)

	err = run(context.Background(), []string{"-width", "16"}, &out)
	assert.ErrorIs(t, err, verify.ErrInvalidConfig)

	err = run(context.Background(), []string{"-stride", "0"}, &out)
	assert.ErrorContains(t, err, "-stride")

	err = run(context.Background(), []string{"-stride", "4294967296"}, &out)
	assert.ErrorContains(t, err, "-stride")

	err = run(context.Background(), []string{"-bogus"}, &out)
	assert.Error(t, err)

	err = run(context.Background(), []string{"-h"}, &out)
	assert.ErrorIs(t, err, flag.ErrHelp)
}
