package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pwgen"
)

func testConfig() config {
	return config{Length: 8, Count: 0}
}

func TestParseArgs(t *testing.T) {
	t.Parallel()

	t.Run("defaults to a screenful of pronounceable passwords", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer

		opts, columns, err := parseArgs(nil, testConfig(), &stderr)
		require.NoError(t, err)
		assert.True(t, columns)
		assert.Equal(t, 8, opts.Length)
		assert.Equal(t, screenfulCount, opts.Count)
		assert.Equal(t, pwgen.ModePronounceable, opts.Mode)
		assert.True(t, opts.Digits)
		assert.True(t, opts.Uppercase)
		assert.False(t, opts.Symbols)
	})

	t.Run("maps flags onto options", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer

		opts, columns, err := parseArgs(
			[]string{"-s", "-0", "-A", "-y", "-B", "-v", "-1", "16", "4"},
			testConfig(), &stderr,
		)
		require.NoError(t, err)
		assert.False(t, columns)
		assert.Equal(t, pwgen.ModeRandom, opts.Mode)
		assert.False(t, opts.Digits)
		assert.False(t, opts.Uppercase)
		assert.True(t, opts.Symbols)
		assert.True(t, opts.RequireSymbol)
		assert.True(t, opts.AvoidAmbiguous)
		assert.True(t, opts.AvoidVowels)
		assert.Equal(t, 16, opts.Length)
		assert.Equal(t, 4, opts.Count)
	})

	t.Run("accepts long flag names", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer

		opts, _, err := parseArgs(
			[]string{"--secure", "--no-numerals", "--remove-chars", "abc"},
			testConfig(), &stderr,
		)
		require.NoError(t, err)
		assert.Equal(t, pwgen.ModeRandom, opts.Mode)
		assert.False(t, opts.Digits)
		assert.Equal(t, "abc", opts.Remove)
	})

	t.Run("disabling flags win over enabling ones", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer

		opts, _, err := parseArgs([]string{"-c", "-A", "-n", "-0"}, testConfig(), &stderr)
		require.NoError(t, err)
		assert.False(t, opts.Uppercase)
		assert.False(t, opts.Digits)
	})

	t.Run("one-per-line mode defaults to a single password", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer

		opts, columns, err := parseArgs([]string{"-1"}, testConfig(), &stderr)
		require.NoError(t, err)
		assert.False(t, columns)
		assert.Equal(t, 1, opts.Count)
	})

	t.Run("environment count is used when no positional is given", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer

		opts, _, err := parseArgs(nil, config{Length: 10, Count: 7}, &stderr)
		require.NoError(t, err)
		assert.Equal(t, 10, opts.Length)
		assert.Equal(t, 7, opts.Count)
	})

	t.Run("an explicit zero count is not promoted to the default", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer

		opts, _, err := parseArgs([]string{"8", "0"}, testConfig(), &stderr)
		require.NoError(t, err)
		assert.Equal(t, 0, opts.Count)
	})

	t.Run("rejects surplus positional arguments", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer

		_, _, err := parseArgs([]string{"8", "2", "9"}, testConfig(), &stderr)
		assert.Error(t, err)
	})

	t.Run("rejects a non-numeric length", func(t *testing.T) {
		t.Parallel()
		var stderr bytes.Buffer

		_, _, err := parseArgs([]string{"eight"}, testConfig(), &stderr)
		assert.Error(t, err)
	})
}

func TestPrintColumns(t *testing.T) {
	t.Parallel()

	t.Run("fills columns top to bottom", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		printColumns(&out, []string{"aaaa", "bbbb", "cccc", "dddd", "eeee"}, 9)

		assert.Equal(t, "aaaa dddd\nbbbb eeee\ncccc\n", out.String())
	})

	t.Run("degrades to one column on narrow terminals", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		printColumns(&out, []string{"aaaa", "bbbb"}, 3)

		assert.Equal(t, "aaaa\nbbbb\n", out.String())
	})

	t.Run("prints nothing for an empty list", func(t *testing.T) {
		t.Parallel()
		var out bytes.Buffer

		printColumns(&out, nil, 80)
		assert.Empty(t, out.String())
	})
}

func TestRun(t *testing.T) {
	t.Run("prints one password per line with -1", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		err := run([]string{"-1", "8", "3"}, &stdout, &stderr)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
		require.Len(t, lines, 3)
		for _, line := range lines {
			assert.Len(t, line, 8)
		}
	})

	t.Run("reports configuration errors", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		err := run([]string{"-r", "0123456789"}, &stdout, &stderr)
		require.Error(t, err)
		assert.ErrorIs(t, err, pwgen.ErrEmptyPool)
		assert.Empty(t, stdout.String())
	})

	t.Run("an explicit zero count fails validation", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		err := run([]string{"-1", "8", "0"}, &stdout, &stderr)
		require.Error(t, err)
		assert.ErrorIs(t, err, pwgen.ErrInvalidCount)
		assert.Empty(t, stdout.String())
	})

	t.Run("help is not an error", func(t *testing.T) {
		var stdout, stderr bytes.Buffer

		err := run([]string{"-h"}, &stdout, &stderr)
		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "Usage: pwgen")
	})
}
