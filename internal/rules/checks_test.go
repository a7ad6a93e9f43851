package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/seam/pkg/lint"
)

func src(trailingNewlines int, lines ...string) *Source {
	return &Source{Path: "test.swift", Lines: lines, TrailingNewlines: trailingNewlines}
}

func TestCheckTrailingWhitespace(t *testing.T) {
	t.Parallel()

	got := checkTrailingWhitespace(src(1, "let a = 1", "let b = 2  ", "\tlet c = 3\t"), lint.Limits{})

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Line)
	assert.Equal(t, 10, got[0].Column)
	assert.Equal(t, 3, got[1].Line)
}

func TestCheckLeadingWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   *Source
		count int
	}{
		{name: "clean file", src: src(1, "import Foundation"), count: 0},
		{name: "leading space", src: src(1, " import Foundation"), count: 1},
		{name: "leading tab", src: src(1, "\timport Foundation"), count: 1},
		{name: "leading blank line", src: src(1, "", "import Foundation"), count: 1},
		{name: "empty file", src: src(0), count: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Len(t, checkLeadingWhitespace(tt.src, lint.Limits{}), tt.count)
		})
	}
}

func TestCheckTerminatingNewline(t *testing.T) {
	t.Parallel()

	t.Run("single trailing newline is clean", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, checkTerminatingNewline(src(1, "let a = 1"), lint.Limits{}))
	})

	t.Run("missing newline flagged", func(t *testing.T) {
		t.Parallel()
		got := checkTerminatingNewline(src(0, "let a = 1"), lint.Limits{})
		require.Len(t, got, 1)
		assert.Contains(t, got[0].Message, "does not end with a newline")
	})

	t.Run("extra blank lines flagged", func(t *testing.T) {
		t.Parallel()
		got := checkTerminatingNewline(src(3, "let a = 1"), lint.Limits{})
		require.Len(t, got, 1)
		assert.Contains(t, got[0].Message, "2 blank lines")
	})
}

func TestCheckMultipleBlankLines(t *testing.T) {
	t.Parallel()

	got := checkMultipleBlankLines(src(1,
		"let a = 1",
		"",
		"",
		"",
		"let b = 2",
		"",
		"let c = 3",
	), lint.Limits{})

	// One violation per run of blanks, not per blank line.
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Line)
}

func TestCheckTrailingSemicolon(t *testing.T) {
	t.Parallel()

	got := checkTrailingSemicolon(src(1, "let a = 1;", "let b = 2", "let c = 3;  "), lint.Limits{})

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Line)
	assert.Equal(t, 10, got[0].Column)
	assert.Equal(t, 3, got[1].Line)
}

func TestCheckTodoSyntax(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		line  string
		count int
	}{
		{name: "well-formed", line: "// TODO: fix retain cycle", count: 0},
		{name: "missing colon", line: "// TODO fix retain cycle", count: 1},
		{name: "lowercase", line: "// todo: fix retain cycle", count: 1},
		{name: "bare word outside a comment", line: "// handle todo later", count: 1},
		{name: "todo embedded in identifier", line: "let todoList = []", count: 0},
		{name: "unrelated line", line: "let items = []", count: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Len(t, checkTodoSyntax(src(1, tt.line), lint.Limits{}), tt.count)
		})
	}
}

func TestCheckMaxLineLength(t *testing.T) {
	t.Parallel()

	long := "let value = \"aaaaaaaaaaaaaaaaaaaa\""
	limits := lint.Limits{LineLength: 20}

	got := checkMaxLineLength(src(1, "short", long), limits)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Line)
	assert.Equal(t, 21, got[0].Column)
	assert.Contains(t, got[0].Message, "exceeds 20 characters")

	t.Run("zero limit disables the check", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, checkMaxLineLength(src(1, long), lint.Limits{}))
	})
}

func TestCheckMaxFileLength(t *testing.T) {
	t.Parallel()

	lines := make([]string, 5)
	for i := range lines {
		lines[i] = "let x = 1"
	}

	got := checkMaxFileLength(&Source{Lines: lines, TrailingNewlines: 1}, lint.Limits{FileLength: 3})
	require.Len(t, got, 1)
	assert.Equal(t, 4, got[0].Line)
	assert.Contains(t, got[0].Message, "found 5")

	t.Run("zero limit disables the check", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, checkMaxFileLength(&Source{Lines: lines}, lint.Limits{}))
	})
}
