package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/letlang/tokenizer"
)

func readTestFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	assert.NoError(t, err)

	return string(data)
}

func TestFormatCmdStdin(t *testing.T) {
	ctx := newTestContext(t, "let   x=1;let y = 2 ;")

	err := (&FormatCmd{}).Run(ctx.Context)
	assert.NoError(t, err)
	assert.Equal(t, "let x = 1;\nlet y = 2;\n", ctx.stdout.String())
}

func TestFormatCmdCheck(t *testing.T) {
	dir := t.TempDir()
	formatted := writeTestFile(t, dir, "ok.let", "let x = 1;\n")
	unformatted := writeTestFile(t, dir, "ng.let", "let x=1;\n")

	ctx := newTestContext(t, "")

	err := (&FormatCmd{Input: formatted, Check: true}).Run(ctx.Context)
	assert.NoError(t, err)

	err = (&FormatCmd{Input: unformatted, Check: true}).Run(ctx.Context)
	assert.IsError(t, err, ErrFileNotFormatted)
	assert.Contains(t, ctx.stderr.String(), "ng.let is not formatted")

	err = (&FormatCmd{Input: dir, Check: true}).Run(ctx.Context)
	assert.IsError(t, err, ErrFileNotFormatted)
	assert.Equal(t, "", ctx.stdout.String())
}

func TestFormatCmdWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.let", "let x=1; // note\n")

	ctx := newTestContext(t, "")

	err := (&FormatCmd{Input: path, Write: true}).Run(ctx.Context)
	assert.NoError(t, err)
	assert.Equal(t, "let x = 1;\n", readTestFile(t, path))
	assert.Contains(t, ctx.stderr.String(), "Formatted: "+path)
	assert.Equal(t, "", ctx.stdout.String())

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestFormatCmdDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	let := writeTestFile(t, dir, "a.let", "let a=1;")
	md := writeTestFile(t, filepath.Join(dir, "sub"), "b.md", "# B\n\n```letlang\nlet b=2;\n```\n")
	txt := writeTestFile(t, dir, "c.txt", "let c=3;")

	ctx := newTestContext(t, "")

	err := (&FormatCmd{Input: dir, Write: true}).Run(ctx.Context)
	assert.NoError(t, err)
	assert.Equal(t, "let a = 1;\n", readTestFile(t, let))
	assert.Equal(t, "# B\n\n```letlang\nlet b = 2;\n```\n", readTestFile(t, md))
	assert.Equal(t, "let c=3;", readTestFile(t, txt))
}

func TestFormatCmdErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeTestFile(t, dir, "bad.let", "let x = #;")
	writeTestFile(t, dir, "good.let", "let y=1;")

	ctx := newTestContext(t, "")

	err := (&FormatCmd{Input: bad}).Run(ctx.Context)
	assert.IsError(t, err, tokenizer.ErrUnexpectedCharacter)

	err = (&FormatCmd{Input: dir, Write: true}).Run(ctx.Context)
	assert.IsError(t, err, ErrFormattingErrors)
	assert.Contains(t, ctx.stderr.String(), "Error formatting "+bad)
	assert.Equal(t, "let y = 1;\n", readTestFile(t, filepath.Join(dir, "good.let")))

	err = (&FormatCmd{Input: filepath.Join(dir, "missing.let")}).Run(ctx.Context)
	assert.Error(t, err)
}

func TestFormatCmdSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "notes.txt", "let x=1;")

	ctx := newTestContext(t, "")

	err := (&FormatCmd{Input: path}).Run(ctx.Context)
	assert.NoError(t, err)
	assert.Contains(t, ctx.stderr.String(), "Skipping non-letlang file")
	assert.Equal(t, "", ctx.stdout.String())
}

func TestFormatCmdDiff(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "main.let", "let x = 1;\nlet   y=2;\n")

	ctx := newTestContext(t, "")

	err := (&FormatCmd{Input: path, Diff: true}).Run(ctx.Context)
	assert.NoError(t, err)
	assert.Equal(t,
		"--- "+path+" (original)\n+++ "+path+" (formatted)\n-let   y=2;\n+let y = 2;\n",
		ctx.stdout.String())
	assert.Equal(t, "let x = 1;\nlet   y=2;\n", readTestFile(t, path))
}
