package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	t.Run("help exits 0 and prints usage", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		d := NewDriver("bcc", &stdout, &stderr)
		inputs, code, done := d.ParseArgs([]string{"--help"})
		assert.True(t, done)
		assert.Equal(t, 0, code)
		assert.Nil(t, inputs)
		assert.Contains(t, stdout.String(), "usage: bcc")
	})

	t.Run("version exits 0 and prints version", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		d := NewDriver("bcc", &stdout, &stderr)
		_, code, done := d.ParseArgs([]string{"--version"})
		assert.True(t, done)
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), "bcc version")
	})

	t.Run("unrecognized option is fatal", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		d := NewDriver("bcc", &stdout, &stderr)
		_, code, done := d.ParseArgs([]string{"-zzz"})
		assert.True(t, done)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "unrecognized command-line option")
	})

	t.Run("-o with missing filename is reported but not fatal", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		d := NewDriver("bcc", &stdout, &stderr)
		inputs, code, done := d.ParseArgs([]string{"-o"})
		assert.False(t, done)
		assert.Equal(t, 0, code)
		assert.Empty(t, inputs)
		assert.Contains(t, stderr.String(), "missing filename")
		assert.Equal(t, defaultOutput, d.Output)
	})

	t.Run("-o sets output path", func(t *testing.T) {
		d := NewDriver("bcc", &bytes.Buffer{}, &bytes.Buffer{})
		inputs, _, done := d.ParseArgs([]string{"-o", "prog", "main.b"})
		assert.False(t, done)
		assert.Equal(t, "prog", d.Output)
		assert.Equal(t, []string{"main.b"}, inputs)
	})

	t.Run("-S disables assemble and link", func(t *testing.T) {
		d := NewDriver("bcc", &bytes.Buffer{}, &bytes.Buffer{})
		d.ParseArgs([]string{"-S"})
		assert.False(t, d.Assemble)
		assert.False(t, d.Link)
	})

	t.Run("-c assembles but does not link", func(t *testing.T) {
		d := NewDriver("bcc", &bytes.Buffer{}, &bytes.Buffer{})
		d.ParseArgs([]string{"-c"})
		assert.True(t, d.Assemble)
		assert.False(t, d.Link)
	})

	t.Run("non-option arguments are collected as inputs in order", func(t *testing.T) {
		d := NewDriver("bcc", &bytes.Buffer{}, &bytes.Buffer{})
		inputs, _, done := d.ParseArgs([]string{"a.b", "b.b"})
		assert.False(t, done)
		assert.Equal(t, []string{"a.b", "b.b"}, inputs)
	})
}

// TestRun_SkipsNonBFiles exercises the "files not ending in .b are silently
// skipped" rule without touching the filesystem: a non-.b name need not even
// exist, since Run filters argv before opening anything.
func TestRun_SkipsNonBFiles(t *testing.T) {
	var stdout, stderr bytes.Buffer
	d := NewDriver("bcc", &stdout, &stderr)
	code := d.Run([]string{"notes.txt"})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "no input files")
}

// TestRun_WithS writes only the intermediate assembly file and leaves it on
// disk, per the -S contract (spec §6/§7): no .o or linked executable should
// ever be produced in this mode, and the fixed a.s path should survive.
func TestRun_WithS(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	srcPath := "main.b"
	require.NoError(t, os.WriteFile(srcPath, []byte("main() { return; }"), 0o644))

	var stdout, stderr bytes.Buffer
	d := NewDriver("bcc", &stdout, &stderr)
	_, _, done := d.ParseArgs([]string{"-S"})
	require.False(t, done)

	code := d.Run([]string{srcPath})
	require.Equal(t, 0, code, stderr.String())

	asm, err := os.ReadFile(asmPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(asm), ".globl main"))

	_, err = os.Stat(objPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(defaultOutput)
	assert.True(t, os.IsNotExist(err))
}

// TestRun_TeeAsm exercises --tee-asm: the named file should receive the same
// assembly text as a.s, via internal/flushio.WriteFlushers fanning the
// compiler's output out to both sinks.
func TestRun_TeeAsm(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	srcPath := "main.b"
	require.NoError(t, os.WriteFile(srcPath, []byte("main() { return; }"), 0o644))

	var stdout, stderr bytes.Buffer
	d := NewDriver("bcc", &stdout, &stderr)
	_, _, done := d.ParseArgs([]string{"-S", "--tee-asm", "tee.s"})
	require.False(t, done)

	code := d.Run([]string{srcPath})
	require.Equal(t, 0, code, stderr.String())

	asm, err := os.ReadFile(asmPath)
	require.NoError(t, err)
	tee, err := os.ReadFile("tee.s")
	require.NoError(t, err)
	assert.Equal(t, string(asm), string(tee))
}
