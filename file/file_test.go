/*
File    : dhadLang/file/file_test.go
Author  : t-011
*/
package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestReadSource reads back a UTF-8 source file, Arabic text included.
func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.dhad")
	src := "دع س = 42;\nخروج(س);\n"
	assert.NoError(t, os.WriteFile(path, []byte(src), 0644))

	got, err := ReadSource(path)
	assert.NoError(t, err)
	assert.Equal(t, src, got)
}

// TestReadSource_MissingFile reports a readable error for a missing path.
func TestReadSource_MissingFile(t *testing.T) {
	_, err := ReadSource(filepath.Join(t.TempDir(), "nope.dhad"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "could not read file")
}

// TestReadSource_InvalidUtf8 rejects files that do not decode.
func TestReadSource_InvalidUtf8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.dhad")
	assert.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x41}, 0644))

	_, err := ReadSource(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

// TestWriteAssembly writes out.asm into the current directory.
func TestWriteAssembly(t *testing.T) {
	dir := t.TempDir()
	oldWd, err := os.Getwd()
	assert.NoError(t, err)
	assert.NoError(t, os.Chdir(dir))
	defer func() { _ = os.Chdir(oldWd) }()

	asm := "global _start\n_start:\n   mov rax, 60\n   mov rdi, 0\n   syscall\n"
	assert.NoError(t, WriteAssembly(asm))

	got, err := os.ReadFile(AsmFileName)
	assert.NoError(t, err)
	assert.Equal(t, asm, string(got))
}
