/*
File    : dhadLang/file/file.go
Author  : t-011
*/

// Package file implements the compiler's file I/O shell: reading Dhad
// source from disk, writing the generated assembly, and handing the
// result to the external assembler and linker. The core pipeline never
// touches the filesystem; everything it needs goes through here.
package file

import (
	"fmt"
	"os"
	"os/exec"
	"unicode/utf8"
)

// AsmFileName is where the generated assembly lands, in the current
// directory, matching the nasm/ld command lines below.
const AsmFileName = "out.asm"

// ObjFileName and BinFileName are the assembler and linker outputs.
const (
	ObjFileName = "out.o"
	BinFileName = "out"
)

// ReadSource reads a Dhad source file and returns its contents.
// The file must be valid UTF-8; the lexer decodes it to code points.
func ReadSource(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read file '%s': %w", path, err)
	}
	if !utf8.Valid(content) {
		return "", fmt.Errorf("file '%s' is not valid UTF-8", path)
	}
	return string(content), nil
}

// WriteAssembly writes the generated assembly text next to the caller,
// overwriting any previous output.
func WriteAssembly(asm string) error {
	if err := os.WriteFile(AsmFileName, []byte(asm), 0644); err != nil {
		return fmt.Errorf("could not write '%s': %w", AsmFileName, err)
	}
	return nil
}

// Assemble invokes the external assembler and linker on the written
// assembly file:
//
//	nasm -felf64 out.asm
//	ld out.o -o out
//
// Both invocations are fire-and-forget: their exit codes are not
// propagated, matching the compiler's historical behavior. Their output
// still reaches the user's terminal.
func Assemble() {
	nasm := exec.Command("nasm", "-felf64", AsmFileName)
	nasm.Stdout = os.Stdout
	nasm.Stderr = os.Stderr
	_ = nasm.Run()

	ld := exec.Command("ld", ObjFileName, "-o", BinFileName)
	ld.Stdout = os.Stdout
	ld.Stderr = os.Stderr
	_ = ld.Run()
}
