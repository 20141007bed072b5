// Package shell emits commands for the interactive shell that launched
// logtime. A process cannot change its parent's directory or environment,
// so commands are written as script text for a wrapper function to source
// once logtime exits. Emitters only write; they never read shell state back.
package shell

import (
	"io"
	"regexp"
	"strings"

	"github.com/alexanderramin/logtime/internal/domain"
)

// Shell receives commands to run in the enclosing shell.
type Shell interface {
	Cd(path string) error
	Run(command string, args ...string) error
	SetEnv(key, value string) error
}

// Checkout switches the working tree to branch.
func Checkout(sh Shell, branch string) error {
	return sh.Run("git", "checkout", branch)
}

// CreateBranch creates branch and checks it out. A non-empty source is used
// as the start point without setting it as upstream.
func CreateBranch(sh Shell, branch, source string) error {
	if source == "" {
		return sh.Run("git", "checkout", "-b", branch)
	}
	return sh.Run("git", "checkout", "-b", branch, "--no-track", source)
}

var envKeyPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateEnvKey rejects names no shell accepts as a variable.
func ValidateEnvKey(key string) error {
	if !envKeyPattern.MatchString(key) {
		return domain.Invalid("env key", "%q is not a valid variable name", key)
	}
	return nil
}

// emitter writes one command per line, quoting every word with quote.
type emitter struct {
	w     io.Writer
	quote func(string) string
}

// command writes name and args as one command line. A bare first word
// containing '=' reads as a variable assignment in both dialects, so it is
// single-quoted even when quote would leave it alone.
func (e *emitter) command(name string, args ...string) error {
	word := e.quote(name)
	if word == name && strings.ContainsRune(name, '=') {
		word = "'" + name + "'"
	}
	return e.raw(word, args...)
}

// raw writes a line whose leading words are fixed syntax and must not be
// quoted, followed by quoted arguments.
func (e *emitter) raw(prefix string, words ...string) error {
	buf := []byte(prefix)
	for _, word := range words {
		buf = append(buf, ' ')
		buf = append(buf, e.quote(word)...)
	}
	buf = append(buf, '\n')
	_, err := e.w.Write(buf)
	return err
}
