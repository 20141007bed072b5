package shell

import (
	"io"
	"strings"
)

// Posix emits commands for sh, bash and zsh.
type Posix struct {
	emitter
}

func NewPosix(w io.Writer) *Posix {
	return &Posix{emitter{w: w, quote: PosixQuote}}
}

func (p *Posix) Cd(path string) error {
	return p.raw("cd --", path)
}

func (p *Posix) Run(command string, args ...string) error {
	return p.command(command, args...)
}

func (p *Posix) SetEnv(key, value string) error {
	if err := ValidateEnvKey(key); err != nil {
		return err
	}
	return p.raw("export " + key + "=" + PosixQuote(value))
}

// PosixQuote returns s as one shell word. Words made only of characters
// with no special meaning are left bare; anything else is single-quoted.
func PosixQuote(s string) string {
	if s == "" {
		return "''"
	}
	if isPosixSafe(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isPosixSafe(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.IndexByte("_@%+=:,./-", c) >= 0:
		default:
			return false
		}
	}
	return true
}
