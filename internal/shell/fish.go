package shell

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Fish emits commands for the fish shell.
type Fish struct {
	emitter
}

func NewFish(w io.Writer) *Fish {
	return &Fish{emitter{w: w, quote: FishQuote}}
}

func (f *Fish) Cd(path string) error {
	return f.raw("cd", path)
}

func (f *Fish) Run(command string, args ...string) error {
	return f.command(command, args...)
}

func (f *Fish) SetEnv(key, value string) error {
	if err := ValidateEnvKey(key); err != nil {
		return err
	}
	return f.raw("set -gx "+key, value)
}

// fish reserves this private-use block for raw bytes that are not valid
// UTF-8, so code points in it cannot be written literally either.
const (
	encodeDirectBase = '\uF600'
	encodeDirectCap  = '\uF700'
)

// FishQuote returns s as one fish word. Strings whose only special
// characters are metacharacters are single-quoted verbatim; strings with
// control characters, quotes or backslashes are backslash-escaped.
func FishQuote(s string) string {
	if s == "" {
		return "''"
	}

	var out strings.Builder
	needEscape, needComplex := false, false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		raw := s[i : i+size]
		i += size

		if (r == utf8.RuneError && size == 1) || (r >= encodeDirectBase && r < encodeDirectCap) {
			// \XHH is a single byte in fish, whatever follows.
			for j := 0; j < len(raw); j++ {
				fmt.Fprintf(&out, `\X%02x`, raw[j])
			}
			needEscape, needComplex = true, true
			continue
		}

		switch {
		case r == 0:
			out.WriteString(`\0`)
			needEscape, needComplex = true, true
		case r == '\t':
			out.WriteString(`\t`)
			needEscape, needComplex = true, true
		case r == '\n':
			out.WriteString(`\n`)
			needEscape, needComplex = true, true
		case r == '\b':
			out.WriteString(`\b`)
			needEscape, needComplex = true, true
		case r == '\r':
			out.WriteString(`\r`)
			needEscape, needComplex = true, true
		case r == 0x1b:
			out.WriteString(`\e`)
			needEscape, needComplex = true, true
		case r == '\\' || r == '\'':
			out.WriteByte('\\')
			out.WriteRune(r)
			needEscape, needComplex = true, true
		case strings.ContainsRune(`&$ #^<>()[]{}?*|;"%~`, r):
			out.WriteByte('\\')
			out.WriteRune(r)
			needEscape = true
		case r < 0x20:
			if r < 0x1b {
				out.WriteString(`\c`)
				out.WriteRune('`' + r)
			} else {
				fmt.Fprintf(&out, `\x%02x`, r)
			}
			needEscape, needComplex = true, true
		default:
			out.WriteString(raw)
		}
	}

	if needEscape && !needComplex {
		return "'" + s + "'"
	}
	return out.String()
}
