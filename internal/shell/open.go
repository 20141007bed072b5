package shell

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/alexanderramin/logtime/internal/domain"
)

// Dialect selects an emitter.
type Dialect string

const (
	DialectPosix Dialect = "posix"
	DialectFish  Dialect = "fish"
)

var dialectAliases = map[string]Dialect{
	"sh":    DialectPosix,
	"bash":  DialectPosix,
	"zsh":   DialectPosix,
	"posix": DialectPosix,
	"fish":  DialectFish,
}

// ParseDialect maps a shell name onto its dialect.
func ParseDialect(name string) (Dialect, error) {
	d, ok := dialectAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", domain.Invalid("dialect", "unknown shell %q (want one of %s)", name, strings.Join(DialectNames(), ", "))
	}
	return d, nil
}

// DialectNames lists every accepted shell name.
func DialectNames() []string {
	names := make([]string, 0, len(dialectAliases))
	for n := range dialectAliases {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// New returns an emitter for dialect writing to w.
func New(dialect string, w io.Writer) (Shell, error) {
	d, err := ParseDialect(dialect)
	if err != nil {
		return nil, err
	}
	switch d {
	case DialectFish:
		return NewFish(w), nil
	default:
		return NewPosix(w), nil
	}
}

// File is a Shell writing to a script file the caller sources later.
type File struct {
	Shell
	f *os.File
}

// Open appends commands for dialect to the file at path, creating it when
// missing.
func Open(dialect, path string) (*File, error) {
	if _, err := ParseDialect(dialect); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening shell output: %w", err)
	}
	sh, err := New(dialect, f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &File{Shell: sh, f: f}, nil
}

func (f *File) Name() string { return f.f.Name() }

func (f *File) Close() error { return f.f.Close() }

func (f *File) String() string { return "file " + f.f.Name() }
