package shell

import (
	"fmt"
	"regexp"

	"github.com/alexanderramin/logtime/internal/domain"
)

// Environment variables read by logtime when a wrapper function runs it.
const (
	EnvShellOut     = "LOGTIME_SHELL_OUT"
	EnvShellDialect = "LOGTIME_SHELL_DIALECT"
)

const posixWrapper = `%[1]s() {
    __logtime_out="$(mktemp "${TMPDIR:-/tmp}/logtime.XXXXXX")" || return
    %[3]s="$__logtime_out" %[4]s=%[5]s command %[2]s "$@"
    __logtime_status=$?
    . "$__logtime_out"
    rm -f -- "$__logtime_out"
    unset __logtime_out
    return $__logtime_status
}
`

const fishWrapper = `function %[1]s
    set -l __logtime_out (mktemp -t logtime.XXXXXX)
    or return
    env %[3]s=$__logtime_out %[4]s=%[5]s %[2]s $argv
    set -l __logtime_status $status
    source $__logtime_out
    rm -f -- $__logtime_out
    return $__logtime_status
end
`

var funcNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Wrapper returns shell source defining a function called name that runs
// binary with a fresh script file and sources the file afterwards, so the
// commands logtime emits take effect in the calling shell.
func Wrapper(dialect, name, binary string) (string, error) {
	d, err := ParseDialect(dialect)
	if err != nil {
		return "", err
	}
	if !funcNamePattern.MatchString(name) {
		return "", domain.Invalid("name", "%q is not a valid function name", name)
	}
	switch d {
	case DialectFish:
		return fmt.Sprintf(fishWrapper, name, FishQuote(binary), EnvShellOut, EnvShellDialect, d), nil
	default:
		return fmt.Sprintf(posixWrapper, name, PosixQuote(binary), EnvShellOut, EnvShellDialect, d), nil
	}
}
