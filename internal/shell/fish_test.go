package shell

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFishQuote(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"empty", "", "''"},
		{"plain", "main", "main"},
		{"space only", "a b", "'a b'"},
		{"variable", "$HOME", "'$HOME'"},
		{"glob", "*.go", "'*.go'"},
		{"quote", "it's", `it\'s`},
		{"quote with space", "it's here", `it\'s\ here`},
		{"backslash", `a\b`, `a\\b`},
		{"tab", "a\tb", `a\tb`},
		{"newline", "a\nb", `a\nb`},
		{"escape", "\x1b[0m", `\e\[0m`},
		{"control", "\x01", `\ca`},
		{"control z", "\x1a", `\cz`},
		{"file separator", "\x1c", `\x1c`},
		{"nul", "\x00", `\0`},
		{"direct encode", "a\uF6FFb", `a\Xef\X9b\Xbfb`},
		{"invalid utf8", "dir\xff\xfename", `dir\Xff\Xfename`},
		{"invalid utf8 with space", "a \xff", `a\ \Xff`},
		{"non ascii", "ünï", "ünï"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FishQuote(tc.in))
		})
	}
}

func TestFish_Commands(t *testing.T) {
	var buf bytes.Buffer
	sh := NewFish(&buf)

	require.NoError(t, sh.Cd("/src/my project"))
	require.NoError(t, CreateBranch(sh, "fix/z", "origin/main"))
	require.NoError(t, sh.SetEnv("LOGTIME_CODE", "ACME-1-1"))

	assert.Equal(t, "cd '/src/my project'\n"+
		"git checkout -b fix/z --no-track origin/main\n"+
		"set -gx LOGTIME_CODE ACME-1-1\n", buf.String())
}

func TestFish_RunQuotesAssignmentLikeCommand(t *testing.T) {
	var buf bytes.Buffer
	sh := NewFish(&buf)

	require.NoError(t, sh.Run("FOO=bar", "x=y"))
	require.NoError(t, sh.Run("it's=1"))

	assert.Equal(t, "'FOO=bar' x=y\n"+
		"it\\'s=1\n", buf.String())
}

func TestFishQuote_RoundTrip(t *testing.T) {
	fish, err := exec.LookPath("fish")
	if err != nil {
		t.Skip("fish not available")
	}

	inputs := []string{"plain", "two words", "it's", `back\slash`, "(echo nope)", "$var", "a\tb\nc", "{a,b}", "~", "ünï",
		"dir\xff\xfename", "a \x80", "a\uF6FFb"}
	for _, in := range inputs {
		out, err := exec.Command(fish, "--no-config", "-c", "printf %s "+FishQuote(in)).Output()
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, in, string(out))
	}
}
