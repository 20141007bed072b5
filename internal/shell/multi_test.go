package shell

import (
	"bytes"
	"errors"
	"testing"

	"github.com/alexanderramin/logtime/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenWriter fails every write, like a closed pipe.
type brokenWriter struct{ err error }

func (w brokenWriter) Write([]byte) (int, error) { return 0, w.err }

func TestMulti_BroadcastsToAll(t *testing.T) {
	var a, b bytes.Buffer
	m := NewMulti(NewPosix(&a), NewFish(&b))

	require.NoError(t, m.Cd("/tmp/x y"))
	require.NoError(t, Checkout(m, "main"))

	assert.Equal(t, "cd -- '/tmp/x y'\ngit checkout main\n", a.String())
	assert.Equal(t, "cd '/tmp/x y'\ngit checkout main\n", b.String())
	assert.Equal(t, 2, m.Len())
}

func TestMulti_DropsFailedTarget(t *testing.T) {
	var good bytes.Buffer
	pipeErr := errors.New("broken pipe")
	bad := NewPosix(brokenWriter{pipeErr})

	var dropped []error
	m := NewMulti(bad, NewPosix(&good))
	m.OnDrop = func(sh Shell, err error) {
		assert.Same(t, bad, sh)
		dropped = append(dropped, err)
	}

	require.NoError(t, m.Run("git", "status"), "the composite does not fail")
	require.NoError(t, m.Run("git", "log"))

	assert.Equal(t, 1, m.Len())
	require.Len(t, dropped, 1, "a dropped target is not retried")
	assert.ErrorIs(t, dropped[0], pipeErr)
	assert.Equal(t, "git status\ngit log\n", good.String())
}

func TestMulti_AllTargetsFail(t *testing.T) {
	m := NewMulti(NewPosix(brokenWriter{errors.New("x")}), NewFish(brokenWriter{errors.New("y")}))

	assert.NoError(t, m.SetEnv("A", "1"))
	assert.Zero(t, m.Len())
	assert.NoError(t, m.Cd("/"), "an empty composite is a no-op")
}

func TestMulti_BadKeyDropsNothing(t *testing.T) {
	var buf bytes.Buffer
	m := NewMulti(NewPosix(&buf))

	err := m.SetEnv("NOT-VALID", "1")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 1, m.Len())
	assert.Empty(t, buf.String())
}
