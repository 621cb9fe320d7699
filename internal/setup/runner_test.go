package setup

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hbjs97/oishell/internal/shell"
	"github.com/hbjs97/oishell/internal/testutil"
	"github.com/hbjs97/oishell/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFormRunner는 테스트용 FormRunner다.
type mockFormRunner struct {
	confirms []bool
	messages []string
}

func (m *mockFormRunner) RunConfirm(message string) (bool, error) {
	m.messages = append(m.messages, message)
	if len(m.confirms) == 0 {
		return false, nil
	}
	c := m.confirms[0]
	m.confirms = m.confirms[1:]
	return c, nil
}

func newTestRunner(home, shellEnv string, form FormRunner) (*Runner, *bytes.Buffer) {
	out := new(bytes.Buffer)
	logPath := filepath.Join(home, ".shell_history_with_output")
	return &Runner{
		Shell:      shellEnv,
		HomeDir:    home,
		Hook:       shell.DefaultHookOptions(),
		Patcher:    &Patcher{Transcript: transcript.New(logPath)},
		FormRunner: form,
		Out:        out,
	}, out
}

func TestRunner_EndToEndZsh(t *testing.T) {
	home := t.TempDir()
	testutil.WriteFile(t, home, ".zshrc", "")
	r, out := newTestRunner(home, "/bin/zsh", &mockFormRunner{})

	res, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, OutcomeInstalled, res.Outcome)

	rc := testutil.ReadFile(t, filepath.Join(home, ".zshrc"))
	start := strings.Index(rc, StartMarker)
	end := strings.Index(rc, EndMarker)
	require.GreaterOrEqual(t, start, 0)
	require.Greater(t, end, start)
	assert.Contains(t, rc[start:end], "preexec() {")

	info, err := os.Stat(filepath.Join(home, ".shell_history_with_output"))
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	assert.Contains(t, out.String(), "설치되었습니다")
}

func TestRunner_ZshWithoutStartupFile(t *testing.T) {
	home := t.TempDir()
	r, _ := newTestRunner(home, "zsh", nil)

	_, err := r.Run()
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(home, ".zshrc")), StartMarker)
}

func TestRunner_BashUsesDebugTrap(t *testing.T) {
	home := t.TempDir()
	rc := testutil.WriteFile(t, home, ".bash_profile", "export X=1\n")
	r, _ := newTestRunner(home, "/bin/bash", nil)

	res, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, rc, res.RCPath)
	assert.Contains(t, testutil.ReadFile(t, rc), "' DEBUG")
}

func TestRunner_UnsupportedShellTouchesNothing(t *testing.T) {
	home := t.TempDir()
	r, _ := newTestRunner(home, "/usr/bin/fish", nil)

	_, err := r.Run()
	assert.ErrorIs(t, err, ErrUnsupportedShell)

	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunner_ReinstallPrompt(t *testing.T) {
	home := t.TempDir()
	form := &mockFormRunner{confirms: []bool{true, false}}
	r, out := newTestRunner(home, "/bin/zsh", form)

	_, err := r.Run()
	require.NoError(t, err)
	assert.Empty(t, form.messages, "first install should not prompt")

	res, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, OutcomeInstalled, res.Outcome)
	assert.True(t, res.Replaced)

	res, err = r.Run()
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, res.Outcome)
	assert.Equal(t, []string{ReinstallPrompt, ReinstallPrompt}, form.messages)
	assert.Contains(t, out.String(), "설치가 취소되었습니다.")
}

func TestRunner_AutoConfirm(t *testing.T) {
	home := t.TempDir()
	r, _ := newTestRunner(home, "/bin/zsh", AutoConfirm(true))

	_, err := r.Run()
	require.NoError(t, err)
	res, err := r.Run()
	require.NoError(t, err)
	assert.True(t, res.Replaced)
}

func TestRunner_VerbosePrintsHook(t *testing.T) {
	home := t.TempDir()
	r, out := newTestRunner(home, "/bin/zsh", nil)
	r.Verbose = true

	_, err := r.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "감지된 셸: zsh")
	assert.Contains(t, out.String(), StartMarker)
}
