package doctor_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/hbjs97/oishell/internal/doctor"
	"github.com/hbjs97/oishell/internal/setup"
	"github.com/hbjs97/oishell/internal/shell"
	"github.com/hbjs97/oishell/internal/testutil"
	"github.com/hbjs97/oishell/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parent(name string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) { return name, nil }
}

func TestCheckShell(t *testing.T) {
	profile, res := doctor.CheckShell("/bin/zsh", t.TempDir())
	require.NotNil(t, profile)
	assert.Equal(t, doctor.StatusOK, res.Status)

	profile, res = doctor.CheckShell("/usr/bin/fish", t.TempDir())
	assert.Nil(t, profile)
	assert.Equal(t, doctor.StatusFail, res.Status)
	assert.Contains(t, res.Fix, "docs.openinterpreter.com/shell")
}

func TestCheckHookBlock(t *testing.T) {
	home := t.TempDir()
	rc := testutil.WriteFile(t, home, ".zshrc", "alias a=b\n")
	assert.Equal(t, doctor.StatusWarn, doctor.CheckHookBlock(rc).Status)

	block := setup.NewHookBlock(shell.DialectZsh, shell.DefaultHookOptions())
	testutil.WriteFile(t, home, ".zshrc", block.String())
	assert.Equal(t, doctor.StatusOK, doctor.CheckHookBlock(rc).Status)
}

func TestCheckTranscript(t *testing.T) {
	home := t.TempDir()
	store := transcript.New(filepath.Join(home, ".shell_history_with_output"))
	assert.Equal(t, doctor.StatusWarn, doctor.CheckTranscript(store).Status)

	require.NoError(t, store.Reset())
	assert.Equal(t, doctor.StatusOK, doctor.CheckTranscript(store).Status)
}

func TestCheckAssistant(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("/usr/bin/interpreter --version", "Open Interpreter 0.4.3\n", nil)
	res := doctor.CheckAssistant(context.Background(), fake, "interpreter")
	assert.Equal(t, doctor.StatusOK, res.Status)
	assert.Equal(t, "Open Interpreter 0.4.3", res.Message)

	missing := testutil.NewFakeCommander()
	missing.Register("/usr/bin/interpreter --version", "", fmt.Errorf("executable file not found"))
	res = doctor.CheckAssistant(context.Background(), missing, "interpreter")
	assert.Equal(t, doctor.StatusFail, res.Status)
	assert.NotEmpty(t, res.Fix)

	absent := testutil.NewFakeCommander()
	absent.Paths["interpreter"] = ""
	res = doctor.CheckAssistant(context.Background(), absent, "interpreter")
	assert.Equal(t, doctor.StatusFail, res.Status)
	assert.Contains(t, res.Message, "PATH")
	assert.Empty(t, absent.Calls)
}

func TestCheckHookSyntax(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("bash -n -c", "", nil)
	res := doctor.CheckHookSyntax(context.Background(), fake, shell.DialectBash, shell.DefaultHookOptions())
	assert.Equal(t, doctor.StatusOK, res.Status)
	assert.True(t, fake.Called("bash -n -c # Create log file"))

	broken := testutil.NewFakeCommander()
	broken.Register("zsh -n -c", "zsh: parse error near `}'", fmt.Errorf("exit status 1"))
	res = doctor.CheckHookSyntax(context.Background(), broken, shell.DialectZsh, shell.DefaultHookOptions())
	assert.Equal(t, doctor.StatusFail, res.Status)
	assert.Contains(t, res.Message, "parse error")
}

func TestCheckParentShell(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, doctor.StatusOK, doctor.CheckParentShell(ctx, shell.DialectZsh, parent("zsh")).Status)
	assert.Equal(t, doctor.StatusOK, doctor.CheckParentShell(ctx, shell.DialectBash, parent("-bash")).Status)
	assert.Equal(t, doctor.StatusOK, doctor.CheckParentShell(ctx, shell.DialectBash, parent("bash5")).Status)
	assert.Equal(t, doctor.StatusOK, doctor.CheckParentShell(ctx, shell.DialectZsh, parent("zsh-5.9")).Status)

	res := doctor.CheckParentShell(ctx, shell.DialectZsh, parent("bash"))
	assert.Equal(t, doctor.StatusWarn, res.Status)
	assert.Contains(t, res.Fix, "bash")

	res = doctor.CheckParentShell(ctx, shell.DialectZsh, parent("go"))
	assert.Equal(t, doctor.StatusWarn, res.Status)

	res = doctor.CheckParentShell(ctx, shell.DialectZsh, func(context.Context) (string, error) {
		return "", fmt.Errorf("no such process")
	})
	assert.Equal(t, doctor.StatusWarn, res.Status)
}

func TestParentProcessName(t *testing.T) {
	name, err := doctor.ParentProcessName(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}

func TestRunAll_UnsupportedShellSkipsShellChecks(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("/usr/bin/interpreter --version", "0.4.3", nil)
	home := t.TempDir()

	results := doctor.RunAll(context.Background(), fake, doctor.Input{
		Shell:            "/usr/bin/fish",
		HomeDir:          home,
		Transcript:       transcript.New(filepath.Join(home, "log")),
		AssistantCommand: "interpreter",
	})

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"shell", "transcript", "interpreter"}, names)
}

func TestRunAll_Zsh(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("/usr/bin/interpreter --version", "0.4.3", nil)
	fake.Register("zsh -n -c", "", nil)
	home := t.TempDir()

	results := doctor.RunAll(context.Background(), fake, doctor.Input{
		Shell:            "/bin/zsh",
		HomeDir:          home,
		Hook:             shell.DefaultHookOptions(),
		Transcript:       transcript.New(filepath.Join(home, "log")),
		AssistantCommand: "interpreter",
		ParentName:       parent("zsh"),
	})
	require.Len(t, results, 6)
	assert.Equal(t, "parent_shell", results[5].Name)
	assert.Equal(t, doctor.StatusOK, results[5].Status)
}
