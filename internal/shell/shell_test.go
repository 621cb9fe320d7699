package shell_test

import (
	"strings"
	"testing"

	"github.com/hbjs97/oishell/internal/shell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookScript_Zsh(t *testing.T) {
	script := shell.HookScript(shell.DialectZsh, shell.DefaultHookOptions())
	assert.Contains(t, script, "preexec() {\n    capture_output \"$1\"\n}")
	assert.NotContains(t, script, "DEBUG")
}

func TestHookScript_Bash(t *testing.T) {
	script := shell.HookScript(shell.DialectBash, shell.DefaultHookOptions())
	assert.Contains(t, script, "trap 'capture_output")
	assert.Contains(t, script, "history 1")
	assert.Contains(t, script, `sed "s/^[ ]*[0-9]*[ ]*//"`)
	assert.True(t, strings.HasSuffix(script, "' DEBUG\n"))
	assert.NotContains(t, script, "preexec() {")
}

func TestHookScript_SharedPrefix(t *testing.T) {
	opts := shell.DefaultHookOptions()
	prefix := shell.CommonPrefix(opts)

	zsh := shell.HookScript(shell.DialectZsh, opts)
	bash := shell.HookScript(shell.DialectBash, opts)

	require.True(t, strings.HasPrefix(zsh, prefix))
	require.True(t, strings.HasPrefix(bash, prefix))
	assert.NotEqual(t, strings.TrimPrefix(zsh, prefix), strings.TrimPrefix(bash, prefix))
}

func TestHookScript_Deterministic(t *testing.T) {
	for _, d := range shell.Dialects() {
		t.Run(d.String(), func(t *testing.T) {
			a := shell.HookScript(d, shell.DefaultHookOptions())
			b := shell.HookScript(d, shell.HookOptions{})
			assert.Equal(t, a, b)
		})
	}
}

func TestCommonPrefix_CaptureAndFallback(t *testing.T) {
	prefix := shell.CommonPrefix(shell.DefaultHookOptions())

	assert.Contains(t, prefix, `touch "$HOME/.shell_history_with_output"`)
	assert.Contains(t, prefix, `echo "user: $cmd" >> "$HOME/.shell_history_with_output"`)
	assert.Contains(t, prefix, `echo "computer:" >> "$HOME/.shell_history_with_output"`)
	assert.Contains(t, prefix, `eval "$cmd" >> "$HOME/.shell_history_with_output" 2>&1`)
	assert.Contains(t, prefix, `cat "$HOME/.shell_history_with_output" | interpreter`)
	assert.Contains(t, prefix, "command_not_found_handler() {")
	assert.Contains(t, prefix, "command_not_found_handle() {")
	assert.Contains(t, prefix, "return 0")
}

func TestCommonPrefix_CustomOptions(t *testing.T) {
	prefix := shell.CommonPrefix(shell.HookOptions{
		TranscriptPath:   "/var/tmp/my log",
		AssistantCommand: "assistant",
	})
	assert.Contains(t, prefix, `touch "/var/tmp/my log"`)
	assert.Contains(t, prefix, `cat "/var/tmp/my log" | assistant`)
}

func TestHookScript_UnknownDialect(t *testing.T) {
	assert.Empty(t, shell.HookScript(shell.Dialect("fish"), shell.DefaultHookOptions()))
}

func TestQuotePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"home relative", "~/.log", `"$HOME/.log"`},
		{"home only", "~", `"$HOME"`},
		{"absolute", "/tmp/log", `"/tmp/log"`},
		{"metacharacters", "/tmp/a\"b$c`d", "\"/tmp/a\\\"b\\$c\\`d\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shell.QuotePath(tt.in))
		})
	}
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    shell.Dialect
		wantErr bool
	}{
		{"zsh", shell.DialectZsh, false},
		{"/bin/bash", shell.DialectBash, false},
		{"ZSH", shell.DialectZsh, false},
		{"/opt/homebrew/bin/bash5", shell.DialectBash, false},
		{"/usr/bin/zsh-5.9", shell.DialectZsh, false},
		{"-zsh", shell.DialectZsh, false},
		{"/usr/local/bin/BASH", shell.DialectBash, false},
		{"fish", "", true},
		{"/bin/sh", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := shell.ParseDialect(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, shell.ErrUnknownDialect)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
