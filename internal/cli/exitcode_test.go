package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hbjs97/oishell/internal/cli"
	"github.com/hbjs97/oishell/internal/setup"
	"github.com/hbjs97/oishell/internal/transcript"
	"github.com/stretchr/testify/assert"
)

func TestMapExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want cli.ExitCode
	}{
		{"nil", nil, cli.ExitSuccess},
		{"general", errors.New("boom"), cli.ExitGeneral},
		{"unsupported shell", &setup.UnsupportedShellError{Shell: "fish"}, cli.ExitUnsupportedShell},
		{"config access", &setup.ConfigAccessError{Op: "write", Path: "/x", Err: errors.New("denied")}, cli.ExitConfigAccess},
		{"malformed block", fmt.Errorf("setup.Install: ~/.zshrc: %w", setup.ErrMalformedBlock), cli.ExitConfigAccess},
		{"transcript access", fmt.Errorf("setup.Install: %w", &transcript.FileAccessError{Op: "create", Path: "/x", Err: errors.New("denied")}), cli.ExitTranscriptAccess},
		{"config file", fmt.Errorf("config.Load: %w", cli.ErrConfig), cli.ExitConfigError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.MapExitCode(tt.err))
		})
	}
}
