package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/oishell/internal/setup"
	"github.com/hbjs97/oishell/internal/shell"
	"github.com/spf13/cobra"
)

func (a *App) newHookCmd() *cobra.Command {
	var shellType string

	cmd := &cobra.Command{
		Use:   "hook",
		Short: "수동 설치용 hook 블록을 출력한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHook(cmd.OutOrStdout(), shellType)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 유형 (zsh, bash). 비우면 $SHELL 사용")
	return cmd
}

func (a *App) runHook(out io.Writer, shellType string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	value := shellType
	if value == "" {
		value = a.getenv("SHELL")
	}
	d, err := shell.ParseDialect(value)
	if err != nil {
		return &setup.UnsupportedShellError{Shell: value}
	}

	fmt.Fprint(out, setup.NewHookBlock(d, cfg.HookOptions()).String())
	return nil
}
