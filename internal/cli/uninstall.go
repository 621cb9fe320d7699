package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/oishell/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newUninstallCmd() *cobra.Command {
	var purge bool

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "셸 시작 파일에서 Open Interpreter hook을 제거한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runUninstall(cmd.OutOrStdout(), purge)
		},
	}
	cmd.Flags().BoolVar(&purge, "purge", false, "transcript 파일도 삭제")
	return cmd
}

func (a *App) runUninstall(out io.Writer, purge bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	profile, err := setup.Detect(a.getenv("SHELL"), a.HomeDir)
	if err != nil {
		reportFailure(out, err)
		return err
	}

	patcher := &setup.Patcher{Backup: cfg.BackupRC}
	n, err := patcher.Uninstall(profile.RCPath)
	if err != nil {
		reportFailure(out, err)
		return err
	}
	if n == 0 {
		fmt.Fprintf(out, "%s에 설치된 hook이 없습니다.\n", profile.RCPath)
	} else {
		fmt.Fprintf(out, "%s에서 hook 블록 %d개를 제거했습니다.\n", profile.RCPath, n)
	}

	if purge {
		store := a.transcriptStore(cfg)
		if err := store.Remove(); err != nil {
			return err
		}
		fmt.Fprintf(out, "transcript 삭제: %s\n", store.Path())
	}
	return nil
}
