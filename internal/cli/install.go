package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/hbjs97/oishell/internal/setup"
	"github.com/spf13/cobra"
)

// manualInstallURL은 자동 설치가 불가능할 때 안내하는 수동 설치 문서다.
const manualInstallURL = "https://docs.openinterpreter.com/shell"

func (a *App) newInstallCmd() *cobra.Command {
	var yes, backup bool

	cmd := &cobra.Command{
		Use:   "install",
		Short: "셸 시작 파일에 Open Interpreter hook을 설치한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInstall(cmd.OutOrStdout(), yes, backup)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "재설치 확인 없이 진행")
	cmd.Flags().BoolVar(&backup, "backup", false, "수정 전 시작 파일을 백업")
	return cmd
}

func (a *App) runInstall(out io.Writer, yes, backup bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	form := a.FormRunner
	if yes {
		form = setup.AutoConfirm(true)
	}

	runner := &setup.Runner{
		Shell:   a.getenv("SHELL"),
		HomeDir: a.HomeDir,
		Hook:    cfg.HookOptions(),
		Patcher: &setup.Patcher{
			Transcript: a.transcriptStore(cfg),
			Backup:     backup || cfg.BackupRC,
		},
		FormRunner: form,
		Out:        out,
		Verbose:    a.Verbose,
	}
	if _, err := runner.Run(); err != nil {
		reportFailure(out, err)
		return err
	}
	return nil
}

// reportFailure는 사용자가 취할 수 있는 조치를 함께 출력한다.
func reportFailure(out io.Writer, err error) {
	var accessErr *setup.ConfigAccessError
	switch {
	case errors.Is(err, setup.ErrUnsupportedShell):
		fmt.Fprintf(out, "셸을 자동으로 설정할 수 없습니다: %v\n", err)
		fmt.Fprintf(out, "수동 설치 방법: %s\n", manualInstallURL)
	case errors.Is(err, setup.ErrMalformedBlock):
		fmt.Fprintf(out, "시작 파일의 oishell 블록이 손상되었습니다. %s 줄을 찾아 직접 정리하세요.\n", setup.StartMarker)
	case errors.As(err, &accessErr):
		fmt.Fprintf(out, "%s 파일에 접근할 수 없습니다: %v\n", accessErr.Path, accessErr.Err)
	}
}
