package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/hbjs97/oishell/internal/config"
	"github.com/hbjs97/oishell/internal/doctor"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "셸 통합 환경을 진단한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func (a *App) runDoctor(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := a.loadConfig()
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] config: %v\n", err)
		fmt.Fprintln(out, "      Fix: oishell config init --force 실행 또는 설정 파일 확인")
		cfg = config.Default()
	}

	results := doctor.RunAll(ctx, a.Commander, doctor.Input{
		Shell:            a.getenv("SHELL"),
		HomeDir:          a.HomeDir,
		Hook:             cfg.HookOptions(),
		Transcript:       a.transcriptStore(cfg),
		AssistantCommand: cfg.AssistantCommand,
		ParentName:       a.ParentName,
	})
	printDiagResults(out, results)
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(out io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		icon := statusIcon(r.Status)
		fmt.Fprintf(out, "  [%s] %s: %s\n", icon, r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(out, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
