package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/oishell/internal/transcript"
	"github.com/spf13/cobra"
)

func (a *App) newTranscriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcript",
		Short: "기록된 명령과 출력을 관리한다",
	}
	cmd.AddCommand(
		a.newTranscriptShowCmd(),
		a.newTranscriptResetCmd(),
		a.newTranscriptPathCmd(),
	)
	return cmd
}

func (a *App) newTranscriptShowCmd() *cobra.Command {
	var last int
	var raw bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "transcript를 출력한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTranscriptShow(cmd.OutOrStdout(), last, raw)
		},
	}
	cmd.Flags().IntVarP(&last, "last", "n", 0, "마지막 N개 명령만 출력")
	cmd.Flags().BoolVar(&raw, "raw", false, "토큰 마스킹 없이 출력")
	return cmd
}

func (a *App) runTranscriptShow(out io.Writer, last int, raw bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	records, err := a.transcriptStore(cfg).Read()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "기록이 없습니다.")
		return nil
	}

	text := transcript.Format(transcript.Tail(records, last))
	if !raw {
		text = transcript.Redact(text)
	}
	fmt.Fprint(out, text)
	return nil
}

func (a *App) newTranscriptResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "transcript를 빈 파일로 초기화한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			store := a.transcriptStore(cfg)
			if err := store.Reset(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "transcript 초기화: %s\n", store.Path())
			return nil
		},
	}
}

func (a *App) newTranscriptPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "transcript 파일 경로를 출력한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.transcriptStore(cfg).Path())
			return nil
		},
	}
}
