package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/oishell/internal/setup"
	"github.com/hbjs97/oishell/internal/transcript"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// StatusReport는 oishell status의 출력 내용이다.
type StatusReport struct {
	Shell      string           `yaml:"shell"`
	Supported  bool             `yaml:"supported"`
	RCPath     string           `yaml:"rc_path,omitempty"`
	Installed  bool             `yaml:"installed"`
	Transcript TranscriptStatus `yaml:"transcript"`
}

// TranscriptStatus는 transcript 파일 상태다.
type TranscriptStatus struct {
	Path     string `yaml:"path"`
	Exists   bool   `yaml:"exists"`
	Size     int64  `yaml:"size"`
	Commands int    `yaml:"commands"`
}

func (a *App) newStatusCmd() *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "셸 통합 설치 상태를 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := a.collectStatus()
			if err != nil {
				return err
			}
			if asYAML {
				return writeStatusYAML(cmd.OutOrStdout(), report)
			}
			printStatus(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "YAML로 출력")
	return cmd
}

func (a *App) collectStatus() (*StatusReport, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	report := &StatusReport{Shell: a.getenv("SHELL")}
	if profile, err := setup.Detect(report.Shell, a.HomeDir); err == nil {
		report.Supported = true
		report.RCPath = profile.RCPath
		report.Installed, err = setup.IsInstalled(profile.RCPath)
		if err != nil {
			return nil, err
		}
	}

	store := a.transcriptStore(cfg)
	info, err := store.Stat()
	if err != nil {
		return nil, err
	}
	report.Transcript = TranscriptStatus{Path: store.Path(), Exists: info.Exists, Size: info.Size}
	if info.Exists {
		records, err := store.Read()
		if err != nil {
			return nil, err
		}
		report.Transcript.Commands = transcript.CountCommands(records)
	}
	return report, nil
}

func writeStatusYAML(out io.Writer, report *StatusReport) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("cli.status: %w", err)
	}
	return enc.Close()
}

func printStatus(out io.Writer, r *StatusReport) {
	if !r.Supported {
		fmt.Fprintf(out, "셸: %q (지원하지 않음)\n", r.Shell)
	} else {
		fmt.Fprintf(out, "셸: %s\n", r.Shell)
		fmt.Fprintf(out, "  시작 파일: %s\n", r.RCPath)
		if r.Installed {
			fmt.Fprintln(out, "  hook:      설치됨")
		} else {
			fmt.Fprintln(out, "  hook:      없음 ('oishell install' 실행)")
		}
	}
	fmt.Fprintf(out, "transcript: %s\n", r.Transcript.Path)
	if r.Transcript.Exists {
		fmt.Fprintf(out, "  크기: %d bytes, 명령 %d개\n", r.Transcript.Size, r.Transcript.Commands)
	} else {
		fmt.Fprintln(out, "  파일 없음")
	}
}
