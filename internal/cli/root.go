package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/oishell/internal/cmdexec"
	"github.com/hbjs97/oishell/internal/config"
	"github.com/hbjs97/oishell/internal/setup"
	"github.com/hbjs97/oishell/internal/transcript"
	"github.com/spf13/cobra"
)

// App은 CLI 명령이 공유하는 의존성이다. 테스트에서는 각 필드를 대체한다.
type App struct {
	Commander  cmdexec.Commander
	CfgPath    string
	FormRunner setup.FormRunner
	HomeDir    string
	Verbose    bool
	// Getenv는 환경 변수 조회 함수다. nil이면 os.Getenv를 사용한다.
	Getenv func(string) string
	// ParentName은 doctor의 부모 셸 확인에 사용된다. nil이면 실제 프로세스를 조회한다.
	ParentName func(ctx context.Context) (string, error)
}

// NewRootCmd는 실제 환경에 연결된 oishell 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	home := homeDir()
	app := &App{
		Commander:  &cmdexec.RealCommander{},
		CfgPath:    defaultConfigPath(home),
		FormRunner: &setup.HuhFormRunner{},
		HomeDir:    home,
	}
	return app.NewRootCmd()
}

// NewRootCmd는 a를 사용하는 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "oishell",
		Short:        "Open Interpreter 셸 통합 관리 도구",
		SilenceUsage: true,
	}

	if a.HomeDir == "" {
		a.HomeDir = homeDir()
	}
	if a.CfgPath == "" {
		a.CfgPath = defaultConfigPath(a.HomeDir)
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", a.Verbose, "상세 출력")

	cmd.AddCommand(
		a.newInstallCmd(),
		a.newUninstallCmd(),
		a.newStatusCmd(),
		a.newHookCmd(),
		a.newTranscriptCmd(),
		a.newDoctorCmd(),
		a.newConfigCmd(),
	)
	return cmd
}

func (a *App) getenv(key string) string {
	if a.Getenv != nil {
		return a.Getenv(key)
	}
	return os.Getenv(key)
}

func (a *App) loadConfig() (*config.Config, error) {
	return config.Load(a.CfgPath)
}

func (a *App) transcriptStore(cfg *config.Config) *transcript.Store {
	return transcript.New(cfg.TranscriptFile(a.HomeDir))
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}

func defaultConfigPath(home string) string {
	return filepath.Join(home, ".config", "oishell", "config.toml")
}
