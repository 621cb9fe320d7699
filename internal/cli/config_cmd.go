package cli

import (
	"fmt"
	"os"

	"github.com/hbjs97/oishell/internal/config"
	"github.com/spf13/cobra"
)

func (a *App) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "oishell 설정 파일을 관리한다",
	}
	cmd.AddCommand(a.newConfigInitCmd())
	return cmd
}

func (a *App) newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "기본 설정 파일을 생성한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.runConfigInit(force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "설정 파일이 생성되었습니다: %s\n", a.CfgPath)
			fmt.Fprintln(cmd.OutOrStdout(), "값을 수정한 후 oishell install을 다시 실행하세요.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 덮어쓴다")
	return cmd
}

// runConfigInit는 기본값으로 설정 파일을 생성한다.
func (a *App) runConfigInit(force bool) error {
	if _, err := os.Stat(a.CfgPath); err == nil && !force {
		return fmt.Errorf("cli.configInit: 설정 파일이 이미 존재합니다: %s (--force로 덮어쓰기)", a.CfgPath)
	}
	return config.Save(a.CfgPath, config.Default())
}
