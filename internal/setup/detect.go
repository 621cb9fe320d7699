package setup

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hbjs97/oishell/internal/shell"
)

// Detect는 SHELL 값과 홈 디렉토리로 ShellProfile을 결정한다.
// zsh는 항상 ~/.zshrc를 사용하고, bash는 ~/.bashrc, ~/.bash_profile 중 먼저 존재하는 파일을 사용한다.
// 판별할 수 없으면 *UnsupportedShellError를 반환한다.
func Detect(shellEnv, home string) (*ShellProfile, error) {
	d, _ := shell.DialectOf(shellEnv)
	switch d {
	case shell.DialectZsh:
		return &ShellProfile{RCPath: filepath.Join(home, ".zshrc"), Dialect: shell.DialectZsh}, nil
	case shell.DialectBash:
		for _, name := range []string{".bashrc", ".bash_profile"} {
			path := filepath.Join(home, name)
			if info, err := os.Stat(path); err == nil && !info.IsDir() {
				return &ShellProfile{RCPath: path, Dialect: shell.DialectBash}, nil
			}
		}
		return nil, &UnsupportedShellError{Shell: shellEnv, Reason: "~/.bashrc와 ~/.bash_profile이 모두 없습니다"}
	default:
		return nil, &UnsupportedShellError{Shell: shellEnv}
	}
}

// DetectFromEnv는 $SHELL과 현재 사용자의 홈 디렉토리로 Detect를 호출한다.
func DetectFromEnv() (*ShellProfile, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("setup.DetectFromEnv: %w", err)
	}
	return Detect(os.Getenv("SHELL"), home)
}
