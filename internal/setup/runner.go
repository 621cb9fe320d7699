package setup

import (
	"fmt"
	"io"
	"os"

	"github.com/hbjs97/oishell/internal/shell"
)

// ReinstallPrompt는 기존 블록이 있을 때 표시하는 질문이다.
const ReinstallPrompt = "Open Interpreter 셸 통합이 이미 설치되어 있습니다. 다시 설치할까요?"

// Runner는 install 흐름(감지 → 생성 → 설치)의 진입점이다.
type Runner struct {
	// Shell은 $SHELL 값이다.
	Shell   string
	HomeDir string
	Hook    shell.HookOptions
	Patcher *Patcher
	// FormRunner는 재설치 확인에 사용된다. nil이면 재설치를 거절한다.
	FormRunner FormRunner
	Out        io.Writer
	Verbose    bool
}

// Run은 설치 흐름을 실행한다.
// 셸 감지에 실패하면 어떤 파일도 수정하지 않고 *UnsupportedShellError를 반환한다.
func (r *Runner) Run() (*InstallResult, error) {
	out := r.out()
	fmt.Fprintln(out, "설치를 시작합니다...")

	profile, err := Detect(r.Shell, r.HomeDir)
	if err != nil {
		return nil, err
	}
	if r.Verbose {
		fmt.Fprintf(out, "감지된 셸: %s (%s)\n", profile.Dialect, profile.RCPath)
	}

	block := NewHookBlock(profile.Dialect, r.Hook)
	if r.Verbose {
		fmt.Fprintf(out, "생성된 hook:\n%s", block.String())
	}

	var confirm ConfirmFunc
	if r.FormRunner != nil {
		confirm = func() (bool, error) {
			return r.FormRunner.RunConfirm(ReinstallPrompt)
		}
	}

	patcher := r.Patcher
	if patcher == nil {
		patcher = &Patcher{}
	}
	result, err := patcher.Install(*profile, block, confirm)
	if err != nil {
		return nil, err
	}

	switch result.Outcome {
	case OutcomeCancelled:
		fmt.Fprintln(out, "설치가 취소되었습니다.")
	case OutcomeInstalled:
		if result.BackupPath != "" {
			fmt.Fprintf(out, "백업 생성: %s\n", result.BackupPath)
		}
		fmt.Fprintf(out, "Open Interpreter 셸 통합이 설치되었습니다: %s\n", result.RCPath)
		fmt.Fprintf(out, "셸을 다시 시작하거나 'source %s'를 실행하세요.\n", result.RCPath)
	}
	return result, nil
}

func (r *Runner) out() io.Writer {
	if r.Out != nil {
		return r.Out
	}
	return os.Stdout
}
