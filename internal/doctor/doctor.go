package doctor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hbjs97/oishell/internal/cmdexec"
	"github.com/hbjs97/oishell/internal/setup"
	"github.com/hbjs97/oishell/internal/shell"
	"github.com/hbjs97/oishell/internal/transcript"
	"github.com/shirou/gopsutil/v4/process"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// Input은 RunAll에 필요한 값이다.
type Input struct {
	Shell            string
	HomeDir          string
	Hook             shell.HookOptions
	Transcript       *transcript.Store
	AssistantCommand string
	// ParentName은 부모 프로세스 이름을 조회한다. nil이면 ParentProcessName을 사용한다.
	ParentName func(ctx context.Context) (string, error)
}

// CheckShell은 $SHELL로 셸 방언과 시작 파일을 판별할 수 있는지 확인한다.
func CheckShell(shellEnv, home string) (*setup.ShellProfile, DiagResult) {
	profile, err := setup.Detect(shellEnv, home)
	if err != nil {
		return nil, DiagResult{
			Name:    "shell",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     "zsh 또는 bash를 사용하거나 docs.openinterpreter.com/shell 의 수동 설치 안내를 따르세요",
		}
	}
	return profile, DiagResult{
		Name:    "shell",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s (%s)", profile.Dialect, profile.RCPath),
	}
}

// CheckHookBlock은 시작 파일에 관리 블록이 설치되어 있는지 확인한다.
func CheckHookBlock(rcPath string) DiagResult {
	installed, err := setup.IsInstalled(rcPath)
	switch {
	case err != nil:
		return DiagResult{Name: "hook", Status: StatusFail, Message: err.Error()}
	case !installed:
		return DiagResult{
			Name:    "hook",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s에 hook이 없습니다", rcPath),
			Fix:     "oishell install 실행",
		}
	default:
		return DiagResult{Name: "hook", Status: StatusOK, Message: fmt.Sprintf("%s에 설치됨", rcPath)}
	}
}

// CheckTranscript는 transcript 파일 존재 여부를 확인한다.
func CheckTranscript(store *transcript.Store) DiagResult {
	info, err := store.Stat()
	if err != nil {
		return DiagResult{Name: "transcript", Status: StatusFail, Message: err.Error()}
	}
	if !info.Exists {
		return DiagResult{
			Name:    "transcript",
			Status:  StatusWarn,
			Message: fmt.Sprintf("%s 없음", store.Path()),
			Fix:     "oishell transcript reset 실행",
		}
	}
	return DiagResult{
		Name:    "transcript",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s (%d bytes)", store.Path(), info.Size),
	}
}

// CheckAssistant는 transcript를 넘겨받을 명령이 실행 가능한지 확인한다.
func CheckAssistant(ctx context.Context, cmd cmdexec.Commander, name string) DiagResult {
	path, err := cmd.LookPath(name)
	if err != nil {
		return DiagResult{
			Name:    name,
			Status:  StatusFail,
			Message: fmt.Sprintf("%s를 PATH에서 찾을 수 없습니다", name),
			Fix:     "설치: pip install open-interpreter",
		}
	}
	out, err := cmd.Run(ctx, path, "--version")
	if err != nil {
		return DiagResult{
			Name:    name,
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 실행 실패", name),
			Fix:     "설치: pip install open-interpreter",
		}
	}
	return DiagResult{Name: name, Status: StatusOK, Message: strings.TrimSpace(string(out))}
}

// CheckHookSyntax는 생성된 hook을 해당 셸의 -n 모드로 파싱해 본다.
func CheckHookSyntax(ctx context.Context, cmd cmdexec.Commander, d shell.Dialect, opts shell.HookOptions) DiagResult {
	name := "hook_syntax"
	out, err := cmd.Run(ctx, d.String(), "-n", "-c", shell.HookScript(d, opts))
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = err.Error()
		}
		return DiagResult{
			Name:    name,
			Status:  StatusFail,
			Message: fmt.Sprintf("%s가 hook을 파싱하지 못했습니다: %s", d, msg),
		}
	}
	return DiagResult{Name: name, Status: StatusOK, Message: fmt.Sprintf("%s 문법 검사 통과", d)}
}

// ParentProcessName은 현재 프로세스를 실행한 부모 프로세스의 이름을 반환한다.
func ParentProcessName(ctx context.Context) (string, error) {
	p, err := process.NewProcessWithContext(ctx, int32(os.Getppid()))
	if err != nil {
		return "", fmt.Errorf("doctor.ParentProcessName: %w", err)
	}
	name, err := p.NameWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("doctor.ParentProcessName: %w", err)
	}
	return name, nil
}

// CheckParentShell은 실제로 실행 중인 셸이 $SHELL과 같은 방언인지 확인한다.
// 로그인 셸과 다른 셸에서 실행하면 설치된 hook이 현재 세션에 적용되지 않는다.
func CheckParentShell(ctx context.Context, d shell.Dialect, parentName func(context.Context) (string, error)) DiagResult {
	name, err := parentName(ctx)
	if err != nil {
		return DiagResult{Name: "parent_shell", Status: StatusWarn, Message: fmt.Sprintf("부모 프로세스 확인 실패: %v", err)}
	}
	running, err := shell.ParseDialect(name)
	if err != nil {
		return DiagResult{
			Name:    "parent_shell",
			Status:  StatusWarn,
			Message: fmt.Sprintf("부모 프로세스 %q는 지원 셸이 아닙니다", name),
		}
	}
	if running != d {
		return DiagResult{
			Name:    "parent_shell",
			Status:  StatusWarn,
			Message: fmt.Sprintf("현재 %s에서 실행 중이지만 $SHELL은 %s입니다", running, d),
			Fix:     fmt.Sprintf("SHELL=$(command -v %s) oishell install", running),
		}
	}
	return DiagResult{Name: "parent_shell", Status: StatusOK, Message: fmt.Sprintf("%s에서 실행 중", running)}
}

// RunAll은 모든 진단을 실행한다. 셸 판별에 실패하면 셸 의존 진단은 건너뛴다.
func RunAll(ctx context.Context, cmd cmdexec.Commander, in Input) []DiagResult {
	var results []DiagResult

	profile, res := CheckShell(in.Shell, in.HomeDir)
	results = append(results, res)
	if profile != nil {
		results = append(results, CheckHookBlock(profile.RCPath))
	}
	results = append(results, CheckTranscript(in.Transcript))
	results = append(results, CheckAssistant(ctx, cmd, in.AssistantCommand))
	if profile != nil {
		results = append(results, CheckHookSyntax(ctx, cmd, profile.Dialect, in.Hook))

		parentName := in.ParentName
		if parentName == nil {
			parentName = ParentProcessName
		}
		results = append(results, CheckParentShell(ctx, profile.Dialect, parentName))
	}
	return results
}
