package setup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hbjs97/oishell/internal/shell"
)

// 셸 시작 파일에서 관리 영역을 감싸는 sentinel 줄이다.
const (
	StartMarker = "### <openinterpreter> ###"
	EndMarker   = "### </openinterpreter> ###"
)

var (
	// ErrUnsupportedShell는 셸 방언을 판별할 수 없을 때의 sentinel error다.
	ErrUnsupportedShell = errors.New("셸 설정을 판별할 수 없습니다")
	// ErrMalformedBlock는 시작 마커 뒤에 종료 마커가 없거나 본문에 마커가 들어 있을 때의 sentinel error다.
	ErrMalformedBlock = errors.New("관리 블록이 손상되었습니다")
)

// UnsupportedShellError는 SHELL 값으로 방언이나 시작 파일을 정할 수 없을 때 반환된다.
type UnsupportedShellError struct {
	Shell  string
	Reason string
}

func (e *UnsupportedShellError) Error() string {
	msg := fmt.Sprintf("지원하지 않는 셸: %q (지원: zsh, bash)", e.Shell)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is는 errors.Is(err, ErrUnsupportedShell)를 지원한다.
func (e *UnsupportedShellError) Is(target error) bool {
	return target == ErrUnsupportedShell
}

// ConfigAccessError는 셸 시작 파일을 읽거나 쓰지 못했을 때 반환된다.
type ConfigAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *ConfigAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConfigAccessError) Unwrap() error {
	return e.Err
}

// ShellProfile은 감지된 셸 방언과 그 시작 파일 경로다.
type ShellProfile struct {
	RCPath  string
	Dialect shell.Dialect
}

// HookBlock은 시작 파일에 삽입되는 마커로 감싼 hook 코드다.
type HookBlock struct {
	StartMarker string
	EndMarker   string
	Body        string
}

// NewHookBlock은 방언에 맞는 hook 본문으로 HookBlock을 만든다.
func NewHookBlock(d shell.Dialect, opts shell.HookOptions) HookBlock {
	return HookBlock{
		StartMarker: StartMarker,
		EndMarker:   EndMarker,
		Body:        shell.HookScript(d, opts),
	}
}

// String은 시작 파일에 기록되는 형태 그대로의 블록을 반환한다.
func (b HookBlock) String() string {
	return b.StartMarker + "\n" + b.Body + "\n" + b.EndMarker + "\n"
}

// Validate는 마커가 비어 있거나 본문에 마커가 포함되어 있으면 에러를 반환한다.
func (b HookBlock) Validate() error {
	if b.StartMarker == "" || b.EndMarker == "" || b.StartMarker == b.EndMarker {
		return fmt.Errorf("setup.HookBlock: %w: 마커가 올바르지 않습니다", ErrMalformedBlock)
	}
	if b.Body == "" {
		return fmt.Errorf("setup.HookBlock: %w: 본문이 비어 있습니다", ErrMalformedBlock)
	}
	if strings.Contains(b.Body, b.StartMarker) || strings.Contains(b.Body, b.EndMarker) {
		return fmt.Errorf("setup.HookBlock: %w: 본문에 마커가 포함되어 있습니다", ErrMalformedBlock)
	}
	return nil
}

// Outcome은 설치 흐름의 종료 상태다.
type Outcome string

const (
	// OutcomeInstalled는 블록이 기록된 상태다.
	OutcomeInstalled Outcome = "installed"
	// OutcomeCancelled는 사용자가 재설치를 거절한 상태다.
	OutcomeCancelled Outcome = "cancelled"
)

// InstallResult는 Install 결과다.
type InstallResult struct {
	Outcome Outcome
	RCPath  string
	// Replaced는 기존 블록을 제거하고 다시 설치했는지 여부다.
	Replaced bool
	// BackupPath는 백업 파일 경로다. 백업하지 않았으면 비어 있다.
	BackupPath string
}

// ConfirmFunc는 기존 블록이 있을 때 재설치 여부를 묻는다.
type ConfirmFunc func() (bool, error)

// Resetter는 설치 시 transcript를 빈 상태로 되돌린다.
type Resetter interface {
	Reset() error
}

// FormRunner는 대화형 프롬프트를 추상화하는 interface다.
// 프로덕션에서는 huh 기반 구현, 테스트에서는 mock을 사용한다.
type FormRunner interface {
	// RunConfirm은 예/아니오 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}
