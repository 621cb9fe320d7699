package cli

import (
	"errors"

	"github.com/hbjs97/oishell/internal/setup"
	"github.com/hbjs97/oishell/internal/transcript"
)

// ExitCode는 oishell의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다. 재설치 취소도 포함한다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitUnsupportedShell는 셸 방언을 판별하지 못한 경우다.
	ExitUnsupportedShell ExitCode = 2
	// ExitConfigAccess는 셸 시작 파일을 읽거나 쓰지 못했거나 관리 블록이 손상된 경우다.
	ExitConfigAccess ExitCode = 3
	// ExitTranscriptAccess는 transcript 파일 접근 실패다.
	ExitTranscriptAccess ExitCode = 4
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
)

// MapExitCode는 에러 종류에 맞는 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	var accessErr *setup.ConfigAccessError
	var fileErr *transcript.FileAccessError
	switch {
	case errors.Is(err, ErrUnsupportedShell):
		return ExitUnsupportedShell
	case errors.As(err, &accessErr), errors.Is(err, ErrMalformedBlock):
		return ExitConfigAccess
	case errors.As(err, &fileErr):
		return ExitTranscriptAccess
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	default:
		return ExitGeneral
	}
}
