package cli

import (
	"github.com/hbjs97/oishell/internal/config"
	"github.com/hbjs97/oishell/internal/setup"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrUnsupportedShell는 셸 방언을 판별할 수 없을 때의 sentinel error다.
	ErrUnsupportedShell = setup.ErrUnsupportedShell
	// ErrMalformedBlock는 시작 마커 뒤에 끝 마커가 없을 때의 sentinel error다.
	ErrMalformedBlock = setup.ErrMalformedBlock
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
)
