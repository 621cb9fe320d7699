package setup

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(message).
			Affirmative("예").
			Negative("아니오").
			Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("setup.RunConfirm: %w", err)
	}
	return confirm, nil
}

// AutoConfirm은 프롬프트 없이 고정된 답을 반환하는 FormRunner다 (--yes).
type AutoConfirm bool

var _ FormRunner = AutoConfirm(false)

// RunConfirm은 a를 그대로 반환한다.
func (a AutoConfirm) RunConfirm(string) (bool, error) {
	return bool(a), nil
}
