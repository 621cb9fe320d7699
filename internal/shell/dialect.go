package shell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDialect는 지원하지 않는 셸 이름이 주어졌을 때의 sentinel error다.
var ErrUnknownDialect = errors.New("지원하지 않는 셸")

// Dialect는 hook을 생성할 수 있는 셸 방언이다.
type Dialect string

const (
	// DialectZsh는 zsh다.
	DialectZsh Dialect = "zsh"
	// DialectBash는 bash다.
	DialectBash Dialect = "bash"
)

// Dialects는 지원하는 방언 목록을 판별 우선순위 순서로 반환한다.
func Dialects() []Dialect {
	return []Dialect{DialectZsh, DialectBash}
}

func (d Dialect) String() string {
	return string(d)
}

// Valid는 d가 지원 방언인지 확인한다.
func (d Dialect) Valid() bool {
	_, ok := suffixes[d]
	return ok
}

// DialectOf는 "/opt/homebrew/bin/bash5", "zsh-5.9" 같은 셸 식별 값에서 방언을 찾는다.
// 대소문자를 무시하고 방언 이름이 포함되어 있는지 Dialects 순서(zsh 먼저)로 확인한다.
func DialectOf(value string) (Dialect, bool) {
	lower := strings.ToLower(value)
	for _, d := range Dialects() {
		if strings.Contains(lower, string(d)) {
			return d, true
		}
	}
	return "", false
}

// ParseDialect는 DialectOf와 같지만 판별하지 못하면 ErrUnknownDialect를 반환한다.
func ParseDialect(s string) (Dialect, error) {
	d, ok := DialectOf(s)
	if !ok {
		return "", fmt.Errorf("shell.ParseDialect: %q: %w", s, ErrUnknownDialect)
	}
	return d, nil
}
