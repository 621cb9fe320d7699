package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hbjs97/oishell/internal/shell"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Config는 oishell 설정 파일의 최상위 구조체다.
type Config struct {
	Version          int    `toml:"version"`
	TranscriptPath   string `toml:"transcript_path"`
	AssistantCommand string `toml:"assistant_command"`
	BackupRC         bool   `toml:"backup_rc"`
}

var commandNameRegex = regexp.MustCompile(`^[A-Za-z0-9._+/-]+$`)

// Default는 설정 파일이 없을 때 사용하는 기본 설정이다.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %w", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save는 Header 주석과 함께 설정을 TOML로 저장한다 (0600 권한).
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(Header); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// HookOptions는 설정값으로 hook 생성 옵션을 만든다.
func (c *Config) HookOptions() shell.HookOptions {
	return shell.HookOptions{
		TranscriptPath:   c.TranscriptPath,
		AssistantCommand: c.AssistantCommand,
	}
}

// TranscriptFile은 home 기준으로 펼친 transcript 절대 경로를 반환한다.
func (c *Config) TranscriptFile(home string) string {
	return ExpandHome(c.TranscriptPath, home)
}

// ExpandHome은 "~" 또는 "~/"로 시작하는 경로를 home 기준으로 펼친다.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.TranscriptPath == "" {
		c.TranscriptPath = shell.DefaultTranscriptPath
	}
	if c.AssistantCommand == "" {
		c.AssistantCommand = shell.DefaultAssistantCommand
	}
}

func (c *Config) validate() error {
	if c.Version != 1 {
		return fmt.Errorf("config.Load: %w: 지원하지 않는 version %d", ErrConfig, c.Version)
	}
	if !commandNameRegex.MatchString(c.AssistantCommand) {
		return fmt.Errorf("config.Load: %w: assistant_command는 공백이나 셸 메타문자 없는 단일 명령이어야 합니다: %q", ErrConfig, c.AssistantCommand)
	}
	if !strings.HasPrefix(c.TranscriptPath, "~/") && !filepath.IsAbs(c.TranscriptPath) {
		return fmt.Errorf("config.Load: %w: transcript_path는 절대 경로 또는 ~/ 경로여야 합니다: %q", ErrConfig, c.TranscriptPath)
	}
	return nil
}
