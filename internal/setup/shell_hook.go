package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// BackupSuffix는 시작 파일 백업에 붙는 접미사다.
const BackupSuffix = ".oishell-backup"

// Patcher는 셸 시작 파일에 HookBlock을 설치하고 제거한다.
type Patcher struct {
	// Transcript는 설치 직전에 초기화된다. nil이면 초기화하지 않는다.
	Transcript Resetter
	// Backup이 true이면 기록 전에 기존 시작 파일을 RCPath+BackupSuffix로 복사한다.
	Backup bool
}

// Install은 profile.RCPath에 block을 설치한다.
// 이미 블록이 있으면 confirm으로 재설치 여부를 묻고, 거절하면 파일을 건드리지 않고 OutcomeCancelled를 반환한다.
// confirm이 nil이면 거절로 간주한다.
// transcript 초기화는 재설치가 승인된 뒤, 시작 파일을 쓰기 전에 수행한다.
// 시작 파일은 임시 파일에 전체 내용을 쓴 뒤 rename하므로 부분적으로 기록되지 않는다.
func (p *Patcher) Install(profile ShellProfile, block HookBlock, confirm ConfirmFunc) (*InstallResult, error) {
	if err := block.Validate(); err != nil {
		return nil, err
	}

	path := resolveRCPath(profile.RCPath)
	content, mode, exists, err := readRC(path)
	if err != nil {
		return nil, err
	}

	original := content
	result := &InstallResult{RCPath: profile.RCPath}

	if strings.Contains(content, block.StartMarker) {
		stripped, _, err := RemoveBlocks(content, block.StartMarker, block.EndMarker)
		if err != nil {
			return nil, fmt.Errorf("setup.Install: %s: %w", profile.RCPath, err)
		}
		ok := false
		if confirm != nil {
			if ok, err = confirm(); err != nil {
				return nil, fmt.Errorf("setup.Install: %w", err)
			}
		}
		if !ok {
			result.Outcome = OutcomeCancelled
			return result, nil
		}
		content = stripped
		result.Replaced = true
	}

	if p.Transcript != nil {
		if err := p.Transcript.Reset(); err != nil {
			return nil, fmt.Errorf("setup.Install: %w", err)
		}
	}

	if p.Backup && exists {
		backup := profile.RCPath + BackupSuffix
		if err := writeFileAtomic(backup, []byte(original), mode); err != nil {
			return nil, err
		}
		result.BackupPath = backup
	}

	if err := writeFileAtomic(path, []byte(AppendBlock(content, block)), mode); err != nil {
		return nil, err
	}

	result.Outcome = OutcomeInstalled
	return result, nil
}

// Uninstall은 rcPath에서 모든 관리 블록을 제거하고 제거한 블록 수를 반환한다.
// 블록이 없거나 파일이 없으면 파일을 쓰지 않는다.
func (p *Patcher) Uninstall(rcPath string) (int, error) {
	path := resolveRCPath(rcPath)
	content, mode, exists, err := readRC(path)
	if err != nil || !exists {
		return 0, err
	}

	stripped, n, err := RemoveBlocks(content, StartMarker, EndMarker)
	if err != nil {
		return 0, fmt.Errorf("setup.Uninstall: %s: %w", rcPath, err)
	}
	if n == 0 {
		return 0, nil
	}

	if p.Backup {
		if err := writeFileAtomic(rcPath+BackupSuffix, []byte(content), mode); err != nil {
			return 0, err
		}
	}

	stripped = strings.TrimRightFunc(stripped, unicode.IsSpace)
	if stripped != "" {
		stripped += "\n"
	}
	if err := writeFileAtomic(path, []byte(stripped), mode); err != nil {
		return 0, err
	}
	return n, nil
}

// IsInstalled는 rcPath에 시작 마커가 있는지 확인한다. 파일이 없으면 false다.
func IsInstalled(rcPath string) (bool, error) {
	content, _, _, err := readRC(resolveRCPath(rcPath))
	if err != nil {
		return false, err
	}
	return strings.Contains(content, StartMarker), nil
}

// RemoveBlocks는 start부터 그 뒤에 처음 나오는 end까지(양끝 포함)를 모두 잘라낸다.
// 마커 앞뒤의 개행은 그대로 남는다. start 뒤에 end가 없으면 ErrMalformedBlock을 반환한다.
func RemoveBlocks(content, start, end string) (string, int, error) {
	removed := 0
	for {
		i := strings.Index(content, start)
		if i < 0 {
			return content, removed, nil
		}
		j := strings.Index(content[i+len(start):], end)
		if j < 0 {
			return "", removed, fmt.Errorf("%w: %q 뒤에 %q가 없습니다", ErrMalformedBlock, start, end)
		}
		stop := i + len(start) + j + len(end)
		content = content[:i] + content[stop:]
		removed++
	}
}

// AppendBlock은 content의 끝 공백을 제거하고 빈 줄 하나를 둔 뒤 block을 덧붙인다.
func AppendBlock(content string, block HookBlock) string {
	return strings.TrimRightFunc(content, unicode.IsSpace) + "\n\n" + block.String()
}

// resolveRCPath는 심볼릭 링크를 따라간 실제 파일 경로를 반환한다.
// 링크 대상이 없으면 path를 그대로 반환한다.
func resolveRCPath(path string) string {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}
	return path
}

// readRC는 시작 파일 내용과 권한을 읽는다. 파일이 없으면 빈 내용과 0644를 반환한다.
func readRC(path string) (string, fs.FileMode, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", 0644, false, nil
	}
	if err != nil {
		return "", 0, false, &ConfigAccessError{Op: "read", Path: path, Err: err}
	}
	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return string(data), mode, true, nil
}

// writeFileAtomic은 같은 디렉토리의 임시 파일에 쓴 뒤 rename한다.
// 디렉토리에 쓸 권한이 없으면 기존 파일에 전체 내용을 한 번에 덮어쓴다.
func writeFileAtomic(path string, data []byte, mode fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".oishell-tmp-*")
	if errors.Is(err, fs.ErrPermission) {
		return writeFileInPlace(path, data, mode)
	}
	if err != nil {
		return &ConfigAccessError{Op: "write", Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // rename 성공 후에는 no-op

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &ConfigAccessError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &ConfigAccessError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &ConfigAccessError{Op: "write", Path: path, Err: err}
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return &ConfigAccessError{Op: "write", Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &ConfigAccessError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func writeFileInPlace(path string, data []byte, mode fs.FileMode) error {
	if err := os.WriteFile(path, data, mode); err != nil {
		return &ConfigAccessError{Op: "write", Path: path, Err: err}
	}
	return nil
}
