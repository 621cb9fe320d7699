// Package transcript manages the on-disk command/output log that the shell
// hook appends to and the assistant reads on an unresolved command.
package transcript

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileAccessError는 transcript 파일을 초기화하거나 읽지 못했을 때 반환된다.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("transcript %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Store는 고정 경로의 transcript 파일이다.
type Store struct {
	path string
}

// New는 path(절대 경로)를 가리키는 Store를 생성한다.
func New(path string) *Store {
	return &Store{path: path}
}

// Path는 transcript 파일 경로를 반환한다.
func (s *Store) Path() string {
	return s.path
}

// Reset은 기존 파일을 지우고 같은 경로에 빈 파일을 만든다 (0600 권한).
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &FileAccessError{Op: "remove", Path: s.path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return &FileAccessError{Op: "mkdir", Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, nil, 0600); err != nil {
		return &FileAccessError{Op: "create", Path: s.path, Err: err}
	}
	return nil
}

// Remove는 transcript 파일을 삭제한다. 파일이 없으면 아무것도 하지 않는다.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &FileAccessError{Op: "remove", Path: s.path, Err: err}
	}
	return nil
}

// Info는 transcript 파일 상태다.
type Info struct {
	Exists bool
	Size   int64
}

// Stat은 파일 존재 여부와 크기를 반환한다.
func (s *Store) Stat() (Info, error) {
	fi, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Info{}, nil
	}
	if err != nil {
		return Info{}, &FileAccessError{Op: "stat", Path: s.path, Err: err}
	}
	return Info{Exists: true, Size: fi.Size()}, nil
}

// Read는 transcript를 레코드 단위로 파싱한다. 파일이 없으면 빈 슬라이스를 반환한다.
func (s *Store) Read() ([]Record, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &FileAccessError{Op: "open", Path: s.path, Err: err}
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, &FileAccessError{Op: "read", Path: s.path, Err: err}
	}
	return records, nil
}
