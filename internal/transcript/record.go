package transcript

import (
	"bufio"
	"io"
	"strings"
)

// Role은 레코드 작성 주체다.
type Role string

const (
	// RoleUser는 사용자가 입력한 명령이다.
	RoleUser Role = "user"
	// RoleComputer는 명령의 stdout/stderr 출력이다.
	RoleComputer Role = "computer"
)

const (
	userPrefix     = "user: "
	computerMarker = "computer:"
)

// Record는 transcript의 한 항목이다.
type Record struct {
	Role Role
	Text string
}

// Parse는 "user: <cmd>" 줄과 "computer:" 마커 줄로 구분된 레코드를 읽는다.
// 첫 마커 이전의 줄은 버린다. 출력 레코드의 Text는 마커 다음 줄들을 개행으로 이은 값이다.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record
	var cur *Record
	var lines []string

	flush := func() {
		if cur != nil {
			cur.Text = strings.Join(lines, "\n")
			records = append(records, *cur)
		}
		cur, lines = nil, nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, userPrefix):
			flush()
			cur = &Record{Role: RoleUser}
			lines = []string{strings.TrimPrefix(line, userPrefix)}
		case line == computerMarker:
			flush()
			cur = &Record{Role: RoleComputer}
		case cur != nil:
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return records, nil
}

// Format은 레코드를 transcript 파일 형식으로 직렬화한다.
func Format(records []Record) string {
	var b strings.Builder
	for _, rec := range records {
		switch rec.Role {
		case RoleUser:
			b.WriteString(userPrefix + rec.Text + "\n")
		case RoleComputer:
			b.WriteString(computerMarker + "\n")
			if rec.Text != "" {
				b.WriteString(rec.Text + "\n")
			}
		}
	}
	return b.String()
}

// Tail은 마지막 n개의 명령(user 레코드와 그 출력)만 남긴다. n <= 0이면 전부 반환한다.
func Tail(records []Record, n int) []Record {
	if n <= 0 {
		return records
	}
	seen := 0
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Role == RoleUser {
			seen++
			if seen == n {
				return records[i:]
			}
		}
	}
	return records
}

// CountCommands는 user 레코드 수를 반환한다.
func CountCommands(records []Record) int {
	n := 0
	for _, rec := range records {
		if rec.Role == RoleUser {
			n++
		}
	}
	return n
}
