package shell

import (
	"fmt"
	"strings"
)

// DefaultTranscriptPath는 transcript 파일의 기본 위치다.
const DefaultTranscriptPath = "~/.shell_history_with_output"

// DefaultAssistantCommand는 해석하지 못한 명령을 넘겨받는 외부 프로그램이다.
const DefaultAssistantCommand = "interpreter"

// HookOptions는 hook 생성에 필요한 고정 경로와 명령 이름이다.
type HookOptions struct {
	// TranscriptPath는 transcript 파일 경로다. "~/"로 시작하면 $HOME 기준으로 해석된다.
	TranscriptPath string
	// AssistantCommand는 transcript를 stdin으로 받는 명령 이름이다.
	AssistantCommand string
}

// DefaultHookOptions는 기본값으로 채운 HookOptions를 반환한다.
func DefaultHookOptions() HookOptions {
	return HookOptions{
		TranscriptPath:   DefaultTranscriptPath,
		AssistantCommand: DefaultAssistantCommand,
	}
}

func (o HookOptions) withDefaults() HookOptions {
	if o.TranscriptPath == "" {
		o.TranscriptPath = DefaultTranscriptPath
	}
	if o.AssistantCommand == "" {
		o.AssistantCommand = DefaultAssistantCommand
	}
	return o
}

// suffixes는 방언별 preexec 연결 코드 생성기다. 방언 추가는 여기에 한 항목을 더하면 된다.
var suffixes = map[Dialect]func(HookOptions) string{
	DialectZsh:  zshSuffix,
	DialectBash: bashSuffix,
}

// HookScript는 방언에 맞는 hook 본문을 반환한다.
// 모든 방언은 CommonPrefix를 공유하고 방언별 suffix만 다르다.
// d는 검증된 값이어야 한다. 알 수 없는 방언이면 빈 문자열을 반환한다.
func HookScript(d Dialect, opts HookOptions) string {
	suffix, ok := suffixes[d]
	if !ok {
		return ""
	}
	opts = opts.withDefaults()
	return CommonPrefix(opts) + suffix(opts)
}

// CommonPrefix는 transcript 생성, capture_output, command-not-found 핸들러를 정의한다.
func CommonPrefix(opts HookOptions) string {
	opts = opts.withDefaults()
	log := QuotePath(opts.TranscriptPath)

	var b strings.Builder
	b.WriteString("# Create log file if it doesn't exist\n")
	fmt.Fprintf(&b, "touch %s\n", log)
	b.WriteString("\n# Function to capture terminal interaction\n")
	b.WriteString("function capture_output() {\n")
	b.WriteString("    local cmd=$1\n")
	fmt.Fprintf(&b, "    echo \"user: $cmd\" >> %s\n", log)
	fmt.Fprintf(&b, "    echo \"computer:\" >> %s\n", log)
	fmt.Fprintf(&b, "    eval \"$cmd\" >> %s 2>&1\n", log)
	b.WriteString("}\n")
	b.WriteString("\n# Command not found handler that pipes context to the assistant\n")
	b.WriteString("command_not_found_handler() {\n")
	fmt.Fprintf(&b, "    cat %s | %s\n", log, opts.AssistantCommand)
	b.WriteString("    return 0\n")
	b.WriteString("}\n")
	b.WriteString("\n# bash looks the handler up without the trailing r\n")
	b.WriteString("command_not_found_handle() {\n")
	b.WriteString("    command_not_found_handler \"$@\"\n")
	b.WriteString("}\n")
	b.WriteString("\n# Hook into preexec\n")
	return b.String()
}

func zshSuffix(HookOptions) string {
	return "preexec() {\n    capture_output \"$1\"\n}\n"
}

func bashSuffix(HookOptions) string {
	return `trap 'capture_output "$(HISTTIMEFORMAT= history 1 | sed "s/^[ ]*[0-9]*[ ]*//")" ' DEBUG` + "\n"
}

// QuotePath는 경로를 셸 큰따옴표 문자열로 만든다. "~/"는 "$HOME/"으로 바뀐다.
func QuotePath(path string) string {
	prefix := ""
	if path == "~" {
		return `"$HOME"`
	}
	if strings.HasPrefix(path, "~/") {
		prefix = "$HOME/"
		path = strings.TrimPrefix(path, "~/")
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
	return `"` + prefix + r.Replace(path) + `"`
}
