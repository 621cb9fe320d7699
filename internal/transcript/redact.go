package transcript

import "regexp"

var secretPattern = regexp.MustCompile(`\b(ghp_|gho_|github_pat_|ghs_|ghu_|sk-ant-|sk-|AKIA)[A-Za-z0-9_\-]+`)

var secretPrefixes = []string{"ghp_", "gho_", "github_pat_", "ghs_", "ghu_", "sk-ant-", "sk-", "AKIA"}

// Redact는 토큰/API 키 패턴을 접두사만 남기고 마스킹한다.
func Redact(s string) string {
	return secretPattern.ReplaceAllStringFunc(s, func(match string) string {
		for _, prefix := range secretPrefixes {
			if len(match) >= len(prefix) && match[:len(prefix)] == prefix {
				return prefix + "****"
			}
		}
		return match
	})
}
