package utils

import "strings"

func IsValidValueOfConstant(value string, constantValues []string) bool {
	for _, r := range constantValues {
		if r == value {
			return true
		}
	}
	return false
}

// Normalize maps a legacy alias to its canonical value; unknown values are
// returned trimmed and unchanged.
func Normalize(value string, aliases map[string]string) string {
	v := strings.TrimSpace(value)
	if canonical, ok := aliases[strings.ToLower(v)]; ok {
		return canonical
	}
	return v
}
