package auth

import "strings"

const specialChars = "@$!%*#?&"

// PasswordIssues returns the unmet structural rules for a candidate
// password. All five must pass before a verification code is generated.
func PasswordIssues(password string) []string {
	var issues []string
	if len(password) < 8 {
		issues = append(issues, "minimum 8 characters")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }) {
		issues = append(issues, "one lowercase letter")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		issues = append(issues, "one uppercase letter")
	}
	if !strings.ContainsAny(password, specialChars) {
		issues = append(issues, "one special character ("+specialChars+")")
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		issues = append(issues, "one numeric digit")
	}
	return issues
}
