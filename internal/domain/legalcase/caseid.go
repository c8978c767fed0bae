package legalcase

import (
	"regexp"
	"strings"

	"github.com/hartlaw/hartlaw/internal/shared/id"
)

const (
	CaseIDPrefix      = "CASE-"
	caseSuffixLength  = 6
	maxClientSlugLen  = 24
	defaultClientSlug = "client"
)

var (
	slugInvalidRun = regexp.MustCompile(`[^a-z0-9\-_]+`)
	slugDashRun    = regexp.MustCompile(`-+`)
	caseIDPattern  = regexp.MustCompile(`^CASE-[a-z0-9]{6}-[a-z0-9\-_]+$`)
)

// SanitizeClientSlug lowercases name, collapses anything outside [a-z0-9-_]
// into single dashes, trims edge dashes and cuts to 24 characters.
func SanitizeClientSlug(name string) string {
	s := strings.ToLower(name)
	s = slugInvalidRun.ReplaceAllString(s, "-")
	s = slugDashRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxClientSlugLen {
		s = s[:maxClientSlugLen]
	}
	if s == "" {
		return defaultClientSlug
	}
	return s
}

// MintCaseID draws a fresh random suffix. Uniqueness is not checked here;
// callers treat a primary-key collision on insert as retryable.
func MintCaseID(clientName string) (string, error) {
	suffix, err := id.Generate(id.LowerAlphanumeric, caseSuffixLength)
	if err != nil {
		return "", err
	}
	return CaseIDPrefix + suffix + "-" + SanitizeClientSlug(clientName), nil
}

func IsCaseID(s string) bool {
	return caseIDPattern.MatchString(s)
}
