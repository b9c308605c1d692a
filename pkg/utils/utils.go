package utils

import (
	"crypto/rand"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	SanitizeString(input string) string
}

type utils struct {
	tagPattern *regexp.Regexp
}

func New() IUtils {
	return &utils{
		tagPattern: regexp.MustCompile(`<[^>]*>`),
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// SanitizeString strips markup from user-supplied text, keeping the content.
func (u *utils) SanitizeString(input string) string {
	if input == "" {
		return ""
	}

	cleaned := u.tagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(cleaned)
}
