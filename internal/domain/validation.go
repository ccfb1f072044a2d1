package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinNameLength = 2
	MaxNameLength = 50
	MaxMemoLength = 1000

	DateLayout = "2006-01-02"
)

var memberNamePattern = regexp.MustCompile(`^[가-힣a-zA-Z0-9\s\-_.]+$`)

// ValidateMemberName проверяет имя и возвращает его без пробелов по краям
func ValidateMemberName(name string) (string, error) {
	name = strings.TrimSpace(name)
	n := utf8.RuneCountInString(name)
	switch {
	case n == 0:
		return "", newValidationError(CodeInvalidName, "name is required")
	case n < MinNameLength:
		return "", newValidationError(CodeInvalidName, "name must be at least 2 characters")
	case n > MaxNameLength:
		return "", newValidationError(CodeInvalidName, "name cannot exceed 50 characters")
	case !memberNamePattern.MatchString(name):
		return "", newValidationError(CodeInvalidName,
			"name may only contain Hangul, Latin letters, digits, spaces, hyphens, underscores and periods")
	}
	return name, nil
}

func ValidateMemberMemo(memo string) (string, error) {
	if utf8.RuneCountInString(memo) > MaxMemoLength {
		return "", ErrInvalidMemo
	}
	return strings.TrimSpace(memo), nil
}

func ValidateDate(date string) (string, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return "", NewBadRequestError("date is required")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", NewBadRequestError("date must be in YYYY-MM-DD format")
	}
	return date, nil
}
