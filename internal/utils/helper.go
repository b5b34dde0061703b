package utils

import (
	"math"
	"regexp"
	"strings"
)

var (
	nonAlnumRegex  = regexp.MustCompile(`[^a-z0-9]+`)
	multiDashRegex = regexp.MustCompile(`-+`)
	emailRegex     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ToCents converts a decimal dollar amount to integer cents, rounding
// half away from zero. All money arithmetic downstream is done in cents.
func ToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// CentsToDollars is the display-side inverse of ToCents.
func CentsToDollars(cents int64) float64 {
	return float64(cents) / 100
}

// IsValidEmail reports whether the input looks like an email address.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func Slugify(input string) string {
	slug := strings.ToLower(input)
	slug = strings.TrimSpace(slug)
	slug = nonAlnumRegex.ReplaceAllString(slug, "-")
	slug = multiDashRegex.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return slug
}

func StrPtr(s string) *string {
	return &s
}
