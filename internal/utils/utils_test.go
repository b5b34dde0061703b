package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		name    string
		dollars float64
		want    int64
	}{
		{"whole dollars", 95, 9500},
		{"typical price", 45, 4500},
		{"fractional", 12.34, 1234},
		{"half rounds away from zero", 0.005, 1},
		{"binary float artifact", 19.99, 1999},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToCents(tt.dollars))
		})
	}
}

func TestCentsToDollars(t *testing.T) {
	assert.Equal(t, 185.00, CentsToDollars(18500))
	assert.Equal(t, 0.01, CentsToDollars(1))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "customer@example.com", "first.last@sub.domain.org"}
	invalid := []string{"", "not-an-email", "a@b", "a b@c.com", "@c.com", "a@.com "}

	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "ethereal-dawn", Slugify("Ethereal Dawn"))
	assert.Equal(t, "12-x-16", Slugify(`12" x 16"`))
	assert.Equal(t, "majestic-art", Slugify("  Majestic -- Art!  "))
}

func TestStrPtr(t *testing.T) {
	s := "hello"
	assert.Equal(t, &s, StrPtr("hello"))
}
