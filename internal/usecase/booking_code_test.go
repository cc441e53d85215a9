package usecase

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateBookingCodeFormat(t *testing.T) {
	date := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	code := generateBookingCode(date)
	assert.Regexp(t, regexp.MustCompile(`^BK-20250317-[0-9A-F]{6}$`), code)
}

func TestGenerateBookingCodeVaries(t *testing.T) {
	date := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[generateBookingCode(date)] = true
	}
	// 3 random bytes make a same-day collision across 50 codes unlikely
	assert.Greater(t, len(seen), 1)
}
