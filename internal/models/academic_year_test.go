package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAcademicYearOf(t *testing.T) {
	assert.Equal(t, "2025/2026", AcademicYearOf(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025/2026", AcademicYearOf(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024/2025", AcademicYearOf(time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC)))
}

func TestAcademicYearBounds(t *testing.T) {
	from, to := AcademicYearBounds("2025/2026")
	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), to)

	from, to = AcademicYearBounds("garbage")
	assert.True(t, from.IsZero())
	assert.True(t, to.IsZero())
}
