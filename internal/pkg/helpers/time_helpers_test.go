package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("bogus", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-03-02"))
	assert.False(t, ValidDate("02/03/2026"))
	assert.False(t, ValidDate("2026-13-40"))
	assert.False(t, ValidDate(""))
}
