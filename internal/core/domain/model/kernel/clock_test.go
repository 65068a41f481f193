package kernel_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock_Now(t *testing.T) {
	now := kernel.SystemClock{}.Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond()%int(time.Microsecond))
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	clock := kernel.NewFixedClock(at)

	assert.Equal(t, at, clock.Now())
	assert.Equal(t, at, clock.Now())

	later := at.Add(time.Hour)
	clock.Set(later)
	assert.Equal(t, later, clock.Now())
}
