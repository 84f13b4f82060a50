package engagement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ist(day, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, RefreshZone)
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"after instant uses today", ist(10, 12, 0), ist(10, 9, 30)},
		{"exactly at instant uses today", ist(10, 9, 30), ist(10, 9, 30)},
		{"before instant uses yesterday", ist(10, 9, 0), ist(9, 9, 30)},
		{"utc input is converted", time.Date(2024, time.March, 10, 3, 59, 0, 0, time.UTC), ist(9, 9, 30)},
		{"month boundary", time.Date(2024, time.March, 1, 1, 0, 0, 0, RefreshZone), time.Date(2024, time.February, 29, 9, 30, 0, 0, RefreshZone)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(Threshold(tt.now)), "got %s", Threshold(tt.now))
		})
	}
}

func TestIsFresh_Boundary(t *testing.T) {
	now := ist(10, 12, 0)

	assert.False(t, IsFresh(ist(10, 9, 29), now), "fetched just before today's instant")
	assert.True(t, IsFresh(ist(10, 9, 31), now), "fetched just after today's instant")
	assert.True(t, IsFresh(ist(10, 9, 30), now), "fetched exactly at the instant")
}

func TestIsFresh_BeforeTodaysInstant(t *testing.T) {
	now := ist(10, 9, 0)

	assert.True(t, IsFresh(ist(9, 10, 0), now), "yesterday after instant is still current")
	assert.False(t, IsFresh(ist(9, 9, 0), now), "yesterday before instant is stale")
}

func TestNextRefresh(t *testing.T) {
	assert.True(t, ist(11, 9, 30).Equal(NextRefresh(ist(10, 9, 30))))
	assert.True(t, ist(10, 9, 30).Equal(NextRefresh(ist(10, 9, 0))))
}
