package wordle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	day := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-01", DateKey(day))
}

func TestDailyIndexStableWithinDay(t *testing.T) {
	morning := time.Date(2024, 3, 1, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, DailyIndex(morning, "salt", 1000), DailyIndex(night, "salt", 1000))
}

func TestDailyIndexInRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	seen := make(map[int]bool)
	for d := 0; d < 60; d++ {
		idx := DailyIndex(start.AddDate(0, 0, d), "tui-wordle", 7)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 7)
		seen[idx] = true
	}
	assert.Greater(t, len(seen), 1, "index should vary across days")
}

func TestDailyIndexEmptyVocabulary(t *testing.T) {
	assert.Equal(t, 0, DailyIndex(time.Now(), "salt", 0))
}
