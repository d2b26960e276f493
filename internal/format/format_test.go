package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 5, 0, 0, time.Local)

	assert.Equal(t, "2024-03-09", Date(ts, false))
	assert.Equal(t, "2024-03-09 14:05", Date(ts, true))
}

func TestDateZeroIsPlaceholder(t *testing.T) {
	assert.Equal(t, Placeholder, Date(time.Time{}, true))
}

func TestOptionalDate(t *testing.T) {
	ts := time.Date(2024, 3, 9, 0, 0, 0, 0, time.Local)

	assert.Equal(t, Placeholder, OptionalDate(nil, false))
	assert.Equal(t, "2024-03-09", OptionalDate(&ts, false))
}

func TestCustomLayouts(t *testing.T) {
	l := NewLayouts("02.01.2006", "")
	ts := time.Date(2024, 3, 9, 14, 5, 0, 0, time.Local)

	assert.Equal(t, "09.03.2024", l.Date(ts, false))
	assert.Equal(t, DefaultDateTimeLayout, l.DateTimeLayout)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "hel…", Truncate("hello", 4))
	assert.Equal(t, "", Truncate("hello", 0))
	assert.Equal(t, "…", Truncate("hello", 1))
}
