package filter

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqadmin/internal/domain"
)

func TestNormalizeDateRange(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "afternoon bounds",
			start:    time.Date(2024, 3, 5, 15, 4, 5, 6, time.UTC),
			end:      time.Date(2024, 3, 9, 23, 59, 59, 0, time.UTC),
			wantFrom: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "end of month rolls over",
			start:    time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			end:      time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC),
			wantFrom: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "end of year rolls over",
			start:    time.Date(2023, 12, 31, 8, 0, 0, 0, time.UTC),
			end:      time.Date(2023, 12, 31, 8, 0, 0, 0, time.UTC),
			wantFrom: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "dst change day keeps midnight",
			start:    time.Date(2024, 3, 31, 10, 0, 0, 0, loc),
			end:      time.Date(2024, 3, 30, 22, 0, 0, 0, loc),
			wantFrom: time.Date(2024, 3, 31, 0, 0, 0, 0, loc),
			wantTo:   time.Date(2024, 3, 31, 0, 0, 0, 0, loc),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Normalize(FormValues{Date: &DateRange{Start: tc.start, End: tc.end}})
			require.NotNil(t, c.FromDate)
			require.NotNil(t, c.ToDate)
			assert.True(t, tc.wantFrom.Equal(*c.FromDate), "from: got %s want %s", c.FromDate, tc.wantFrom)
			assert.True(t, tc.wantTo.Equal(*c.ToDate), "to: got %s want %s", c.ToDate, tc.wantTo)

			h, m, s := c.FromDate.Clock()
			assert.Zero(t, h+m+s+c.FromDate.Nanosecond())
			h, m, s = c.ToDate.Clock()
			assert.Zero(t, h+m+s+c.ToDate.Nanosecond())
		})
	}
}

func TestNormalizeWithoutDates(t *testing.T) {
	c := Normalize(FormValues{Type: " partner ", Status: "blocked"})

	assert.Equal(t, "partner", c.Type)
	assert.Equal(t, domain.StatusBlocked, c.Status)
	assert.Nil(t, c.FromDate)
	assert.Nil(t, c.ToDate)
}

func TestNormalizeOpenEndedRange(t *testing.T) {
	start := time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC)
	c := Normalize(FormValues{Date: &DateRange{Start: start}})

	require.NotNil(t, c.FromDate)
	assert.Nil(t, c.ToDate)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *c.FromDate)
}

func TestPanelConfirmPassesNormalizedCriteria(t *testing.T) {
	var got []domain.Criteria
	cleared := 0
	p := &Panel{
		OnConfirm: func(c domain.Criteria) { got = append(got, c) },
		OnClear:   func() { cleared++ },
	}

	p.Confirm(FormValues{
		Status: "ACTIVE",
		Date: &DateRange{
			Start: time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC),
			End:   time.Date(2024, 1, 4, 9, 30, 0, 0, time.UTC),
		},
	})

	require.Len(t, got, 1)
	assert.Equal(t, 0, cleared)
	assert.Equal(t, domain.StatusActive, got[0].Status)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), *got[0].ToDate)
}

func TestPanelClearDoesNotConfirm(t *testing.T) {
	confirmed := 0
	cleared := 0
	p := &Panel{
		OnConfirm: func(domain.Criteria) { confirmed++ },
		OnClear:   func() { cleared++ },
	}

	p.Clear()

	assert.Equal(t, 1, cleared)
	assert.Equal(t, 0, confirmed)
}

func TestPanelNilCallbacks(t *testing.T) {
	p := &Panel{}
	assert.NotPanics(t, func() {
		p.Confirm(FormValues{Type: "x"})
		p.Clear()
	})
}

func TestParseForm(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	t.Run("range with dots", func(t *testing.T) {
		v, err := ParseForm("", "", "2024-01-02..2024-01-09", time.UTC)
		require.NoError(t, err)
		require.NotNil(t, v.Date)
		assert.Equal(t, day(2024, 1, 2), v.Date.Start)
		assert.Equal(t, day(2024, 1, 9), v.Date.End)
	})

	t.Run("whitespace separated", func(t *testing.T) {
		v, err := ParseForm("", "", " 2024-01-02   2024-01-03 ", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, day(2024, 1, 3), v.Date.End)
	})

	t.Run("single day", func(t *testing.T) {
		v, err := ParseForm("", "", "2024-05-05", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, v.Date.Start, v.Date.End)
	})

	t.Run("open end", func(t *testing.T) {
		v, err := ParseForm("", "", "2024-05-05..", time.UTC)
		require.NoError(t, err)
		assert.True(t, v.Date.End.IsZero())
		c := Normalize(v)
		assert.Nil(t, c.ToDate)
	})

	t.Run("empty dates", func(t *testing.T) {
		v, err := ParseForm("t", "s", "", time.UTC)
		require.NoError(t, err)
		assert.Nil(t, v.Date)
		assert.Equal(t, "t", v.Type)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := ParseForm("", "", "2024-13-01", time.UTC)
		require.Error(t, err)
	})

	t.Run("too many dates", func(t *testing.T) {
		_, err := ParseForm("", "", "2024-01-01 2024-01-02 2024-01-03", time.UTC)
		require.Error(t, err)
	})
}
