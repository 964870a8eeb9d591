package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRowSource_Deterministic(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s := RowSource{Base: base, Seed: 42}

	assert.Equal(t, s.RowAt(99999), s.RowAt(99999))

	row := s.RowAt(4)
	assert.Equal(t, 5, row.ID)
	assert.Equal(t, "Item 5", row.Title)
	assert.Equal(t, "tech", row.Category)
	assert.GreaterOrEqual(t, row.Views, 0)
	assert.Less(t, row.Views, 10000)

	date, err := time.Parse(time.DateOnly, row.Date)
	assert.NoError(t, err)
	assert.False(t, date.After(base))
	assert.False(t, date.Before(base.Add(-maxRowAge-24*time.Hour)))
}

func TestRowSource_Rows(t *testing.T) {
	s := RowSource{Base: time.Now()}
	v := FixedVirtualizer{Count: 1000, ItemSize: 120, Overscan: 5}

	r := v.VisibleRange(1200, 600)
	rows := s.Rows(r)

	assert.Len(t, rows, r.Len())
	assert.Equal(t, r.Start+1, rows[0].ID)
	assert.Equal(t, r.End, rows[len(rows)-1].ID)
}

func TestGenerateRows(t *testing.T) {
	base := time.Now()

	assert.Empty(t, GenerateRows(0, base))

	rows := GenerateRows(8, base)
	assert.Len(t, rows, 8)
	assert.Equal(t, []string{"tech", "design", "business", "marketing"},
		[]string{rows[0].Category, rows[1].Category, rows[2].Category, rows[3].Category})
}
