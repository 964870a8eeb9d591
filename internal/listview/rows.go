package listview

import (
	"fmt"
	"math/rand/v2"
	"time"
)

var rowCategories = []string{"tech", "design", "business", "marketing"}

// maxRowAge bounds how far back a generated row date may lie
const maxRowAge = 10_000_000_000 * time.Millisecond

// Row is one entry of the virtualized list
type Row struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Views       int    `json:"views"`
}

// RowSource derives rows from their index, so huge lists need no storage.
// Equal seeds and bases yield equal rows.
type RowSource struct {
	Base time.Time
	Seed uint64
}

// RowAt builds the row at index
func (s RowSource) RowAt(index int) Row {
	rng := rand.New(rand.NewPCG(s.Seed, uint64(index)))
	n := index + 1
	age := time.Duration(rng.Int64N(int64(maxRowAge)))
	return Row{
		ID:          n,
		Title:       fmt.Sprintf("Item %d", n),
		Description: fmt.Sprintf("This is the description of item %d. It is rendered efficiently through virtualization.", n),
		Category:    rowCategories[index%len(rowCategories)],
		Date:        s.Base.Add(-age).Format(time.DateOnly),
		Views:       rng.IntN(10000),
	}
}

// Rows builds the rows of r
func (s RowSource) Rows(r IndexRange) []Row {
	rows := make([]Row, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		rows = append(rows, s.RowAt(i))
	}
	return rows
}

// GenerateRows builds the first n rows of a source seeded with zero
func GenerateRows(n int, base time.Time) []Row {
	if n <= 0 {
		return []Row{}
	}
	s := RowSource{Base: base}
	return s.Rows(IndexRange{Start: 0, End: n})
}
