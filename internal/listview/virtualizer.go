package listview

// Virtualizer maps a scroll position to the slice of rows worth rendering
type Virtualizer interface {
	VisibleRange(offset, viewport int) IndexRange
}

// IndexRange is a half-open row interval [Start, End) with item placement
type IndexRange struct {
	Start     int           `json:"start"`
	End       int           `json:"end"`
	TotalSize int           `json:"totalSize"`
	Items     []VirtualItem `json:"items"`
}

// Len is the number of rows in the range
func (r IndexRange) Len() int {
	return r.End - r.Start
}

// VirtualItem is one rendered row and its pixel placement
type VirtualItem struct {
	Index int `json:"index"`
	Start int `json:"start"`
	Size  int `json:"size"`
}

// FixedVirtualizer virtualizes Count rows of ItemSize pixels each,
// rendering Overscan extra rows on both sides of the viewport.
type FixedVirtualizer struct {
	Count    int
	ItemSize int
	Overscan int
}

var _ Virtualizer = FixedVirtualizer{}

// TotalSize is the scroll height of the whole list
func (v FixedVirtualizer) TotalSize() int {
	if v.Count <= 0 || v.ItemSize <= 0 {
		return 0
	}
	return v.Count * v.ItemSize
}

// VisibleRange returns the rows intersecting [offset, offset+viewport) plus overscan.
// Offsets past the end are clamped so the last page stays visible.
func (v FixedVirtualizer) VisibleRange(offset, viewport int) IndexRange {
	total := v.TotalSize()
	r := IndexRange{TotalSize: total, Items: []VirtualItem{}}
	if total == 0 || viewport <= 0 {
		return r
	}

	if maxOffset := total - viewport; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}

	first := offset / v.ItemSize
	last := (offset + viewport - 1) / v.ItemSize
	if last >= v.Count {
		last = v.Count - 1
	}

	overscan := max(v.Overscan, 0)
	r.Start = max(first-overscan, 0)
	r.End = min(last+1+overscan, v.Count)

	r.Items = make([]VirtualItem, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		r.Items = append(r.Items, VirtualItem{Index: i, Start: i * v.ItemSize, Size: v.ItemSize})
	}
	return r
}
