package listview

import (
	"errors"
	"fmt"
	"sync"
)

// ErrIndexOutOfRange is returned for drop indices outside the list
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrItemNotFound is returned when a drag refers to an unknown item id
var ErrItemNotFound = errors.New("item not found")

// Reorderer applies a drop of the item at sourceIndex onto targetIndex
type Reorderer[T any] interface {
	OnDrop(sourceIndex, targetIndex int) ([]T, error)
}

// Reorder returns a copy of items with the element at from moved to to.
// Elements between the two positions shift by one.
func Reorder[T any](items []T, from, to int) ([]T, error) {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) {
		return nil, fmt.Errorf("%w: move %d to %d in %d items", ErrIndexOutOfRange, from, to, len(items))
	}

	out := make([]T, len(items))
	copy(out, items)
	if from == to {
		return out, nil
	}

	moved := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moved
	return out, nil
}

// BoardItem is a sortable card
type BoardItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// Board holds an ordered card list safe for concurrent drops
type Board struct {
	mu    sync.RWMutex
	items []BoardItem
}

var _ Reorderer[BoardItem] = (*Board)(nil)

// NewBoard creates a board with a copy of items
func NewBoard(items []BoardItem) *Board {
	return &Board{items: append([]BoardItem(nil), items...)}
}

// Items returns a snapshot of the current order
func (b *Board) Items() []BoardItem {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]BoardItem(nil), b.items...)
}

// OnDrop moves the card at sourceIndex to targetIndex and returns the new order
func (b *Board) OnDrop(sourceIndex, targetIndex int) ([]BoardItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	next, err := Reorder(b.items, sourceIndex, targetIndex)
	if err != nil {
		return nil, err
	}
	b.items = next
	return append([]BoardItem(nil), next...), nil
}

// Move drops the card with activeID onto the position of overID.
// Equal ids leave the order unchanged.
func (b *Board) Move(activeID, overID string) ([]BoardItem, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	from, to := b.indexOf(activeID), b.indexOf(overID)
	if from < 0 {
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, activeID)
	}
	if to < 0 {
		return nil, fmt.Errorf("%w: %q", ErrItemNotFound, overID)
	}

	next, err := Reorder(b.items, from, to)
	if err != nil {
		return nil, err
	}
	b.items = next
	return append([]BoardItem(nil), next...), nil
}

func (b *Board) indexOf(id string) int {
	for i, item := range b.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

var seedBoardItems = []BoardItem{
	{ID: "1", Title: "Homepage banner", Description: "Top banner on the main screen", Priority: "high"},
	{ID: "2", Title: "Product categories", Description: "Order of the product category menu", Priority: "high"},
	{ID: "3", Title: "Popular products", Description: "Display order of popular products", Priority: "medium"},
	{ID: "4", Title: "Event notice", Description: "Announcements for running events", Priority: "medium"},
	{ID: "5", Title: "Customer reviews", Description: "Product reviews and ratings", Priority: "low"},
	{ID: "6", Title: "Recommended products", Description: "Personalized recommendations", Priority: "medium"},
	{ID: "7", Title: "Brand story", Description: "Brand story and introduction", Priority: "low"},
	{ID: "8", Title: "Customer support", Description: "Inquiries and FAQ", Priority: "high"},
	{ID: "9", Title: "Social feed", Description: "Linked SNS content", Priority: "low"},
	{ID: "10", Title: "Newsletter", Description: "Email subscription and news", Priority: "medium"},
}

// DefaultBoardItems returns n cards, starting with the demo set and
// continuing with generated ones when n exceeds it.
func DefaultBoardItems(n int) []BoardItem {
	if n <= 0 {
		return []BoardItem{}
	}
	items := make([]BoardItem, 0, n)
	for i := 0; i < n; i++ {
		if i < len(seedBoardItems) {
			items = append(items, seedBoardItems[i])
			continue
		}
		id := fmt.Sprintf("%d", i+1)
		items = append(items, BoardItem{
			ID:          id,
			Title:       "Card " + id,
			Description: "Generated card " + id,
			Priority:    "low",
		})
	}
	return items
}
