package mockapi

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DataItem is one article of the demo data set
type DataItem struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CreatedAt   string `json:"createdAt"`
	Views       int    `json:"views"`
	Status      string `json:"status"`
}

// NewDataItem is the payload for CreateDataItem
type NewDataItem struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required"`
	CreatedAt   string `json:"createdAt"`
	Views       int    `json:"views" validate:"gte=0"`
	Status      string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// MockResponse is the success body of MockFetch
type MockResponse struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	Status    string `json:"status"`
}

func seedItems() []DataItem {
	return []DataItem{
		{ID: 1, Title: "Frontend development guide", Description: "Modern frontend development with React and TypeScript.", Category: "development", CreatedAt: "2024-01-15", Views: 1250, Status: "active"},
		{ID: 2, Title: "UI/UX design trends", Description: "Interface design trends to watch in 2024 and how to apply them.", Category: "design", CreatedAt: "2024-01-20", Views: 985, Status: "active"},
		{ID: 3, Title: "Performance optimization", Description: "Techniques for faster loading and better runtime performance of web applications.", Category: "optimization", CreatedAt: "2024-01-25", Views: 2100, Status: "active"},
		{ID: 4, Title: "Accessibility guide", Description: "WCAG guidelines and practical implementation for sites everyone can use.", Category: "accessibility", CreatedAt: "2024-02-01", Views: 756, Status: "active"},
		{ID: 5, Title: "Testing strategy and tools", Description: "From unit to end-to-end tests: effective strategies and tooling.", Category: "testing", CreatedAt: "2024-02-05", Views: 1420, Status: "active"},
		{ID: 6, Title: "API design best practices", Description: "RESTful design principles, GraphQL usage and API documentation.", Category: "backend", CreatedAt: "2024-02-10", Views: 1680, Status: "active"},
		{ID: 7, Title: "Database optimization", Description: "Query tuning, index design and strategies for large data sets.", Category: "database", CreatedAt: "2024-02-15", Views: 892, Status: "inactive"},
		{ID: 8, Title: "Secure development guide", Description: "Common web vulnerabilities, mitigations and secure coding guidelines.", Category: "security", CreatedAt: "2024-02-20", Views: 1340, Status: "active"},
	}
}

// FetchData returns every item after the configured delay. It never fails.
func (a *API) FetchData(ctx context.Context) ([]DataItem, error) {
	if err := a.delay(ctx, a.cfg.FetchDelay); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]DataItem(nil), a.items...), nil
}

// FetchDataWithError always fails after the configured delay
func (a *API) FetchDataWithError(ctx context.Context) ([]DataItem, error) {
	if err := a.delay(ctx, a.cfg.ErrorDelay); err != nil {
		return nil, err
	}
	return nil, ErrErrorMode
}

// FetchDataByCategory returns the items of category, or all items for an empty category.
// It fails at CategoryErrorRate.
func (a *API) FetchDataByCategory(ctx context.Context, category string) ([]DataItem, error) {
	if err := a.delay(ctx, a.cfg.CategoryDelay); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.fails(a.cfg.CategoryErrorRate) {
		return nil, fmt.Errorf("failed to load data for category '%s': %w", category, ErrSimulatedFailure)
	}

	if category == "" {
		return append([]DataItem(nil), a.items...), nil
	}
	filtered := make([]DataItem, 0)
	for _, item := range a.items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// CreateDataItem validates and stores a new item with the next free id.
// It fails at CreateErrorRate.
func (a *API) CreateDataItem(ctx context.Context, in NewDataItem) (DataItem, error) {
	if err := a.validate.Struct(in); err != nil {
		return DataItem{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := a.delay(ctx, a.cfg.CreateDelay); err != nil {
		return DataItem{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.fails(a.cfg.CreateErrorRate) {
		return DataItem{}, fmt.Errorf("failed to create data item: %w", ErrSimulatedFailure)
	}

	item := DataItem{
		ID:          a.nextItemID(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		CreatedAt:   in.CreatedAt,
		Views:       in.Views,
		Status:      in.Status,
	}
	if item.CreatedAt == "" {
		item.CreatedAt = a.clock.Now().UTC().Format(time.DateOnly)
	}
	if item.Status == "" {
		item.Status = "active"
	}
	a.items = append(a.items, item)

	a.logger.Debug("Mock item created", zap.Int("id", item.ID), zap.String("category", item.Category))
	return item, nil
}

// Categories lists the distinct categories in insertion order
func (a *API) Categories() []string {
	a.mu.Lock()
	defer a.mu.Unlock()

	seen := make(map[string]struct{}, len(a.items))
	categories := make([]string, 0, len(a.items))
	for _, item := range a.items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories
}

// nextItemID returns max(id)+1. Caller must hold mu.
func (a *API) nextItemID() int {
	maxID := 0
	for _, item := range a.items {
		if item.ID > maxID {
			maxID = item.ID
		}
	}
	return maxID + 1
}

// MockFetch answers the mock API page: a random success payload for "success",
// a random *APIError for "error".
func (a *API) MockFetch(ctx context.Context, scenario string) (MockResponse, error) {
	if scenario != "success" && scenario != "error" {
		return MockResponse{}, fmt.Errorf("%w: %q", ErrUnknownScenario, scenario)
	}
	if err := a.delay(ctx, a.cfg.ScenarioDelay); err != nil {
		return MockResponse{}, err
	}

	now := a.clock.Now().UTC().Format(time.RFC3339)
	if scenario == "error" {
		apiErr := errorResponses[a.pick(len(errorResponses))]
		return MockResponse{}, &apiErr
	}

	resp := successResponses(now)[a.pick(2)]
	return resp, nil
}

func successResponses(now string) []MockResponse {
	return []MockResponse{
		{
			ID:        1,
			Message:   "Data loaded successfully.",
			Timestamp: now,
			Data: map[string]any{
				"users": []map[string]any{
					{"id": 1, "name": "Kim Dev", "role": "Frontend Developer"},
					{"id": 2, "name": "Lee Design", "role": "UI/UX Designer"},
					{"id": 3, "name": "Park Backend", "role": "Backend Developer"},
				},
				"totalCount": 3,
				"page":       1,
			},
			Status: "success",
		},
		{
			ID:        2,
			Message:   "File upload completed.",
			Timestamp: now,
			Data: map[string]any{
				"fileName":   "document.pdf",
				"fileSize":   "2.3MB",
				"uploadedAt": now,
			},
			Status: "success",
		},
	}
}
