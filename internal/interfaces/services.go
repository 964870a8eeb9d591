package interfaces

import (
	"context"

	"go-query-cache/internal/cache/query"
	"go-query-cache/internal/mockapi"
	"go-query-cache/internal/models"
)

//go:generate mockgen -package=mock -source=services.go -destination=mock/services.go

// ItemsService is the cached data surface of the caching demo
type ItemsService interface {
	Items(ctx context.Context, errorMode bool, wait bool) (query.Observation[[]mockapi.DataItem], error)
	RefetchItems(errorMode bool) query.Observation[[]mockapi.DataItem]
	ItemsByCategory(ctx context.Context, category string, wait bool) (query.Observation[[]mockapi.DataItem], error)
	CreateItem(ctx context.Context, in mockapi.NewDataItem) (mockapi.DataItem, error)
	SubscribeItems(errorMode bool, fn func(query.Observation[[]mockapi.DataItem])) func()
}

// ItemsSource is the item transport the query service caches
type ItemsSource interface {
	FetchData(ctx context.Context) ([]mockapi.DataItem, error)
	FetchDataWithError(ctx context.Context) ([]mockapi.DataItem, error)
	FetchDataByCategory(ctx context.Context, category string) ([]mockapi.DataItem, error)
	CreateDataItem(ctx context.Context, in mockapi.NewDataItem) (mockapi.DataItem, error)
}

// Backend is the uncached part of the mocked transport
type Backend interface {
	MockFetch(ctx context.Context, scenario string) (mockapi.MockResponse, error)
	ListUsers(ctx context.Context) ([]mockapi.User, error)
	GetUser(ctx context.Context, id int) (mockapi.User, error)
	CreateUser(ctx context.Context, in mockapi.NewUser) (mockapi.User, error)
	DeleteUser(ctx context.Context, id int) error
	SimulateError(ctx context.Context) error
}

// DraftStore persists form drafts across navigation
type DraftStore interface {
	Get(id string) (models.Draft, error)
	SetContent(id, content string) (models.Draft, error)
	UpdateForm(id string, patch models.FormPatch) (models.Draft, error)
	SaveAsDraft(id string) (models.Draft, error)
	Clear(id string) error
	Stats(id string) (models.ContentStats, error)
}
