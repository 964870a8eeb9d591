package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"go-query-cache/internal/cache/query"
	"go-query-cache/internal/interfaces"
	"go-query-cache/internal/mockapi"
)

// Query names used for rule lookup and key building
const (
	QueryItems           = "caching-data"
	QueryItemsByCategory = "items-by-category"
)

// ItemsObservation is the observation type served by QueryService
type ItemsObservation = query.Observation[[]mockapi.DataItem]

// Ensure QueryService implements interfaces.ItemsService
var _ interfaces.ItemsService = (*QueryService)(nil)

// QueryService caches the demo item queries behind the request cache
type QueryService struct {
	client     *query.Client[[]mockapi.DataItem]
	source     interfaces.ItemsSource
	rules      interfaces.QueryRules
	keyBuilder interfaces.KeyBuilder
	logger     *zap.Logger

	itemsKey      query.Key
	errorItemsKey query.Key
}

type itemsParams struct {
	ErrorMode bool `json:"errorMode"`
}

type categoryParams struct {
	Category string `json:"category"`
}

// NewQueryService creates a new query service instance
func NewQueryService(
	client *query.Client[[]mockapi.DataItem],
	source interfaces.ItemsSource,
	rules interfaces.QueryRules,
	keyBuilder interfaces.KeyBuilder,
	logger *zap.Logger,
) (*QueryService, error) {
	itemsKey, err := keyBuilder.Build(QueryItems, itemsParams{ErrorMode: false})
	if err != nil {
		return nil, fmt.Errorf("failed to build items key: %w", err)
	}
	errorItemsKey, err := keyBuilder.Build(QueryItems, itemsParams{ErrorMode: true})
	if err != nil {
		return nil, fmt.Errorf("failed to build error items key: %w", err)
	}

	return &QueryService{
		client:        client,
		source:        source,
		rules:         rules,
		keyBuilder:    keyBuilder,
		logger:        logger,
		itemsKey:      itemsKey,
		errorItemsKey: errorItemsKey,
	}, nil
}

// Items observes the item list. With wait set the call blocks until the first
// settled state instead of returning a loading observation.
func (s *QueryService) Items(ctx context.Context, errorMode bool, wait bool) (ItemsObservation, error) {
	key, fetch := s.items(errorMode)
	return s.observe(ctx, QueryItems, key, fetch, wait)
}

// RefetchItems forces a new fetch of the item list
func (s *QueryService) RefetchItems(errorMode bool) ItemsObservation {
	key, fetch := s.items(errorMode)
	return s.client.Refetch(key, fetch, s.rules.OptionsFor(QueryItems)...)
}

// ItemsByCategory observes the items of one category
func (s *QueryService) ItemsByCategory(ctx context.Context, category string, wait bool) (ItemsObservation, error) {
	key, err := s.keyBuilder.Build(QueryItemsByCategory, categoryParams{Category: category})
	if err != nil {
		return ItemsObservation{}, fmt.Errorf("failed to build category key: %w", err)
	}
	fetch := func(ctx context.Context) ([]mockapi.DataItem, error) {
		return s.source.FetchDataByCategory(ctx, category)
	}
	return s.observe(ctx, QueryItemsByCategory, key, fetch, wait)
}

// CreateItem creates an item and invalidates every cached item query
func (s *QueryService) CreateItem(ctx context.Context, in mockapi.NewDataItem) (mockapi.DataItem, error) {
	item, err := s.source.CreateDataItem(ctx, in)
	if err != nil {
		s.logger.Warn("Failed to create item", zap.String("title", in.Title), zap.Error(err))
		return mockapi.DataItem{}, err
	}

	invalidated := s.client.Invalidate(func(k query.Key) bool {
		name := k.String()
		return strings.HasPrefix(name, QueryItems) || strings.HasPrefix(name, QueryItemsByCategory)
	})
	s.logger.Info("Item created",
		zap.Int("id", item.ID),
		zap.Int("invalidated_queries", invalidated))
	return item, nil
}

// SubscribeItems delivers every state change of the item list to fn
func (s *QueryService) SubscribeItems(errorMode bool, fn func(ItemsObservation)) func() {
	key, _ := s.items(errorMode)
	return s.client.Subscribe(key, fn)
}

func (s *QueryService) items(errorMode bool) (query.Key, query.FetchFunc[[]mockapi.DataItem]) {
	if errorMode {
		return s.errorItemsKey, s.source.FetchDataWithError
	}
	return s.itemsKey, s.source.FetchData
}

func (s *QueryService) observe(ctx context.Context, name string, key query.Key, fetch query.FetchFunc[[]mockapi.DataItem], wait bool) (ItemsObservation, error) {
	opts := s.rules.OptionsFor(name)
	if !wait {
		return s.client.Request(key, fetch, opts...), nil
	}

	if _, err := s.client.Fetch(ctx, key, fetch, opts...); err != nil {
		if errors.Is(err, query.ErrClosed) || ctx.Err() != nil {
			return ItemsObservation{}, err
		}
		// Terminal fetch failures are reported through the observation
		s.logger.Debug("Query settled with error", zap.String("key", key.String()), zap.Error(err))
	}

	obs, _ := s.client.Peek(key)
	return obs, nil
}
