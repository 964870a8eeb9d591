package interfaces

import (
	"go-query-cache/internal/cache/query"
)

//go:generate mockgen -package=mock -source=query_rules.go -destination=mock/query_rules.go

// QueryRules resolves the lifecycle options configured for a named query
type QueryRules interface {
	OptionsFor(name string) []query.Option
}
