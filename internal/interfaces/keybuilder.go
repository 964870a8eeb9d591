package interfaces

import (
	"go-query-cache/internal/cache/query"
)

//go:generate mockgen -package=mock -source=keybuilder.go -destination=mock/keybuilder.go

// KeyBuilder canonizes a query name and its parameters into a deterministic key
type KeyBuilder interface {
	Build(name string, params any) (query.Key, error)
}
