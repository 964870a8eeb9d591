package query

import (
	"time"
)

// Observation is a point-in-time view of a query entry, returned synchronously
// by Request and delivered to subscribers on every state change.
type Observation[V any] struct {
	Key Key

	// Data is the last successful value. Check HasData, the zero value of V is a valid payload.
	Data    V
	HasData bool

	Status Status

	// IsLoading is true only before the first success while a fetch is in flight
	IsLoading bool
	// IsFetching is true whenever any fetch for the key is in flight
	IsFetching bool
	// IsError is true when the latest settled attempt failed and no newer success exists
	IsError bool
	// IsStale is true when Data is present but outside its stale window
	IsStale bool

	// Error is a *FetchError when IsError is set
	Error error

	UpdatedAt      time.Time
	ErrorUpdatedAt time.Time
	FailureCount   int

	refetch func()
}

// Refetch starts a new fetch for the observed key regardless of freshness.
// It does not cancel fetches already in flight.
func (o Observation[V]) Refetch() {
	if o.refetch != nil {
		o.refetch()
	}
}

// FromCache reports whether the observation was answered from memory without a
// pending network round trip.
func (o Observation[V]) FromCache() bool {
	return o.HasData && o.Status == StatusFresh
}
