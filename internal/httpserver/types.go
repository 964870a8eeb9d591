package httpserver

import (
	"time"

	"go-query-cache/internal/cache/query"
	"go-query-cache/internal/listview"
	"go-query-cache/internal/models"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse acknowledges a request without payload
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ObservationResponse is the wire form of a query observation
type ObservationResponse struct {
	Key            string     `json:"key"`
	Status         string     `json:"status"`
	Data           any        `json:"data"`
	HasData        bool       `json:"hasData"`
	IsLoading      bool       `json:"isLoading"`
	IsFetching     bool       `json:"isFetching"`
	IsError        bool       `json:"isError"`
	IsStale        bool       `json:"isStale"`
	FromCache      bool       `json:"fromCache"`
	Error          string     `json:"error,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
	ErrorUpdatedAt *time.Time `json:"errorUpdatedAt,omitempty"`
	FailureCount   int        `json:"failureCount"`
}

func toObservationResponse[V any](obs query.Observation[V]) *ObservationResponse {
	resp := &ObservationResponse{
		Key:          obs.Key.String(),
		Status:       string(obs.Status),
		HasData:      obs.HasData,
		IsLoading:    obs.IsLoading,
		IsFetching:   obs.IsFetching,
		IsError:      obs.IsError,
		IsStale:      obs.IsStale,
		FromCache:    obs.FromCache(),
		FailureCount: obs.FailureCount,
	}
	if obs.HasData {
		resp.Data = obs.Data
	}
	if obs.Error != nil {
		resp.Error = obs.Error.Error()
	}
	if !obs.UpdatedAt.IsZero() {
		t := obs.UpdatedAt.UTC()
		resp.UpdatedAt = &t
	}
	if !obs.ErrorUpdatedAt.IsZero() {
		t := obs.ErrorUpdatedAt.UTC()
		resp.ErrorUpdatedAt = &t
	}
	return resp
}

// DraftContentRequest replaces the draft text
type DraftContentRequest struct {
	Content *string `json:"content"`
}

// DraftResponse carries a draft and its content summary
type DraftResponse struct {
	Draft models.Draft        `json:"draft"`
	Stats models.ContentStats `json:"stats"`
}

// RangeResponse is the visible window of the virtual list
type RangeResponse struct {
	Range listview.IndexRange `json:"range"`
	Rows  []listview.Row      `json:"rows"`
}

// ReorderRequest moves a board card either by index or by id
type ReorderRequest struct {
	SourceIndex *int   `json:"sourceIndex,omitempty"`
	TargetIndex *int   `json:"targetIndex,omitempty"`
	ActiveID    string `json:"activeId,omitempty"`
	OverID      string `json:"overId,omitempty"`
}

// BoardResponse is the current board order
type BoardResponse struct {
	Items []listview.BoardItem `json:"items"`
}
