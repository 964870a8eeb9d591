package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"go-query-cache/internal/cache/service"
	"go-query-cache/internal/mockapi"
	"go-query-cache/internal/utils"
)

// sseKeepAlive is the interval of comment frames on idle event streams
const sseKeepAlive = 15 * time.Second

// handleItems observes the cached item list
func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	errorMode, wait, ok := s.itemsParams(w, r)
	if !ok {
		return
	}

	obs, err := s.items.Items(r.Context(), errorMode, wait)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResponse(w, toObservationResponse(obs))
}

// handleRefetchItems forces a refetch of the item list
func (s *Server) handleRefetchItems(w http.ResponseWriter, r *http.Request) {
	errorMode, err := utils.ParseBool(r.URL.Query(), "error", false)
	if err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.writeStatusResponse(w, http.StatusAccepted, toObservationResponse(s.items.RefetchItems(errorMode)))
}

// handleItemsByCategory observes the cached items of one category
func (s *Server) handleItemsByCategory(w http.ResponseWriter, r *http.Request) {
	wait, err := utils.ParseBool(r.URL.Query(), "wait", false)
	if err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	obs, err := s.items.ItemsByCategory(r.Context(), mux.Vars(r)["category"], wait)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResponse(w, toObservationResponse(obs))
}

// handleCreateItem creates an item and invalidates the cached item queries
func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req mockapi.NewDataItem
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	item, err := s.items.CreateItem(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeStatusResponse(w, http.StatusCreated, item)
}

// handleItemsEvents streams item list observations as server-sent events.
// The current state is sent first, then every transition until the client leaves.
func (s *Server) handleItemsEvents(w http.ResponseWriter, r *http.Request) {
	errorMode, err := utils.ParseBool(r.URL.Query(), "error", false)
	if err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	rc := http.NewResponseController(w)
	// Streams outlive the server write timeout
	_ = rc.SetWriteDeadline(time.Time{})

	events := make(chan service.ItemsObservation, 16)
	unsubscribe := s.items.SubscribeItems(errorMode, func(obs service.ItemsObservation) {
		select {
		case events <- obs:
		default:
			// Drop the oldest state, only the latest matters
			select {
			case <-events:
			default:
			}
			select {
			case events <- obs:
			default:
			}
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	current, err := s.items.Items(r.Context(), errorMode, false)
	if err != nil {
		s.logger.Debug("Event stream closed before first event", zap.Error(err))
		return
	}
	if err := s.writeEvent(w, rc, current); err != nil {
		return
	}

	keepAlive := time.NewTicker(sseKeepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case obs := <-events:
			if err := s.writeEvent(w, rc, obs); err != nil {
				s.logger.Debug("Event stream write failed", zap.Error(err))
				return
			}
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func (s *Server) writeEvent(w http.ResponseWriter, rc *http.ResponseController, obs service.ItemsObservation) error {
	data, err := json.Marshal(toObservationResponse(obs))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: observation\ndata: %s\n\n", data); err != nil {
		return err
	}
	return rc.Flush()
}

func (s *Server) itemsParams(w http.ResponseWriter, r *http.Request) (errorMode, wait, ok bool) {
	values := r.URL.Query()
	errorMode, err := utils.ParseBool(values, "error", false)
	if err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return false, false, false
	}
	wait, err = utils.ParseBool(values, "wait", false)
	if err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return false, false, false
	}
	return errorMode, wait, true
}
