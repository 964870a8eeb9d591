package httpserver

import (
	"net/http"

	"go-query-cache/internal/utils"
)

// defaultViewport is the list height assumed when the client sends none
const defaultViewport = 600

// handleListRange returns the rows to render for a scroll position
func (s *Server) handleListRange(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	offset, err := utils.ParseInt(values, "offset", 0)
	if err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	viewport, err := utils.ParseInt(values, "viewport", defaultViewport)
	if err != nil {
		s.writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	rng := s.list.Virtualizer.VisibleRange(offset, viewport)
	s.writeResponse(w, &RangeResponse{
		Range: rng,
		Rows:  s.list.Rows.Rows(rng),
	})
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, &BoardResponse{Items: s.list.Board.Items()})
}

// handleBoardReorder applies a drop given either indices or card ids
func (s *Server) handleBoardReorder(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	switch {
	case req.SourceIndex != nil && req.TargetIndex != nil:
		items, err := s.list.Board.OnDrop(*req.SourceIndex, *req.TargetIndex)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeResponse(w, &BoardResponse{Items: items})
	case req.ActiveID != "" && req.OverID != "":
		items, err := s.list.Board.Move(req.ActiveID, req.OverID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.writeResponse(w, &BoardResponse{Items: items})
	default:
		s.writeErrorResponse(w, "Missing required fields: sourceIndex and targetIndex, or activeId and overId", http.StatusBadRequest)
	}
}
