package httpserver

import (
	"net/http"

	"github.com/gorilla/mux"

	"go-query-cache/internal/models"
	"go-query-cache/internal/utils"
)

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := s.drafts.Get(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeDraft(w, draft)
}

func (s *Server) handleSetDraftContent(w http.ResponseWriter, r *http.Request) {
	var req DraftContentRequest
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Content == nil {
		s.writeErrorResponse(w, "Missing required field: content", http.StatusBadRequest)
		return
	}

	draft, err := s.drafts.SetContent(mux.Vars(r)["id"], *req.Content)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeDraft(w, draft)
}

func (s *Server) handleUpdateDraftForm(w http.ResponseWriter, r *http.Request) {
	var patch models.FormPatch
	if err := s.parseRequest(r, &patch); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	draft, err := s.drafts.UpdateForm(mux.Vars(r)["id"], patch)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeDraft(w, draft)
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := s.drafts.SaveAsDraft(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeDraft(w, draft)
}

func (s *Server) handleClearDraft(w http.ResponseWriter, r *http.Request) {
	if err := s.drafts.Clear(mux.Vars(r)["id"]); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResponse(w, &SuccessResponse{Success: true})
}

func (s *Server) handleDraftStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.drafts.Stats(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResponse(w, stats)
}

func (s *Server) writeDraft(w http.ResponseWriter, draft models.Draft) {
	s.writeResponse(w, &DraftResponse{
		Draft: draft,
		Stats: utils.ContentStats(draft.Content),
	})
}
