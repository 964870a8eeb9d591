package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"go-query-cache/internal/mockapi"
)

// handleMockFetch answers the success and error scenarios of the mock API page
func (s *Server) handleMockFetch(w http.ResponseWriter, r *http.Request) {
	resp, err := s.backend.MockFetch(r.Context(), mux.Vars(r)["scenario"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResponse(w, resp)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.backend.ListUsers(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResponse(w, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.userID(w, r)
	if !ok {
		return
	}

	user, err := s.backend.GetUser(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResponse(w, user)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req mockapi.NewUser
	if err := s.parseRequest(r, &req); err != nil {
		s.writeErrorResponse(w, "Invalid request", http.StatusBadRequest)
		return
	}

	user, err := s.backend.CreateUser(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeStatusResponse(w, http.StatusCreated, user)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.userID(w, r)
	if !ok {
		return
	}

	if err := s.backend.DeleteUser(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResponse(w, &SuccessResponse{Success: true})
}

// handleSimulateError always fails with the backend's 500
func (s *Server) handleSimulateError(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.SimulateError(r.Context()); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeResponse(w, &SuccessResponse{Success: true})
}

func (s *Server) userID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		s.writeErrorResponse(w, "Invalid user id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
