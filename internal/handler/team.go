package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ClanWarsBot_Go/internal/logger"
	"github.com/osse101/ClanWarsBot_Go/internal/team"
)

// CreateTeamRequest is the body for team creation
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,max=32,excludesall=\x00\n\r\t"`
}

// MemberRequest is the body for roster changes
type MemberRequest struct {
	Username string `json:"username" validate:"required,max=15,excludesall=\x00\n\r\t"`
}

// TeamHandler serves team lifecycle and roster endpoints
type TeamHandler struct {
	teamService team.Service
}

// NewTeamHandler creates a TeamHandler
func NewTeamHandler(teamService team.Service) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// HandleListTeams returns all teams
func (h *TeamHandler) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list teams", "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: teams})
}

// HandleCreateTeam creates a team with its starting buildings
func (h *TeamHandler) HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, DataResponse{
			Message: ErrMsgInvalidRequestError,
			Data:    FormatValidationError(err),
		})
		return
	}

	created, err := h.teamService.CreateTeam(r.Context(), req.Name)
	if err != nil {
		log.Warn("Failed to create team", "team", req.Name, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusCreated, DataResponse{Message: "Team created", Data: created})
}

// HandleDeleteTeam deletes a team and its dependent rows
func (h *TeamHandler) HandleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.teamService.DeleteTeam(r.Context(), name); err != nil {
		logger.FromContext(r.Context()).Warn("Failed to delete team", "team", name, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Team deleted"})
}

// HandleListMembers returns a team's roster
func (h *TeamHandler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	members, err := h.teamService.ListMembers(r.Context(), name)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: members})
}

// HandleAddMember puts a player on a team
func (h *TeamHandler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, DataResponse{
			Message: ErrMsgInvalidRequestError,
			Data:    FormatValidationError(err),
		})
		return
	}

	if err := h.teamService.AddMember(r.Context(), name, req.Username); err != nil {
		logger.FromContext(r.Context()).Warn("Failed to add member", "team", name, "username", req.Username, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Member added"})
}

// HandleRemoveMember takes a player off their team
func (h *TeamHandler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	var req MemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
		return
	}
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, DataResponse{
			Message: ErrMsgInvalidRequestError,
			Data:    FormatValidationError(err),
		})
		return
	}

	if err := h.teamService.RemoveMember(r.Context(), req.Username); err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: "Member removed"})
}
