package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/ClanWarsBot_Go/internal/logger"
	"github.com/osse101/ClanWarsBot_Go/internal/town"
)

// BuildingRequest is the body for upgrade and downgrade calls
type BuildingRequest struct {
	Building string `json:"building" validate:"required,max=64"`
}

// TownHandler serves building and summary endpoints
type TownHandler struct {
	townService town.Service
}

// NewTownHandler creates a TownHandler
func NewTownHandler(townService town.Service) *TownHandler {
	return &TownHandler{townService: townService}
}

// HandleGetSummary returns a team's buildings and resource ledger
func (h *TownHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	summary, err := h.townService.GetSummary(r.Context(), name)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Data: summary})
}

// HandleUpgradeBuilding raises a building one level
func (h *TownHandler) HandleUpgradeBuilding(w http.ResponseWriter, r *http.Request) {
	h.handleLevelChange(w, r, h.townService.UpgradeBuilding)
}

// HandleDowngradeBuilding lowers a building one level
func (h *TownHandler) HandleDowngradeBuilding(w http.ResponseWriter, r *http.Request) {
	h.handleLevelChange(w, r, h.townService.DowngradeBuilding)
}

func (h *TownHandler) handleLevelChange(w http.ResponseWriter, r *http.Request, change func(ctx context.Context, teamName, buildingName string) (*town.Outcome, error)) {
	log := logger.FromContext(r.Context())
	name := chi.URLParam(r, "name")

	var req BuildingRequest
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

	outcome, err := change(r.Context(), name, req.Building)
	if err != nil {
		var insufficient *town.InsufficientResourcesError
		if errors.As(err, &insufficient) {
			respondJSON(w, http.StatusBadRequest, DataResponse{
				Message: ErrMsgNotEnoughError,
				Data:    insufficient.Shortfalls,
			})
			return
		}
		log.Warn("Failed to change building level", "team", name, "building", req.Building, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Message: "Building level changed", Data: outcome})
}
