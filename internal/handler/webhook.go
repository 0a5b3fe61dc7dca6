package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/osse101/ClanWarsBot_Go/internal/attribution"
	"github.com/osse101/ClanWarsBot_Go/internal/logger"
)

// maxWebhookMemory bounds multipart form parsing.
const maxWebhookMemory = 1 << 20

// LootWebhookRequest is the payload posted by the loot notifier.
type LootWebhookRequest struct {
	EventType string `json:"event_type" validate:"max=64"`
	Content   string `json:"content" validate:"required,max=8192"`
}

// HandleLootWebhook ingests loot notifications. The notifier posts
// either a JSON body or a multipart form carrying the same JSON in a
// "payload_json" field (the mode used when a screenshot is attached).
func HandleLootWebhook(attributionSvc attribution.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		req, err := decodeLootWebhook(r)
		if err != nil {
			log.Warn("Failed to decode webhook payload", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid webhook payload", "errors", FormatValidationError(err))
			respondJSON(w, http.StatusBadRequest, DataResponse{
				Message: ErrMsgInvalidRequestError,
				Data:    FormatValidationError(err),
			})
			return
		}

		// Discards are deliberate no-ops; only store failures surface.
		if err := attributionSvc.AttributeText(r.Context(), req.Content); err != nil {
			log.Error("Failed to attribute drop", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Webhook received"})
	}
}

func decodeLootWebhook(r *http.Request) (*LootWebhookRequest, error) {
	var req LootWebhookRequest

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxWebhookMemory); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(r.FormValue("payload_json")), &req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
