// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-unique-keeper/internal/app"
	"github.com/MKhiriev/go-unique-keeper/internal/logger"
	"github.com/MKhiriev/go-unique-keeper/internal/utils"
	"github.com/MKhiriev/go-unique-keeper/models"
)

func (h *Handler) checkUnique(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.UniquenessRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.checkUnique").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	response, err := h.services.UniquenessService.CheckUnique(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.checkUnique").Msg("error checking uniqueness")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.checkUnique").Msg("error writing response")
	}
}

func (h *Handler) exists(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.ExistenceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.exists").Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	exists, err := h.services.UniquenessService.Exists(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exists").Msg("error checking existence")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.ExistenceResponse{Exists: exists}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.exists").Msg("error writing response")
	}
}
