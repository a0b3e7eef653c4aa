package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-diary/internal/app"
	"github.com/MKhiriev/go-diary/internal/logger"
	"github.com/MKhiriev/go-diary/internal/service"
	"github.com/MKhiriev/go-diary/internal/store"
	"github.com/MKhiriev/go-diary/internal/utils"
	"github.com/MKhiriev/go-diary/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error listing notes")
		utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("title and content are required")
			utils.WriteJSONError(w, app.MsgTitleAndContentRequired, http.StatusBadRequest)
			return
		default:
			log.Err(err).Int64("user_id", userID).Msg("error creating note")
			utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, noteID, ok := h.noteRequestParams(w, r)
	if !ok {
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), noteID, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			utils.WriteJSONError(w, store.ErrNoteNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("note_id", noteID).Int64("user_id", userID).Msg("error getting note")
			utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, noteID, ok := h.noteRequestParams(w, r)
	if !ok {
		return
	}

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.UpdateNote(r.Context(), noteID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("title and content are required")
			utils.WriteJSONError(w, app.MsgTitleAndContentRequired, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoteNotFound):
			utils.WriteJSONError(w, store.ErrNoteNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("note_id", noteID).Int64("user_id", userID).Msg("error updating note")
			utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, noteID, ok := h.noteRequestParams(w, r)
	if !ok {
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), noteID, userID); err != nil {
		switch {
		case errors.Is(err, store.ErrNoteNotFound):
			utils.WriteJSONError(w, store.ErrNoteNotFound.Error(), http.StatusNotFound)
			return
		default:
			log.Err(err).Int64("note_id", noteID).Int64("user_id", userID).Msg("error deleting note")
			utils.WriteJSONError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgNoteDeleted}, http.StatusOK)
}

// noteRequestParams extracts the authenticated user id from the context and
// the note id from the URL. A malformed id is reported as 404, not 400: ids
// are opaque to clients and "not a valid id" is indistinguishable from
// "no such note".
func (h *Handler) noteRequestParams(w http.ResponseWriter, r *http.Request) (userID, noteID int64, ok bool) {
	log := logger.FromRequest(r)

	userID, ok = utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, 0, false
	}

	noteID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("malformed note id")
		utils.WriteJSONError(w, store.ErrNoteNotFound.Error(), http.StatusNotFound)
		return 0, 0, false
	}

	return userID, noteID, true
}
