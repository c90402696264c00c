package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"taskmaster/internal/server/store"
	"taskmaster/internal/shared/dayfmt"
	"taskmaster/internal/shared/models"
)

// dayParam resolves the {date} path segment to the storage key form.
func dayParam(req *http.Request) string {
	return dayfmt.ToStorageKey(chi.URLParam(req, "date"))
}

func (r *Router) handleListDays(w http.ResponseWriter, req *http.Request) {
	records, err := r.gateway.GetAll(req.Context())
	if err != nil {
		writeMessage(w, http.StatusServiceUnavailable, msgUnavailable)
		return
	}
	if records == nil {
		records = []models.DayRecord{}
	}
	writeData(w, http.StatusOK, records)
}

func (r *Router) handleGetDay(w http.ResponseWriter, req *http.Request) {
	rec, err := r.gateway.GetDay(req.Context(), dayParam(req))
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusBadRequest, msgDayNotFound)
	case err != nil:
		writeMessage(w, http.StatusServiceUnavailable, msgUnavailable)
	default:
		writeData(w, http.StatusOK, rec)
	}
}

func (r *Router) handleLatestTask(w http.ResponseWriter, req *http.Request) {
	task, err := r.gateway.GetLatestTask(req.Context(), dayParam(req))
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusNotFound, msgTaskNotFound)
	case err != nil:
		writeMessage(w, http.StatusServiceUnavailable, msgUnavailable)
	default:
		writeData(w, http.StatusOK, task)
	}
}

func (r *Router) handleCreateDay(w http.ResponseWriter, req *http.Request) {
	var body models.DayUpsert
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	if body.ID == "" {
		writeMessage(w, http.StatusBadRequest, msgFailedCreate)
		return
	}
	err := r.gateway.Create(req.Context(), body.ID, body.Records)
	switch {
	case errors.Is(err, store.ErrConflict):
		writeMessage(w, http.StatusBadRequest, msgFailedCreate)
	case err != nil:
		writeMessage(w, http.StatusServiceUnavailable, msgUnavailable)
	default:
		writeMessage(w, http.StatusCreated, msgSuccess)
	}
}

func (r *Router) handleUpdateDay(w http.ResponseWriter, req *http.Request) {
	var body models.DayUpsert
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeMessage(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	err := r.gateway.Update(req.Context(), dayParam(req), body.Records)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusBadRequest, msgFailedCreate)
	case err != nil:
		writeMessage(w, http.StatusServiceUnavailable, msgUnavailable)
	default:
		writeMessage(w, http.StatusOK, msgSuccess)
	}
}

func (r *Router) handleDeleteDay(w http.ResponseWriter, req *http.Request) {
	err := r.gateway.DeleteDay(req.Context(), dayParam(req))
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusNotFound, msgFailedDeleteDay)
	case err != nil:
		writeMessage(w, http.StatusServiceUnavailable, msgUnavailable)
	default:
		writeMessage(w, http.StatusOK, msgDayDeleted)
	}
}

func (r *Router) handleDeleteTask(w http.ResponseWriter, req *http.Request) {
	taskID, convErr := strconv.Atoi(chi.URLParam(req, "taskID"))
	if convErr != nil {
		writeMessage(w, http.StatusBadRequest, msgFailedDeleteTask)
		return
	}
	err := r.gateway.DeleteTask(req.Context(), dayParam(req), taskID)
	switch {
	case errors.Is(err, store.ErrNotChanged):
		writeMessage(w, http.StatusNotFound, msgTaskNotFound)
	case errors.Is(err, store.ErrNotFound):
		writeMessage(w, http.StatusNotFound, msgFailedDeleteTask)
	case err != nil:
		writeMessage(w, http.StatusServiceUnavailable, msgUnavailable)
	default:
		writeMessage(w, http.StatusOK, msgTaskDeleted)
	}
}
