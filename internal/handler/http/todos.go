// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeAPIError(w, r, service.ErrUnauthorized)
		return
	}

	filter := models.Filter(r.URL.Query().Get("filter"))
	todos, err := h.services.TodoService.List(r.Context(), userID, filter)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTodoListResponse(todos), http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeAPIError(w, r, service.ErrUnauthorized)
		return
	}

	// a missing or malformed body is treated as an empty title
	var request models.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Debug().Err(err).Msg("invalid JSON was passed")
	}

	todo, err := h.services.TodoService.Add(r.Context(), userID, request.Title)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	log.Info().Int64("user_id", userID).Int64("todo_id", todo.ID).Msg("todo created")
	utils.WriteJSON(w, models.NewTodoResponse(todo), http.StatusCreated)
}

func (h *Handler) toggleTodo(w http.ResponseWriter, r *http.Request) {
	userID, todoID, err := todoKeyFromRequest(r)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	todo, err := h.services.TodoService.Toggle(r.Context(), userID, todoID)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewTodoResponse(todo), http.StatusOK)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	userID, todoID, err := todoKeyFromRequest(r)
	if err != nil {
		writeAPIError(w, r, err)
		return
	}

	if err = h.services.TodoService.Delete(r.Context(), userID, todoID); err != nil {
		writeAPIError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Int64("todo_id", todoID).Msg("todo deleted")
	utils.WriteJSON(w, models.DeleteTodoResponse{OK: true}, http.StatusOK)
}

func todoKeyFromRequest(r *http.Request) (int64, int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, 0, service.ErrUnauthorized
	}

	todoID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, 0, ErrInvalidTodoIDParam
	}

	return userID, todoID, nil
}

// writeAPIError maps err to a status and writes {"error": ...}. Server
// errors are logged; client errors only at debug level.
func writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Str("path", r.URL.Path).Send()
	}

	utils.WriteJSONError(w, messageFromError(err), status)
}

func writeNotFound(w http.ResponseWriter, r *http.Request) {
	if utils.WantsJSON(r) {
		writeAPIError(w, r, ErrRouteNotFound)
		return
	}
	http.NotFound(w, r)
}
