package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/usecase"
)

func (h *Handler) PreviewEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PreviewEvent")
	defer span.End()

	var req eventDraftRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	draft, err := req.toDraft()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.eventService.Preview(ctx, draft)
	if err != nil {
		h.logger.WarnContext(ctx, "preview event failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resultToDTO(result, draft.SectorSizes))
}

func (h *Handler) SaveEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveEvent")
	defer span.End()

	var req saveEventRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	draft, err := req.toDraft()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	event, err := h.eventService.Save(ctx, usecase.SaveEventInput{Draft: draft, Overwrite: req.Overwrite})
	if err != nil {
		h.logger.WarnContext(ctx, "save event failed", "name", draft.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusCreated
	if !event.CreatedAt.Equal(event.UpdatedAt) {
		status = http.StatusOK
	}
	writeSuccess(ctx, w, status, eventToDTO(event))
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	eventType := competition.Type(r.URL.Query().Get("type"))
	events, err := h.eventService.List(ctx, eventType)
	if err != nil {
		h.logger.WarnContext(ctx, "list events failed", "type", string(eventType), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventsToSummaryDTO(events))
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	event, err := h.eventService.Get(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(event))
}

func (h *Handler) GetEventResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEventResults")
	defer span.End()

	eventID := r.PathValue("eventID")
	event, result, err := h.eventService.Results(ctx, eventID)
	if err != nil {
		h.logger.WarnContext(ctx, "get event results failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventResultsDTO{
		Event:   eventToDTO(event),
		Results: resultToDTO(result, event.SectorSizes),
	})
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteEvent")
	defer span.End()

	eventID := r.PathValue("eventID")
	if err := h.eventService.Delete(ctx, eventID); err != nil {
		h.logger.WarnContext(ctx, "delete event failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": eventID, "status": "deleted"})
}

func (h *Handler) AssignEventFolder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AssignEventFolder")
	defer span.End()

	var req assignFolderRequest
	if err := h.decodeJSON(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	event, err := h.eventService.AssignToFolder(ctx, eventID, req.FolderID)
	if err != nil {
		h.logger.WarnContext(ctx, "assign event folder failed", "event_id", eventID, "folder_id", req.FolderID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventToDTO(event))
}
