package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/fishing-league/internal/usecase"
)

func (h *Handler) CreateWeighingLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateWeighingLink")
	defer span.End()

	var req createWeighingLinkRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	eventID := r.PathValue("eventID")
	link, err := h.weighingService.CreateLink(ctx, usecase.CreateLinkInput{
		EventID: eventID,
		Sectors: req.Sectors,
		Email:   req.Email,
		TTL:     time.Duration(req.TTLMinutes) * time.Minute,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create weighing link failed", "event_id", eventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, weighingLinkToDTO(link))
}

func (h *Handler) ResolveWeighingLink(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveWeighingLink")
	defer span.End()

	linkID := r.PathValue("linkID")
	view, err := h.weighingService.ResolveLink(ctx, linkID, r.URL.Query().Get("email"))
	if err != nil {
		h.logger.WarnContext(ctx, "resolve weighing link failed", "link_id", linkID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weighingViewDTO{
		Link:         weighingLinkToDTO(view.Link),
		Event:        eventToSummaryDTO(view.Event),
		Participants: participantsToDTO(view.Participants, view.Event.SectorSizes),
	})
}
