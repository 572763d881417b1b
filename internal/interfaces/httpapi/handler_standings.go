package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fishing-league/internal/usecase"
)

func (h *Handler) GetFolderStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFolderStandings")
	defer span.End()

	penalty, err := optionalIntQuery(r, "penaltyPoints")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	exclude, err := optionalIntQuery(r, "excludeCount")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	folderID := r.PathValue("folderID")
	result, err := h.standingsService.Compute(ctx, folderID, usecase.StandingsOptions{
		PenaltyPoints: penalty,
		ExcludeCount:  exclude,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "compute standings failed", "folder_id", folderID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, folderStandingsToDTO(result))
}

// BatchStandings answers per folder; a failing folder does not fail the batch.
func (h *Handler) BatchStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BatchStandings")
	defer span.End()

	var req standingsBatchRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.standingsService.ComputeMany(ctx, req.FolderIDs, usecase.StandingsOptions{
		PenaltyPoints: req.PenaltyPoints,
		ExcludeCount:  req.ExcludeCount,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "batch standings failed", "folders", len(req.FolderIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]standingsBatchItemDTO, 0, len(items))
	for _, item := range items {
		dto := standingsBatchItemDTO{FolderID: item.FolderID}
		if item.Err != nil {
			mapped := mapError(ctx, item.Err)
			errItem := errorItem(mapped, item.Err)
			if mapped.HTTPStatus == http.StatusInternalServerError {
				h.logger.ErrorContext(ctx, "batch standings item failed", "folder_id", item.FolderID, "error", item.Err)
				errItem.Message = "internal server error"
			}
			dto.Error = &errItem
		} else {
			result := folderStandingsToDTO(item.Result)
			dto.Result = &result
		}
		out = append(out, dto)
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
