package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fishing-league/internal/domain/competition"
	"github.com/riskibarqy/fishing-league/internal/domain/criterium"
)

func (h *Handler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateFolder")
	defer span.End()

	var req createFolderRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	folder, err := h.folderService.Create(ctx, req.Name, competition.Type(req.Type))
	if err != nil {
		h.logger.WarnContext(ctx, "create folder failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, folderToDTO(folder))
}

func (h *Handler) ListFolders(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFolders")
	defer span.End()

	folderType := competition.Type(r.URL.Query().Get("type"))
	folders, err := h.folderService.List(ctx, folderType)
	if err != nil {
		h.logger.WarnContext(ctx, "list folders failed", "type", string(folderType), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, foldersToDTO(folders))
}

func foldersToDTO(folders []criterium.Folder) []folderDTO {
	out := make([]folderDTO, 0, len(folders))
	for _, f := range folders {
		out = append(out, folderToDTO(f))
	}
	return out
}

func (h *Handler) GetFolder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFolder")
	defer span.End()

	folderID := r.PathValue("folderID")
	folder, err := h.folderService.Get(ctx, folderID)
	if err != nil {
		h.logger.WarnContext(ctx, "get folder failed", "folder_id", folderID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, folderToDTO(folder))
}

func (h *Handler) RenameFolder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RenameFolder")
	defer span.End()

	var req renameFolderRequest
	if err := h.decodeAndValidate(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	folderID := r.PathValue("folderID")
	folder, err := h.folderService.Rename(ctx, folderID, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "rename folder failed", "folder_id", folderID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, folderToDTO(folder))
}

func (h *Handler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteFolder")
	defer span.End()

	folderID := r.PathValue("folderID")
	if err := h.folderService.Delete(ctx, folderID); err != nil {
		h.logger.WarnContext(ctx, "delete folder failed", "folder_id", folderID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": folderID, "status": "deleted"})
}

func (h *Handler) ListFolderEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFolderEvents")
	defer span.End()

	folderID := r.PathValue("folderID")
	events, err := h.folderService.ListEvents(ctx, folderID)
	if err != nil {
		h.logger.WarnContext(ctx, "list folder events failed", "folder_id", folderID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, eventsToSummaryDTO(events))
}

func (h *Handler) NextFolderEventName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NextFolderEventName")
	defer span.End()

	folderID := r.PathValue("folderID")
	name, err := h.folderService.NextEventName(ctx, folderID)
	if err != nil {
		h.logger.WarnContext(ctx, "next folder event name failed", "folder_id", folderID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"name": name})
}
