package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerEventRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/events/preview", handler.PreviewEvent)
	mux.HandleFunc("POST /v1/events", handler.SaveEvent)
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/events/{eventID}", handler.GetEvent)
	mux.HandleFunc("GET /v1/events/{eventID}/results", handler.GetEventResults)
	mux.HandleFunc("DELETE /v1/events/{eventID}", handler.DeleteEvent)
	mux.HandleFunc("PUT /v1/events/{eventID}/folder", handler.AssignEventFolder)
}

func registerFolderRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/folders", handler.CreateFolder)
	mux.HandleFunc("GET /v1/folders", handler.ListFolders)
	mux.HandleFunc("GET /v1/folders/{folderID}", handler.GetFolder)
	mux.HandleFunc("PUT /v1/folders/{folderID}", handler.RenameFolder)
	mux.HandleFunc("DELETE /v1/folders/{folderID}", handler.DeleteFolder)
	mux.HandleFunc("GET /v1/folders/{folderID}/events", handler.ListFolderEvents)
	mux.HandleFunc("GET /v1/folders/{folderID}/next-event-name", handler.NextFolderEventName)
}

func registerStandingsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/folders/{folderID}/standings", handler.GetFolderStandings)
	mux.HandleFunc("POST /v1/standings/batch", handler.BatchStandings)
}

func registerWeighingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/events/{eventID}/weighing-links", handler.CreateWeighingLink)
	mux.HandleFunc("GET /v1/weighing-links/{linkID}", handler.ResolveWeighingLink)
}
