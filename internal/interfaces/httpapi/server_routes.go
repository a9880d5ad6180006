package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("POST /v1/matches", handler.CreateMatch)
	mux.HandleFunc("GET /v1/rankings", handler.GetRankings)
	mux.HandleFunc("GET /v1/rankings/all", handler.GetAllRankings)
	mux.HandleFunc("GET /v1/stats/club", handler.GetClubSummary)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminSecret string) {
	mux.Handle("POST /v1/players", RequireAdminSecret(adminSecret, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("POST /v1/import", RequireAdminSecret(adminSecret, http.HandlerFunc(handler.Import)))
	mux.Handle("POST /v1/import/csv", RequireAdminSecret(adminSecret, http.HandlerFunc(handler.ImportCSV)))
	mux.Handle("GET /v1/export/{dataset}", RequireAdminSecret(adminSecret, http.HandlerFunc(handler.Export)))
	mux.Handle("POST /v1/admin/reset", RequireAdminSecret(adminSecret, http.HandlerFunc(handler.Reset)))
}
