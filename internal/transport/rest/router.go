package rest

import "net/http"

// NewRouter registers all REST routes on a fresh ServeMux.
func NewRouter(deals *DealHandler, memos *MemoHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /health/live", health.Live)
	mux.HandleFunc("GET /health/ready", health.Ready)

	mux.HandleFunc("POST /deals", deals.Create)
	mux.HandleFunc("GET /deals", deals.List)
	mux.HandleFunc("GET /deals/{id}", deals.Get)
	mux.HandleFunc("PUT /deals/{id}", deals.Update)
	mux.HandleFunc("DELETE /deals/{id}", deals.Delete)
	mux.HandleFunc("POST /deals/{id}/stage", deals.MoveStage)
	mux.HandleFunc("GET /deals/{id}/activities", deals.ListActivities)
	mux.HandleFunc("GET /stages/{stage}/deals", deals.ListByStage)
	mux.HandleFunc("GET /pipeline/summary", deals.Summary)
	mux.HandleFunc("GET /users/{id}/activities", deals.ListUserActivities)

	mux.HandleFunc("PUT /deals/{id}/memo", memos.Save)
	mux.HandleFunc("GET /deals/{id}/memo", memos.GetCurrent)
	mux.HandleFunc("GET /deals/{id}/memo/versions", memos.ListVersions)
	mux.HandleFunc("GET /deals/{id}/memo/versions/{number}", memos.GetVersion)

	return mux
}
