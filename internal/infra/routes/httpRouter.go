package routes

import (
	"encoding/json"
	"net/http"

	"github.com/Kmkishore05/CarePulsebot/internal/infra/handlers"
	"github.com/gorilla/mux"
)

type Routes struct {
	Mux               *mux.Router
	AssistantHandlers *handlers.AssistantHandlers
	FirstAidHandlers  *handlers.FirstAidHandlers
	HistoryHandlers   *handlers.HistoryHandlers
}

func NewRoutes(mux *mux.Router, assistantHandlers *handlers.AssistantHandlers, firstAidHandlers *handlers.FirstAidHandlers, historyHandlers *handlers.HistoryHandlers) *Routes {
	return &Routes{mux, assistantHandlers, firstAidHandlers, historyHandlers}
}

func (r *Routes) Init() {
	r.Mux.HandleFunc("/api/assistant/qa", r.AssistantHandlers.QA).Methods(http.MethodPost)
	r.Mux.HandleFunc("/api/assistant/symptoms", r.AssistantHandlers.Symptoms).Methods(http.MethodPost)
	r.Mux.HandleFunc("/api/assistant/diet", r.AssistantHandlers.Diet).Methods(http.MethodPost)

	r.Mux.HandleFunc("/api/firstaid/search", r.FirstAidHandlers.Search).Methods(http.MethodPost)

	r.Mux.HandleFunc("/api/history", r.HistoryHandlers.Get).Methods(http.MethodGet)
	r.Mux.HandleFunc("/api/history", r.HistoryHandlers.Clear).Methods(http.MethodDelete)

	r.Mux.HandleFunc("/healthCheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods(http.MethodGet)
}
