// internal/debug/server.go
package debug

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"go-lane-defense/internal/app"
)

// ListenAndServe поднимает локальный отладочный сервер: JSON-снапшот
// состояния партии, health-check и pprof. Снапшот берётся под мьютексом
// игры, поэтому читать его можно в любой момент между тиками.
func ListenAndServe(addr string, game *app.Game) {
	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/state", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(game.Snapshot()); err != nil {
			log.Printf("debug: encode state: %v", err)
		}
	})
	r.Mount("/debug", middleware.Profiler())

	log.Println(http.ListenAndServe(addr, r))
}
