package mobile

import (
	"log"
	"net/http"

	"negachess/internal/engine"
	"negachess/internal/server/game"
	httpserver "negachess/internal/server/http"
)

// StartServer starts the local HTTP API in the background.
// webDir: physical path to extracted web assets, may be empty
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, port string) {
	mux := http.NewServeMux()
	mux.Handle("/", httpserver.NewServer(game.NewManager(), engine.NewEngine()))
	if webDir != "" {
		mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(webDir))))
	}

	// Run in background so it doesn't block the caller's UI thread
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, mux); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
