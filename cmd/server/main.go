package main // Entry point package

import (
	"context"   // Shutdown deadline
	"net/http"  // Sentinel error for a closed server
	"os"        // Signal channel plumbing
	"os/signal" // Termination signal notification
	"syscall"   // SIGTERM constant
	"time"      // Shutdown timeout duration

	"github.com/iliyamo/demo-api/internal/config" // Internal config loader
	"github.com/iliyamo/demo-api/internal/router" // Internal router setup
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal before the process exits.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load() // Load environment config
	e := router.New()    // Build Echo with middleware and routes

	addr := ":" + cfg.Port                                    // Address string with port
	e.Logger.Infof("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err) // Log and exit if server fails
		}
	}()

	// Block until the process receives a termination signal, then drain
	// in-flight requests before exiting.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
