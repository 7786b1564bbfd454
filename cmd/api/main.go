package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/arnavdesai/Go-Grover/internal/grover/quantum"
	"github.com/arnavdesai/Go-Grover/internal/handlers"
)

func main() {
	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Optional register size limit, bounded by the simulator's hard cap
	maxQubits := quantum.DefaultMaxQubits
	if v := os.Getenv("GROVER_MAX_QUBITS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid GROVER_MAX_QUBITS value %q: %v", v, err)
		}
		maxQubits = parsed
	}

	// Create a new HTTP multiplexer
	mux := http.NewServeMux()

	simHandler := handlers.NewSimHandler(maxQubits)

	// Register routes
	mux.HandleFunc("/", handlers.HomeHandler)
	mux.HandleFunc("/health", handlers.HealthHandler)

	// Register simulator routes
	mux.HandleFunc("/api/v1/sim/health", simHandler.HealthCheckHandler)
	mux.HandleFunc("/api/v1/sim/register", simHandler.CreateRegisterHandler)
	mux.HandleFunc("/api/v1/sim/register/", handleSimRegister(simHandler))

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      loggingMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Server starting on port %s (max %d qubits)", port, maxQubits)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("%s %s %s", r.Method, r.RequestURI, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("Request completed in %v", time.Since(start))
	})
}

// handleSimRegister routes register-scoped requests
func handleSimRegister(simHandler *handlers.SimHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		switch {
		case strings.HasSuffix(path, "/gate"):
			simHandler.ApplyGateHandler(w, r)
		case strings.HasSuffix(path, "/search"):
			simHandler.RunSearchHandler(w, r)
		case strings.HasSuffix(path, "/probabilities"):
			simHandler.ProbabilitiesHandler(w, r)
		case strings.HasSuffix(path, "/sample"):
			simHandler.SampleHandler(w, r)
		case r.Method == http.MethodDelete:
			simHandler.CloseSessionHandler(w, r)
		default:
			simHandler.GetSessionHandler(w, r)
		}
	}
}
