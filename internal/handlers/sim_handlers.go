package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	grovercore "github.com/arnavdesai/Go-Grover/internal/grover"
	"github.com/arnavdesai/Go-Grover/internal/grover/quantum"
	"github.com/arnavdesai/Go-Grover/internal/models/grover"
)

// SimHandler manages simulator-related HTTP requests
type SimHandler struct {
	sessionManager *grovercore.SessionManager
}

// NewSimHandler creates a new simulator handler with a register size limit
func NewSimHandler(maxQubits int) *SimHandler {
	return &SimHandler{
		sessionManager: grovercore.NewSessionManager(maxQubits),
	}
}

// GateRequest is the wire form of a gate descriptor; the control pattern
// arrives as a '0'/'1' string, one character per control.
type GateRequest struct {
	Kind     string `json:"kind"`
	Target   int    `json:"target"`
	Controls []int  `json:"controls,omitempty"`
	Pattern  string `json:"pattern,omitempty"`
}

// CreateRegisterHandler handles POST /api/v1/sim/register
// Allocates a new register in the |0...0⟩ state
func (h *SimHandler) CreateRegisterHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req grover.RegisterCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.sessionManager.CreateRegister(&req)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, grover.SessionResponse{
		Session: session,
	})
}

// ApplyGateHandler handles POST /api/v1/sim/register/{id}/gate
// Applies one gate descriptor to the register
func (h *SimHandler) ApplyGateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}

	var req GateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	gate := quantum.Gate{
		Kind:     quantum.GateKind(req.Kind),
		Target:   req.Target,
		Controls: req.Controls,
	}
	if req.Pattern != "" {
		bits, err := grovercore.ParsePattern(req.Pattern)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		gate.Pattern = bits
	}

	if err := h.sessionManager.ApplyGate(sessionID, gate); err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	session, err := h.sessionManager.GetSession(sessionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve session")
		return
	}

	respondWithJSON(w, http.StatusOK, grover.SessionResponse{
		Session: session,
	})
}

// RunSearchHandler handles POST /api/v1/sim/register/{id}/search
// Runs the full Grover search on the register
func (h *SimHandler) RunSearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}

	var req grover.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.sessionManager.RunSearch(sessionID, &req)
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, grover.SessionResponse{
		Session: session,
	})
}

// ProbabilitiesHandler handles GET /api/v1/sim/register/{id}/probabilities
// Returns the exact outcome distribution of the register
func (h *SimHandler) ProbabilitiesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}

	probs, err := h.sessionManager.Probabilities(sessionID)
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	session, err := h.sessionManager.GetSession(sessionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve session")
		return
	}

	respondWithJSON(w, http.StatusOK, grover.ProbabilitiesResponse{
		SessionID:     sessionID.String(),
		NumQubits:     session.NumQubits,
		Probabilities: probs,
	})
}

// SampleHandler handles POST /api/v1/sim/register/{id}/sample
// Draws one classical outcome from the register's distribution
func (h *SimHandler) SampleHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}

	outcome, err := h.sessionManager.Sample(sessionID)
	if err != nil {
		respondWithError(w, statusForError(err), err.Error())
		return
	}

	session, err := h.sessionManager.GetSession(sessionID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve session")
		return
	}

	respondWithJSON(w, http.StatusOK, grover.SampleResponse{
		SessionID: sessionID.String(),
		Outcome:   outcome,
		Bits:      grover.FormatBasisState(outcome, session.NumQubits),
	})
}

// GetSessionHandler handles GET /api/v1/sim/register/{id}
// Retrieves information about a specific session
func (h *SimHandler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}

	session, err := h.sessionManager.GetSession(sessionID)
	if err != nil {
		respondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, grover.SessionResponse{
		Session: session,
	})
}

// CloseSessionHandler handles DELETE /api/v1/sim/register/{id}
// Destroys the register owned by the session
func (h *SimHandler) CloseSessionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID, ok := sessionIDFromPath(w, r)
	if !ok {
		return
	}

	if err := h.sessionManager.CloseSession(sessionID); err != nil {
		respondWithError(w, http.StatusNotFound, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Register closed successfully",
	})
}

// HealthCheckHandler handles GET /api/v1/sim/health
// Returns health status of the simulation service
func (h *SimHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":     "healthy",
		"service":    "Grover Search Simulator",
		"version":    "1.0.0",
		"max_qubits": h.sessionManager.MaxQubits(),
	}

	respondWithJSON(w, http.StatusOK, health)
}

// sessionIDFromPath extracts the session ID from URLs of the form
// /api/v1/sim/register/{id}[/action]
func sessionIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 6 {
		respondWithError(w, http.StatusBadRequest, "Invalid URL format")
		return uuid.Nil, false
	}

	sessionID, err := uuid.Parse(pathParts[5])
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID")
		return uuid.Nil, false
	}

	return sessionID, true
}

// statusForError maps simulator errors onto HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, grover.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, grover.ErrSessionExpired),
		errors.Is(err, grover.ErrSessionClosed):
		return http.StatusGone
	case errors.Is(err, quantum.ErrInvalidDimension),
		errors.Is(err, quantum.ErrIndexOutOfRange),
		errors.Is(err, quantum.ErrInvalidGateSpec),
		errors.Is(err, quantum.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// respondWithError sends an error response
func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
