package grover

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the current state of a simulation session
type SessionStatus string

const (
	SessionCreated   SessionStatus = "created"
	SessionRunning   SessionStatus = "running"
	SessionCompleted SessionStatus = "completed"
	SessionFailed    SessionStatus = "failed"
	SessionExpired   SessionStatus = "expired"
	SessionClosed    SessionStatus = "closed"
)

// OracleKind names a marking-oracle construction supported by the search driver
type OracleKind string

const (
	// OracleAllOnes marks the basis state where every query qubit is 1
	OracleAllOnes OracleKind = "all_ones"
	// OracleAlternating marks the alternating pattern: even query
	// positions 1, odd positions 0
	OracleAlternating OracleKind = "alternating"
	// OraclePattern marks the basis state matching an explicit '0'/'1'
	// pattern string, one character per query qubit (position i is qubit i)
	OraclePattern OracleKind = "pattern"
)

// SimSession represents one simulation session owning a quantum register
type SimSession struct {
	SessionID    uuid.UUID     `json:"session_id"`
	NumQubits    int           `json:"num_qubits"`
	Status       SessionStatus `json:"status"`
	GatesApplied int           `json:"gates_applied"`
	Oracle       OracleKind    `json:"oracle,omitempty"`
	Pattern      string        `json:"pattern,omitempty"`
	Iterations   int           `json:"iterations"`
	Message      string        `json:"message,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
	ExpiresAt    time.Time     `json:"expires_at"`
}

// RegisterCreateRequest represents a request to allocate a new register
type RegisterCreateRequest struct {
	NumQubits  int `json:"num_qubits"`
	TTLMinutes int `json:"ttl_minutes,omitempty"`
}

// SearchRequest represents a request to run a Grover search on a register
type SearchRequest struct {
	Oracle     OracleKind `json:"oracle"`
	Pattern    string     `json:"pattern,omitempty"`
	Iterations int        `json:"iterations"`
}

// SessionResponse represents the response when creating or querying a session
type SessionResponse struct {
	Session *SimSession `json:"session"`
	Error   string      `json:"error,omitempty"`
}

// ProbabilitiesResponse carries the exact outcome distribution of a register
type ProbabilitiesResponse struct {
	SessionID     string    `json:"session_id"`
	NumQubits     int       `json:"num_qubits"`
	Probabilities []float64 `json:"probabilities"`
}

// SampleResponse carries one sampled measurement outcome
type SampleResponse struct {
	SessionID string `json:"session_id"`
	Outcome   int    `json:"outcome"`
	Bits      string `json:"bits"`
}

// Validate validates a register create request. The upper dimension bound
// is enforced by the register allocator, which knows the configured limit.
func (r *RegisterCreateRequest) Validate() error {
	if r.NumQubits < 1 {
		return ErrInvalidNumQubits
	}

	// Default TTL: 1 hour
	if r.TTLMinutes == 0 {
		r.TTLMinutes = 60
	}

	if r.TTLMinutes < 1 || r.TTLMinutes > 10080 { // Max 7 days
		return ErrInvalidTTL
	}

	return nil
}

// Validate validates a search request
func (r *SearchRequest) Validate() error {
	switch r.Oracle {
	case OracleAllOnes, OracleAlternating:
		if r.Pattern != "" {
			return ErrInvalidPattern
		}
	case OraclePattern:
		if r.Pattern == "" {
			return ErrInvalidPattern
		}
	default:
		return ErrInvalidOracle
	}

	if r.Iterations < 0 {
		return ErrInvalidIterations
	}

	return nil
}

// FormatBasisState renders a basis index as a bit string in display order
// |q_{n-1} ... q_1 q_0⟩, qubit 0 rightmost.
func FormatBasisState(index, numQubits int) string {
	bits := make([]byte, numQubits)
	for q := 0; q < numQubits; q++ {
		if index&(1<<q) != 0 {
			bits[numQubits-1-q] = '1'
		} else {
			bits[numQubits-1-q] = '0'
		}
	}
	return string(bits)
}

// Custom errors
type SimError struct {
	Message string
}

func (e *SimError) Error() string {
	return e.Message
}

var (
	ErrInvalidNumQubits  = &SimError{"number of qubits must be positive"}
	ErrInvalidTTL        = &SimError{"TTL must be between 1 and 10080 minutes"}
	ErrInvalidIterations = &SimError{"iteration count must be non-negative"}
	ErrInvalidOracle     = &SimError{"unknown oracle kind"}
	ErrInvalidPattern    = &SimError{"pattern must be a '0'/'1' string matching the register width"}
	ErrSessionNotFound   = &SimError{"session not found"}
	ErrSessionExpired    = &SimError{"session has expired"}
	ErrSessionClosed     = &SimError{"session is closed"}
)
