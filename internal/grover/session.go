package grover

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arnavdesai/Go-Grover/internal/grover/quantum"
	"github.com/arnavdesai/Go-Grover/internal/models/grover"
)

// SessionManager owns simulation sessions and their registers. Each
// session exclusively owns one amplitude vector; all mutation happens
// under the manager's lock and runs to completion, so a register is never
// observed mid-gate.
type SessionManager struct {
	sessions  map[uuid.UUID]*grover.SimSession
	registers map[uuid.UUID]*quantum.Register
	sampler   *quantum.Sampler
	mutex     sync.RWMutex
	maxQubits int
}

// NewSessionManager creates a session manager. maxQubits caps register
// allocation; values outside (0, DefaultMaxQubits] fall back to the
// default.
func NewSessionManager(maxQubits int) *SessionManager {
	if maxQubits <= 0 || maxQubits > quantum.DefaultMaxQubits {
		maxQubits = quantum.DefaultMaxQubits
	}
	return &SessionManager{
		sessions:  make(map[uuid.UUID]*grover.SimSession),
		registers: make(map[uuid.UUID]*quantum.Register),
		sampler:   quantum.NewSampler(),
		maxQubits: maxQubits,
	}
}

// SetSampler replaces the outcome sampler, used by tests that need a
// deterministic seed.
func (sm *SessionManager) SetSampler(s *quantum.Sampler) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	sm.sampler = s
}

// MaxQubits returns the configured register size limit.
func (sm *SessionManager) MaxQubits() int {
	return sm.maxQubits
}

// CreateRegister allocates a new register in the |0...0⟩ state and a
// session that owns it.
func (sm *SessionManager) CreateRegister(req *grover.RegisterCreateRequest) (*grover.SimSession, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	reg, err := quantum.NewRegisterWithLimit(req.NumQubits, sm.maxQubits)
	if err != nil {
		return nil, err
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sessionID := uuid.New()
	now := time.Now()

	session := &grover.SimSession{
		SessionID: sessionID,
		NumQubits: req.NumQubits,
		Status:    grover.SessionCreated,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(req.TTLMinutes) * time.Minute),
	}

	sm.sessions[sessionID] = session
	sm.registers[sessionID] = reg

	return session, nil
}

// ApplyGate applies one gate descriptor to a session's register. The
// gate either fully succeeds or leaves the register unchanged.
func (sm *SessionManager) ApplyGate(sessionID uuid.UUID, gate quantum.Gate) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	session, reg, err := sm.lookup(sessionID)
	if err != nil {
		return err
	}

	if err := gate.Apply(reg); err != nil {
		return err
	}

	session.GatesApplied++
	return nil
}

// RunSearch builds the phase oracle described by the request and runs the
// full Grover driver on the session's register.
func (sm *SessionManager) RunSearch(sessionID uuid.UUID, req *grover.SearchRequest) (*grover.SimSession, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	session, reg, err := sm.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	mark, err := markingOracleFor(req, reg.NumQubits())
	if err != nil {
		return nil, err
	}

	session.Status = grover.SessionRunning
	session.Oracle = req.Oracle
	session.Pattern = req.Pattern
	session.Iterations = req.Iterations

	if err := RunSearch(reg, ConvertToPhaseOracle(mark), req.Iterations); err != nil {
		session.Status = grover.SessionFailed
		session.Message = err.Error()
		return nil, err
	}

	now := time.Now()
	session.Status = grover.SessionCompleted
	session.CompletedAt = &now

	return session, nil
}

// Probabilities returns the exact outcome distribution of a session's
// register. lookup mutates session state on the expiry path, so even this
// read-only query takes the write lock.
func (sm *SessionManager) Probabilities(sessionID uuid.UUID) ([]float64, error) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	_, reg, err := sm.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	return reg.Probabilities(), nil
}

// Sample draws one classical outcome from a session's register without
// collapsing it.
func (sm *SessionManager) Sample(sessionID uuid.UUID) (int, error) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	_, reg, err := sm.lookup(sessionID)
	if err != nil {
		return 0, err
	}
	return sm.sampler.Sample(reg), nil
}

// GetSession retrieves session metadata.
func (sm *SessionManager) GetSession(sessionID uuid.UUID) (*grover.SimSession, error) {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, grover.ErrSessionNotFound
	}
	return session, nil
}

// CloseSession destroys a session's register. The session record survives
// with a closed status so later calls are distinguishable from unknown
// IDs.
func (sm *SessionManager) CloseSession(sessionID uuid.UUID) error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	session, exists := sm.sessions[sessionID]
	if !exists {
		return grover.ErrSessionNotFound
	}

	delete(sm.registers, sessionID)
	session.Status = grover.SessionClosed
	return nil
}

// lookup fetches a live session and its register, handling expiry and
// closure. Callers hold the lock.
func (sm *SessionManager) lookup(sessionID uuid.UUID) (*grover.SimSession, *quantum.Register, error) {
	session, exists := sm.sessions[sessionID]
	if !exists {
		return nil, nil, grover.ErrSessionNotFound
	}

	if session.Status == grover.SessionClosed {
		return nil, nil, grover.ErrSessionClosed
	}

	if time.Now().After(session.ExpiresAt) {
		session.Status = grover.SessionExpired
		delete(sm.registers, sessionID)
		return nil, nil, grover.ErrSessionExpired
	}

	reg, exists := sm.registers[sessionID]
	if !exists {
		return nil, nil, grover.ErrSessionExpired
	}

	return session, reg, nil
}

// markingOracleFor maps a search request onto a marking oracle, checking
// the pattern width against the register.
func markingOracleFor(req *grover.SearchRequest, numQubits int) (MarkingOracle, error) {
	switch req.Oracle {
	case grover.OracleAllOnes:
		return MarkAllOnes, nil
	case grover.OracleAlternating:
		return MarkAlternatingBits, nil
	case grover.OraclePattern:
		bits, err := ParsePattern(req.Pattern)
		if err != nil {
			return nil, err
		}
		if len(bits) != numQubits {
			return nil, grover.ErrInvalidPattern
		}
		return PatternOracle(bits), nil
	default:
		return nil, grover.ErrInvalidOracle
	}
}
