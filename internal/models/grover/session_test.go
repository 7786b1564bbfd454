package grover

import "testing"

// TestRegisterCreateRequestValidate tests create-request validation
func TestRegisterCreateRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterCreateRequest
		wantErr error
	}{
		{"Valid request", RegisterCreateRequest{NumQubits: 3, TTLMinutes: 60}, nil},
		{"Zero qubits", RegisterCreateRequest{NumQubits: 0}, ErrInvalidNumQubits},
		{"Negative qubits", RegisterCreateRequest{NumQubits: -1}, ErrInvalidNumQubits},
		{"Negative TTL", RegisterCreateRequest{NumQubits: 2, TTLMinutes: -1}, ErrInvalidTTL},
		{"TTL above a week", RegisterCreateRequest{NumQubits: 2, TTLMinutes: 10081}, ErrInvalidTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); err != tt.wantErr {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestRegisterCreateRequestDefaultTTL tests the TTL default
func TestRegisterCreateRequestDefaultTTL(t *testing.T) {
	req := RegisterCreateRequest{NumQubits: 2}
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if req.TTLMinutes != 60 {
		t.Errorf("Expected default TTL 60, got %d", req.TTLMinutes)
	}
}

// TestSearchRequestValidate tests search-request validation
func TestSearchRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     SearchRequest
		wantErr error
	}{
		{"All-ones oracle", SearchRequest{Oracle: OracleAllOnes, Iterations: 2}, nil},
		{"Alternating oracle", SearchRequest{Oracle: OracleAlternating}, nil},
		{"Pattern oracle", SearchRequest{Oracle: OraclePattern, Pattern: "101", Iterations: 2}, nil},
		{"Pattern oracle without pattern", SearchRequest{Oracle: OraclePattern}, ErrInvalidPattern},
		{"All-ones with stray pattern", SearchRequest{Oracle: OracleAllOnes, Pattern: "11"}, ErrInvalidPattern},
		{"Unknown oracle", SearchRequest{Oracle: "phase_estimation"}, ErrInvalidOracle},
		{"Negative iterations", SearchRequest{Oracle: OracleAllOnes, Iterations: -1}, ErrInvalidIterations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.req.Validate(); err != tt.wantErr {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestFormatBasisState tests bit-string rendering, qubit 0 rightmost
func TestFormatBasisState(t *testing.T) {
	tests := []struct {
		index     int
		numQubits int
		want      string
	}{
		{5, 3, "101"},
		{5, 4, "0101"},
		{0, 2, "00"},
		{7, 3, "111"},
		{1, 4, "0001"},
	}

	for _, tt := range tests {
		if got := FormatBasisState(tt.index, tt.numQubits); got != tt.want {
			t.Errorf("FormatBasisState(%d, %d) = %q, want %q", tt.index, tt.numQubits, got, tt.want)
		}
	}
}
