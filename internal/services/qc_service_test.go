package services

import (
	"errors"
	"testing"

	"fulfill-backend/internal/models"
)

func TestCanOpenGate(t *testing.T) {
	tests := []struct {
		name   string
		mfgQc  *string
		qcType string
		want   bool
	}{
		{"mfg gate always open", nil, "mfg_qc", true},
		{"mfg gate open despite rejection", strPtr("rejected"), "mfg_qc", true},
		{"pkg locked with no mfg qc", nil, "pkg_qc", false},
		{"pkg locked while mfg pending", strPtr("pending"), "pkg_qc", false},
		{"pkg locked while mfg in review", strPtr("in_review"), "pkg_qc", false},
		{"pkg locked after mfg rejection", strPtr("rejected"), "pkg_qc", false},
		{"pkg open after mfg approval", strPtr("approved"), "pkg_qc", true},
		{"pkg open on approval synonym", strPtr("COMPLETED"), "pkg_qc", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := &models.OrderLine{LifecycleStatus: "pkg_qc", MfgQcStatus: tt.mfgQc}
			if got := canOpenGate(line, tt.qcType); got != tt.want {
				t.Errorf("canOpenGate(%v, %q) = %v, want %v", tt.mfgQc, tt.qcType, got, tt.want)
			}
		})
	}
}

func TestDecideOutcome(t *testing.T) {
	tests := []struct {
		name    string
		approve bool
		note    string
		want    string
		wantErr error
	}{
		{"approve without note", true, "", "approved", nil},
		{"approve with note", true, "looks good", "approved", nil},
		{"reject with note", false, "crushed corner", "rejected", nil},
		{"reject without note", false, "", "", ErrRejectNoteRequired},
		{"reject with blank note", false, "   ", "", ErrRejectNoteRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decideOutcome(tt.approve, tt.note)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("status = %q, want %q", got, tt.want)
			}
		})
	}
}
