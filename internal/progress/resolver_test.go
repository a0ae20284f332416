package progress

import "testing"

func vec(m, mq, p, pq, s StageState) Vector {
	return Vector{Manufacturing: m, MfgQC: mq, Packaging: p, PkgQC: pq, Shipped: s}
}

func TestBaseVectorPerStage(t *testing.T) {
	tests := []struct {
		stage Stage
		want  Vector
	}{
		{StageNew, vec(StateInProgress, StatePending, StatePending, StatePending, StatePending)},
		{StageManufacture, vec(StateInProgress, StatePending, StatePending, StatePending, StatePending)},
		{StageMfgQC, vec(StateCompleted, StateInProgress, StatePending, StatePending, StatePending)},
		{StagePackaging, vec(StateCompleted, StateCompleted, StateInProgress, StatePending, StatePending)},
		{StagePkgQC, vec(StateCompleted, StateCompleted, StateCompleted, StateInProgress, StatePending)},
		{StageShipping, vec(StateCompleted, StateCompleted, StateCompleted, StateCompleted, StateInProgress)},
		{StageShipped, vec(StateCompleted, StateCompleted, StateCompleted, StateCompleted, StateCompleted)},
		{StageDelivered, vec(StateCompleted, StateCompleted, StateCompleted, StateCompleted, StateCompleted)},
	}

	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			got := ResolveLine(LineStatus{Lifecycle: tt.stage.String()})
			if got != tt.want {
				t.Errorf("ResolveLine(%q) = %+v, want %+v", tt.stage, got, tt.want)
			}
		})
	}
}

func TestResolveLineMfgQCPending(t *testing.T) {
	// Line under manufacturing QC review: the gate shows in-progress and
	// packaging stays blocked.
	got := ResolveLine(LineStatus{Lifecycle: "mfg_qc", MfgQC: "pending"})
	want := vec(StateCompleted, StateInProgress, StatePending, StatePending, StatePending)
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestResolveLineMfgQCApproved(t *testing.T) {
	// Approval completes the gate and unblocks packaging.
	got := ResolveLine(LineStatus{Lifecycle: "mfg_qc", MfgQC: "approved"})
	want := vec(StateCompleted, StateCompleted, StateInProgress, StatePending, StatePending)
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestResolveLineApprovedRegardlessOfCasing(t *testing.T) {
	for _, raw := range []string{"MFG_QC", "mfg_qc", "Mfg_Qc", " mfg_qc ", "mfg-qc"} {
		got := ResolveLine(LineStatus{Lifecycle: raw, MfgQC: "approved"})
		if got.MfgQC != StateCompleted {
			t.Errorf("lifecycle %q: MfgQC = %v, want completed", raw, got.MfgQC)
		}
	}
}

func TestResolveLineCompletedNormalizesToApproved(t *testing.T) {
	got := ResolveLine(LineStatus{Lifecycle: "mfg_qc", MfgQC: "completed"})
	if got.MfgQC != StateCompleted || got.Packaging != StateInProgress {
		t.Errorf("completed should act as approved, got %+v", got)
	}
}

func TestResolveLineMfgQCRejected(t *testing.T) {
	// Rejection keeps the gate's base-table value (the caller renders the
	// rejection marker separately) but must block packaging.
	got := ResolveLine(LineStatus{Lifecycle: "mfg_qc", MfgQC: "rejected"})
	want := vec(StateCompleted, StateInProgress, StatePending, StatePending, StatePending)
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestResolveLinePkgRejectedBlocksShippedAlways(t *testing.T) {
	// The rejection gate holds for every lifecycle value, shipped included.
	for _, lifecycle := range []string{"new", "mfg_qc", "packaging", "pkg_qc", "shipping", "shipped", "delivered"} {
		got := ResolveLine(LineStatus{Lifecycle: lifecycle, PkgQC: "rejected"})
		if got.Shipped != StatePending {
			t.Errorf("lifecycle %q: Shipped = %v, want pending", lifecycle, got.Shipped)
		}
	}
}

func TestResolveLineShippedIgnoresStalePendingQC(t *testing.T) {
	// A line that physically shipped ignores a stale unreviewed sub-status.
	got := ResolveLine(LineStatus{Lifecycle: "shipped", MfgQC: "pending"})
	want := vec(StateCompleted, StateCompleted, StateCompleted, StateCompleted, StateCompleted)
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestResolveLinePendingDemotesCompletedPackaging(t *testing.T) {
	// Stricter gating rule: an unreviewed mfg gate pulls packaging back to
	// pending even where the base table already completed it.
	got := ResolveLine(LineStatus{Lifecycle: "pkg_qc", MfgQC: "pending"})
	if got.MfgQC != StateInProgress || got.Packaging != StatePending {
		t.Errorf("got %+v, want mfgQc in-progress and packaging pending", got)
	}
}

func TestResolveLinePkgQCOverrides(t *testing.T) {
	tests := []struct {
		name      string
		line      LineStatus
		wantPkgQC StageState
		wantShip  StageState
	}{
		{"pending blocks shipped", LineStatus{Lifecycle: "pkg_qc", PkgQC: "pending"}, StateInProgress, StatePending},
		{"approved unblocks shipped", LineStatus{Lifecycle: "pkg_qc", PkgQC: "approved"}, StateCompleted, StateInProgress},
		{"rejected blocks shipped", LineStatus{Lifecycle: "pkg_qc", PkgQC: "rejected"}, StateInProgress, StatePending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveLine(tt.line)
			if got.PkgQC != tt.wantPkgQC || got.Shipped != tt.wantShip {
				t.Errorf("got pkgQc=%v shipped=%v, want pkgQc=%v shipped=%v",
					got.PkgQC, got.Shipped, tt.wantPkgQC, tt.wantShip)
			}
		})
	}
}

func TestResolveLineUnknownLifecycleFailsOpen(t *testing.T) {
	// Garbled input degrades to the earliest stage instead of erroring.
	got := ResolveLine(LineStatus{Lifecycle: "???garbage???"})
	want := vec(StateInProgress, StatePending, StatePending, StatePending, StatePending)
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
