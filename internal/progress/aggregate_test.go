package progress

import "testing"

func TestResolveOrderEmptyIsAllPending(t *testing.T) {
	got := ResolveOrder(nil)
	want := Vector{}
	if got != want {
		t.Errorf("got %+v, want all pending", got)
	}
}

func TestResolveOrderLeastAdvancedLineDominates(t *testing.T) {
	// One shipped line and one new line: the aggregate shows the new-stage
	// base vector.
	got := ResolveOrder([]LineStatus{
		{Lifecycle: "shipped"},
		{Lifecycle: "new"},
	})
	want := vec(StateInProgress, StatePending, StatePending, StatePending, StatePending)
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestResolveOrderMinimumMatchesSingleItemBase(t *testing.T) {
	got := ResolveOrder([]LineStatus{
		{Lifecycle: "mfg_qc"},
		{Lifecycle: "shipped"},
	})
	want := ResolveLine(LineStatus{Lifecycle: "mfg_qc"})
	if got != want {
		t.Errorf("aggregate %+v != single-item base %+v", got, want)
	}
}

func TestResolveOrderAnyMfgRejectionBlocksPackaging(t *testing.T) {
	got := ResolveOrder([]LineStatus{
		{Lifecycle: "shipping", MfgQC: "approved", PkgQC: "approved"},
		{Lifecycle: "shipping", MfgQC: "rejected"},
	})
	if got.Packaging != StatePending {
		t.Errorf("Packaging = %v, want pending when any line has a rejected mfg gate", got.Packaging)
	}
}

func TestResolveOrderAnyPkgRejectionBlocksShipped(t *testing.T) {
	got := ResolveOrder([]LineStatus{
		{Lifecycle: "shipped", PkgQC: "approved"},
		{Lifecycle: "shipped", PkgQC: "rejected"},
	})
	if got.Shipped != StatePending {
		t.Errorf("Shipped = %v, want pending when any line has a rejected pkg gate", got.Shipped)
	}
}

func TestResolveOrderPendingMfgGate(t *testing.T) {
	got := ResolveOrder([]LineStatus{
		{Lifecycle: "mfg_qc", MfgQC: "pending"},
		{Lifecycle: "mfg_qc"},
	})
	if got.MfgQC != StateInProgress {
		t.Errorf("MfgQC = %v, want in-progress", got.MfgQC)
	}
	if got.Packaging != StatePending {
		t.Errorf("Packaging = %v, want pending", got.Packaging)
	}
}

func TestResolveOrderPendingKeepsCompletedPackaging(t *testing.T) {
	// The "unless already completed" carve-out: all lines past packaging, one
	// with an unreviewed mfg gate. Packaging stays completed.
	got := ResolveOrder([]LineStatus{
		{Lifecycle: "pkg_qc", MfgQC: "pending"},
		{Lifecycle: "pkg_qc"},
	})
	if got.MfgQC != StateInProgress {
		t.Errorf("MfgQC = %v, want in-progress", got.MfgQC)
	}
	if got.Packaging != StateCompleted {
		t.Errorf("Packaging = %v, want completed (already completed by base)", got.Packaging)
	}
}

func TestResolveOrderRejectionBeatsPending(t *testing.T) {
	// Tie-break: rejection on one line wins over pending/approved on others,
	// even where the pending carve-out would have kept packaging completed.
	got := ResolveOrder([]LineStatus{
		{Lifecycle: "pkg_qc", MfgQC: "pending"},
		{Lifecycle: "pkg_qc", MfgQC: "rejected"},
	})
	if got.Packaging != StatePending {
		t.Errorf("Packaging = %v, want pending (rejection takes precedence)", got.Packaging)
	}
}

func TestResolveOrderPkgPendingGate(t *testing.T) {
	got := ResolveOrder([]LineStatus{
		{Lifecycle: "pkg_qc", PkgQC: "pending"},
		{Lifecycle: "shipping"},
	})
	if got.PkgQC != StateInProgress || got.Shipped != StatePending {
		t.Errorf("got pkgQc=%v shipped=%v, want in-progress/pending", got.PkgQC, got.Shipped)
	}
}

func TestResolveOrderSingleLine(t *testing.T) {
	line := LineStatus{Lifecycle: "packaging"}
	got := ResolveOrder([]LineStatus{line})
	want := ResolveLine(line)
	if got != want {
		t.Errorf("single-line aggregate %+v != line vector %+v", got, want)
	}
}
