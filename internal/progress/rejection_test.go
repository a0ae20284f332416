package progress

import (
	"reflect"
	"testing"
)

func TestTrackRejectionsCountsOnlyRejected(t *testing.T) {
	// Three pkg_qc submissions, two rejected: count is 2, not 3.
	history := []Submission{
		{Type: QCTypePkg, Status: "rejected", Note: "seal damaged"},
		{Type: QCTypePkg, Status: "rejected", Note: "wrong label"},
		{Type: QCTypePkg, Status: "pending"},
	}
	info := TrackRejections(history)
	if info.PkgRejectionCount != 2 {
		t.Errorf("PkgRejectionCount = %d, want 2", info.PkgRejectionCount)
	}
	if info.MfgRejectionCount != 0 {
		t.Errorf("MfgRejectionCount = %d, want 0", info.MfgRejectionCount)
	}
	wantNotes := []string{"seal damaged", "wrong label"}
	if !reflect.DeepEqual(info.RejectionNotes, wantNotes) {
		t.Errorf("RejectionNotes = %v, want %v (oldest first)", info.RejectionNotes, wantNotes)
	}
}

func TestTrackRejectionsMonotonic(t *testing.T) {
	// Appending a rejected submission increases the count by exactly 1.
	history := []Submission{
		{Type: QCTypeMfg, Status: "rejected", Note: "scratch on housing"},
	}
	before := TrackRejections(history)

	history = append(history, Submission{Type: QCTypeMfg, Status: "rejected", Note: "still scratched"})
	after := TrackRejections(history)

	if after.MfgRejectionCount != before.MfgRejectionCount+1 {
		t.Errorf("count went %d -> %d, want +1", before.MfgRejectionCount, after.MfgRejectionCount)
	}

	history = append(history, Submission{Type: QCTypeMfg, Status: "approved"})
	final := TrackRejections(history)
	if final.MfgRejectionCount != after.MfgRejectionCount {
		t.Errorf("approval changed rejection count %d -> %d", after.MfgRejectionCount, final.MfgRejectionCount)
	}
}

func TestTrackRejectionsSplitsByType(t *testing.T) {
	history := []Submission{
		{Type: QCTypeMfg, Status: "rejected", Note: "bad weld"},
		{Type: QCTypePkg, Status: "rejected", Note: "crushed box"},
		{Type: QCTypeMfg, Status: "approved"},
		{Type: QCTypePkg, Status: "approved"},
	}
	info := TrackRejections(history)
	if info.MfgRejectionCount != 1 || info.PkgRejectionCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", info.MfgRejectionCount, info.PkgRejectionCount)
	}
	if !info.Rejected() {
		t.Error("Rejected() = false, want true")
	}
}

func TestTrackRejectionsNoteOptional(t *testing.T) {
	info := TrackRejections([]Submission{{Type: QCTypeMfg, Status: "rejected"}})
	if info.MfgRejectionCount != 1 {
		t.Errorf("MfgRejectionCount = %d, want 1", info.MfgRejectionCount)
	}
	if len(info.RejectionNotes) != 0 {
		t.Errorf("RejectionNotes = %v, want empty", info.RejectionNotes)
	}
}

func TestTrackRejectionsEmptyHistory(t *testing.T) {
	info := TrackRejections(nil)
	if info.Rejected() {
		t.Error("empty history reports rejected")
	}
}
