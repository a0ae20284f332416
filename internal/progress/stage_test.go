package progress

import "testing"

func TestNormalizeStage(t *testing.T) {
	tests := []struct {
		raw  string
		want Stage
	}{
		{"new", StageNew},
		{"manufacture", StageManufacture},
		{"manufacturing", StageManufacture},
		{"Mfg_QC", StageMfgQC},
		{"MFG_QC", StageMfgQC},
		{"mfg-qc", StageMfgQC},
		{"PACKAGING ", StagePackaging},
		{"pkg_qc", StagePkgQC},
		{"Pkg Qc", StagePkgQC},
		{"shipping", StageShipping},
		{"SHIPPED", StageShipped},
		{"delivered", StageDelivered},
		{"", StageNew},
		{"bogus", StageNew},
		{"  ", StageNew},
	}
	for _, tt := range tests {
		if got := NormalizeStage(tt.raw); got != tt.want {
			t.Errorf("NormalizeStage(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestStageOrdering(t *testing.T) {
	order := []Stage{
		StageNew, StageManufacture, StageMfgQC, StagePackaging,
		StagePkgQC, StageShipping, StageShipped, StageDelivered,
	}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("stage %v should sort before %v", order[i-1], order[i])
		}
	}
}

func TestNormalizeQCStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want QCStatus
	}{
		{"", QCUnset},
		{"pending", QCPending},
		{"Pending", QCPending},
		{"in_progress", QCInProgress},
		{"in-progress", QCInProgress},
		{"approved", QCApproved},
		{"completed", QCApproved},
		{"REJECTED", QCRejected},
		{"garbled", QCUnset},
	}
	for _, tt := range tests {
		if got := NormalizeQCStatus(tt.raw); got != tt.want {
			t.Errorf("NormalizeQCStatus(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestStageStateJSON(t *testing.T) {
	b, err := StateInProgress.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"in-progress"` {
		t.Errorf("got %s, want \"in-progress\"", b)
	}
}
