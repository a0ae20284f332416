package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"fulfill-backend/internal/models"
	"fulfill-backend/internal/progress"
)

func strPtr(s string) *string { return &s }

func TestLineStatusesProjection(t *testing.T) {
	lines := []*models.OrderLine{
		{LifecycleStatus: "mfg_qc", MfgQcStatus: strPtr("pending")},
		{LifecycleStatus: "shipped"},
	}

	got := lineStatuses(lines)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Lifecycle != "mfg_qc" || got[0].MfgQC != "pending" || got[0].PkgQC != "" {
		t.Errorf("first status = %+v", got[0])
	}
	if got[1].Lifecycle != "shipped" || got[1].MfgQC != "" {
		t.Errorf("second status = %+v", got[1])
	}
}

// Seller and submitter references go NULL when the user account is deleted,
// so the model fields must carry nil rather than break on a DB scan.
func TestDeletedUserReferencesAreNullable(t *testing.T) {
	order := models.Order{ID: 7, Reference: "ORD-7", SellerID: nil}
	data, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("marshal order: %v", err)
	}
	if strings.Contains(string(data), "seller_id") {
		t.Errorf("nil seller_id serialized: %s", data)
	}

	sub := models.QcSubmission{ID: 3, Type: "mfg_qc", Status: "approved", SubmittedBy: nil}
	data, err = json.Marshal(sub)
	if err != nil {
		t.Fatalf("marshal submission: %v", err)
	}
	if strings.Contains(string(data), "submitted_by") {
		t.Errorf("nil submitted_by serialized: %s", data)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	svc := NewOrderService(nil, nil, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *models.CreateOrderRequest
	}{
		{"blank reference", &models.CreateOrderRequest{Reference: "  ", Lines: []models.CreateOrderLineRequest{{ProductName: "Widget"}}}},
		{"no lines", &models.CreateOrderRequest{Reference: "ORD-1"}},
		{"blank product name", &models.CreateOrderRequest{Reference: "ORD-1", Lines: []models.CreateOrderLineRequest{{ProductName: " "}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateOrder(ctx, tt.req, 1); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSubmissionHistoryProjection(t *testing.T) {
	subs := []*models.QcSubmission{
		{Type: "mfg_qc", Status: "rejected", Note: "bad weld"},
		{Type: "pkg_qc", Status: "approved"},
	}

	history := submissionHistory(subs)
	info := progress.TrackRejections(history)
	if info.MfgRejectionCount != 1 || info.PkgRejectionCount != 0 {
		t.Errorf("counts = %d/%d, want 1/0", info.MfgRejectionCount, info.PkgRejectionCount)
	}
	if len(info.RejectionNotes) != 1 || info.RejectionNotes[0] != "bad weld" {
		t.Errorf("notes = %v", info.RejectionNotes)
	}
}
