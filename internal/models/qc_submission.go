package models

import "time"

// QcSubmission is one QC review cycle for an order line. Records are
// append-only: a rejected submission never mutates again, a resubmission
// creates a new record.
type QcSubmission struct {
	ID          int        `json:"id"`
	OrderLineID int        `json:"order_line_id"`
	Type        string     `json:"type"`   // 'mfg_qc' or 'pkg_qc'
	Status      string     `json:"status"` // 'pending', 'approved', 'rejected'
	Note        string     `json:"note,omitempty"`
	ImageKeys   []string   `json:"image_keys"` // Evidence object keys, append-only
	SubmittedBy *int       `json:"submitted_by,omitempty"` // Nil once the submitter account is deleted
	ReviewedBy  *int       `json:"reviewed_by,omitempty"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SubmitQcRequest represents the request body for submitting QC evidence
type SubmitQcRequest struct {
	OrderLineID int      `json:"order_line_id"`
	Type        string   `json:"type"`
	ImageKeys   []string `json:"image_keys"`
}

// DecideQcRequest represents the request body for an approve/reject decision
type DecideQcRequest struct {
	Note string `json:"note"` // Required on rejection, ignored on approval
}

// AppendQcImagesRequest represents the request body for attaching more evidence
type AppendQcImagesRequest struct {
	ImageKeys []string `json:"image_keys"`
}
