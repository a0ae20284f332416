package repositories

import (
	"context"

	"fulfill-backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QcSubmissionRepository struct {
	DB *pgxpool.Pool
}

func NewQcSubmissionRepository(db *pgxpool.Pool) *QcSubmissionRepository {
	return &QcSubmissionRepository{DB: db}
}

func (r *QcSubmissionRepository) Create(ctx context.Context, s *models.QcSubmission) error {
	if s.Status == "" {
		s.Status = "pending"
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO qc_submissions(order_line_id, type, status, note, image_keys, submitted_by)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at`,
		s.OrderLineID, s.Type, s.Status, s.Note, s.ImageKeys, s.SubmittedBy,
	).Scan(&s.ID, &s.CreatedAt)
}

func (r *QcSubmissionRepository) Get(ctx context.Context, id int) (*models.QcSubmission, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, order_line_id, type, status, note, image_keys, submitted_by,
		 reviewed_by, reviewed_at, created_at
         FROM qc_submissions WHERE id=$1`, id)

	var sub models.QcSubmission
	err := row.Scan(&sub.ID, &sub.OrderLineID, &sub.Type, &sub.Status, &sub.Note,
		&sub.ImageKeys, &sub.SubmittedBy, &sub.ReviewedBy, &sub.ReviewedAt, &sub.CreatedAt)
	return &sub, err
}

// ListByLine returns a line's full submission history, oldest first
func (r *QcSubmissionRepository) ListByLine(ctx context.Context, orderLineID int) ([]*models.QcSubmission, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, order_line_id, type, status, note, image_keys, submitted_by,
		 reviewed_by, reviewed_at, created_at
         FROM qc_submissions WHERE order_line_id=$1 ORDER BY created_at, id`, orderLineID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.QcSubmission
	for rows.Next() {
		var sub models.QcSubmission
		err := rows.Scan(&sub.ID, &sub.OrderLineID, &sub.Type, &sub.Status, &sub.Note,
			&sub.ImageKeys, &sub.SubmittedBy, &sub.ReviewedBy, &sub.ReviewedAt, &sub.CreatedAt)
		if err != nil {
			return nil, err
		}
		subs = append(subs, &sub)
	}
	return subs, nil
}

// GetLatestByLineAndType returns the most recent submission for one QC gate
func (r *QcSubmissionRepository) GetLatestByLineAndType(ctx context.Context, orderLineID int, qcType string) (*models.QcSubmission, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, order_line_id, type, status, note, image_keys, submitted_by,
		 reviewed_by, reviewed_at, created_at
         FROM qc_submissions WHERE order_line_id=$1 AND type=$2
         ORDER BY created_at DESC, id DESC LIMIT 1`, orderLineID, qcType)

	var sub models.QcSubmission
	err := row.Scan(&sub.ID, &sub.OrderLineID, &sub.Type, &sub.Status, &sub.Note,
		&sub.ImageKeys, &sub.SubmittedBy, &sub.ReviewedBy, &sub.ReviewedAt, &sub.CreatedAt)
	return &sub, err
}

// Decide records an approve/reject decision. The status guard makes replays
// no-ops: a submission that already reached a terminal status is never
// mutated again, so decided reports whether this call was the one that
// decided it.
func (r *QcSubmissionRepository) Decide(ctx context.Context, id int, status, note string, reviewerID int) (bool, error) {
	tag, err := r.DB.Exec(ctx,
		`UPDATE qc_submissions
         SET status=$1, note=$2, reviewed_by=$3, reviewed_at=CURRENT_TIMESTAMP
         WHERE id=$4 AND status='pending'`,
		status, note, reviewerID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// AppendImages attaches more evidence keys to a pending submission
func (r *QcSubmissionRepository) AppendImages(ctx context.Context, id int, keys []string) error {
	_, err := r.DB.Exec(ctx,
		`UPDATE qc_submissions SET image_keys = image_keys || $1
         WHERE id=$2 AND status='pending'`, keys, id)
	return err
}
