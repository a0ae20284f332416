package services

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"fulfill-backend/internal/cache"
	"fulfill-backend/internal/live"
	"fulfill-backend/internal/metrics"
	"fulfill-backend/internal/models"
	"fulfill-backend/internal/progress"
	"fulfill-backend/internal/repositories"
)

type QcService struct {
	LineRepo  *repositories.OrderLineRepository
	QcRepo    *repositories.QcSubmissionRepository
	OrderRepo *repositories.OrderRepository
	Hub       *live.Hub
}

func NewQcService(lineRepo *repositories.OrderLineRepository, qcRepo *repositories.QcSubmissionRepository, orderRepo *repositories.OrderRepository, hub *live.Hub) *QcService {
	return &QcService{
		LineRepo:  lineRepo,
		QcRepo:    qcRepo,
		OrderRepo: orderRepo,
		Hub:       hub,
	}
}

// canOpenGate reports whether a line's QC gate may accept a submission or
// an approval. Manufacturing QC is always open; packaging QC stays locked
// until the line's manufacturing QC is approved, so packaging can never
// skip ahead of a rejected or unreviewed manufacturing gate.
func canOpenGate(line *models.OrderLine, qcType string) bool {
	if qcType != string(progress.QCTypePkg) {
		return true
	}
	return line.MfgQcStatus != nil && progress.NormalizeQCStatus(*line.MfgQcStatus) == progress.QCApproved
}

// decideOutcome maps an approve/reject decision onto the stored terminal
// status. Rejections without a note are refused up front.
func decideOutcome(approve bool, note string) (string, error) {
	if !approve && strings.TrimSpace(note) == "" {
		return "", ErrRejectNoteRequired
	}
	if approve {
		return "approved", nil
	}
	return "rejected", nil
}

// Submit records a seller's evidence for one QC gate and opens a pending
// review cycle.
func (s *QcService) Submit(ctx context.Context, req *models.SubmitQcRequest, userID int) (*models.QcSubmission, error) {
	qcType := strings.ToLower(strings.TrimSpace(req.Type))
	if qcType != string(progress.QCTypeMfg) && qcType != string(progress.QCTypePkg) {
		return nil, ErrInvalidQcType
	}

	line, err := s.LineRepo.Get(ctx, req.OrderLineID)
	if err != nil {
		return nil, err
	}

	if !canOpenGate(line, qcType) {
		return nil, ErrQcGateLocked
	}

	// One open review cycle per gate at a time
	latest, err := s.QcRepo.GetLatestByLineAndType(ctx, line.ID, qcType)
	if err != nil && err != pgx.ErrNoRows {
		return nil, err
	}
	if latest != nil && err == nil && latest.Status == "pending" {
		return nil, ErrOpenSubmissionExists
	}

	sub := &models.QcSubmission{
		OrderLineID: line.ID,
		Type:        qcType,
		Status:      "pending",
		ImageKeys:   req.ImageKeys,
		SubmittedBy: &userID,
	}
	if err := s.QcRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	if err := s.LineRepo.UpdateQcStatus(ctx, line.ID, qcType, "pending"); err != nil {
		return nil, err
	}

	metrics.QcSubmissionsTotal.WithLabelValues(qcType).Inc()
	s.OrderRepo.Touch(ctx, line.OrderID)
	cache.InvalidateOrderProgress(ctx, line.OrderID)
	s.publish(ctx, line.OrderID, line.ID, "qc_submitted")

	return sub, nil
}

// Decide records an admin's approve/reject decision on a submission.
// Replaying a decision on an already-decided submission is a no-op: the
// stored terminal status wins and the stored submission is returned
// unchanged, so retried requests cannot flip or duplicate a decision.
func (s *QcService) Decide(ctx context.Context, qcID int, approve bool, note string, reviewerID int) (*models.QcSubmission, error) {
	status, err := decideOutcome(approve, note)
	if err != nil {
		return nil, err
	}

	sub, err := s.QcRepo.Get(ctx, qcID)
	if err != nil {
		return nil, err
	}
	if sub.Status != "pending" {
		return sub, nil
	}

	if approve && sub.Type == string(progress.QCTypePkg) {
		line, err := s.LineRepo.Get(ctx, sub.OrderLineID)
		if err != nil {
			return nil, err
		}
		if !canOpenGate(line, sub.Type) {
			return nil, ErrQcGateLocked
		}
	}

	decided, err := s.QcRepo.Decide(ctx, qcID, status, note, reviewerID)
	if err != nil {
		return nil, err
	}
	if !decided {
		// Lost the race to another reviewer; return what was stored
		return s.QcRepo.Get(ctx, qcID)
	}

	if err := s.LineRepo.UpdateQcStatus(ctx, sub.OrderLineID, sub.Type, status); err != nil {
		return nil, err
	}

	sub.Status = status
	sub.Note = note
	metrics.QcDecisionsTotal.WithLabelValues(sub.Type, status).Inc()

	line, err := s.LineRepo.Get(ctx, sub.OrderLineID)
	if err == nil {
		s.OrderRepo.Touch(ctx, line.OrderID)
		cache.InvalidateOrderProgress(ctx, line.OrderID)
		s.publish(ctx, line.OrderID, line.ID, "qc_decided")
	}

	return sub, nil
}

// AppendImages attaches more evidence to an open submission
func (s *QcService) AppendImages(ctx context.Context, qcID int, keys []string) (*models.QcSubmission, error) {
	if err := s.QcRepo.AppendImages(ctx, qcID, keys); err != nil {
		return nil, err
	}
	return s.QcRepo.Get(ctx, qcID)
}

// History returns a line's full submission sequence with the derived
// rejection summary
func (s *QcService) History(ctx context.Context, lineID int) ([]*models.QcSubmission, progress.RejectionInfo, error) {
	subs, err := s.QcRepo.ListByLine(ctx, lineID)
	if err != nil {
		return nil, progress.RejectionInfo{}, err
	}
	return subs, progress.TrackRejections(submissionHistory(subs)), nil
}

// publish pushes the recomputed aggregate to live dashboard clients
func (s *QcService) publish(ctx context.Context, orderID, lineID int, kind string) {
	if s.Hub == nil {
		return
	}
	lines, err := s.LineRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return
	}

	var rejection progress.RejectionInfo
	for _, l := range lines {
		subs, err := s.QcRepo.ListByLine(ctx, l.ID)
		if err != nil {
			continue
		}
		info := progress.TrackRejections(submissionHistory(subs))
		rejection.MfgRejectionCount += info.MfgRejectionCount
		rejection.PkgRejectionCount += info.PkgRejectionCount
		rejection.RejectionNotes = append(rejection.RejectionNotes, info.RejectionNotes...)
	}

	s.Hub.Publish(live.ProgressEvent{
		OrderID:     orderID,
		OrderLineID: lineID,
		Kind:        kind,
		Aggregate:   progress.ResolveOrder(lineStatuses(lines)),
		Rejection:   rejection,
	})
}
