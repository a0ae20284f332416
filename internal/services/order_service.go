package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"fulfill-backend/internal/cache"
	"fulfill-backend/internal/models"
	"fulfill-backend/internal/progress"
	"fulfill-backend/internal/repositories"
)

// LineProgress pairs one order line with its derived progress state
type LineProgress struct {
	Line      *models.OrderLine      `json:"line"`
	Vector    progress.Vector        `json:"vector"`
	Rejection progress.RejectionInfo `json:"rejection"`
}

// OrderProgress is the full progress payload for one order: per-line vectors,
// the combined vector gated by the least-advanced line, rejection totals and
// the reconciled view mode for this viewer.
type OrderProgress struct {
	Order     *models.Order          `json:"order"`
	Lines     []LineProgress         `json:"lines"`
	Aggregate progress.Vector        `json:"aggregate"`
	Rejection progress.RejectionInfo `json:"rejection"`
	ViewMode  progress.ViewMode      `json:"view_mode"`
}

// OrderSummary is the list-view row: the order plus its combined vector
type OrderSummary struct {
	Order     *models.Order   `json:"order"`
	LineCount int             `json:"line_count"`
	Aggregate progress.Vector `json:"aggregate"`
	Rejected  bool            `json:"rejected"`
}

type OrderService struct {
	OrderRepo *repositories.OrderRepository
	LineRepo  *repositories.OrderLineRepository
	QcRepo    *repositories.QcSubmissionRepository
}

func NewOrderService(orderRepo *repositories.OrderRepository, lineRepo *repositories.OrderLineRepository, qcRepo *repositories.QcSubmissionRepository) *OrderService {
	return &OrderService{
		OrderRepo: orderRepo,
		LineRepo:  lineRepo,
		QcRepo:    qcRepo,
	}
}

func (s *OrderService) CreateOrder(ctx context.Context, req *models.CreateOrderRequest, sellerID int) (*models.Order, error) {
	if strings.TrimSpace(req.Reference) == "" {
		return nil, errors.New("order reference is required")
	}
	if len(req.Lines) == 0 {
		return nil, ErrNoLines
	}
	for _, lr := range req.Lines {
		if strings.TrimSpace(lr.ProductName) == "" {
			return nil, errors.New("every line needs a product name")
		}
	}

	order := &models.Order{
		Reference:    req.Reference,
		CustomerName: req.CustomerName,
		SellerID:     &sellerID,
		Notes:        req.Notes,
	}
	lines := make([]*models.OrderLine, 0, len(req.Lines))
	for _, lr := range req.Lines {
		lines = append(lines, &models.OrderLine{
			ProductName: lr.ProductName,
			SKU:         lr.SKU,
			Quantity:    lr.Quantity,
		})
	}
	if err := s.OrderRepo.CreateWithLines(ctx, order, lines); err != nil {
		return nil, err
	}
	cache.InvalidateOrderProgress(ctx, order.ID)
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	return s.OrderRepo.Get(ctx, id)
}

func (s *OrderService) UpdateOrder(ctx context.Context, order *models.Order) error {
	if err := s.OrderRepo.Update(ctx, order); err != nil {
		return err
	}
	cache.InvalidateOrderProgress(ctx, order.ID)
	return nil
}

// lineStatuses projects DB rows onto the shape the resolvers consume
func lineStatuses(lines []*models.OrderLine) []progress.LineStatus {
	statuses := make([]progress.LineStatus, 0, len(lines))
	for _, l := range lines {
		ls := progress.LineStatus{Lifecycle: l.LifecycleStatus}
		if l.MfgQcStatus != nil {
			ls.MfgQC = *l.MfgQcStatus
		}
		if l.PkgQcStatus != nil {
			ls.PkgQC = *l.PkgQcStatus
		}
		statuses = append(statuses, ls)
	}
	return statuses
}

// submissionHistory projects DB rows onto the rejection tracker's input
func submissionHistory(subs []*models.QcSubmission) []progress.Submission {
	history := make([]progress.Submission, 0, len(subs))
	for _, sub := range subs {
		history = append(history, progress.Submission{
			Type:   progress.QCType(sub.Type),
			Status: sub.Status,
			Note:   sub.Note,
		})
	}
	return history
}

// GetOrderProgress assembles the full progress payload for one order. The
// computation is pure over the fetched snapshot; results are cached per
// viewer role and dropped on any QC or order mutation. An explicit view
// toggle bypasses the cache since the cached payload embeds the view mode.
func (s *OrderService) GetOrderProgress(ctx context.Context, orderID int, role progress.ViewerRole, requestedView progress.ViewMode) (*OrderProgress, error) {
	if requestedView == "" {
		if data, ok := cache.GetCachedOrderProgress(ctx, orderID, string(role)); ok {
			var cached OrderProgress
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	order, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	lines, err := s.LineRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	statuses := lineStatuses(lines)
	payload := &OrderProgress{
		Order:     order,
		Lines:     make([]LineProgress, 0, len(lines)),
		Aggregate: progress.ResolveOrder(statuses),
		ViewMode:  progress.ResolveView(len(lines), role, requestedView),
	}

	for i, line := range lines {
		subs, err := s.QcRepo.ListByLine(ctx, line.ID)
		if err != nil {
			return nil, err
		}
		rejection := progress.TrackRejections(submissionHistory(subs))

		payload.Lines = append(payload.Lines, LineProgress{
			Line:      line,
			Vector:    progress.ResolveLine(statuses[i]),
			Rejection: rejection,
		})

		payload.Rejection.MfgRejectionCount += rejection.MfgRejectionCount
		payload.Rejection.PkgRejectionCount += rejection.PkgRejectionCount
		payload.Rejection.RejectionNotes = append(payload.Rejection.RejectionNotes, rejection.RejectionNotes...)
	}

	if requestedView == "" {
		if data, err := json.Marshal(payload); err == nil {
			cache.CacheOrderProgress(ctx, orderID, string(role), data)
		}
	}
	return payload, nil
}

// ListOrders returns list-view rows with combined vectors for the dashboard.
// The unfiltered first page is the one every admin dashboard polls, so that
// page alone is served from the summary cache; seller-scoped and paginated
// requests always hit the database.
func (s *OrderService) ListOrders(ctx context.Context, sellerID, limit, offset int) ([]*OrderSummary, error) {
	cacheable := sellerID == 0 && limit <= 0 && offset <= 0
	if cacheable {
		if data, ok := cache.GetCachedOrderSummary(ctx); ok {
			var cached []*OrderSummary
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	orders, err := s.OrderRepo.List(ctx, sellerID, limit, offset)
	if err != nil {
		return nil, err
	}

	summaries := make([]*OrderSummary, 0, len(orders))
	for _, order := range orders {
		lines, err := s.LineRepo.ListByOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}

		rejected := false
		for _, l := range lines {
			if (l.MfgQcStatus != nil && progress.NormalizeQCStatus(*l.MfgQcStatus) == progress.QCRejected) ||
				(l.PkgQcStatus != nil && progress.NormalizeQCStatus(*l.PkgQcStatus) == progress.QCRejected) {
				rejected = true
				break
			}
		}

		summaries = append(summaries, &OrderSummary{
			Order:     order,
			LineCount: len(lines),
			Aggregate: progress.ResolveOrder(lineStatuses(lines)),
			Rejected:  rejected,
		})
	}

	if cacheable {
		if data, err := json.Marshal(summaries); err == nil {
			cache.CacheOrderSummary(ctx, data)
		}
	}
	return summaries, nil
}

// UpdateLineStatus moves a line to a new lifecycle stage. Mutations validate
// strictly, unlike the fail-open read path: a garbled stage on a write is an
// error, not a silent downgrade to 'new'.
func (s *OrderService) UpdateLineStatus(ctx context.Context, lineID int, rawStatus string) (*models.OrderLine, error) {
	stage := progress.NormalizeStage(rawStatus)
	if stage == progress.StageNew && strings.ToLower(strings.TrimSpace(rawStatus)) != "new" {
		return nil, ErrUnknownLifecycle
	}

	line, err := s.LineRepo.Get(ctx, lineID)
	if err != nil {
		return nil, err
	}
	if err := s.LineRepo.UpdateLifecycleStatus(ctx, lineID, stage.String()); err != nil {
		return nil, err
	}
	line.LifecycleStatus = stage.String()

	s.OrderRepo.Touch(ctx, line.OrderID)
	cache.InvalidateOrderProgress(ctx, line.OrderID)
	return line, nil
}
