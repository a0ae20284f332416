package services

import (
	"bytes"
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf/v2"

	"fulfill-backend/internal/models"
	"fulfill-backend/internal/progress"
	"fulfill-backend/internal/repositories"
	"fulfill-backend/internal/timeutil"
)

// QcReportData holds everything the QC summary PDF needs for one order
type QcReportData struct {
	Order       *models.Order
	Lines       []*models.OrderLine
	Vectors     []progress.Vector
	Rejections  []progress.RejectionInfo
	Submissions map[int][]*models.QcSubmission
	Aggregate   progress.Vector
}

// ReportService generates printable QC summaries
type ReportService struct {
	OrderRepo *repositories.OrderRepository
	LineRepo  *repositories.OrderLineRepository
	QcRepo    *repositories.QcSubmissionRepository
}

func NewReportService(orderRepo *repositories.OrderRepository, lineRepo *repositories.OrderLineRepository, qcRepo *repositories.QcSubmissionRepository) *ReportService {
	return &ReportService{
		OrderRepo: orderRepo,
		LineRepo:  lineRepo,
		QcRepo:    qcRepo,
	}
}

// GetQcReportData fetches the full snapshot for one order's report
func (s *ReportService) GetQcReportData(ctx context.Context, orderID int) (*QcReportData, error) {
	order, err := s.OrderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	lines, err := s.LineRepo.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	data := &QcReportData{
		Order:       order,
		Lines:       lines,
		Submissions: make(map[int][]*models.QcSubmission),
	}

	var statuses []progress.LineStatus
	for _, line := range lines {
		subs, err := s.QcRepo.ListByLine(ctx, line.ID)
		if err != nil {
			return nil, err
		}
		data.Submissions[line.ID] = subs
		data.Rejections = append(data.Rejections, progress.TrackRejections(submissionHistory(subs)))

		ls := progress.LineStatus{Lifecycle: line.LifecycleStatus}
		if line.MfgQcStatus != nil {
			ls.MfgQC = *line.MfgQcStatus
		}
		if line.PkgQcStatus != nil {
			ls.PkgQC = *line.PkgQcStatus
		}
		statuses = append(statuses, ls)
		data.Vectors = append(data.Vectors, progress.ResolveLine(ls))
	}
	data.Aggregate = progress.ResolveOrder(statuses)

	return data, nil
}

// GenerateQcPDF renders the QC summary report for one order
func (s *ReportService) GenerateQcPDF(data *QcReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "QC Summary Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Order %s - %s", data.Order.Reference, data.Order.CustomerName), "", 1, "C", false, 0, "")
	pdf.CellFormat(190, 6, "Generated "+timeutil.Now().Format(timeutil.DisplayLayout), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Aggregate progress row
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Order Progress (least-advanced item)", "1", 1, "L", true, 0, "")
	writeVectorRow(pdf, data.Aggregate)
	pdf.Ln(4)

	// Per-line sections
	for i, line := range data.Lines {
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(240, 240, 240)
		title := fmt.Sprintf("Line %d: %s", line.ID, line.ProductName)
		if line.SKU != "" {
			title += " (" + line.SKU + ")"
		}
		pdf.CellFormat(190, 8, title, "1", 1, "L", true, 0, "")

		writeVectorRow(pdf, data.Vectors[i])

		rejection := data.Rejections[i]
		if rejection.Rejected() {
			pdf.SetFont("Arial", "B", 9)
			pdf.SetTextColor(180, 0, 0)
			pdf.CellFormat(190, 6, fmt.Sprintf("Rejections: mfg %d, pkg %d",
				rejection.MfgRejectionCount, rejection.PkgRejectionCount), "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}

		// Submission history table
		subs := data.Submissions[line.ID]
		if len(subs) > 0 {
			pdf.SetFont("Arial", "B", 9)
			pdf.SetFillColor(200, 200, 200)
			pdf.CellFormat(25, 6, "QC #", "1", 0, "C", true, 0, "")
			pdf.CellFormat(25, 6, "Gate", "1", 0, "C", true, 0, "")
			pdf.CellFormat(25, 6, "Status", "1", 0, "C", true, 0, "")
			pdf.CellFormat(40, 6, "Submitted", "1", 0, "C", true, 0, "")
			pdf.CellFormat(75, 6, "Note", "1", 1, "C", true, 0, "")

			pdf.SetFont("Arial", "", 9)
			for _, sub := range subs {
				note := truncateNote(sub.Note, 45)
				pdf.CellFormat(25, 6, fmt.Sprintf("%d", sub.ID), "1", 0, "C", false, 0, "")
				pdf.CellFormat(25, 6, sub.Type, "1", 0, "C", false, 0, "")
				pdf.CellFormat(25, 6, sub.Status, "1", 0, "C", false, 0, "")
				pdf.CellFormat(40, 6, timeutil.ToBusiness(sub.CreatedAt).Format(timeutil.DateTimeLayout), "1", 0, "C", false, 0, "")
				pdf.CellFormat(75, 6, note, "1", 1, "L", false, 0, "")
			}
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// truncateNote shortens a note to fit a table cell, cutting on rune
// boundaries so multibyte text is never split mid-character.
func truncateNote(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max-3]) + "..."
}

// writeVectorRow renders the five stages of a progress vector as one table row
func writeVectorRow(pdf *gofpdf.Fpdf, v progress.Vector) {
	stages := []struct {
		name  string
		state progress.StageState
	}{
		{"Manufacturing", v.Manufacturing},
		{"Mfg QC", v.MfgQC},
		{"Packaging", v.Packaging},
		{"Pkg QC", v.PkgQC},
		{"Shipped", v.Shipped},
	}

	pdf.SetFont("Arial", "B", 9)
	for _, st := range stages {
		pdf.CellFormat(38, 6, st.name, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, st := range stages {
		switch st.state {
		case progress.StateCompleted:
			pdf.SetFillColor(214, 245, 214)
		case progress.StateInProgress:
			pdf.SetFillColor(255, 243, 205)
		default:
			pdf.SetFillColor(245, 245, 245)
		}
		pdf.CellFormat(38, 6, st.state.String(), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}
