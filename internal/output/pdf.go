package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/eriiiic/Retirement/internal/domain"
)

const pdfContentWidth = 180.0

// PDFFormatter renders a printable one-or-more page report: title block,
// summary table and the year table, paginated by fpdf's auto page break.
type PDFFormatter struct{}

func (PDFFormatter) Name() string { return "pdf" }

func (PDFFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 12, "Retirement Capital Projection", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(pdfContentWidth, 8, report.Name, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(pdfContentWidth, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	writeSummarySection(pdf, report)
	writeYearTable(pdf, report)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummarySection(pdf *fpdf.Fpdf, report *domain.ProjectionReport) {
	s := report.Summary
	p := report.Parameters

	pdf.SetFillColor(245, 247, 250)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, "Summary", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(50, 50, 50)

	depletion := fmt.Sprintf("never (horizon age %d)", p.HorizonMaxAge)
	if s.IsDepleted && s.DepletionYear != nil {
		depletion = fmt.Sprintf("year %d (age %d)", *s.DepletionYear, *s.DepletionAge)
	}
	rows := []string{
		fmt.Sprintf("Retirement: year %d (age %d)", s.RetirementYear, s.RetirementAge),
		fmt.Sprintf("Capital at retirement: %s   Needed: %s", FormatCurrency(s.CapitalAtRetirement), FormatCurrency(s.NeededCapital)),
		fmt.Sprintf("Final capital: %s (today's money: %s)", FormatCurrency(s.FinalCapital), FormatCurrency(s.FinalCapitalPresentValue)),
		fmt.Sprintf("Total invested: %s   Total withdrawn: %s", FormatCurrency(s.TotalInvested), FormatCurrency(s.TotalWithdrawn)),
		fmt.Sprintf("Capital depleted: %s", depletion),
	}
	for i, row := range rows {
		border := "LR"
		if i == len(rows)-1 {
			border = "LRB"
		}
		pdf.CellFormat(pdfContentWidth, 7, row, border, 1, "L", true, 0, "")
	}
	pdf.Ln(6)
}

func writeYearTable(pdf *fpdf.Fpdf, report *domain.ProjectionReport) {
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(pdfContentWidth, 8, "Year by Year", "1", 1, "C", true, 0, "")

	widths := []float64{18, 14, 18, 40, 30, 30, 30}
	headers := []string{"Year", "Age", "Phase", "Capital", "Contributed", "Withdrawn", "Interest"}

	pdf.SetFont("Arial", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(50, 50, 50)
	for _, snap := range report.Result.Snapshots {
		phase := "save"
		if snap.IsRetired {
			phase = "draw"
		}
		cells := []string{
			fmt.Sprintf("%d", snap.Year),
			fmt.Sprintf("%d", snap.Age),
			phase,
			snap.Capital.StringFixed(2),
			snap.ContributionThisYear.StringFixed(2),
			snap.WithdrawalThisYear.StringFixed(2),
			snap.InterestThisYear.StringFixed(2),
		}
		for i, c := range cells {
			align := "R"
			if i < 3 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}
