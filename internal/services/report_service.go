package services

import (
	"bytes"
	"database/sql"
	"fmt"

	intconfig "bolao-backend/internal/config"
	"bolao-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// PaymentReportRow is one line of the payments report.
type PaymentReportRow struct {
	ID          int64
	UserName    string
	Amount      float64
	Status      string
	AdminName   string
	ProcessedAt string
}

// ReportService renders the payments PDF for the admin panel.
type ReportService struct {
	DB        *sql.DB
	RequestID string

	// Loader is swappable in tests; defaults to the payments query below.
	Loader func() ([]PaymentReportRow, error)
}

func (s ReportService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// PaymentsReport returns the PDF bytes and a suggested filename.
func (s ReportService) PaymentsReport() ([]byte, string, error) {
	loader := s.Loader
	if loader == nil {
		loader = s.loadPayments
	}
	rows, err := loader()
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "reports", "payments_pdf", fmt.Sprintf("rows=%d", len(rows)))
	return buildPaymentsPDF(rows)
}

func (s ReportService) loadPayments() ([]PaymentReportRow, error) {
	query := `
		SELECT p.id,
		       COALESCE(u.name,''),
		       COALESCE(p.amount,0),
		       COALESCE(p.status,''),
		       COALESCE(p.admin_name,''),
		       COALESCE(p.processed_at,'')
		FROM payments p
		LEFT JOIN users_profiles u ON u.id = p.user_id
		ORDER BY p.id DESC`

	result, err := s.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer result.Close()

	out := []PaymentReportRow{}
	for result.Next() {
		var r PaymentReportRow
		if err := result.Scan(&r.ID, &r.UserName, &r.Amount, &r.Status, &r.AdminName, &r.ProcessedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, result.Err()
}

func buildPaymentsPDF(rows []PaymentReportRow) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Relatório de Pagamentos", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "RELATORIO DE PAGAMENTOS")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 10)
	widths := []float64{15, 55, 30, 25, 40, 25}
	headers := []string{"ID", "Usuario", "Valor", "Status", "Admin", "Processado"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range rows {
		cells := []string{
			fmt.Sprintf("%d", r.ID),
			r.UserName,
			fmt.Sprintf("R$ %.2f", r.Amount),
			r.Status,
			r.AdminName,
			r.ProcessedAt,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(rows) == 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 8, "Nenhum pagamento registrado.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("RELATORIO_PAGAMENTOS_%s.pdf", utils.NowUTC().Format("20060102"))
	return buf.Bytes(), filename, nil
}
