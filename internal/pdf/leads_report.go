package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/gabrielbeloni06/zytechhub/internal/models"
)

// Generator — interface pra facilitar mock nos handlers.
type Generator interface {
	LeadsReport(w io.Writer, usuario string, leads []*models.Lead) error
}

type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// LeadsReport escreve o relatório dos leads salvos direto no writer
// (a resposta HTTP), sem tocar em disco.
func (g *ReportGenerator) LeadsReport(w io.Writer, usuario string, leads []*models.Lead) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Leads — Zytech Hub", false)
	pdf.SetAuthor("Zytech Hub", false)
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	// cabeçalho
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Relatório de Leads"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	sub := fmt.Sprintf("%s — gerado em %s", usuario, time.Now().Format("02/01/2006 15:04"))
	pdf.CellFormat(0, 6, tr(sub), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	// tabela
	widths := []float64{55, 35, 22, 25, 43}
	headers := []string{"Nome", "Telefone", "Tipo", "Status", "Endereço"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, l := range leads {
		cols := []string{l.Nome, l.Telefone, l.Tipo, l.Status, l.Endereco}
		for i, v := range cols {
			pdf.CellFormat(widths[i], 6, tr(truncate(v, 38)), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Total: %d leads", len(leads))), "", 1, "R", false, 0, "")

	return pdf.Output(w)
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(left, y+1, pageW-right, y+1)
	pdf.SetXY(x, y+3)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
