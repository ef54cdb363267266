// Package invoice renders a project as a one-page PDF invoice.
package invoice

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/alexanderramin/freeflow/internal/domain"
	"github.com/alexanderramin/freeflow/internal/smart"
)

const (
	utf8FontName = "FreeflowSans"
	coreFontName = "Helvetica"
	pageMargin   = 20.0
	pageRight    = 190.0
)

// Issuer is the freelancer named at the top of the invoice.
type Issuer struct {
	Name    string
	Contact string
}

// Generator writes invoices into OutputDir. With FontPath set, a UTF-8 TTF
// font is embedded; otherwise the core Helvetica font is used and money is
// printed with a VND suffix, as the dong sign is not in its code page.
type Generator struct {
	OutputDir string
	FontPath  string
	now       func() time.Time
}

func NewGenerator(outputDir, fontPath string) *Generator {
	if outputDir == "" {
		outputDir = "."
	}
	return &Generator{
		OutputDir: filepath.Clean(outputDir),
		FontPath:  fontPath,
		now:       time.Now,
	}
}

// FileName is the base name of the invoice written for p.
func FileName(p *domain.Project) string {
	return filepath.Base(fmt.Sprintf("invoice_%s.pdf", p.DisplayID()))
}

// Generate renders p and returns the path of the written file.
func (g *Generator) Generate(p *domain.Project, issuer Issuer) (string, error) {
	target, err := g.ensureTarget(FileName(p))
	if err != nil {
		return "", err
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Invoice "+p.DisplayID(), true)
	doc.SetAuthor(issuer.Name, true)
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)

	w := g.writer(doc)
	doc.AddPage()

	w.font("B", 20)
	w.cell(0, 10, "INVOICE", 1, "L")
	w.font("", 10)
	w.cell(0, 5, fmt.Sprintf("No. %s    Issued %s", p.DisplayID(), g.now().Format("02/01/2006")), 1, "L")
	w.hr()

	if issuer.Name != "" || issuer.Contact != "" {
		w.section("From")
		w.line(issuer.Name)
		w.line(issuer.Contact)
		doc.Ln(2)
	}

	w.section("Bill to")
	w.line(p.ClientName)
	doc.Ln(2)

	w.section("Project")
	w.kv("Name", p.Name)
	w.kv("Deadline", p.Deadline)
	w.kv("Status", string(p.Status))
	if p.Description != "" {
		w.font("", 10)
		doc.MultiCell(0, 5, w.tr(p.Description), "", "L", false)
	}
	w.hr()

	w.itemsTable(p)

	w.font("B", 12)
	doc.CellFormat(130, 8, w.tr("Total"), "T", 0, "R", false, 0, "")
	doc.CellFormat(0, 8, w.tr(w.money(p.Budget)), "T", 1, "R", false, 0, "")
	w.font("", 10)
	doc.CellFormat(130, 6, w.tr("Payment status"), "", 0, "R", false, 0, "")
	doc.CellFormat(0, 6, w.tr(string(p.PaymentStatus)), "", 1, "R", false, 0, "")

	if err := doc.OutputFileAndClose(target); err != nil {
		return "", fmt.Errorf("writing invoice: %w", err)
	}
	return target, nil
}

func (g *Generator) ensureTarget(name string) (string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating invoice dir: %w", err)
	}
	return filepath.Join(g.OutputDir, filepath.Base(name)), nil
}

func (g *Generator) writer(doc *gofpdf.Fpdf) *pageWriter {
	if g.FontPath != "" {
		doc.AddUTF8Font(utf8FontName, "", g.FontPath)
		doc.AddUTF8Font(utf8FontName, "B", g.FontPath)
		return &pageWriter{doc: doc, family: utf8FontName, tr: func(s string) string { return s }, utf8: true}
	}
	return &pageWriter{doc: doc, family: coreFontName, tr: doc.UnicodeTranslatorFromDescriptor("")}
}

// pageWriter wraps the few layout primitives an invoice needs.
type pageWriter struct {
	doc    *gofpdf.Fpdf
	family string
	tr     func(string) string
	utf8   bool
}

func (w *pageWriter) font(style string, size float64) {
	w.doc.SetFont(w.family, style, size)
}

func (w *pageWriter) cell(width, height float64, text string, ln int, align string) {
	w.doc.CellFormat(width, height, w.tr(text), "", ln, align, false, 0, "")
}

func (w *pageWriter) section(title string) {
	w.font("B", 11)
	w.cell(0, 7, title, 1, "L")
	w.font("", 10)
}

func (w *pageWriter) line(text string) {
	if text == "" {
		return
	}
	w.font("", 10)
	w.cell(0, 5, text, 1, "L")
}

func (w *pageWriter) kv(key, val string) {
	w.font("B", 10)
	w.cell(30, 5, key+":", 0, "L")
	w.font("", 10)
	w.cell(0, 5, val, 1, "L")
}

func (w *pageWriter) hr() {
	y := w.doc.GetY() + 2
	w.doc.SetLineWidth(0.2)
	w.doc.Line(pageMargin, y, pageRight, y)
	w.doc.SetY(y + 3)
}

func (w *pageWriter) money(n int64) string {
	if w.utf8 {
		return smart.FormatMoney(n)
	}
	return smart.FormatNumber(n) + " VND"
}

// itemsTable lists tasks with their budgets. A project without tasks is
// billed as a single line.
func (w *pageWriter) itemsTable(p *domain.Project) {
	w.font("B", 10)
	w.doc.SetFillColor(238, 242, 255)
	w.doc.CellFormat(10, 7, "#", "B", 0, "C", true, 0, "")
	w.doc.CellFormat(95, 7, w.tr("Item"), "B", 0, "L", true, 0, "")
	w.doc.CellFormat(25, 7, w.tr("Due"), "B", 0, "L", true, 0, "")
	w.doc.CellFormat(0, 7, w.tr("Amount"), "B", 1, "R", true, 0, "")

	w.font("", 10)
	if len(p.Tasks) == 0 {
		w.row(1, p.Name, p.Deadline, p.Budget)
		return
	}
	for i, t := range p.Tasks {
		w.row(i+1, t.Title, t.DueDate, t.Budget)
	}
}

func (w *pageWriter) row(n int, title, due string, amount int64) {
	w.doc.CellFormat(10, 6, fmt.Sprintf("%d", n), "", 0, "C", false, 0, "")
	w.doc.CellFormat(95, 6, w.tr(title), "", 0, "L", false, 0, "")
	w.doc.CellFormat(25, 6, due, "", 0, "L", false, 0, "")
	w.doc.CellFormat(0, 6, w.tr(w.money(amount)), "", 1, "R", false, 0, "")
}
