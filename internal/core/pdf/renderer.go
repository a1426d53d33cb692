// Package pdf lays out quotation sheets as single-page A4 documents.
package pdf

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/buildmate/quote-service/internal/core/domain"
)

const (
	pageLeft = 20.0
	pageTop  = 20.0
	contentW = 170.0 // A4 width minus both margins

	lineH   = 6.0
	cellPad = 1.5

	titleFontPt   = 20.0
	sectionFontPt = 12.0
	bodyFontPt    = 10.0

	fallbackFont = "Helvetica"
	cjkFontName  = "quotecjk"
)

// Renderer serializes quote results into printable PDF bytes. A
// renderer is stateless across calls; every Render allocates its own
// document.
type Renderer struct {
	fontPath string
}

// NewRenderer returns a renderer that registers the TTF at fontPath
// for mixed-script text. An empty or unreadable path falls back to
// Helvetica, where CJK glyphs degrade to placeholders.
func NewRenderer(fontPath string) *Renderer {
	return &Renderer{fontPath: fontPath}
}

func (r *Renderer) Render(res *domain.QuoteResult) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageLeft, pageTop, pageLeft)
	doc.SetAutoPageBreak(false, 0)
	font := r.registerFont(doc)
	doc.AddPage()

	doc.SetFont(font, "", titleFontPt)
	doc.SetY(pageTop + 5)
	doc.CellFormat(0, 12, "QUOTATION SHEET", "", 1, "C", false, 0, "")
	doc.Ln(8)

	doc.SetDrawColor(128, 128, 128)
	doc.SetLineWidth(0.2)

	b := &tableBuilder{doc: doc, font: font}

	b.grid4([][4]string{
		{"报价日期", res.QuoteDate, "有效期至", res.ValidUntil},
		{"卖方公司", res.SellerCompany, "买方公司", res.BuyerCompany},
		{"协议方式", res.Incoterm, "币种", res.Currency},
		{"付款方式", res.PaymentMethod, "收款银行", res.BankInfo},
	})

	b.section("产品信息")
	b.keyValue([][2]string{
		{"产品名称", res.ProductName},
		{"规格", res.ProductSpecs},
		{"最小起订量", fmt.Sprintf("%d 件", res.MinOrder)},
		{"建议价格区间", res.SuggestedPriceRange + " " + res.Currency},
	}, 40, 140)

	b.section("金额汇总")
	b.keyValue([][2]string{
		{"货值小计", fmt.Sprintf("%.2f %s", res.Subtotal, res.Currency)},
		{"运费", fmt.Sprintf("%.2f %s", res.Freight, res.Currency)},
		{"总金额", fmt.Sprintf("%.2f %s", res.TotalAmount, res.Currency)},
	}, 40, 60)

	b.section("柜型信息")
	containerRows := [][2]string{
		{"柜型", res.ContainerName},
		{"参考容量", fmt.Sprintf("%d 件", res.Capacity)},
		{"容量说明", res.CapacityMessage},
	}
	if res.ContainerNotes != "" {
		containerRows = append(containerRows, [2]string{"备注", res.ContainerNotes})
	}
	b.keyValue(containerRows, 40, 140)

	if res.Remark != "" {
		b.section("备注")
		doc.SetFont(font, "", bodyFontPt)
		doc.MultiCell(contentW, lineH, res.Remark, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// registerFont loads the configured CJK-capable font. Registration
// failure is recovered locally by substituting the core fallback font,
// never surfaced as an error.
func (r *Renderer) registerFont(doc *fpdf.Fpdf) string {
	if r.fontPath == "" {
		return fallbackFont
	}
	data, err := os.ReadFile(r.fontPath)
	if err != nil {
		return fallbackFont
	}
	doc.AddUTF8FontFromBytes(cjkFontName, "", data)
	if doc.Err() {
		doc.ClearError()
		return fallbackFont
	}
	return cjkFontName
}

// tableBuilder draws bordered tables top to bottom, advancing the
// vertical cursor by each row's measured height.
type tableBuilder struct {
	doc  *fpdf.Fpdf
	font string
}

func (b *tableBuilder) section(title string) {
	b.doc.Ln(4)
	b.doc.SetFont(b.font, "", sectionFontPt)
	b.doc.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	b.doc.Ln(1)
}

// grid4 draws the four-column header block as a plain grid: no
// shading, left-aligned cells.
func (b *tableBuilder) grid4(rows [][4]string) {
	widths := []float64{30, 60, 30, 60}
	b.doc.SetFont(b.font, "", bodyFontPt)
	for _, row := range rows {
		b.row(widths, row[:], nil)
	}
}

// keyValue draws a two-column table whose key column is shaded.
func (b *tableBuilder) keyValue(rows [][2]string, keyW, valW float64) {
	widths := []float64{keyW, valW}
	shaded := []bool{true, false}
	b.doc.SetFont(b.font, "", bodyFontPt)
	for _, row := range rows {
		b.row(widths, row[:], shaded)
	}
}

// row renders one table row. Cell text wraps within its column and
// the row grows to the tallest cell.
func (b *tableBuilder) row(widths []float64, cells []string, shaded []bool) {
	doc := b.doc

	lines := make([][]string, len(cells))
	rowLines := 1
	for i, cell := range cells {
		lines[i] = doc.SplitText(cell, widths[i]-2*cellPad)
		if len(lines[i]) == 0 {
			lines[i] = []string{""}
		}
		if len(lines[i]) > rowLines {
			rowLines = len(lines[i])
		}
	}
	rowH := float64(rowLines) * lineH

	x := pageLeft
	y := doc.GetY()
	doc.SetFillColor(211, 211, 211)
	for i, cellLines := range lines {
		doc.Rect(x, y, widths[i], rowH, rectStyle(shaded != nil && shaded[i]))
		for j, line := range cellLines {
			doc.SetXY(x+cellPad, y+float64(j)*lineH)
			doc.CellFormat(widths[i]-2*cellPad, lineH, line, "", 0, "L", false, 0, "")
		}
		x += widths[i]
	}
	doc.SetXY(pageLeft, y+rowH)
}

func rectStyle(filled bool) string {
	if filled {
		return "FD"
	}
	return "D"
}
