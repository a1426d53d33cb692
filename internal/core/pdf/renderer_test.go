package pdf

import (
	"bytes"
	"testing"

	"github.com/buildmate/quote-service/internal/core/domain"
)

func resultFixture() *domain.QuoteResult {
	return &domain.QuoteResult{
		ID:                  "6f1c9d7e-0000-0000-0000-000000000000",
		QuoteNumber:         "Q-20240501-0001",
		ProductName:         "PVC 面板",
		ProductSpecs:        "120cm x 240cm, 厚度 15mm",
		MinOrder:            200,
		SuggestedPriceRange: "5.20 - 6.80",
		Subtotal:            1200.00,
		Freight:             150.00,
		TotalAmount:         1350.00,
		ContainerName:       "20GP 小柜",
		Capacity:            1000,
		CapacityMessage:     "数量在参考容量范围内。",
		ContainerNotes:      "适合小批量或重量型货物，参考容量 1000 件/标准件。",
		Currency:            "USD",
		SellerCompany:       "Shenzhen Buildmate Co., Ltd.",
		BuyerCompany:        "Acme Imports LLC",
		Incoterm:            "FOB",
		PaymentMethod:       "T/T 预付 30%",
		BankInfo:            "HSBC Hong Kong / Buildmate Trading Limited / 102-123456-001 (SWIFT: HSBCHKHHHKH)",
		QuoteDate:           "2024-05-01",
		ValidUntil:          "2024-05-31",
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	r := NewRenderer("")

	data, err := r.Render(resultFixture())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
}

func TestRender_RemarkSectionIsConditional(t *testing.T) {
	r := NewRenderer("")

	plain := resultFixture()
	withRemark := resultFixture()
	withRemark.Remark = "含出口包装，不含目的港费用。价格有效期内订单可锁定舱位。"

	plainData, err := r.Render(plain)
	if err != nil {
		t.Fatalf("Render without remark failed: %v", err)
	}
	remarkData, err := r.Render(withRemark)
	if err != nil {
		t.Fatalf("Render with remark failed: %v", err)
	}

	if len(remarkData) <= len(plainData) {
		t.Errorf("expected remark section to grow the document: %d <= %d",
			len(remarkData), len(plainData))
	}
}

func TestRender_NotesRowIsConditional(t *testing.T) {
	r := NewRenderer("")

	withNotes := resultFixture()
	withoutNotes := resultFixture()
	withoutNotes.ContainerNotes = ""

	withData, err := r.Render(withNotes)
	if err != nil {
		t.Fatalf("Render with notes failed: %v", err)
	}
	withoutData, err := r.Render(withoutNotes)
	if err != nil {
		t.Fatalf("Render without notes failed: %v", err)
	}

	if len(withData) <= len(withoutData) {
		t.Errorf("expected notes row to grow the document: %d <= %d",
			len(withData), len(withoutData))
	}
}

func TestRender_MissingFontFallsBack(t *testing.T) {
	r := NewRenderer("/nonexistent/fonts/NotoSansSC-Regular.ttf")

	data, err := r.Render(resultFixture())
	if err != nil {
		t.Fatalf("expected fallback font render to succeed, got: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("fallback render did not produce a PDF")
	}
}
