package document

import (
	"time"

	"github.com/docforge/backend/internal/domain/document"
	"github.com/shopspring/decimal"
)

// SampleData builds a representative data record for template previews. The
// figures are internally consistent: grand total equals subtotal minus
// discount plus tax.
func SampleData(docType document.DocType) *document.DocumentData {
	issue := time.Now()
	due := issue.AddDate(0, 1, 0)
	discount := decimal.NewFromInt(145)
	discountPct := decimal.NewFromInt(5)

	data := &document.DocumentData{
		Number:    sampleNumber(docType),
		IssueDate: issue,
		DueDate:   &due,
		Currency:  "KWD",
		Customer: &document.Party{
			Name:      document.NewLocalizedText("Gulf Trading Co.", "شركة الخليج التجارية"),
			Address:   document.NewLocalizedText("Block 4, Shuwaikh Industrial, Kuwait", "قطعة 4، الشويخ الصناعية، الكويت"),
			TaxNumber: "KW-100200300",
			Phone:     "+965 2222 1111",
			Email:     "accounts@gulftrading.example",
		},
		Vendor: &document.Party{
			Name:    document.NewLocalizedText("Al Safat Supplies", "التموينات الصفاة"),
			Address: document.NewLocalizedText("Fahaheel, Kuwait", "الفحيحيل، الكويت"),
			Phone:   "+965 2333 4444",
		},
		Items: []document.LineItem{
			{
				Seq:         1,
				Description: document.NewLocalizedText("Office desk, oak finish", "مكتب خشبي، تشطيب بلوط"),
				Quantity:    decimal.NewFromInt(2),
				Unit:        document.NewLocalizedText("pcs", "قطعة"),
				UnitPrice:   decimal.NewFromInt(750),
				Total:       decimal.NewFromInt(1500),
			},
			{
				Seq:         2,
				Description: document.NewLocalizedText("Ergonomic chair", "كرسي مريح"),
				Quantity:    decimal.NewFromInt(4),
				Unit:        document.NewLocalizedText("pcs", "قطعة"),
				UnitPrice:   decimal.NewFromInt(200),
				Total:       decimal.NewFromInt(800),
			},
			{
				Seq:         3,
				Description: document.NewLocalizedText("Delivery and installation", "التوصيل والتركيب"),
				Quantity:    decimal.NewFromInt(1),
				Unit:        document.NewLocalizedText("service", "خدمة"),
				UnitPrice:   decimal.NewFromInt(600),
				Total:       decimal.NewFromInt(600),
			},
		},
		Subtotal:        decimal.NewFromInt(2900),
		Discount:        &discount,
		DiscountPercent: &discountPct,
		GrandTotal:      decimal.NewFromInt(2755),
		Payment: &document.PaymentInfo{
			BankName:    "National Bank of Kuwait",
			AccountName: "Al Safat Supplies W.L.L.",
			IBAN:        "KW81NBOK0000000000001234567890",
			SwiftCode:   "NBOKKWKW",
		},
		Reference: "SO-2025-118",
	}
	return data
}

func sampleNumber(docType document.DocType) string {
	switch docType {
	case document.DocTypeQuote:
		return "QT-2025-014"
	case document.DocTypePurchaseOrder:
		return "PO-2025-031"
	case document.DocTypeDeliveryNote:
		return "DN-2025-077"
	default:
		return "INV-2025-042"
	}
}
