package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocType_Title(t *testing.T) {
	tests := []struct {
		docType DocType
		lang    Language
		want    string
	}{
		{DocTypeInvoice, LanguageEnglish, "Invoice"},
		{DocTypeInvoice, LanguageArabic, "فاتورة"},
		{DocTypeQuote, LanguageEnglish, "Quotation"},
		{DocTypePurchaseOrder, LanguageArabic, "أمر شراء"},
		{DocTypeDeliveryNote, LanguageEnglish, "Delivery Note"},
		{DocTypeSalesOrder, LanguageEnglish, "Sales Order"},
		{DocTypeBill, LanguageArabic, "فاتورة مشتريات"},
		{DocTypeReceipt, LanguageEnglish, "Receipt"},
		{DocTypeCreditNote, LanguageEnglish, "Credit Note"},
		{DocType("memo"), LanguageEnglish, "memo"},
	}

	for _, tt := range tests {
		t.Run(string(tt.docType)+"_"+string(tt.lang), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.docType.Title(tt.lang))
		})
	}
}

func TestDocType_CarriesTotals(t *testing.T) {
	for _, d := range AllDocTypes() {
		assert.Equal(t, d != DocTypeDeliveryNote, d.CarriesTotals(), d)
	}
}

func TestDocType_ReadsVendorParty(t *testing.T) {
	for _, d := range AllDocTypes() {
		assert.Equal(t, d == DocTypePurchaseOrder, d.ReadsVendorParty(), d)
	}
}
