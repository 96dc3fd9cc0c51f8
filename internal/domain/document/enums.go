package document

// DocType represents the kind of printable business document a template
// produces. The set is closed; the assembler dispatches on it.
type DocType string

const (
	DocTypeInvoice       DocType = "invoice"
	DocTypeQuote         DocType = "quote"
	DocTypePurchaseOrder DocType = "purchase_order"
	DocTypeDeliveryNote  DocType = "delivery_note"
	DocTypeSalesOrder    DocType = "sales_order"
	DocTypeBill          DocType = "bill"
	DocTypeReceipt       DocType = "receipt"
	DocTypeCreditNote    DocType = "credit_note"
)

// IsValid checks if the DocType is a valid value
func (d DocType) IsValid() bool {
	switch d {
	case DocTypeInvoice, DocTypeQuote, DocTypePurchaseOrder, DocTypeDeliveryNote,
		DocTypeSalesOrder, DocTypeBill, DocTypeReceipt, DocTypeCreditNote:
		return true
	}
	return false
}

// String returns the string representation of DocType
func (d DocType) String() string {
	return string(d)
}

// Title returns the printed document title for the given language
func (d DocType) Title(lang Language) string {
	var t LocalizedText
	switch d {
	case DocTypeInvoice:
		t = LocalizedText{En: "Invoice", Ar: "فاتورة"}
	case DocTypeQuote:
		t = LocalizedText{En: "Quotation", Ar: "عرض سعر"}
	case DocTypePurchaseOrder:
		t = LocalizedText{En: "Purchase Order", Ar: "أمر شراء"}
	case DocTypeDeliveryNote:
		t = LocalizedText{En: "Delivery Note", Ar: "سند تسليم"}
	case DocTypeSalesOrder:
		t = LocalizedText{En: "Sales Order", Ar: "أمر بيع"}
	case DocTypeBill:
		t = LocalizedText{En: "Bill", Ar: "فاتورة مشتريات"}
	case DocTypeReceipt:
		t = LocalizedText{En: "Receipt", Ar: "سند قبض"}
	case DocTypeCreditNote:
		t = LocalizedText{En: "Credit Note", Ar: "إشعار دائن"}
	default:
		return string(d)
	}
	return t.In(lang)
}

// CarriesTotals returns true if documents of this type print a totals block.
// Delivery notes accompany goods and never show monetary totals.
func (d DocType) CarriesTotals() bool {
	return d != DocTypeDeliveryNote
}

// ReadsVendorParty returns true if the party section of this document type is
// sourced from the vendor block instead of the customer block.
func (d DocType) ReadsVendorParty() bool {
	return d == DocTypePurchaseOrder
}

// AllDocTypes returns all valid DocType values
func AllDocTypes() []DocType {
	return []DocType{
		DocTypeInvoice, DocTypeQuote, DocTypePurchaseOrder, DocTypeDeliveryNote,
		DocTypeSalesOrder, DocTypeBill, DocTypeReceipt, DocTypeCreditNote,
	}
}

// Language represents a supported document language
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// IsValid checks if the Language is a valid value
func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}

// String returns the string representation of Language
func (l Language) String() string {
	return string(l)
}

// Other returns the secondary language paired with this one
func (l Language) Other() Language {
	if l == LanguageArabic {
		return LanguageEnglish
	}
	return LanguageArabic
}

// PaperSize represents the paper size for a printed document
type PaperSize string

const (
	PaperSizeA4     PaperSize = "A4"     // 210mm x 297mm
	PaperSizeLetter PaperSize = "Letter" // 8.5in x 11in
	PaperSizeA5     PaperSize = "A5"     // 148mm x 210mm
)

// Unit is the measurement unit a paper size is expressed in
type Unit string

const (
	UnitMillimeter Unit = "mm"
	UnitInch       Unit = "in"
)

// IsValid checks if the PaperSize is a valid value
func (p PaperSize) IsValid() bool {
	switch p {
	case PaperSizeA4, PaperSizeLetter, PaperSizeA5:
		return true
	}
	return false
}

// String returns the string representation of PaperSize
func (p PaperSize) String() string {
	return string(p)
}

// Dimensions returns the portrait paper dimensions and their unit
func (p PaperSize) Dimensions() (width, height float64, unit Unit) {
	switch p {
	case PaperSizeA4:
		return 210, 297, UnitMillimeter
	case PaperSizeLetter:
		return 8.5, 11, UnitInch
	case PaperSizeA5:
		return 148, 210, UnitMillimeter
	default:
		return 210, 297, UnitMillimeter // Default to A4
	}
}

// AllPaperSizes returns all valid PaperSize values
func AllPaperSizes() []PaperSize {
	return []PaperSize{PaperSizeA4, PaperSizeLetter, PaperSizeA5}
}

// Orientation represents the page orientation
type Orientation string

const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// IsValid checks if the Orientation is a valid value
func (o Orientation) IsValid() bool {
	return o == OrientationPortrait || o == OrientationLandscape
}

// String returns the string representation of Orientation
func (o Orientation) String() string {
	return string(o)
}

// SectionKind determines which assembler routine consumes a section
type SectionKind string

const (
	SectionHeader    SectionKind = "header"
	SectionBody      SectionKind = "body"
	SectionItems     SectionKind = "items"
	SectionTotals    SectionKind = "totals"
	SectionTerms     SectionKind = "terms"
	SectionSignature SectionKind = "signature"
	SectionFooter    SectionKind = "footer"
	SectionCustom    SectionKind = "custom"
)

// IsValid checks if the SectionKind is a valid value
func (s SectionKind) IsValid() bool {
	switch s {
	case SectionHeader, SectionBody, SectionItems, SectionTotals,
		SectionTerms, SectionSignature, SectionFooter, SectionCustom:
		return true
	}
	return false
}

// String returns the string representation of SectionKind
func (s SectionKind) String() string {
	return string(s)
}

// FieldKind represents the kind of value a template field holds
type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldNumber   FieldKind = "number"
	FieldDate     FieldKind = "date"
	FieldCurrency FieldKind = "currency"
	FieldImage    FieldKind = "image"
	FieldQRCode   FieldKind = "qrcode"
	FieldBarcode  FieldKind = "barcode"
)

// IsValid checks if the FieldKind is a valid value
func (f FieldKind) IsValid() bool {
	switch f {
	case FieldText, FieldNumber, FieldDate, FieldCurrency,
		FieldImage, FieldQRCode, FieldBarcode:
		return true
	}
	return false
}

// String returns the string representation of FieldKind
func (f FieldKind) String() string {
	return string(f)
}

// CurrencyPosition controls where the currency code is placed relative to a
// formatted amount
type CurrencyPosition string

const (
	CurrencyBefore CurrencyPosition = "before"
	CurrencyAfter  CurrencyPosition = "after"
)

// IsValid checks if the CurrencyPosition is a valid value
func (c CurrencyPosition) IsValid() bool {
	return c == CurrencyBefore || c == CurrencyAfter
}

// String returns the string representation of CurrencyPosition
func (c CurrencyPosition) String() string {
	return string(c)
}
