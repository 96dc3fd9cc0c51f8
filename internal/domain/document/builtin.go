package document

// Well-known field IDs inside the built-in sections. Variant derivation
// relabels fields through these IDs.
const (
	FieldIDTitle     = "title"
	FieldIDNumber    = "doc_number"
	FieldIDIssueDate = "issue_date"
	FieldIDDueDate   = "due_date"

	FieldIDReceiverName = "receiver_name"
	FieldIDReceiverSign = "receiver_signature"
	FieldIDReceivedAt   = "received_at"
)

// DefaultBranding returns the global default branding record. Screens override
// it per template and again per render call.
func DefaultBranding() Branding {
	return Branding{
		Name:           NewLocalizedText("Your Company", "شركتك"),
		Address:        NewLocalizedText("", ""),
		PrimaryColor:   "#1a3c6e",
		SecondaryColor: "#f5f7fa",
		AccentColor:    "#c9a227",
	}
}

// CanonicalInvoiceTemplate builds the canonical invoice template every other
// variant is derived from.
func CanonicalInvoiceTemplate(branding Branding) *Template {
	t, _ := NewTemplate(NewLocalizedText("Standard Invoice", "فاتورة قياسية"), DocTypeInvoice, branding)
	t.Signature = Signature{
		ShowLine:      true,
		Label:         NewLocalizedText("Authorized Signature", "التوقيع المعتمد"),
		ShowStampArea: true,
	}
	t.Terms = NewLocalizedText(
		"Payment is due within 30 days of the invoice date.",
		"يستحق الدفع خلال ٣٠ يوماً من تاريخ الفاتورة.",
	)
	t.WatermarkText = ""
	t.Sections = []Section{
		{
			Key:     SectionKeyHeader,
			Name:    NewLocalizedText("Header", "الترويسة"),
			Kind:    SectionHeader,
			Visible: true,
			Fields: []Field{
				{ID: FieldIDTitle, Label: NewLocalizedText("Invoice", "فاتورة"), Kind: FieldText, Visible: true, FontSize: 24, FontWeight: "bold"},
				{ID: FieldIDNumber, Label: NewLocalizedText("Invoice #", "رقم الفاتورة"), Kind: FieldText, Visible: true},
				{ID: FieldIDIssueDate, Label: NewLocalizedText("Date", "التاريخ"), Kind: FieldDate, Visible: true},
				{ID: FieldIDDueDate, Label: NewLocalizedText("Due Date", "تاريخ الاستحقاق"), Kind: FieldDate, Visible: true},
			},
		},
		{
			Key:     SectionKeyParty,
			Name:    NewLocalizedText("Bill To", "فاتورة إلى"),
			Kind:    SectionBody,
			Visible: true,
		},
		{
			Key:     SectionKeyItems,
			Name:    NewLocalizedText("Items", "البنود"),
			Kind:    SectionItems,
			Visible: true,
		},
		{
			Key:     SectionKeyTotals,
			Name:    NewLocalizedText("Totals", "الإجماليات"),
			Kind:    SectionTotals,
			Visible: true,
		},
		{
			Key:     SectionKeyPayment,
			Name:    NewLocalizedText("Payment Details", "تفاصيل الدفع"),
			Kind:    SectionCustom,
			Visible: true,
		},
		{
			Key:     SectionKeyTerms,
			Name:    NewLocalizedText("Terms & Conditions", "الشروط والأحكام"),
			Kind:    SectionTerms,
			Visible: true,
		},
		{
			Key:     SectionKeySignature,
			Name:    NewLocalizedText("Signature", "التوقيع"),
			Kind:    SectionSignature,
			Visible: true,
		},
		{
			Key:     SectionKeyFooter,
			Name:    NewLocalizedText("Footer", "التذييل"),
			Kind:    SectionFooter,
			Visible: true,
		},
	}
	return t
}

// BuiltinTemplates builds the canonical invoice template plus the quote,
// purchase order and delivery note variants. Derivation happens here, at
// template-definition time, never per render; each result is an independent
// first-class template.
func BuiltinTemplates(branding Branding) []*Template {
	invoice := CanonicalInvoiceTemplate(branding)
	out := []*Template{invoice}
	for _, dt := range []DocType{DocTypeQuote, DocTypePurchaseOrder, DocTypeDeliveryNote} {
		v, err := DeriveVariant(invoice, dt)
		if err != nil {
			// The canonical template and the variant set are fixed at compile
			// time; derivation over them cannot fail.
			panic(err)
		}
		out = append(out, v)
	}
	return out
}
