package document

import (
	"github.com/docforge/backend/internal/domain/shared"
)

// relabel is one field-relabeling rule applied during variant derivation
type relabel struct {
	sectionKey string
	fieldID    string
	label      LocalizedText
}

// variantRules holds the declarative rule set for deriving a type-specific
// variant from the canonical invoice template, keyed by target type.
var variantRules = map[DocType]struct {
	name         LocalizedText
	partyName    *LocalizedText
	relabels     []relabel
	hideSections []string
	appendRecv   bool
}{
	DocTypeQuote: {
		name: NewLocalizedText("Standard Quotation", "عرض سعر قياسي"),
		relabels: []relabel{
			{SectionKeyHeader, FieldIDTitle, NewLocalizedText("Quotation", "عرض سعر")},
			{SectionKeyHeader, FieldIDNumber, NewLocalizedText("Quotation #", "رقم عرض السعر")},
			{SectionKeyHeader, FieldIDDueDate, NewLocalizedText("Valid Until", "صالح حتى")},
		},
	},
	DocTypePurchaseOrder: {
		name:      NewLocalizedText("Standard Purchase Order", "أمر شراء قياسي"),
		partyName: &LocalizedText{En: "Vendor", Ar: "المورد"},
		relabels: []relabel{
			{SectionKeyHeader, FieldIDTitle, NewLocalizedText("Purchase Order", "أمر شراء")},
			{SectionKeyHeader, FieldIDNumber, NewLocalizedText("PO #", "رقم أمر الشراء")},
			{SectionKeyHeader, FieldIDDueDate, NewLocalizedText("Delivery Date", "تاريخ التسليم")},
		},
	},
	DocTypeDeliveryNote: {
		name: NewLocalizedText("Standard Delivery Note", "سند تسليم قياسي"),
		relabels: []relabel{
			{SectionKeyHeader, FieldIDTitle, NewLocalizedText("Delivery Note", "سند تسليم")},
			{SectionKeyHeader, FieldIDNumber, NewLocalizedText("Delivery Note #", "رقم سند التسليم")},
			{SectionKeyHeader, FieldIDIssueDate, NewLocalizedText("Delivery Date", "تاريخ التسليم")},
		},
		hideSections: []string{SectionKeyTotals, SectionKeyPayment},
		appendRecv:   true,
	},
}

// DeriveVariant produces a type-specific template from the canonical template
// by applying the declarative rule set for the target type. The result is a
// deep, independent copy: editing it never affects the canonical template or
// sibling variants.
func DeriveVariant(canonical *Template, target DocType) (*Template, error) {
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_DOC_TYPE", "Invalid document type")
	}
	rules, ok := variantRules[target]
	if !ok {
		return nil, shared.NewDomainError("INVALID_INPUT", "No variant rules for document type: "+string(target))
	}

	v := canonical.Clone()
	v.BaseEntity = shared.NewBaseEntity()
	v.Type = target
	v.Name = rules.name

	for _, r := range rules.relabels {
		if s := v.SectionByKey(r.sectionKey); s != nil {
			if f := s.FieldByID(r.fieldID); f != nil {
				f.Label = r.label
			}
		}
	}

	if rules.partyName != nil {
		if s := v.SectionByKey(SectionKeyParty); s != nil {
			s.Name = *rules.partyName
		}
	}

	// Forced invisibility is part of the variant definition, not a caller
	// preference; the assembler additionally suppresses totals by type.
	for _, key := range rules.hideSections {
		if s := v.SectionByKey(key); s != nil {
			s.Visible = false
		}
	}

	if rules.appendRecv {
		v.Sections = append(v.Sections, Section{
			Key:     SectionKeyReceivedBy,
			Name:    NewLocalizedText("Received By", "استلمه"),
			Kind:    SectionCustom,
			Visible: true,
			Fields: []Field{
				{ID: FieldIDReceiverName, Label: NewLocalizedText("Name", "الاسم"), Kind: FieldText, Visible: true},
				{ID: FieldIDReceiverSign, Label: NewLocalizedText("Signature", "التوقيع"), Kind: FieldText, Visible: true},
				{ID: FieldIDReceivedAt, Label: NewLocalizedText("Date / Time", "التاريخ / الوقت"), Kind: FieldDate, Visible: true},
			},
		})
	}

	return v, nil
}
