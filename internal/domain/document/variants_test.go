package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveVariant_Quote(t *testing.T) {
	canonical := CanonicalInvoiceTemplate(DefaultBranding())

	quote, err := DeriveVariant(canonical, DocTypeQuote)
	require.NoError(t, err)

	assert.Equal(t, DocTypeQuote, quote.Type)
	assert.NotEqual(t, canonical.ID, quote.ID)

	header := quote.SectionByKey(SectionKeyHeader)
	require.NotNil(t, header)
	assert.Equal(t, "Quotation", header.FieldByID(FieldIDTitle).Label.En)
	assert.Equal(t, "Quotation #", header.FieldByID(FieldIDNumber).Label.En)
	assert.Equal(t, "Valid Until", header.FieldByID(FieldIDDueDate).Label.En)
}

func TestDeriveVariant_PurchaseOrder(t *testing.T) {
	canonical := CanonicalInvoiceTemplate(DefaultBranding())

	po, err := DeriveVariant(canonical, DocTypePurchaseOrder)
	require.NoError(t, err)

	assert.Equal(t, DocTypePurchaseOrder, po.Type)
	assert.True(t, po.Type.ReadsVendorParty())

	party := po.SectionByKey(SectionKeyParty)
	require.NotNil(t, party)
	assert.Equal(t, "Vendor", party.Name.En)
	assert.Equal(t, "المورد", party.Name.Ar)

	header := po.SectionByKey(SectionKeyHeader)
	assert.Equal(t, "Delivery Date", header.FieldByID(FieldIDDueDate).Label.En)
}

func TestDeriveVariant_DeliveryNote(t *testing.T) {
	canonical := CanonicalInvoiceTemplate(DefaultBranding())

	dn, err := DeriveVariant(canonical, DocTypeDeliveryNote)
	require.NoError(t, err)

	assert.Equal(t, DocTypeDeliveryNote, dn.Type)
	assert.False(t, dn.Type.CarriesTotals())

	// Totals and payment info are force-hidden
	assert.False(t, dn.SectionByKey(SectionKeyTotals).Visible)
	assert.False(t, dn.SectionByKey(SectionKeyPayment).Visible)

	// Received By is appended at the end of the section list
	last := dn.Sections[len(dn.Sections)-1]
	assert.Equal(t, SectionKeyReceivedBy, last.Key)
	assert.Equal(t, SectionCustom, last.Kind)
	require.Len(t, last.Fields, 3)
	assert.NotNil(t, last.FieldByID(FieldIDReceiverName))
	assert.NotNil(t, last.FieldByID(FieldIDReceivedAt))
}

func TestDeriveVariant_SiblingIndependence(t *testing.T) {
	canonical := CanonicalInvoiceTemplate(DefaultBranding())

	dn, err := DeriveVariant(canonical, DocTypeDeliveryNote)
	require.NoError(t, err)
	quote, err := DeriveVariant(canonical, DocTypeQuote)
	require.NoError(t, err)

	// Mutating the derived delivery note must not change the canonical
	// template or a sibling variant
	dn.SectionByKey(SectionKeyHeader).FieldByID(FieldIDTitle).Label = NewLocalizedText("Mutated", "")
	dn.SectionByKey(SectionKeyParty).Name = NewLocalizedText("Mutated", "")

	assert.Equal(t, "Invoice", canonical.SectionByKey(SectionKeyHeader).FieldByID(FieldIDTitle).Label.En)
	assert.Equal(t, "Bill To", canonical.SectionByKey(SectionKeyParty).Name.En)
	assert.Equal(t, "Quotation", quote.SectionByKey(SectionKeyHeader).FieldByID(FieldIDTitle).Label.En)
}

func TestDeriveVariant_InvalidTarget(t *testing.T) {
	canonical := CanonicalInvoiceTemplate(DefaultBranding())

	_, err := DeriveVariant(canonical, DocType("statement"))
	require.Error(t, err)

	// No rule set exists for invoice itself
	_, err = DeriveVariant(canonical, DocTypeInvoice)
	require.Error(t, err)
}

func TestBuiltinTemplates(t *testing.T) {
	templates := BuiltinTemplates(DefaultBranding())
	require.Len(t, templates, 4)

	types := make(map[DocType]bool)
	for _, tmpl := range templates {
		types[tmpl.Type] = true
		require.NoError(t, tmpl.Validate())
	}
	assert.True(t, types[DocTypeInvoice])
	assert.True(t, types[DocTypeQuote])
	assert.True(t, types[DocTypePurchaseOrder])
	assert.True(t, types[DocTypeDeliveryNote])
}
