package document

import (
	"time"

	"github.com/docforge/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Party is one side of a document: the billed customer or the supplying
// vendor.
type Party struct {
	Name      LocalizedText `json:"name"`
	Address   LocalizedText `json:"address"`
	TaxNumber string        `json:"tax_number,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	Email     string        `json:"email,omitempty"`
}

// IsZero returns true when the party block is entirely empty
func (p *Party) IsZero() bool {
	return p == nil || (p.Name.IsZero() && p.Address.IsZero() &&
		p.TaxNumber == "" && p.Phone == "" && p.Email == "")
}

// LineItem is one row of the items table
type LineItem struct {
	Seq         int              `json:"seq"`
	Description LocalizedText    `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Unit        LocalizedText    `json:"unit"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	Total       decimal.Decimal  `json:"total"`
	Discount    *decimal.Decimal `json:"discount,omitempty"`
}

// PaymentInfo holds the bank details printed on invoices
type PaymentInfo struct {
	BankName    string `json:"bank_name,omitempty"`
	AccountName string `json:"account_name,omitempty"`
	IBAN        string `json:"iban,omitempty"`
	SwiftCode   string `json:"swift_code,omitempty"`
}

// IsZero returns true when no payment field is populated
func (p *PaymentInfo) IsZero() bool {
	return p == nil || *p == PaymentInfo{}
}

// DocumentData is the transactional payload supplied per render. The business
// screens assemble and validate the underlying figures; the engine consumes
// the record as-is and trusts that grand total equals subtotal minus discount
// plus tax.
type DocumentData struct {
	Number          string           `json:"number"`
	IssueDate       time.Time        `json:"issue_date"`
	DueDate         *time.Time       `json:"due_date,omitempty"`
	Currency        string           `json:"currency"`
	Customer        *Party           `json:"customer,omitempty"`
	Vendor          *Party           `json:"vendor,omitempty"`
	Items           []LineItem       `json:"items"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	Discount        *decimal.Decimal `json:"discount,omitempty"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
	TaxRate         *decimal.Decimal `json:"tax_rate,omitempty"`
	TaxAmount       *decimal.Decimal `json:"tax_amount,omitempty"`
	GrandTotal      decimal.Decimal  `json:"grand_total"`
	Notes           *LocalizedText   `json:"notes,omitempty"`
	Payment         *PaymentInfo     `json:"payment,omitempty"`
	Project         string           `json:"project,omitempty"`
	Reference       string           `json:"reference,omitempty"`
	Salesperson     string           `json:"salesperson,omitempty"`
}

// PartyFor selects the party block a document of the given type reads from.
// Purchase orders read the vendor; every other type reads the customer and
// falls back to whichever block is populated.
func (d *DocumentData) PartyFor(docType DocType) *Party {
	primary, fallback := d.Customer, d.Vendor
	if docType.ReadsVendorParty() {
		primary, fallback = d.Vendor, d.Customer
	}
	if !primary.IsZero() {
		return primary
	}
	if !fallback.IsZero() {
		return fallback
	}
	return nil
}

// Validate makes the caller-contract violations explicit instead of letting
// them degrade into malformed output: negative monetary values and a missing
// party are rejected, missing optional data is not.
func (d *DocumentData) Validate(docType DocType) error {
	if !docType.IsValid() {
		return shared.NewDomainError("INVALID_DOC_TYPE", "Invalid document type")
	}
	if d.Number == "" {
		return shared.NewDomainError("INVALID_DATA", "Document number is required")
	}
	if d.Subtotal.IsNegative() || d.GrandTotal.IsNegative() {
		return shared.NewDomainError("NEGATIVE_AMOUNT", "Monetary totals cannot be negative")
	}
	if d.Discount != nil && d.Discount.IsNegative() {
		return shared.NewDomainError("NEGATIVE_AMOUNT", "Discount cannot be negative")
	}
	if d.TaxAmount != nil && d.TaxAmount.IsNegative() {
		return shared.NewDomainError("NEGATIVE_AMOUNT", "Tax amount cannot be negative")
	}
	for i := range d.Items {
		if d.Items[i].Quantity.IsNegative() || d.Items[i].UnitPrice.IsNegative() || d.Items[i].Total.IsNegative() {
			return shared.NewDomainError("NEGATIVE_AMOUNT", "Line item amounts cannot be negative")
		}
	}
	if d.PartyFor(docType) == nil {
		return shared.NewDomainError("MISSING_PARTY", "Document data carries neither a customer nor a vendor block")
	}
	return nil
}
