package render

import (
	"context"
	"strconv"
	"time"

	"github.com/docforge/backend/internal/domain/document"
	"github.com/docforge/backend/internal/domain/numwords"
	"go.uber.org/zap"
)

// Assembler turns a template, branding override and document data record into
// a backend-neutral render tree. It processes sections strictly in template
// order and dispatches on the section kind; rendering is a pure function of
// its inputs.
type Assembler struct {
	logger *zap.Logger
}

// NewAssembler creates a new document assembler
func NewAssembler(logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{logger: logger}
}

// RenderInput carries everything one render call consumes
type RenderInput struct {
	// Template is the resolved document template
	Template *document.Template
	// Branding is the caller-level branding override (possibly empty)
	Branding document.BrandingOverride
	// Data is the transactional payload
	Data *document.DocumentData
}

// RenderOutput is the assembled render tree plus the resolved configuration
// the backend needs to reproduce page geometry and direction
type RenderOutput struct {
	Tree           *Node
	Layout         document.Layout
	Branding       document.Branding
	Language       document.Language
	Title          string
	RenderDuration time.Duration
}

// Assemble builds the render tree for one document. Missing optional data
// removes individual lines, never whole sections; caller contract violations
// are explicit errors.
func (a *Assembler) Assemble(ctx context.Context, in *RenderInput) (*RenderOutput, error) {
	if in == nil || in.Template == nil {
		return nil, NewRenderError(ErrCodeInvalidTemplate, "template is nil", nil)
	}
	if in.Data == nil {
		return nil, NewRenderError(ErrCodeInvalidData, "document data is nil", nil)
	}
	if err := in.Template.Validate(); err != nil {
		return nil, NewRenderError(ErrCodeInvalidTemplate, "invalid template", err)
	}
	if err := in.Data.Validate(in.Template.Type); err != nil {
		return nil, NewRenderError(ErrCodeInvalidData, "invalid document data", err)
	}

	startTime := time.Now()
	tmpl := in.Template
	branding := tmpl.EffectiveBranding(in.Branding)
	layout := document.ResolveLayout(tmpl.PaperSize, tmpl.Orientation, tmpl.Margins, tmpl.PrimaryLanguage)

	root := NewNode(NodeDocument).WithKey(tmpl.Type.String())
	root.SetAttr("width", formatDimension(layout.Width, layout.Unit))
	root.SetAttr("height", formatDimension(layout.Height, layout.Unit))
	root.SetAttr("dir", layout.Direction.String())

	if tmpl.ShowWatermark {
		text := tmpl.WatermarkText
		if text == "" {
			text = tmpl.Type.Title(tmpl.PrimaryLanguage)
		}
		wm := NewNode(NodeWatermark).WithText(text, "")
		wm.SetAttr("rotation", strconv.Itoa(layout.WatermarkRotation()))
		root.Append(wm)
	}

	for i := range tmpl.Sections {
		s := &tmpl.Sections[i]
		if !s.Visible {
			continue
		}

		var (
			node *Node
			err  error
		)
		switch s.Kind {
		case document.SectionHeader:
			node = a.buildHeader(tmpl, branding, in.Data, s)
		case document.SectionBody:
			node = a.buildParty(tmpl, branding, in.Data, s)
		case document.SectionItems:
			node = a.buildItems(tmpl, in.Data, s, layout)
		case document.SectionTotals:
			// Suppressed by type regardless of the section's own flag
			if !tmpl.Type.CarriesTotals() {
				continue
			}
			node, err = a.buildTotals(tmpl, in.Data, s)
			if err != nil {
				return nil, err
			}
		case document.SectionTerms:
			node = a.buildTerms(tmpl, in.Data, s)
		case document.SectionSignature:
			node = a.buildSignature(tmpl, s)
		case document.SectionFooter:
			node = a.buildFooter(tmpl, branding, s)
		case document.SectionCustom:
			node = a.buildCustom(tmpl, in.Data, s)
		}
		if node != nil {
			root.Append(node)
		}
	}

	out := &RenderOutput{
		Tree:           root,
		Layout:         layout,
		Branding:       branding,
		Language:       tmpl.PrimaryLanguage,
		Title:          tmpl.Type.Title(tmpl.PrimaryLanguage) + " " + in.Data.Number,
		RenderDuration: time.Since(startTime),
	}

	a.logger.Debug("document assembled",
		zap.String("type", tmpl.Type.String()),
		zap.String("number", in.Data.Number),
		zap.Int("sections", len(root.Children)),
		zap.Duration("duration", out.RenderDuration))

	return out, nil
}

func (a *Assembler) buildHeader(tmpl *document.Template, branding document.Branding, data *document.DocumentData, s *document.Section) *Node {
	primary := tmpl.PrimaryLanguage
	node := sectionNode(s)

	badge := NewNode(NodeBadge)
	if branding.LogoURL != "" {
		badge.SetAttr("logo", branding.LogoURL)
	} else {
		badge.Text = branding.Initial(primary)
	}
	node.Append(badge)

	node.Append(NewNode(NodeHeading).WithKey("company_name").
		WithText(branding.Name.In(primary), dualText(tmpl, branding.Name)))
	if branding.Tagline != "" {
		node.Append(NewNode(NodeLine).WithKey("tagline").WithText(branding.Tagline, ""))
	}

	title := tmpl.Type.Title(primary)
	titleSub := ""
	if f := s.FieldByID(document.FieldIDTitle); f != nil && f.Visible {
		title = f.Label.In(primary)
		titleSub = dualText(tmpl, f.Label)
	}
	node.Append(NewNode(NodeHeading).WithKey(document.FieldIDTitle).WithText(title, titleSub))

	node.Append(labeledLine(tmpl, s, document.FieldIDNumber,
		document.NewLocalizedText("No.", "الرقم"), data.Number))
	node.Append(labeledLine(tmpl, s, document.FieldIDIssueDate,
		document.NewLocalizedText("Date", "التاريخ"), FormatDate(data.IssueDate, tmpl.DateFormat)))
	if data.DueDate != nil {
		node.Append(labeledLine(tmpl, s, document.FieldIDDueDate,
			document.NewLocalizedText("Due Date", "تاريخ الاستحقاق"), FormatDate(*data.DueDate, tmpl.DateFormat)))
	}
	return node
}

func (a *Assembler) buildParty(tmpl *document.Template, branding document.Branding, data *document.DocumentData, s *document.Section) *Node {
	primary := tmpl.PrimaryLanguage
	node := sectionNode(s)

	// Data.Validate guarantees a party block exists for this type
	party := data.PartyFor(tmpl.Type)
	to := NewNode(NodeBlock).WithKey("party")
	to.Append(NewNode(NodeHeading).WithText(s.Name.In(primary), dualText(tmpl, s.Name)))
	if party != nil {
		appendIfText(to, "name", party.Name.In(primary), dualText(tmpl, party.Name))
		appendIfText(to, "address", party.Address.In(primary), dualText(tmpl, party.Address))
		appendIfText(to, "tax_number", party.TaxNumber, "")
		appendIfText(to, "phone", party.Phone, "")
		appendIfText(to, "email", party.Email, "")
	}
	node.Append(to)

	fromTitle := document.NewLocalizedText("From", "من")
	from := NewNode(NodeBlock).WithKey("from")
	from.Append(NewNode(NodeHeading).WithText(fromTitle.In(primary), dualText(tmpl, fromTitle)))
	appendIfText(from, "name", branding.Name.In(primary), dualText(tmpl, branding.Name))
	appendIfText(from, "address", branding.Address.In(primary), dualText(tmpl, branding.Address))
	appendIfText(from, "tax_number", branding.TaxNumber, "")
	appendIfText(from, "phone", branding.Phone, "")
	appendIfText(from, "email", branding.Email, "")
	node.Append(from)

	return node
}

// itemColumns is the fixed column order of the items table before any
// direction-driven reversal
var itemColumns = []struct {
	key   string
	label document.LocalizedText
}{
	{"seq", document.NewLocalizedText("#", "م")},
	{"description", document.NewLocalizedText("Description", "البيان")},
	{"quantity", document.NewLocalizedText("Qty", "الكمية")},
	{"unit", document.NewLocalizedText("Unit", "الوحدة")},
	{"unit_price", document.NewLocalizedText("Unit Price", "سعر الوحدة")},
	{"total", document.NewLocalizedText("Total", "الإجمالي")},
}

func (a *Assembler) buildItems(tmpl *document.Template, data *document.DocumentData, s *document.Section, layout document.Layout) *Node {
	primary := tmpl.PrimaryLanguage
	node := sectionNode(s)
	table := NewNode(NodeTable)

	head := NewNode(NodeRow).WithKey("head")
	for _, col := range itemColumns {
		cell := NewNode(NodeCell).WithKey(col.key).
			WithText(col.label.In(primary), dualText(tmpl, col.label))
		head.Append(cell)
	}
	table.Append(reverseIfRTL(head, layout))

	for i := range data.Items {
		item := &data.Items[i]
		row := NewNode(NodeRow)
		row.Append(
			NewNode(NodeCell).WithKey("seq").WithText(strconv.Itoa(item.Seq), ""),
			NewNode(NodeCell).WithKey("description").
				WithText(item.Description.In(primary), dualText(tmpl, item.Description)),
			NewNode(NodeCell).WithKey("quantity").WithText(FormatQuantity(item.Quantity), ""),
			NewNode(NodeCell).WithKey("unit").
				WithText(item.Unit.In(primary), dualText(tmpl, item.Unit)),
			NewNode(NodeCell).WithKey("unit_price").WithText(FormatAmount(item.UnitPrice), ""),
			NewNode(NodeCell).WithKey("total").WithText(FormatAmount(item.Total), ""),
		)
		table.Append(reverseIfRTL(row, layout))
	}

	node.Append(table)
	return node
}

func (a *Assembler) buildTotals(tmpl *document.Template, data *document.DocumentData, s *document.Section) (*Node, error) {
	primary := tmpl.PrimaryLanguage
	node := sectionNode(s)

	subtotalLabel := document.NewLocalizedText("Subtotal", "المجموع الفرعي")
	node.Append(totalLine("subtotal", subtotalLabel.In(primary), FormatAmount(data.Subtotal)))

	if data.Discount != nil && data.Discount.IsPositive() {
		value := "-" + FormatAmount(*data.Discount)
		if data.DiscountPercent != nil && data.DiscountPercent.IsPositive() {
			value += " (" + FormatPercent(*data.DiscountPercent) + ")"
		}
		label := document.NewLocalizedText("Discount", "الخصم")
		node.Append(totalLine("discount", label.In(primary), value))
	}

	if data.TaxAmount != nil && data.TaxAmount.IsPositive() {
		value := FormatAmount(*data.TaxAmount)
		if data.TaxRate != nil && data.TaxRate.IsPositive() {
			value += " (" + FormatPercent(*data.TaxRate) + ")"
		}
		label := document.NewLocalizedText("Tax", "الضريبة")
		node.Append(totalLine("tax", label.In(primary), value))
	}

	grandLabel := document.NewLocalizedText("Grand Total", "الإجمالي الكلي")
	node.Append(totalLine("grand_total", grandLabel.In(primary),
		FormatMoney(data.GrandTotal, data.Currency, tmpl.CurrencyPosition)))

	words, err := numwords.AmountInWords(data.GrandTotal, data.Currency, primary)
	if err != nil {
		return nil, NewRenderError(ErrCodeInvalidData, "amount in words", err)
	}
	node.Append(NewNode(NodeLine).WithKey("amount_in_words").WithText(words, ""))

	return node, nil
}

func (a *Assembler) buildTerms(tmpl *document.Template, data *document.DocumentData, s *document.Section) *Node {
	primary := tmpl.PrimaryLanguage
	node := sectionNode(s)

	// Long-form text is primary language only; dual-language applies to
	// structured fields, not paragraphs
	if !tmpl.Terms.IsZero() {
		node.Append(NewNode(NodeLine).WithKey("terms").WithText(tmpl.Terms.In(primary), ""))
	}
	if data.Notes != nil && !data.Notes.IsZero() {
		node.Append(NewNode(NodeLine).WithKey("notes").WithText(data.Notes.In(primary), ""))
	}
	if !tmpl.Notes.IsZero() {
		node.Append(NewNode(NodeLine).WithKey("template_notes").WithText(tmpl.Notes.In(primary), ""))
	}
	if len(node.Children) == 0 {
		return nil
	}
	return node
}

func (a *Assembler) buildSignature(tmpl *document.Template, s *document.Section) *Node {
	primary := tmpl.PrimaryLanguage
	node := sectionNode(s)

	if tmpl.Signature.ShowLine {
		label := tmpl.Signature.Label.In(primary)
		node.Append(NewNode(NodeSignature).WithText(label, ""))
	}
	if tmpl.Signature.ShowStampArea {
		stamp := document.NewLocalizedText("Stamp", "الختم")
		node.Append(NewNode(NodeStampBox).WithText(stamp.In(primary), ""))
	}
	if len(node.Children) == 0 {
		return nil
	}
	return node
}

func (a *Assembler) buildFooter(tmpl *document.Template, branding document.Branding, s *document.Section) *Node {
	primary := tmpl.PrimaryLanguage
	node := sectionNode(s)

	contact := joinNonEmpty(" | ", branding.Phone, branding.Email, branding.Website)
	if contact != "" {
		node.Append(NewNode(NodeLine).WithKey("contact").WithText(contact, ""))
	}

	var ids []string
	if branding.CRNumber != "" {
		crLabel := document.NewLocalizedText("CR No.", "رقم السجل التجاري")
		ids = append(ids, crLabel.In(primary)+": "+branding.CRNumber)
	}
	if branding.TaxNumber != "" {
		taxLabel := document.NewLocalizedText("Tax No.", "الرقم الضريبي")
		ids = append(ids, taxLabel.In(primary)+": "+branding.TaxNumber)
	}
	if line := joinNonEmpty(" | ", ids...); line != "" {
		node.Append(NewNode(NodeLine).WithKey("identifiers").WithText(line, ""))
	}

	if len(node.Children) == 0 {
		return nil
	}
	return node
}

func (a *Assembler) buildCustom(tmpl *document.Template, data *document.DocumentData, s *document.Section) *Node {
	if s.Key == document.SectionKeyPayment {
		return a.buildPayment(tmpl, data, s)
	}

	primary := tmpl.PrimaryLanguage
	node := sectionNode(s)
	node.Append(NewNode(NodeHeading).WithText(s.Name.In(primary), dualText(tmpl, s.Name)))
	for i := range s.Fields {
		f := &s.Fields[i]
		if !f.Visible {
			continue
		}
		line := NewNode(NodeLine).WithKey(f.ID).
			WithText(f.Label.In(primary), dualText(tmpl, f.Label))
		line.SetAttr("value", f.Value)
		node.Append(line)
	}
	return node
}

// buildPayment emits bank details only on invoices and only when the data
// record carries them
func (a *Assembler) buildPayment(tmpl *document.Template, data *document.DocumentData, s *document.Section) *Node {
	if tmpl.Type != document.DocTypeInvoice || data.Payment.IsZero() {
		return nil
	}

	primary := tmpl.PrimaryLanguage
	node := sectionNode(s)
	node.Append(NewNode(NodeHeading).WithText(s.Name.In(primary), dualText(tmpl, s.Name)))

	lines := []struct {
		key   string
		label document.LocalizedText
		value string
	}{
		{"bank_name", document.NewLocalizedText("Bank", "البنك"), data.Payment.BankName},
		{"account_name", document.NewLocalizedText("Account Name", "اسم الحساب"), data.Payment.AccountName},
		{"iban", document.NewLocalizedText("IBAN", "الآيبان"), data.Payment.IBAN},
		{"swift", document.NewLocalizedText("SWIFT", "سويفت"), data.Payment.SwiftCode},
	}
	for _, l := range lines {
		if l.value == "" {
			continue
		}
		node.Append(totalLine(l.key, l.label.In(primary), l.value))
	}
	return node
}

// Helpers

func sectionNode(s *document.Section) *Node {
	node := NewNode(NodeSection).WithKey(s.Key)
	node.SetAttr("section_kind", s.Kind.String())
	if s.Style.Background != "" {
		node.SetAttr("background", s.Style.Background)
	}
	if s.Style.BorderColor != "" {
		node.SetAttr("border_color", s.Style.BorderColor)
	}
	return node
}

// dualText returns the secondary-language value for subtitle lines, or empty
// when dual-language mode is off or the secondary value repeats the primary
func dualText(tmpl *document.Template, text document.LocalizedText) string {
	if !tmpl.ShowDualLanguage {
		return ""
	}
	secondary := text.In(tmpl.SecondaryLanguage())
	if secondary == text.In(tmpl.PrimaryLanguage) {
		return ""
	}
	return secondary
}

// labeledLine builds a label/value line, preferring the section's field label
// over the fallback. Returns nil when the field exists but is hidden.
func labeledLine(tmpl *document.Template, s *document.Section, fieldID string, fallback document.LocalizedText, value string) *Node {
	label := fallback
	if f := s.FieldByID(fieldID); f != nil {
		if !f.Visible {
			return nil
		}
		label = f.Label
	}
	line := NewNode(NodeLine).WithKey(fieldID).
		WithText(label.In(tmpl.PrimaryLanguage), dualText(tmpl, label))
	line.SetAttr("value", value)
	return line
}

func totalLine(key, label, value string) *Node {
	line := NewNode(NodeLine).WithKey(key).WithText(label, "")
	line.SetAttr("value", value)
	return line
}

func appendIfText(parent *Node, key, text, subtitle string) {
	if text == "" {
		return
	}
	parent.Append(NewNode(NodeLine).WithKey(key).WithText(text, subtitle))
}

// reverseIfRTL reverses the cell order of a row so the description column
// still reads naturally right-to-left
func reverseIfRTL(row *Node, layout document.Layout) *Node {
	if !layout.IsRTL() {
		return row
	}
	for i, j := 0, len(row.Children)-1; i < j; i, j = i+1, j-1 {
		row.Children[i], row.Children[j] = row.Children[j], row.Children[i]
	}
	return row
}

func formatDimension(v float64, unit document.Unit) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + string(unit)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
