package document

// Branding is the company identity record stamped on every printed document.
// It is an immutable value: customization always builds a new Branding via
// ResolveBranding, never mutates one in place.
type Branding struct {
	Name           LocalizedText `json:"name"`
	Tagline        string        `json:"tagline,omitempty"`
	Address        LocalizedText `json:"address"`
	Phone          string        `json:"phone,omitempty"`
	Email          string        `json:"email,omitempty"`
	Website        string        `json:"website,omitempty"`
	TaxNumber      string        `json:"tax_number,omitempty"`
	CRNumber       string        `json:"cr_number,omitempty"`
	LogoURL        string        `json:"logo_url,omitempty"`
	PrimaryColor   string        `json:"primary_color,omitempty"`
	SecondaryColor string        `json:"secondary_color,omitempty"`
	AccentColor    string        `json:"accent_color,omitempty"`
}

// BrandingOverride carries a partial Branding. Nil fields leave the underlying
// value untouched during resolution.
type BrandingOverride struct {
	Name           *LocalizedText `json:"name,omitempty"`
	Tagline        *string        `json:"tagline,omitempty"`
	Address        *LocalizedText `json:"address,omitempty"`
	Phone          *string        `json:"phone,omitempty"`
	Email          *string        `json:"email,omitempty"`
	Website        *string        `json:"website,omitempty"`
	TaxNumber      *string        `json:"tax_number,omitempty"`
	CRNumber       *string        `json:"cr_number,omitempty"`
	LogoURL        *string        `json:"logo_url,omitempty"`
	PrimaryColor   *string        `json:"primary_color,omitempty"`
	SecondaryColor *string        `json:"secondary_color,omitempty"`
	AccentColor    *string        `json:"accent_color,omitempty"`
}

// IsZero returns true if the override sets no fields
func (o BrandingOverride) IsZero() bool {
	return o == BrandingOverride{}
}

// ResolveBranding merges a default Branding with a template-level override and
// a caller-supplied override. The merge is shallow and field-by-field with
// strict left-to-right precedence: caller wins over template, template wins
// over default. Inputs are untouched.
func ResolveBranding(def Branding, tmpl, caller BrandingOverride) Branding {
	out := def
	for _, o := range []BrandingOverride{tmpl, caller} {
		if o.Name != nil {
			out.Name = *o.Name
		}
		if o.Tagline != nil {
			out.Tagline = *o.Tagline
		}
		if o.Address != nil {
			out.Address = *o.Address
		}
		if o.Phone != nil {
			out.Phone = *o.Phone
		}
		if o.Email != nil {
			out.Email = *o.Email
		}
		if o.Website != nil {
			out.Website = *o.Website
		}
		if o.TaxNumber != nil {
			out.TaxNumber = *o.TaxNumber
		}
		if o.CRNumber != nil {
			out.CRNumber = *o.CRNumber
		}
		if o.LogoURL != nil {
			out.LogoURL = *o.LogoURL
		}
		if o.PrimaryColor != nil {
			out.PrimaryColor = *o.PrimaryColor
		}
		if o.SecondaryColor != nil {
			out.SecondaryColor = *o.SecondaryColor
		}
		if o.AccentColor != nil {
			out.AccentColor = *o.AccentColor
		}
	}
	return out
}

// Initial returns the first rune of the primary-language company name, used as
// the header badge when no logo is configured.
func (b Branding) Initial(lang Language) string {
	name := b.Name.In(lang)
	for _, r := range name {
		return string(r)
	}
	return ""
}
