package document

import "context"

// Filter holds list query options for template lookups
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
	Search   string
}

// Limit returns the effective page size
func (f Filter) Limit() int {
	if f.PageSize <= 0 {
		return 50
	}
	return f.PageSize
}

// Offset returns the effective list offset
func (f Filter) Offset() int {
	if f.Page <= 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit()
}

// TemplateRepository defines the persistence operations for templates
type TemplateRepository interface {
	// Save persists a template (insert or update)
	Save(ctx context.Context, template *Template) error
	// FindByID retrieves a template by ID, returning shared.ErrNotFound when missing
	FindByID(ctx context.Context, id string) (*Template, error)
	// FindAll retrieves templates matching the filter
	FindAll(ctx context.Context, filter Filter) ([]Template, error)
	// Count returns the number of templates matching the filter
	Count(ctx context.Context, filter Filter) (int64, error)
	// FindByType retrieves all templates for a document type
	FindByType(ctx context.Context, docType DocType) ([]Template, error)
	// ExistsByName checks whether a template with the given English name exists,
	// excluding the given ID when non-empty
	ExistsByName(ctx context.Context, name string, excludeID string) (bool, error)
	// Delete removes a template by ID
	Delete(ctx context.Context, id string) error
}
