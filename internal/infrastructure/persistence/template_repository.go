package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/docforge/backend/internal/domain/document"
	"github.com/docforge/backend/internal/domain/shared"
	"github.com/docforge/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// templateSortFields defines allowed sort fields for templates
var templateSortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"name_en":    true,
	"type":       true,
}

// GormTemplateRepository implements document.TemplateRepository using GORM
type GormTemplateRepository struct {
	db *gorm.DB
}

// NewGormTemplateRepository creates a new GormTemplateRepository
func NewGormTemplateRepository(db *gorm.DB) *GormTemplateRepository {
	return &GormTemplateRepository{db: db}
}

// Save persists a template (insert or update)
func (r *GormTemplateRepository) Save(ctx context.Context, template *document.Template) error {
	model, err := models.TemplateModelFromDomain(template)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a template by ID
func (r *GormTemplateRepository) FindByID(ctx context.Context, id string) (*document.Template, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid template ID")
	}

	var model models.TemplateModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll finds all templates matching the filter
func (r *GormTemplateRepository) FindAll(ctx context.Context, filter document.Filter) ([]document.Template, error) {
	var templateModels []models.TemplateModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TemplateModel{}), filter)
	query = query.Limit(filter.Limit()).Offset(filter.Offset())

	if err := query.Find(&templateModels).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(templateModels)
}

// Count returns the number of templates matching the filter
func (r *GormTemplateRepository) Count(ctx context.Context, filter document.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TemplateModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByType finds all templates for a document type
func (r *GormTemplateRepository) FindByType(ctx context.Context, docType document.DocType) ([]document.Template, error) {
	var templateModels []models.TemplateModel
	if err := r.db.WithContext(ctx).
		Where("type = ?", string(docType)).
		Order("name_en ASC").
		Find(&templateModels).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(templateModels)
}

// ExistsByName checks whether a template with the given English name exists
func (r *GormTemplateRepository) ExistsByName(ctx context.Context, name string, excludeID string) (bool, error) {
	query := r.db.WithContext(ctx).Model(&models.TemplateModel{}).Where("name_en = ?", name)
	if excludeID != "" {
		query = query.Where("id != ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes a template by ID
func (r *GormTemplateRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return shared.NewDomainError("INVALID_INPUT", "Invalid template ID")
	}

	result := r.db.WithContext(ctx).Delete(&models.TemplateModel{}, "id = ?", uid)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies search and ordering options to the query
func (r *GormTemplateRepository) applyFilter(query *gorm.DB, filter document.Filter) *gorm.DB {
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		query = query.Where("name_en LIKE ? OR name_ar LIKE ?", search, search)
	}

	orderBy := "created_at"
	if templateSortFields[filter.OrderBy] {
		orderBy = filter.OrderBy
	}
	dir := "ASC"
	if strings.EqualFold(filter.OrderDir, "desc") {
		dir = "DESC"
	}
	return query.Order(orderBy + " " + dir)
}

func toDomainSlice(templateModels []models.TemplateModel) ([]document.Template, error) {
	templates := make([]document.Template, len(templateModels))
	for i := range templateModels {
		t, err := templateModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		templates[i] = *t
	}
	return templates, nil
}
