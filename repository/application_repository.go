// repository/application_repository.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amrit073/NEPGA/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository struct{ DB *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

// Create fills the generated fields that are still empty and inserts the row.
func (r *ApplicationRepository) Create(ctx context.Context, app *entity.Application) error {
	if app.ApplicationID == "" {
		app.ApplicationID = uuid.NewString()
	}
	if app.SubmissionDate.IsZero() {
		app.SubmissionDate = time.Now().UTC()
	}
	if app.Status == "" {
		app.Status = entity.StatusPending
	}
	if !app.Status.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidStatus, app.Status)
	}
	if app.PassportType == "" {
		app.PassportType = entity.DefaultPassportType
	}
	return r.DB.WithContext(ctx).Create(app).Error
}

// FindByID returns gorm.ErrRecordNotFound when the id is unknown.
func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*entity.Application, error) {
	var app entity.Application
	if err := r.DB.WithContext(ctx).
		Where("application_id = ?", id).
		First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateStatus overwrites the status of one application.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidStatus, status)
	}
	res := r.DB.WithContext(ctx).
		Model(&entity.Application{}).
		Where("application_id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListPage returns one page, most recent submission first, and the total
// number of stored applications.
func (r *ApplicationRepository) ListPage(ctx context.Context, offset, limit int) ([]entity.Application, int64, error) {
	db := r.DB.WithContext(ctx)

	var total int64
	if err := db.Model(&entity.Application{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []entity.Application
	err := db.
		Order("submission_date DESC").
		Order("application_id DESC").
		Offset(offset).
		Limit(limit).
		Find(&apps).Error
	return apps, total, err
}

// CountByStatus returns a count for every status, including zero counts.
func (r *ApplicationRepository) CountByStatus(ctx context.Context) (map[entity.Status]int64, error) {
	var rows []struct {
		Status entity.Status
		Count  int64
	}
	if err := r.DB.WithContext(ctx).
		Model(&entity.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[entity.Status]int64, len(entity.Statuses))
	for _, s := range entity.Statuses {
		out[s] = 0
	}
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}
