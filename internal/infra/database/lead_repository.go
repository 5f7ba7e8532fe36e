package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/crmbase/lead-manager/internal/entity"
	"github.com/crmbase/lead-manager/internal/usecase"
)

type LeadRepository struct {
	DB *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// withRelations expands assignee, creator and the activity history
// (newest first) on every read path.
func (r *LeadRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Preload("CreatedBy").
		Preload("AssignedTo").
		Preload("Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Activities.PerformedBy")
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return r.DB.WithContext(ctx).Create(lead).Error
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.withRelations(ctx).First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *LeadRepository) List(ctx context.Context, filter usecase.LeadFilter) ([]entity.Lead, error) {
	q := r.withRelations(ctx)
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.AssignedTo != "" {
		q = q.Where("assigned_to_id = ?", filter.AssignedTo)
	}

	var leads []entity.Lead
	err := q.Order("created_at DESC").Find(&leads).Error
	return leads, err
}

// UpdateWithActivity applies the field patch and appends the activity
// row inside a single transaction. A reader never observes one write
// without the other.
func (r *LeadRepository) UpdateWithActivity(ctx context.Context, leadID string, fields map[string]interface{}, activity *entity.Activity) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Lead{}).Where("id = ?", leadID).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(activity).Error
	})
}

// DeleteWithActivities removes the lead and its activity history
// together, so no orphaned activities remain.
func (r *LeadRepository) DeleteWithActivities(ctx context.Context, leadID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lead_id = ?", leadID).Delete(&entity.Activity{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Lead{}, "id = ?", leadID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
