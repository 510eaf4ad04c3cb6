package repository

import (
	"errors"

	"goldcredit/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *DefaultChecklistRepository {
	return &DefaultChecklistRepository{db: db}
}

func (r *DefaultChecklistRepository) FindByCedenteID(cedenteID int64) (*entity.DocumentChecklist, error) {
	var checklist entity.DocumentChecklist
	err := r.db.Where("cedente_id = ?", cedenteID).First(&checklist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &checklist, nil
}

// Upsert writes the checklist for its cedente, replacing the existing
// row if there is one. The unique index on cedente_id keeps this at one
// row per cedente.
func (r *DefaultChecklistRepository) Upsert(checklist *entity.DocumentChecklist) error {
	existing, err := r.FindByCedenteID(checklist.CedenteID)
	if err != nil {
		return err
	}

	if existing != nil {
		checklist.ID = existing.ID
	}
	return r.db.Save(checklist).Error
}
