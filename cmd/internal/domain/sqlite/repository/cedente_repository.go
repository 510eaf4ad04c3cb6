package repository

import (
	"errors"

	"goldcredit/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCedenteRepository struct {
	db *gorm.DB
}

func NewCedenteRepository(db *gorm.DB) *DefaultCedenteRepository {
	return &DefaultCedenteRepository{db: db}
}

// FindAll returns every cedente sorted by case-insensitive trimmed name.
func (r *DefaultCedenteRepository) FindAll() ([]*entity.Cedente, error) {
	var cedentes []*entity.Cedente
	err := r.db.Order("LOWER(TRIM(name)) ASC").Find(&cedentes).Error
	if err != nil {
		return nil, err
	}
	return cedentes, nil
}

func (r *DefaultCedenteRepository) FindByID(id int64) (*entity.Cedente, error) {
	var cedente entity.Cedente
	err := r.db.First(&cedente, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &cedente, nil
}

func (r *DefaultCedenteRepository) ExistsByTaxID(taxID string) (bool, error) {
	var exists int
	err := r.db.
		Raw("SELECT EXISTS(SELECT 1 FROM cedentes WHERE tax_id = ?)", taxID).
		Scan(&exists).Error
	if err != nil {
		return false, err
	}
	return exists == 1, nil
}

func (r *DefaultCedenteRepository) Save(cedente *entity.Cedente) error {
	return r.db.Save(cedente).Error
}

// Delete removes the cedente; its checklist and notifications go with
// it through the ON DELETE CASCADE constraints.
func (r *DefaultCedenteRepository) Delete(cedente *entity.Cedente) error {
	return r.db.Delete(cedente).Error
}

func (r *DefaultCedenteRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entity.Cedente{}).Count(&total).Error
	return total, err
}
