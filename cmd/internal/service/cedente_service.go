package service

import (
	"goldcredit/cmd/internal/contract"
	"goldcredit/cmd/internal/domain/entity"
	"goldcredit/cmd/internal/utils"
	"goldcredit/cmd/internal/utils/apierror"
	"goldcredit/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type CedenteRepository interface {
	FindAll() ([]*entity.Cedente, error)
	FindByID(id int64) (*entity.Cedente, error)
	ExistsByTaxID(taxID string) (bool, error)
	Save(cedente *entity.Cedente) error
	Delete(cedente *entity.Cedente) error
	Count() (int64, error)
}

type NotificationCounter interface {
	CountUnread() (int64, error)
}

type DefaultCedenteService struct {
	CedenteRepo CedenteRepository
	Notifs      NotificationCounter
	Documents   DocumentChecker
	Validate    *validator.Validate
}

func NewCedenteService(
	cedenteRepo CedenteRepository,
	notifs NotificationCounter,
	documents DocumentChecker,
	validate *validator.Validate,
) *DefaultCedenteService {
	return &DefaultCedenteService{
		CedenteRepo: cedenteRepo,
		Notifs:      notifs,
		Documents:   documents,
		Validate:    validate,
	}
}

func (s *DefaultCedenteService) GetAllCedentes() ([]*contract.CedenteResponse, apierror.ErrorResponse) {
	cedentes, err := s.CedenteRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch cedentes: %v", err)
		return nil, apierror.InternalServerError
	}

	resp := make([]*contract.CedenteResponse, len(cedentes))
	for i, cedente := range cedentes {
		resp[i] = toCedenteResponse(cedente)
	}
	return resp, nil
}

func (s *DefaultCedenteService) GetCedente(id int64) (*contract.CedenteResponse, apierror.ErrorResponse) {
	cedente, err := s.CedenteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch cedente: %v", err)
		return nil, apierror.InternalServerError
	}

	if cedente == nil {
		return nil, apierror.NotFoundError
	}
	return toCedenteResponse(cedente), nil
}

func (s *DefaultCedenteService) CreateCedente(req *contract.CedenteRequest) (*contract.CedenteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	taxID := validators.StripTaxID(req.TaxID)
	exists, err := s.CedenteRepo.ExistsByTaxID(taxID)
	if err != nil {
		log.Errorf("failed to check tax id %s: %v", taxID, err)
		return nil, apierror.InternalServerError
	}

	if exists {
		return nil, apierror.DuplicateTaxIDError
	}

	now := utils.NowUTC()
	cedente := &entity.Cedente{
		Name:           req.Name,
		TaxID:          taxID,
		ContractStatus: req.ContractStatus,
		ContractExpiry: req.ContractExpiry,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.CedenteRepo.Save(cedente); err != nil {
		log.Errorf("failed to save cedente: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCedenteResponse(cedente), nil
}

func (s *DefaultCedenteService) UpdateCedente(id int64, req *contract.CedenteRequest) (*contract.CedenteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	cedente, err := s.CedenteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch cedente: %v", err)
		return nil, apierror.InternalServerError
	}

	if cedente == nil {
		return nil, apierror.NotFoundError
	}

	taxID := validators.StripTaxID(req.TaxID)
	if taxID != cedente.TaxID {
		exists, err := s.CedenteRepo.ExistsByTaxID(taxID)
		if err != nil {
			log.Errorf("failed to check tax id %s: %v", taxID, err)
			return nil, apierror.InternalServerError
		}
		if exists {
			return nil, apierror.DuplicateTaxIDError
		}
	}

	cedente.Name = req.Name
	cedente.TaxID = taxID
	cedente.ContractStatus = req.ContractStatus
	cedente.ContractExpiry = req.ContractExpiry
	cedente.UpdatedAt = utils.NowUTC()

	if err := s.CedenteRepo.Save(cedente); err != nil {
		log.Errorf("failed to update cedente: %v", err)
		return nil, apierror.InternalServerError
	}
	return toCedenteResponse(cedente), nil
}

func (s *DefaultCedenteService) DeleteCedente(id int64) apierror.ErrorResponse {
	cedente, err := s.CedenteRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch cedente: %v", err)
		return apierror.InternalServerError
	}

	if cedente == nil {
		return apierror.NotFoundError
	}

	if err := s.CedenteRepo.Delete(cedente); err != nil {
		log.Errorf("failed to delete cedente: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

// Statistics aggregates the dashboard counters: totals, checklist
// completeness and contract expiry buckets. Per-cedente failures only
// degrade the counts, they never fail the whole call.
func (s *DefaultCedenteService) Statistics() (*contract.StatisticsResponse, apierror.ErrorResponse) {
	cedentes, err := s.CedenteRepo.FindAll()
	if err != nil {
		log.Errorf("failed to fetch cedentes for statistics: %v", err)
		return nil, apierror.InternalServerError
	}

	unread, err := s.Notifs.CountUnread()
	if err != nil {
		log.Errorf("failed to count unread notifications: %v", err)
		return nil, apierror.InternalServerError
	}

	stats := &contract.StatisticsResponse{
		TotalCedentes:       int64(len(cedentes)),
		UnreadNotifications: unread,
	}

	today := utils.Today()
	for _, cedente := range cedentes {
		complete, err := s.Documents.IsComplete(cedente.ID)
		if err != nil {
			log.Errorf("statistics: checklist lookup failed for cedente %d: %v", cedente.ID, err)
		}

		if complete {
			stats.CompleteChecklists++
		} else {
			stats.PendingChecklists++
		}

		if cedente.ContractExpiry == "" {
			continue
		}

		expiry, err := utils.ParseDate(cedente.ContractExpiry)
		if err != nil {
			continue
		}

		days := utils.DaysBetween(today, expiry)
		if days < 0 {
			stats.ExpiredContracts++
		} else if days <= 30 {
			stats.ExpiringContracts++
		}
	}
	return stats, nil
}

func toCedenteResponse(cedente *entity.Cedente) *contract.CedenteResponse {
	return &contract.CedenteResponse{
		ID:             cedente.ID,
		Name:           cedente.Name,
		TaxID:          cedente.TaxID,
		ContractStatus: cedente.ContractStatus,
		ContractExpiry: cedente.ContractExpiry,
		CreatedAt:      utils.FormatEpoch(cedente.CreatedAt),
		UpdatedAt:      utils.FormatEpoch(cedente.UpdatedAt),
	}
}
