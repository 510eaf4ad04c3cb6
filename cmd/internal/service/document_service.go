package service

import (
	"goldcredit/cmd/internal/contract"
	"goldcredit/cmd/internal/domain/entity"
	"goldcredit/cmd/internal/utils"
	"goldcredit/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

type ChecklistRepository interface {
	FindByCedenteID(cedenteID int64) (*entity.DocumentChecklist, error)
	Upsert(checklist *entity.DocumentChecklist) error
}

// DocumentChecker is the completeness query the reconciler and the
// statistics aggregation depend on.
type DocumentChecker interface {
	IsComplete(cedenteID int64) (bool, error)
}

type DefaultDocumentService struct {
	ChecklistRepo ChecklistRepository
	CedenteRepo   CedenteRepository
}

func NewDocumentService(checklistRepo ChecklistRepository, cedenteRepo CedenteRepository) *DefaultDocumentService {
	return &DefaultDocumentService{
		ChecklistRepo: checklistRepo,
		CedenteRepo:   cedenteRepo,
	}
}

// GetChecklist returns the stored checklist for the cedente, or one
// with every flag false when no review happened yet.
func (s *DefaultDocumentService) GetChecklist(cedenteID int64) (*contract.ChecklistResponse, apierror.ErrorResponse) {
	cedente, err := s.CedenteRepo.FindByID(cedenteID)
	if err != nil {
		log.Errorf("failed to fetch cedente: %v", err)
		return nil, apierror.InternalServerError
	}

	if cedente == nil {
		return nil, apierror.NotFoundError
	}

	checklist, err := s.ChecklistRepo.FindByCedenteID(cedenteID)
	if err != nil {
		log.Errorf("failed to fetch checklist for cedente %d: %v", cedenteID, err)
		return nil, apierror.InternalServerError
	}

	if checklist == nil {
		checklist = &entity.DocumentChecklist{CedenteID: cedenteID}
	}
	return toChecklistResponse(checklist), nil
}

func (s *DefaultDocumentService) SaveChecklist(cedenteID int64, req *contract.ChecklistRequest) (*contract.ChecklistResponse, apierror.ErrorResponse) {
	cedente, err := s.CedenteRepo.FindByID(cedenteID)
	if err != nil {
		log.Errorf("failed to fetch cedente: %v", err)
		return nil, apierror.InternalServerError
	}

	if cedente == nil {
		return nil, apierror.NotFoundError
	}

	checklist := &entity.DocumentChecklist{
		CedenteID:           cedenteID,
		SocialContract:      req.SocialContract,
		TaxRegistrationCard: req.TaxRegistrationCard,
		RevenueLast12Months: req.RevenueLast12Months,
		BalanceSheet:        req.BalanceSheet,
		PartnerID:           req.PartnerID,
		PartnerIncomeTax:    req.PartnerIncomeTax,
		AddressProof:        req.AddressProof,
		Email:               req.Email,
		ABCCurve:            req.ABCCurve,
		BankingData:         req.BankingData,
		UpdatedAt:           utils.NowUTC(),
	}

	if err := s.ChecklistRepo.Upsert(checklist); err != nil {
		log.Errorf("failed to save checklist for cedente %d: %v", cedenteID, err)
		return nil, apierror.InternalServerError
	}
	return toChecklistResponse(checklist), nil
}

// IsComplete reports whether every one of the ten document flags is
// set for the cedente. No checklist row means incomplete.
func (s *DefaultDocumentService) IsComplete(cedenteID int64) (bool, error) {
	checklist, err := s.ChecklistRepo.FindByCedenteID(cedenteID)
	if err != nil {
		return false, err
	}

	if checklist == nil {
		return false, nil
	}
	return checklist.Complete(), nil
}

func toChecklistResponse(checklist *entity.DocumentChecklist) *contract.ChecklistResponse {
	resp := &contract.ChecklistResponse{
		SocialContract:      checklist.SocialContract,
		TaxRegistrationCard: checklist.TaxRegistrationCard,
		RevenueLast12Months: checklist.RevenueLast12Months,
		BalanceSheet:        checklist.BalanceSheet,
		PartnerID:           checklist.PartnerID,
		PartnerIncomeTax:    checklist.PartnerIncomeTax,
		AddressProof:        checklist.AddressProof,
		Email:               checklist.Email,
		ABCCurve:            checklist.ABCCurve,
		BankingData:         checklist.BankingData,
		Complete:            checklist.Complete(),
	}

	if checklist.UpdatedAt > 0 {
		resp.UpdatedAt = utils.FormatEpoch(checklist.UpdatedAt)
	}
	return resp
}
