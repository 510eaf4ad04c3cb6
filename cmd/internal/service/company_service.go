package service

import (
	"context"
	"errors"

	"goldcredit/cmd/internal/contract"
	"goldcredit/cmd/internal/domain/entity"
	"goldcredit/cmd/internal/infrastructure/minhareceita"
	"goldcredit/cmd/internal/utils"
	"goldcredit/cmd/internal/utils/apierror"
	"goldcredit/cmd/internal/utils/validators"

	"github.com/labstack/gommon/log"
)

type CompanyRepository interface {
	Save(company *entity.Company) error
	FindByCNPJ(cnpj string) (*entity.Company, error)
}

// DefaultCompanyService resolves a cedente's CNPJ into public registry
// data, caching lookups (including 404s) in the local store.
type DefaultCompanyService struct {
	ReceitaClient *minhareceita.Client
	CompanyRepo   CompanyRepository
}

func NewCompanyService(client *minhareceita.Client, companyRepo CompanyRepository) *DefaultCompanyService {
	return &DefaultCompanyService{
		ReceitaClient: client,
		CompanyRepo:   companyRepo,
	}
}

func (s *DefaultCompanyService) Lookup(cnpj string) (*contract.CompanyResponse, apierror.ErrorResponse) {
	cnpj = validators.StripTaxID(cnpj)
	if len(cnpj) != 14 || !validators.ValidCPFCNPJ(cnpj) {
		return nil, apierror.NewSimple(400, "Value is not a valid CNPJ")
	}

	company, fromCache, apierr := s.findCompany(cnpj)
	if apierr != nil {
		return nil, apierr
	}
	return toCompanyResponse(company, fromCache), nil
}

// findCompany resolves the CNPJ through the cache first. It returns
// the company, a boolean (true = cached, false = API fetch) and a
// possible error response.
func (s *DefaultCompanyService) findCompany(cnpj string) (*entity.Company, bool, apierror.ErrorResponse) {
	cached, err := s.CompanyRepo.FindByCNPJ(cnpj)
	if err != nil {
		log.Errorf("failed to find company by cnpj %s: %v", cnpj, err)
		return nil, false, apierror.InternalServerError
	}

	if cached != nil {
		if cached.Found {
			return cached, true, nil
		}
		return nil, false, apierror.NotFoundError
	}

	company, apierr := s.fetchFromAPI(cnpj)
	if apierr != nil {
		return nil, false, apierr
	}

	if err := s.CompanyRepo.Save(company); err != nil {
		// Only the cache failed; we still have the data to serve.
		log.Errorf("failed to save company cache for CNPJ %s: %v", cnpj, err)
	}
	return company, false, nil
}

func (s *DefaultCompanyService) fetchFromAPI(cnpj string) (*entity.Company, apierror.ErrorResponse) {
	company, err := s.ReceitaClient.GetByCNPJ(context.Background(), cnpj)
	if err != nil {
		if errors.Is(err, minhareceita.ErrNotFound) {
			s.cacheNegativeResult(cnpj)
			return nil, apierror.NotFoundError
		}
		log.Errorf("failed to fetch company by cnpj %s: %v", cnpj, err)
		return nil, apierror.InternalServerError
	}

	company.Found = true
	company.CachedAt = utils.NowUTC()
	return company, nil
}

func (s *DefaultCompanyService) cacheNegativeResult(cnpj string) {
	_ = s.CompanyRepo.Save(&entity.Company{
		CNPJ:     cnpj,
		Found:    false,
		CachedAt: utils.NowUTC(),
	})
}

func toCompanyResponse(company *entity.Company, cached bool) *contract.CompanyResponse {
	partners := make([]*contract.PartnerResponse, len(company.Partners))
	for i, partner := range company.Partners {
		partners[i] = &contract.PartnerResponse{
			Name:     partner.Name,
			Role:     partner.Role,
			AgeRange: partner.AgeRange,
		}
	}

	return &contract.CompanyResponse{
		CNPJ:        company.CNPJ,
		LegalName:   company.LegalName,
		TradeName:   company.TradeName,
		LegalNature: company.LegalNature,
		RegStatus:   string(company.RegStatus),
		City:        company.AddressCity,
		Region:      company.AddressRegion,
		Partners:    partners,
		Cached:      cached,
	}
}
