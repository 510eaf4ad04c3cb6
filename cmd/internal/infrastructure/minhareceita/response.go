package minhareceita

import (
	"strings"

	"goldcredit/cmd/internal/domain/entity"
)

type companyResponse struct {
	CNPJ               string `json:"cnpj"`
	LegalName          string `json:"razao_social"`
	TradeName          string `json:"nome_fantasia"`
	LegalNature        string `json:"natureza_juridica"`
	CompanySize        string `json:"porte"`
	BusinessStartDate  string `json:"data_inicio_atividade"`
	RegistrationStatus string `json:"descricao_situacao_cadastral"`

	AddressCity   string `json:"municipio"`
	AddressRegion string `json:"uf"`

	Partners []*partnerResponse `json:"qsa"`
}

type partnerResponse struct {
	Name     string `json:"nome_socio"`
	Role     string `json:"qualificacao_socio"`
	AgeRange string `json:"faixa_etaria"`
}

func (c *companyResponse) ToDomain() *entity.Company {
	var partners []*entity.CompanyPartner
	for _, p := range c.Partners {
		partners = append(partners, &entity.CompanyPartner{
			Name:     p.Name,
			Role:     p.Role,
			AgeRange: p.AgeRange,
		})
	}

	return &entity.Company{
		CNPJ:              c.CNPJ,
		LegalName:         c.LegalName,
		TradeName:         c.TradeName,
		LegalNature:       c.LegalNature,
		CompanySize:       c.CompanySize,
		BusinessStartDate: c.BusinessStartDate,
		RegStatus:         translateStatus(c.RegistrationStatus),
		AddressCity:       c.AddressCity,
		AddressRegion:     c.AddressRegion,
		Partners:          partners,
	}
}

func translateStatus(status string) entity.RegStatus {
	switch strings.ToUpper(status) {
	case "ATIVA":
		return entity.StatusActive
	case "BAIXADA":
		return entity.StatusClosed
	case "SUSPENSA":
		return entity.StatusSuspended
	case "INAPTA":
		return entity.StatusUnfit
	default:
		return entity.StatusUnknown
	}
}
