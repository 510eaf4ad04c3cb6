package contract

type CompanyResponse struct {
	CNPJ        string             `json:"cnpj"`
	LegalName   string             `json:"legal_name"`
	TradeName   string             `json:"trade_name"`
	LegalNature string             `json:"legal_nature"`
	RegStatus   string             `json:"registration_status"`
	City        string             `json:"city,omitempty"`
	Region      string             `json:"region,omitempty"`
	Partners    []*PartnerResponse `json:"qsa"`
	Cached      bool               `json:"cached"`
}

type PartnerResponse struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	AgeRange string `json:"age_range"`
}
