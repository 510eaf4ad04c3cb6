package entity

type RegStatus string

const (
	StatusActive    RegStatus = "ACTIVE"
	StatusClosed    RegStatus = "CLOSED"
	StatusSuspended RegStatus = "SUSPENDED"
	StatusUnfit     RegStatus = "UNFIT"
	StatusUnknown   RegStatus = "UNKNOWN"
)

// Company caches registry data fetched from minhareceita for a
// cedente's CNPJ, so reviewers don't hit the public API on every
// lookup.
type Company struct {
	CNPJ              string `gorm:"primaryKey;column:cnpj"`
	LegalName         string
	TradeName         string
	LegalNature       string
	CompanySize       string
	BusinessStartDate string
	RegStatus         RegStatus
	AddressCity       string
	AddressRegion     string

	// Found controls negative caching: false means the CNPJ was queried,
	// returned a 404, and is cached as nonexistent so we don't query it
	// again before the cache TTL expires.
	Found    bool  `gorm:"default:true"`
	CachedAt int64 `gorm:"autoUpdateTime:false"`

	// Relations
	Partners []*CompanyPartner `gorm:"foreignKey:CompanyCNPJ;references:CNPJ;constraint:OnUpdate:CASCADE;OnDelete:CASCADE;"`
}

type CompanyPartner struct {
	ID          int64  `gorm:"primaryKey"`
	CompanyCNPJ string `gorm:"uniqueIndex:idx_company_partner_cnpj_name;index"`
	Name        string `gorm:"uniqueIndex:idx_company_partner_cnpj_name"`
	Role        string
	AgeRange    string
}
