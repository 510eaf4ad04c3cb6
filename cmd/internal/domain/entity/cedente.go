package entity

// Contract status labels accepted for a cedente.
const (
	ContractStatusSigned   = "signed"
	ContractStatusPending  = "pending"
	ContractStatusRenewal  = "renewal"
	ContractStatusCanceled = "canceled"
)

// Cedente is a contract counterparty tracked by the organization.
type Cedente struct {
	ID             int64  `gorm:"primaryKey"`
	Name           string `gorm:"not null;index"`
	TaxID          string `gorm:"not null;uniqueIndex"` // CPF or CNPJ, digits only
	ContractStatus string `gorm:"not null"`
	// ContractExpiry holds the contract expiry date as YYYY-MM-DD, or ""
	// when no expiry was informed. Imported rows may carry malformed
	// values; readers must tolerate them.
	ContractExpiry string `gorm:"index"`
	CreatedAt      int64  `gorm:"not null"`
	UpdatedAt      int64  `gorm:"not null;autoUpdateTime:false"`

	// Relations
	Checklist     *DocumentChecklist `gorm:"foreignKey:CedenteID;references:ID;constraint:OnDelete:CASCADE"`
	Notifications []*Notification    `gorm:"foreignKey:CedenteID;references:ID;constraint:OnDelete:CASCADE"`
}
