package entity

// DocumentChecklist is the fixed ten-flag document review state of a
// cedente. At most one row exists per cedente (upsert semantics); the
// absence of a row means the cedente was never reviewed and counts as
// incomplete.
type DocumentChecklist struct {
	ID        int64 `gorm:"primaryKey"`
	CedenteID int64 `gorm:"not null;uniqueIndex"`

	SocialContract      bool `gorm:"not null;default:false"`
	TaxRegistrationCard bool `gorm:"not null;default:false"`
	RevenueLast12Months bool `gorm:"not null;default:false"`
	BalanceSheet        bool `gorm:"not null;default:false"`
	PartnerID           bool `gorm:"not null;default:false"`
	PartnerIncomeTax    bool `gorm:"not null;default:false"`
	AddressProof        bool `gorm:"not null;default:false"`
	Email               bool `gorm:"not null;default:false"`
	ABCCurve            bool `gorm:"not null;default:false"`
	BankingData         bool `gorm:"not null;default:false"`

	UpdatedAt int64 `gorm:"not null;autoUpdateTime:false"`
}

// Complete reports whether every one of the ten flags is set.
func (d *DocumentChecklist) Complete() bool {
	return d.SocialContract &&
		d.TaxRegistrationCard &&
		d.RevenueLast12Months &&
		d.BalanceSheet &&
		d.PartnerID &&
		d.PartnerIncomeTax &&
		d.AddressProof &&
		d.Email &&
		d.ABCCurve &&
		d.BankingData
}
