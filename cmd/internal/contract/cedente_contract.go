package contract

type CedenteResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	TaxID          string `json:"tax_id"`
	ContractStatus string `json:"contract_status"`
	ContractExpiry string `json:"contract_expiry,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type CedenteRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=120"`
	TaxID          string `json:"tax_id" validate:"required,cpfcnpj"`
	ContractStatus string `json:"contract_status" validate:"required,oneof=signed pending renewal canceled"`
	ContractExpiry string `json:"contract_expiry" validate:"omitempty,datetime=2006-01-02"`
}

type ChecklistRequest struct {
	SocialContract      bool `json:"social_contract"`
	TaxRegistrationCard bool `json:"tax_registration_card"`
	RevenueLast12Months bool `json:"revenue_last_12_months"`
	BalanceSheet        bool `json:"balance_sheet"`
	PartnerID           bool `json:"partner_id"`
	PartnerIncomeTax    bool `json:"partner_income_tax"`
	AddressProof        bool `json:"address_proof"`
	Email               bool `json:"email"`
	ABCCurve            bool `json:"abc_curve"`
	BankingData         bool `json:"banking_data"`
}

type ChecklistResponse struct {
	SocialContract      bool   `json:"social_contract"`
	TaxRegistrationCard bool   `json:"tax_registration_card"`
	RevenueLast12Months bool   `json:"revenue_last_12_months"`
	BalanceSheet        bool   `json:"balance_sheet"`
	PartnerID           bool   `json:"partner_id"`
	PartnerIncomeTax    bool   `json:"partner_income_tax"`
	AddressProof        bool   `json:"address_proof"`
	Email               bool   `json:"email"`
	ABCCurve            bool   `json:"abc_curve"`
	BankingData         bool   `json:"banking_data"`
	Complete            bool   `json:"complete"`
	UpdatedAt           string `json:"updated_at,omitempty"`
}

type StatisticsResponse struct {
	TotalCedentes       int64 `json:"total_cedentes"`
	UnreadNotifications int64 `json:"unread_notifications"`
	CompleteChecklists  int   `json:"complete_checklists"`
	PendingChecklists   int   `json:"pending_checklists"`
	ExpiredContracts    int   `json:"expired_contracts"`
	ExpiringContracts   int   `json:"expiring_contracts"`
}

type ImportResult struct {
	Imported int    `json:"imported"`
	Errors   int    `json:"errors"`
	Message  string `json:"message"`
}
