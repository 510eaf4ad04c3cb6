package service

import (
	"testing"

	"goldcredit/cmd/internal/domain/entity"
	"goldcredit/cmd/internal/domain/sqlite"
	"goldcredit/cmd/internal/domain/sqlite/repository"
	"goldcredit/cmd/internal/utils"
	"goldcredit/cmd/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv wires the real repositories over an in-memory store, which
// keeps service tests honest about SQL behavior without any filesystem
// state.
type testEnv struct {
	db         *gorm.DB
	cedentes   *repository.DefaultCedenteRepository
	checklists *repository.DefaultChecklistRepository
	notifs     *repository.DefaultNotificationRepository
	users      *repository.DefaultUserRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)

	return &testEnv{
		db:         db,
		cedentes:   repository.NewCedenteRepository(db),
		checklists: repository.NewChecklistRepository(db),
		notifs:     repository.NewNotificationRepository(db),
		users:      repository.NewUserRepository(db),
	}
}

func newTestValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("hasupper", validators.HasUpper)
	_ = validate.RegisterValidation("haslower", validators.HasLower)
	_ = validate.RegisterValidation("hasdigit", validators.HasDigit)
	_ = validate.RegisterValidation("hasspecial", validators.HasSpecial)
	_ = validate.RegisterValidation("cpfcnpj", validators.CPFCNPJ)
	return validate
}

func (env *testEnv) seedCedente(t *testing.T, name, taxID, expiry string) *entity.Cedente {
	t.Helper()

	now := utils.NowUTC()
	cedente := &entity.Cedente{
		Name:           name,
		TaxID:          taxID,
		ContractStatus: entity.ContractStatusSigned,
		ContractExpiry: expiry,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, env.cedentes.Save(cedente))
	return cedente
}

func (env *testEnv) completeChecklist(t *testing.T, cedenteID int64) {
	t.Helper()

	require.NoError(t, env.checklists.Upsert(&entity.DocumentChecklist{
		CedenteID:           cedenteID,
		SocialContract:      true,
		TaxRegistrationCard: true,
		RevenueLast12Months: true,
		BalanceSheet:        true,
		PartnerID:           true,
		PartnerIncomeTax:    true,
		AddressProof:        true,
		Email:               true,
		ABCCurve:            true,
		BankingData:         true,
		UpdatedAt:           utils.NowUTC(),
	}))
}
