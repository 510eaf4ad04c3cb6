package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"goldcredit/cmd/internal/contract"
	"goldcredit/cmd/internal/domain/entity"
	"goldcredit/cmd/internal/utils"
	"goldcredit/cmd/internal/utils/validators"

	"github.com/labstack/gommon/log"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet layout: data starts at row 3; column B holds the name,
// C the CPF/CNPJ, D the contract status and E the expiry date.
const (
	importHeaderRows = 2

	importColName   = 1
	importColTaxID  = 2
	importColStatus = 3
	importColExpiry = 4

	importDefaultStatus = "pending"
)

// Numeric spreadsheet dates count days from this epoch.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

type DefaultImportService struct {
	CedenteRepo CedenteRepository
}

func NewImportService(cedenteRepo CedenteRepository) *DefaultImportService {
	return &DefaultImportService{CedenteRepo: cedenteRepo}
}

// ImportSpreadsheet loads cedentes from an .xlsx stream. Rows that
// fail to import are counted and skipped; the import itself keeps
// going.
func (s *DefaultImportService) ImportSpreadsheet(r io.Reader) (*contract.ImportResult, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(workbook.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet rows: %w", err)
	}

	imported, errored := 0, 0
	for i, row := range rows {
		if i < importHeaderRows || emptyRow(row) {
			continue
		}

		if err := s.importRow(row); err != nil {
			log.Warnf("import: row %d skipped: %v", i+1, err)
			errored++
			continue
		}
		imported++
	}

	return &contract.ImportResult{
		Imported: imported,
		Errors:   errored,
		Message:  fmt.Sprintf("Import finished: %d cedentes imported, %d errors.", imported, errored),
	}, nil
}

func (s *DefaultImportService) importRow(row []string) error {
	name := cell(row, importColName)
	taxID := validators.StripTaxID(cell(row, importColTaxID))
	status := cell(row, importColStatus)
	expiry := parseExpiryCell(cell(row, importColExpiry))

	if name == "" || taxID == "" {
		return fmt.Errorf("missing name or tax id")
	}

	if status == "" {
		status = importDefaultStatus
	}

	exists, err := s.CedenteRepo.ExistsByTaxID(taxID)
	if err != nil {
		return fmt.Errorf("tax id check failed: %w", err)
	}
	if exists {
		return fmt.Errorf("tax id %s already registered", taxID)
	}

	now := utils.NowUTC()
	return s.CedenteRepo.Save(&entity.Cedente{
		Name:           name,
		TaxID:          taxID,
		ContractStatus: status,
		ContractExpiry: expiry,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

// parseExpiryCell normalizes the expiry column. Numeric values are
// Excel day serials and get converted through the 1899-12-30 epoch;
// anything else passes through as-is and is tolerated downstream.
func parseExpiryCell(value string) string {
	if value == "" {
		return ""
	}

	if serial, err := strconv.ParseFloat(value, 64); err == nil {
		return utils.FormatDate(excelEpoch.AddDate(0, 0, int(serial)))
	}
	return value
}

func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func emptyRow(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
