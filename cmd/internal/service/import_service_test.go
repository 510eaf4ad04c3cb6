package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]any) *excelize.File {
	t.Helper()

	workbook := excelize.NewFile()
	sheet := workbook.GetSheetName(0)

	require.NoError(t, workbook.SetCellValue(sheet, "B1", "Cedentes"))
	require.NoError(t, workbook.SetCellValue(sheet, "B2", "Nome"))
	require.NoError(t, workbook.SetCellValue(sheet, "C2", "CPF/CNPJ"))

	for i, row := range rows {
		cells := []string{"B", "C", "D", "E"}
		for j, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.JoinCellName(cells[j], i+3)
			require.NoError(t, err)
			require.NoError(t, workbook.SetCellValue(sheet, cell, value))
		}
	}
	return workbook
}

func TestImportSpreadsheet(t *testing.T) {
	env := newTestEnv(t)
	svc := NewImportService(env.cedentes)

	workbook := buildWorkbook(t, [][]any{
		{"Alpha SA", "111.444.777-35", "signed", "2026-06-30"},
		{"Beta ME", "11222333000181", nil, nil},
		{nil, "52998224725", "signed", nil}, // missing name
	})

	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)

	result, err := svc.ImportSpreadsheet(buf)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Errors)
	assert.Contains(t, result.Message, "2 cedentes imported")

	cedentes, err := env.cedentes.FindAll()
	require.NoError(t, err)
	require.Len(t, cedentes, 2)

	assert.Equal(t, "Alpha SA", cedentes[0].Name)
	assert.Equal(t, "11144477735", cedentes[0].TaxID, "tax id stored digits-only")
	assert.Equal(t, "2026-06-30", cedentes[0].ContractExpiry)

	// Blank status falls back to pending; blank expiry stays empty.
	assert.Equal(t, "pending", cedentes[1].ContractStatus)
	assert.Empty(t, cedentes[1].ContractExpiry)
}

func TestImportSpreadsheet_SerialDates(t *testing.T) {
	env := newTestEnv(t)
	svc := NewImportService(env.cedentes)

	// 45000 days past the 1899-12-30 epoch is 2023-03-15.
	workbook := buildWorkbook(t, [][]any{
		{"Alpha SA", "11144477735", "signed", "45000"},
	})

	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)

	result, err := svc.ImportSpreadsheet(buf)
	require.NoError(t, err)
	require.Equal(t, 1, result.Imported)

	cedentes, err := env.cedentes.FindAll()
	require.NoError(t, err)
	require.Len(t, cedentes, 1)
	assert.Equal(t, "2023-03-15", cedentes[0].ContractExpiry)
}

func TestImportSpreadsheet_DuplicateTaxID(t *testing.T) {
	env := newTestEnv(t)
	svc := NewImportService(env.cedentes)

	env.seedCedente(t, "Existing SA", "11144477735", "")

	workbook := buildWorkbook(t, [][]any{
		{"Alpha Clone", "11144477735", "signed", nil},
	})

	buf, err := workbook.WriteToBuffer()
	require.NoError(t, err)

	result, err := svc.ImportSpreadsheet(buf)
	require.NoError(t, err)

	assert.Zero(t, result.Imported)
	assert.Equal(t, 1, result.Errors)
}

func TestImportSpreadsheet_NotASpreadsheet(t *testing.T) {
	env := newTestEnv(t)
	svc := NewImportService(env.cedentes)

	_, err := svc.ImportSpreadsheet(strings.NewReader("definitely not an xlsx file"))
	assert.Error(t, err)
}
