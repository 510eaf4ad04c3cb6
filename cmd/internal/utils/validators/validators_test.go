package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCPFCNPJ_CPF(t *testing.T) {
	assert.True(t, ValidCPFCNPJ("11144477735"))
	assert.True(t, ValidCPFCNPJ("111.444.777-35"), "punctuation should be stripped")

	assert.False(t, ValidCPFCNPJ("11144477734"), "wrong check digit")
	assert.False(t, ValidCPFCNPJ("11111111111"), "repeated digits are never valid")
	assert.False(t, ValidCPFCNPJ("00000000000"))
}

func TestValidCPFCNPJ_CNPJ(t *testing.T) {
	assert.True(t, ValidCPFCNPJ("11222333000181"))
	assert.True(t, ValidCPFCNPJ("11.222.333/0001-81"))

	assert.False(t, ValidCPFCNPJ("11222333000182"), "wrong check digit")
	assert.False(t, ValidCPFCNPJ("11111111111111"), "repeated digits are never valid")
}

func TestValidCPFCNPJ_BadLengths(t *testing.T) {
	assert.False(t, ValidCPFCNPJ(""))
	assert.False(t, ValidCPFCNPJ("123"))
	assert.False(t, ValidCPFCNPJ("123456789012"), "12 digits is neither CPF nor CNPJ")
	assert.False(t, ValidCPFCNPJ("not a document"))
}

func TestStripTaxID(t *testing.T) {
	assert.Equal(t, "11222333000181", StripTaxID("11.222.333/0001-81"))
	assert.Equal(t, "11144477735", StripTaxID("111.444.777-35"))
	assert.Equal(t, "", StripTaxID("abc"))
}
