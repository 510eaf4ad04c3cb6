package validators

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	specialRegex  = regexp.MustCompile(`[\\^$*.\[\]{}()?"!@#%&/\\,><':;|_~` + "`" + `=+\-]`)
	nonDigitRegex = regexp.MustCompile(`[^0-9]`)
)

func HasUpper(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	for _, ch := range val {
		if unicode.IsUpper(ch) {
			return true
		}
	}
	return false
}

func HasLower(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	for _, ch := range val {
		if unicode.IsLower(ch) {
			return true
		}
	}
	return false
}

func HasDigit(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	for _, ch := range val {
		if unicode.IsDigit(ch) {
			return true
		}
	}
	return false
}

func HasSpecial(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return specialRegex.MatchString(val)
}

// CPFCNPJ validates the field as a CPF (11 digits) or CNPJ (14 digits)
// with correct check digits. Punctuation is stripped before checking.
func CPFCNPJ(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return ValidCPFCNPJ(val)
}

// ValidCPFCNPJ reports whether the document is a well-formed CPF or
// CNPJ, dispatching on the digit count.
func ValidCPFCNPJ(document string) bool {
	digits := nonDigitRegex.ReplaceAllString(document, "")
	switch len(digits) {
	case 11:
		return validCPF(digits)
	case 14:
		return validCNPJ(digits)
	default:
		return false
	}
}

// StripTaxID removes everything but digits from a CPF/CNPJ, the form
// the store keeps.
func StripTaxID(document string) string {
	return nonDigitRegex.ReplaceAllString(document, "")
}

func validCPF(cpf string) bool {
	if allSameDigit(cpf) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	digit1 := (sum * 10 % 11) % 10

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	digit2 := (sum * 10 % 11) % 10

	return int(cpf[9]-'0') == digit1 && int(cpf[10]-'0') == digit2
}

func validCNPJ(cnpj string) bool {
	if allSameDigit(cnpj) {
		return false
	}

	return int(cnpj[12]-'0') == cnpjCheckDigit(cnpj[:12]) &&
		int(cnpj[13]-'0') == cnpjCheckDigit(cnpj[:13])
}

// cnpjCheckDigit computes the modulus-11 check digit over the given
// prefix, with weights cycling 9..2 from the rightmost position.
func cnpjCheckDigit(prefix string) int {
	sum := 0
	weight := len(prefix) - 7
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * weight
		weight--
		if weight < 2 {
			weight = 9
		}
	}

	result := 11 - sum%11
	if result > 9 {
		return 0
	}
	return result
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
