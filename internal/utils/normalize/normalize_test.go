package normalize

import (
	"strings"
	"testing"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDocumentType(t *testing.T) {
	cases := map[string]domain.DocumentType{
		"dni":                   domain.DocumentDNI,
		"D.N.I.":                domain.DocumentDNI,
		"Pasaporte":             domain.DocumentPassport,
		"carnet de extranjeria": domain.DocumentForeignID,
		"CE":                    domain.DocumentForeignID,
		"RUC":                   domain.DocumentRUC,
		"":                      domain.DocumentDNI,
		"garbage value":         domain.DocumentDNI,
	}
	for raw, want := range cases {
		assert.Equal(t, want, DocumentType(raw), "raw=%q", raw)
	}
}

func TestDocumentTypeIdempotent(t *testing.T) {
	for _, raw := range []string{"dni", "pasaporte", "", "c.e.", "whatever"} {
		once := DocumentType(raw)
		assert.Equal(t, once, DocumentType(string(once)), "raw=%q", raw)
	}
}

func TestDocumentNumberPadding(t *testing.T) {
	got, synthetic := DocumentNumber("1234567", domain.DocumentDNI)
	assert.False(t, synthetic)
	assert.Equal(t, "01234567", got)

	got, _ = DocumentNumber("123456", domain.DocumentDNI)
	assert.Equal(t, "00123456", got)

	// Full-width DNI is untouched, non-digits are stripped.
	got, _ = DocumentNumber("12.345.678", domain.DocumentDNI)
	assert.Equal(t, "12345678", got)

	// Passports are not padded.
	got, _ = DocumentNumber("1234567", domain.DocumentPassport)
	assert.Equal(t, "1234567", got)
}

func TestDocumentNumberSynthetic(t *testing.T) {
	got, synthetic := DocumentNumber("", domain.DocumentDNI)
	assert.True(t, synthetic)
	assert.True(t, strings.HasPrefix(got, SyntheticDocPrefix))
	assert.Len(t, got, len(SyntheticDocPrefix)+8)

	got2, synthetic2 := DocumentNumber("-", domain.DocumentDNI)
	assert.True(t, synthetic2)
	assert.True(t, strings.HasPrefix(got2, SyntheticDocPrefix))

	// Feeding a synthetic value back in keeps it stable.
	again, synthetic3 := DocumentNumber(got, domain.DocumentDNI)
	assert.True(t, synthetic3)
	assert.Equal(t, got, again)
}

func TestDocumentVariants(t *testing.T) {
	variants := DocumentVariants("00123456")
	assert.Contains(t, variants, "00123456")
	assert.Contains(t, variants, "123456")

	variants = DocumentVariants("12-345-678")
	assert.Contains(t, variants, "12345678")

	variants = DocumentVariants("123456")
	assert.Contains(t, variants, "00123456")
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "+51987654321", Phone("987654321"))
	assert.Equal(t, "+51987654321", Phone("987 654 321"))
	assert.Equal(t, "", Phone("-"))
	assert.Equal(t, "", Phone(""))
	// Idempotent on its own output.
	assert.Equal(t, "+51987654321", Phone("+51987654321"))
}

func TestMaritalStatusOf(t *testing.T) {
	assert.Equal(t, domain.MaritalSingle, MaritalStatusOf("soltera"))
	assert.Equal(t, domain.MaritalMarried, MaritalStatusOf("CASADO"))
	assert.Equal(t, domain.MaritalPartner, MaritalStatusOf("conviviente"))
	assert.Equal(t, domain.MaritalSingle, MaritalStatusOf(""))
	assert.Equal(t, domain.MaritalWidowed, MaritalStatusOf(string(domain.MaritalWidowed)))
}

func TestPaymentMethodOf(t *testing.T) {
	assert.Equal(t, domain.MethodCash, PaymentMethodOf("efectivo"))
	assert.Equal(t, domain.MethodCard, PaymentMethodOf("VISA"))
	assert.Equal(t, domain.MethodTransfer, PaymentMethodOf("depósito"))
	assert.Equal(t, domain.MethodCash, PaymentMethodOf(""))
}

func TestReceiptTypeOf(t *testing.T) {
	assert.Equal(t, domain.ReceiptBoleta, ReceiptTypeOf("Boleta"))
	assert.Equal(t, domain.ReceiptFactura, ReceiptTypeOf("FAC"))
	assert.Equal(t, domain.ReceiptNone, ReceiptTypeOf(""))
	assert.Equal(t, domain.ReceiptNone, ReceiptTypeOf("-"))
}

func TestBlacklisted(t *testing.T) {
	assert.True(t, Blacklisted("SI"))
	assert.True(t, Blacklisted("x"))
	assert.False(t, Blacklisted(""))
	assert.False(t, Blacklisted("no"))
}
