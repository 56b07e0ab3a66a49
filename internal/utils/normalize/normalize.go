// Package normalize maps raw free-text cells from legacy hotel spreadsheets to
// canonical domain values. All functions are pure lookups over immutable alias
// tables and are idempotent: feeding a normalized value back in returns it
// unchanged.
package normalize

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	"github.com/ttacon/libphonenumber"
)

// SyntheticDocPrefix marks placeholder document numbers generated for rows with
// no usable identity document. Callers must verify uniqueness before persisting.
const SyntheticDocPrefix = "TEMP-"

// dniWidth is the fixed width of a Peruvian DNI.
const dniWidth = 8

var placeholders = map[string]struct{}{
	"": {}, "-": {}, "--": {}, ".": {}, "n/a": {}, "na": {}, "ninguno": {},
	"no tiene": {}, "sin documento": {}, "s/d": {}, "x": {}, "xx": {}, "xxx": {},
}

// IsPlaceholder reports whether a raw cell carries no usable data.
func IsPlaceholder(raw string) bool {
	_, ok := placeholders[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

var documentTypeAliases = map[string]domain.DocumentType{
	"dni":              domain.DocumentDNI,
	"d.n.i":            domain.DocumentDNI,
	"d.n.i.":           domain.DocumentDNI,
	"doc":              domain.DocumentDNI,
	"documento":        domain.DocumentDNI,
	"libreta electoral": domain.DocumentDNI,
	"le":               domain.DocumentDNI,
	"pasaporte":        domain.DocumentPassport,
	"passport":         domain.DocumentPassport,
	"pas":              domain.DocumentPassport,
	"psp":              domain.DocumentPassport,
	"carnet de extranjeria": domain.DocumentForeignID,
	"carnet extranjeria":    domain.DocumentForeignID,
	"c.e":                   domain.DocumentForeignID,
	"c.e.":                  domain.DocumentForeignID,
	"ce":                    domain.DocumentForeignID,
	"cedula":                domain.DocumentForeignID,
	"ruc":                   domain.DocumentRUC,
	"r.u.c":                 domain.DocumentRUC,
	"r.u.c.":                domain.DocumentRUC,
	"otro":                  domain.DocumentOther,
	"other":                 domain.DocumentOther,
}

// DocumentType resolves a raw document-type cell to the canonical enum.
// Unknown or empty input defaults to DNI, by far the most common type in the
// legacy books.
func DocumentType(raw string) domain.DocumentType {
	key := strings.ToLower(strings.TrimSpace(raw))
	if v, ok := documentTypeAliases[key]; ok {
		return v
	}
	// A normalized value fed back in maps to itself.
	switch domain.DocumentType(strings.ToUpper(key)) {
	case domain.DocumentDNI, domain.DocumentPassport, domain.DocumentForeignID,
		domain.DocumentRUC, domain.DocumentOther:
		return domain.DocumentType(strings.ToUpper(key))
	}
	return domain.DocumentDNI
}

// DocumentNumber strips everything but digits from a raw document cell. DNI
// numbers of 6 or 7 digits are zero-padded to 8 (old books dropped leading
// zeros). Empty input yields a synthetic placeholder identifier; the second
// return value reports that case so callers can run the uniqueness check.
func DocumentNumber(raw string, docType domain.DocumentType) (string, bool) {
	if strings.HasPrefix(raw, SyntheticDocPrefix) {
		return raw, true
	}
	digits := keepDigits(raw)
	if digits == "" || IsPlaceholder(raw) {
		return SyntheticDoc(), true
	}
	if docType == domain.DocumentDNI && len(digits) >= 6 && len(digits) < dniWidth {
		digits = strings.Repeat("0", dniWidth-len(digits)) + digits
	}
	return digits, false
}

// SyntheticDoc builds a random placeholder document number.
func SyntheticDoc() string {
	return fmt.Sprintf("%s%08d", SyntheticDocPrefix, rand.Intn(100000000))
}

// SyntheticDocFromTime is the last-resort placeholder when random ones keep
// colliding; derived from the clock so it is unique under serial imports.
func SyntheticDocFromTime(now time.Time) string {
	return fmt.Sprintf("%s%08d", SyntheticDocPrefix, now.UnixNano()%100000000)
}

// DocumentVariants returns the document-number spellings the legacy books are
// known to contain for the same person: as-is, zero-padded to DNI width,
// leading zeros stripped, and digits regrouped without separators.
func DocumentVariants(doc string) []string {
	digits := keepDigits(doc)
	seen := map[string]struct{}{}
	variants := make([]string, 0, 4)
	add := func(v string) {
		if v == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}
	add(doc)
	add(digits)
	if len(digits) > 0 && len(digits) < dniWidth {
		add(strings.Repeat("0", dniWidth-len(digits)) + digits)
	}
	add(strings.TrimLeft(digits, "0"))
	return variants
}

const peruRegion = "PE"

// Phone normalizes a raw phone cell to E.164 when libphonenumber can parse it
// under the domestic region. Nine-digit strings are assumed to be Peruvian
// mobiles. Anything unparsable falls back to its bare digits.
func Phone(raw string) string {
	if IsPlaceholder(raw) {
		return ""
	}
	if strings.HasPrefix(raw, "+") {
		if p, err := libphonenumber.Parse(raw, ""); err == nil && libphonenumber.IsValidNumber(p) {
			return libphonenumber.Format(p, libphonenumber.E164)
		}
	}
	digits := keepDigits(raw)
	if digits == "" {
		return ""
	}
	p, err := libphonenumber.Parse(digits, peruRegion)
	if err == nil && libphonenumber.IsValidNumber(p) {
		return libphonenumber.Format(p, libphonenumber.E164)
	}
	if len(digits) == 9 {
		return "+51" + digits
	}
	return digits
}

var maritalAliases = map[string]domain.MaritalStatus{
	"soltero": domain.MaritalSingle, "soltera": domain.MaritalSingle, "sol": domain.MaritalSingle,
	"s": domain.MaritalSingle, "single": domain.MaritalSingle,
	"casado": domain.MaritalMarried, "casada": domain.MaritalMarried, "cas": domain.MaritalMarried,
	"c": domain.MaritalMarried, "married": domain.MaritalMarried,
	"divorciado": domain.MaritalDivorced, "divorciada": domain.MaritalDivorced, "div": domain.MaritalDivorced,
	"viudo": domain.MaritalWidowed, "viuda": domain.MaritalWidowed,
	"conviviente": domain.MaritalPartner, "convivientes": domain.MaritalPartner,
}

// MaritalStatusOf maps a raw marital-status cell; absent data defaults to single.
func MaritalStatusOf(raw string) domain.MaritalStatus {
	key := strings.ToLower(strings.TrimSpace(raw))
	if v, ok := maritalAliases[key]; ok {
		return v
	}
	switch domain.MaritalStatus(strings.ToUpper(key)) {
	case domain.MaritalSingle, domain.MaritalMarried, domain.MaritalDivorced,
		domain.MaritalWidowed, domain.MaritalPartner:
		return domain.MaritalStatus(strings.ToUpper(key))
	}
	return domain.MaritalSingle
}

var methodAliases = map[string]domain.PaymentMethod{
	"efectivo": domain.MethodCash, "cash": domain.MethodCash, "contado": domain.MethodCash,
	"tarjeta": domain.MethodCard, "visa": domain.MethodCard, "mastercard": domain.MethodCard,
	"pos": domain.MethodCard, "card": domain.MethodCard,
	"transferencia": domain.MethodTransfer, "deposito": domain.MethodTransfer,
	"depósito": domain.MethodTransfer, "bcp": domain.MethodTransfer,
	"yape": domain.MethodWallet, "plin": domain.MethodWallet,
}

// PaymentMethodOf maps a raw payment-method cell; absent data defaults to cash,
// which is how nearly every legacy stay was settled.
func PaymentMethodOf(raw string) domain.PaymentMethod {
	key := strings.ToLower(strings.TrimSpace(raw))
	if v, ok := methodAliases[key]; ok {
		return v
	}
	switch domain.PaymentMethod(strings.ToUpper(key)) {
	case domain.MethodCash, domain.MethodCard, domain.MethodTransfer, domain.MethodWallet:
		return domain.PaymentMethod(strings.ToUpper(key))
	}
	return domain.MethodCash
}

var receiptAliases = map[string]domain.ReceiptType{
	"boleta": domain.ReceiptBoleta, "bol": domain.ReceiptBoleta, "b": domain.ReceiptBoleta,
	"boleta de venta": domain.ReceiptBoleta,
	"factura":         domain.ReceiptFactura, "fac": domain.ReceiptFactura, "f": domain.ReceiptFactura,
	"ticket": domain.ReceiptTicket, "tkt": domain.ReceiptTicket,
}

// ReceiptTypeOf maps a raw receipt cell; absent or unknown data means no fiscal
// document was recorded for the stay.
func ReceiptTypeOf(raw string) domain.ReceiptType {
	key := strings.ToLower(strings.TrimSpace(raw))
	if v, ok := receiptAliases[key]; ok {
		return v
	}
	switch domain.ReceiptType(strings.ToUpper(key)) {
	case domain.ReceiptBoleta, domain.ReceiptFactura, domain.ReceiptTicket:
		return domain.ReceiptType(strings.ToUpper(key))
	}
	return domain.ReceiptNone
}

var truthyMarks = map[string]struct{}{
	"si": {}, "sí": {}, "s": {}, "x": {}, "yes": {}, "y": {}, "true": {}, "1": {},
	"bloqueado": {}, "blacklist": {}, "no deseado": {},
}

// Blacklisted interprets the legacy blacklist column, where any affirmative mark
// means the guest was flagged. Absent data defaults to false.
func Blacklisted(raw string) bool {
	_, ok := truthyMarks[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
