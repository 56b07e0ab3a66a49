package normalize

import (
	"strings"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
)

// Nationality resolves a raw nationality cell to a canonical country name.
// Resolution cascade, first hit wins:
//  1. direct alias dictionary (demonyms, capitals, major cities)
//  2. split on hyphens/en-dashes and retry each part
//  3. split on whitespace and retry the last non-trivial token
//  4. plain country-name dictionary
//  5. hand-coded abbreviation table
//
// When nothing matches, the raw value is title-cased and returned as-is with
// normalized=false so the caller can report it for data-quality follow-up; it
// is never rejected. Empty input falls back to the country implied by the
// document type (DNI holders are domestic).
func Nationality(raw string, docType domain.DocumentType) (country string, normalized bool) {
	if IsPlaceholder(raw) {
		if docType == domain.DocumentDNI || docType == domain.DocumentRUC {
			return "Perú", true
		}
		return "", true
	}

	key := foldToken(raw)
	if v, ok := lookupNationality(key); ok {
		return v, true
	}

	// Compound cells like "italo-peruano" or "peruano – frances": any part that
	// resolves wins, first part preferred.
	for _, sep := range []string{"-", "–", "—", "/"} {
		if strings.Contains(key, sep) {
			for _, part := range strings.Split(key, sep) {
				if v, ok := lookupNationality(strings.TrimSpace(part)); ok {
					return v, true
				}
			}
		}
	}

	// "natural de arequipa", "ciudad de mexico": retry the last token long
	// enough to carry meaning.
	words := strings.Fields(key)
	for i := len(words) - 1; i >= 0; i-- {
		if len(words[i]) <= 2 {
			continue
		}
		if v, ok := lookupNationality(words[i]); ok {
			return v, true
		}
		break
	}

	if v, ok := countryNames[key]; ok {
		return v, true
	}
	if v, ok := countryAbbreviations[key]; ok {
		return v, true
	}

	return titleCase(raw), false
}

func lookupNationality(key string) (string, bool) {
	if v, ok := nationalityAliases[key]; ok {
		return v, true
	}
	if v, ok := countryAbbreviations[key]; ok {
		return v, true
	}
	return "", false
}

// PeruvianDepartment runs the same multi-token decomposition against the
// gazetteer of first-level administrative regions and their major cities. It
// reports whether the raw value actually names a domestic region, which the
// legacy books frequently wrote in the nationality column.
func PeruvianDepartment(raw string) (string, bool) {
	if IsPlaceholder(raw) {
		return "", false
	}
	key := foldToken(raw)
	if v, ok := peruvianDepartments[key]; ok {
		return v, true
	}
	for _, sep := range []string{"-", "–", "—", "/"} {
		if strings.Contains(key, sep) {
			for _, part := range strings.Split(key, sep) {
				if v, ok := peruvianDepartments[strings.TrimSpace(part)]; ok {
					return v, true
				}
			}
		}
	}
	for _, word := range strings.Fields(key) {
		if len(word) <= 2 {
			continue
		}
		if v, ok := peruvianDepartments[word]; ok {
			return v, true
		}
	}
	return "", false
}

// foldToken lower-cases, strips accents and collapses whitespace for gazetteer
// lookups.
func foldToken(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(stripAccents(s))), " ")
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
