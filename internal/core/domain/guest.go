package domain

// DocumentType identifies the kind of identity document a guest registered with.
type DocumentType string

const (
	DocumentDNI       DocumentType = "DNI"
	DocumentPassport  DocumentType = "PASSPORT"
	DocumentForeignID DocumentType = "FOREIGN_ID"
	DocumentRUC       DocumentType = "RUC"
	DocumentOther     DocumentType = "OTHER"
)

// MaritalStatus is the guest's declared marital status.
type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "SINGLE"
	MaritalMarried  MaritalStatus = "MARRIED"
	MaritalDivorced MaritalStatus = "DIVORCED"
	MaritalWidowed  MaritalStatus = "WIDOWED"
	MaritalPartner  MaritalStatus = "COHABITING"
)

// GuestProfile is the canonical person record, keyed by normalized document number.
// Guests created by the legacy import are never deleted by the reconcile path; only
// their dependent reservations and payments are.
type GuestProfile struct {
	GuestID        string        `json:"guestID"` // Primary Key (UUID)
	DocumentType   DocumentType  `json:"documentType"`
	DocumentNumber string        `json:"documentNumber"` // Unique across all guests
	FullName       string        `json:"fullName"`
	Address        string        `json:"address,omitempty"`
	Phone          string        `json:"phone"`
	MaritalStatus  MaritalStatus `json:"maritalStatus,omitempty"`
	Country        string        `json:"country,omitempty"`
	Department     string        `json:"department,omitempty"` // Peruvian first-level region, when detected
	IsBlacklisted  bool          `json:"isBlacklisted"`
	AuditFields
}
