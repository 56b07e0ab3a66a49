package domain

import "time"

// AuditFields holds standard audit information embedded in every persisted entity.
// The legacy import back-dates CreatedAt to the inferred check-in so imported
// guests sort plausibly in history views.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // StaffUser reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
