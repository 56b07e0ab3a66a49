package dto

import "time"

// RowRecord is one spreadsheet row as produced by the tabular source reader:
// column label → raw cell text. Ephemeral, consumed once.
type RowRecord map[string]string

// Well-known column labels of the legacy registry. The spreadsheet adapter
// passes headers through verbatim; the engine only interprets these.
const (
	ColFullName       = "NOMBRE"
	ColDocumentType   = "TIPO DOCUMENTO"
	ColDocumentNumber = "DOCUMENTO"
	ColNationality    = "NACIONALIDAD"
	ColAddress        = "DIRECCION"
	ColPhone          = "TELEFONO"
	ColMaritalStatus  = "ESTADO CIVIL"
	ColRoomNumber     = "HABITACION"
	ColRoomType       = "TIPO HABITACION"
	ColCheckIn        = "FECHA INGRESO"
	ColCheckOut       = "FECHA SALIDA"
	ColDayCount       = "DIAS"
	ColTotalPrice     = "TOTAL"
	ColPaymentMethod  = "FORMA PAGO"
	ColReceiptType    = "COMPROBANTE"
	ColStaffName      = "RECEPCIONISTA"
	ColBlacklisted    = "NO DESEADO"
)

// ImportStaysRequest is the JSON body of the import endpoint. Spreadsheet
// uploads arrive as multipart instead and are converted to the same rows.
type ImportStaysRequest struct {
	Rows        []RowRecord `json:"rows" binding:"required,min=1"`
	BatchNumber int         `json:"batchNumber"`
	TotalBatches int        `json:"totalBatches"`
}

// RowError is one machine-readable row failure.
type RowError struct {
	RowIndex int               `json:"rowIndex"`
	Category ErrorCategory     `json:"category"`
	Message  string            `json:"message"`
	Data     map[string]string `json:"data,omitempty"`
}

// ErrorCategory labels a row-level failure for the batch report.
type ErrorCategory string

const (
	ErrCategoryIdentity   ErrorCategory = "insufficient_identity"
	ErrCategoryDuplicate  ErrorCategory = "duplicate"
	ErrCategoryRoom       ErrorCategory = "room_not_found"
	ErrCategoryStaff      ErrorCategory = "staff_not_found"
	ErrCategoryDateParse  ErrorCategory = "date_parse"
	ErrCategoryPriceParse ErrorCategory = "price_parse"
	ErrCategoryOther      ErrorCategory = "other"
)

// SubBatchResult is the timing record of one sequential sub-batch.
type SubBatchResult struct {
	Index      int           `json:"index"`
	Rows       int           `json:"rows"`
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Skipped    int           `json:"skipped"`
	Elapsed    time.Duration `json:"elapsedNs"`
}

// BatchResult aggregates one import call. Transient, never persisted.
type BatchResult struct {
	Success                   bool             `json:"success"`
	Processed                 int              `json:"processed"`
	Successful                int              `json:"successful"`
	Failed                    int              `json:"failed"`
	Skipped                   int              `json:"skipped"`
	Errors                    []RowError       `json:"errors"`
	InternalBatches           []SubBatchResult `json:"internalBatches"`
	UnnormalizedNationalities []string         `json:"unnormalizedNationalities"`
	Summary                   string           `json:"summary"`
}

// DeletionResult aggregates one reconcile-deletion call.
type DeletionResult struct {
	Processed     int            `json:"processed"`
	Deleted       int            `json:"deleted"`
	NotFound      int            `json:"notFound"`
	Errors        []RowError     `json:"errors"`
	DeletedCounts DeletionCounts `json:"deletedCounts"`
}

// DeletionCounts breaks down what the reconcile path removed. Guests are never
// deleted and so have no counter here.
type DeletionCounts struct {
	Reservations int64 `json:"reservations"`
	Payments     int64 `json:"payments"`
	LineItems    int64 `json:"lineItems"`
	AuditEntries int64 `json:"auditEntries"`
}

// AnalysisResult partitions rows by whether a prior import created them,
// without touching anything. External report rendering consumes it.
type AnalysisResult struct {
	Imported []RowRecord `json:"imported"`
	Missing  []RowRecord `json:"missing"`
}
