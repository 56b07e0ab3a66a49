package services

import (
	"context"

	"github.com/hostalqori/hotel_management_app/internal/dto"
)

// StayImportSvc drives the creation path of the legacy import.
type StayImportSvc interface {
	// ImportStays ingests up to the configured row cap, creating one
	// guest/reservation/payment graph per row inside its own transaction.
	// Row failures are recorded and never abort the batch; batch-fatal
	// conditions (row cap, empty input, no rooms/staff) return an error
	// before any row is processed.
	ImportStays(ctx context.Context, rows []dto.RowRecord, batchNumber, totalBatches int) (*dto.BatchResult, error)
}

// StayReconcileSvc drives the mirrored undo path and its read-only analysis.
type StayReconcileSvc interface {
	// DeleteImportedStays relocates the entities a prior import created from
	// the same rows and removes them, preserving guest master records.
	DeleteImportedStays(ctx context.Context, rows []dto.RowRecord) (*dto.DeletionResult, error)

	// AnalyzeImportedStays performs the same resolution without deleting,
	// splitting rows into imported and missing.
	AnalyzeImportedStays(ctx context.Context, rows []dto.RowRecord) (*dto.AnalysisResult, error)
}

// ImportSvcFacade combines the import-engine service interfaces.
type ImportSvcFacade interface {
	StayImportSvc
	StayReconcileSvc
}
