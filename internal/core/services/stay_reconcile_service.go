package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hostalqori/hotel_management_app/internal/apperrors"
	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hostalqori/hotel_management_app/internal/core/ports/repositories"
	"github.com/hostalqori/hotel_management_app/internal/dto"
	"github.com/hostalqori/hotel_management_app/internal/utils/normalize"
	"github.com/hostalqori/hotel_management_app/internal/utils/staydates"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// checkInMatchWindow scopes reservation matching to check-ins within one day
// of the row's inferred check-in, so re-submitting a source file never touches
// manually-created stays.
const checkInMatchWindow = 24 * time.Hour

// docFragmentLen is how many leading digits of a document number the fuzzy
// candidate query shares.
const docFragmentLen = 4

// DeleteImportedStays relocates the entities a prior import created from the
// same rows and removes them. Guest master records are never deleted; an
// unresolvable row is reported as not found, not as an error.
func (s *importServiceImpl) DeleteImportedStays(ctx context.Context, rows []dto.RowRecord) (*dto.DeletionResult, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrEmptyBatch)
	}
	if len(rows) > s.cfg.MaxRows {
		return nil, fmt.Errorf("%w: %d rows, cap is %d: %w", apperrors.ErrValidation, len(rows), s.cfg.MaxRows, ErrTooManyRows)
	}

	nightlyPrices, err := s.activeNightlyPrices(ctx)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Starting stay deletion", slog.Int("rows", len(rows)))

	result := &dto.DeletionResult{Errors: []dto.RowError{}}
	for i, row := range rows {
		result.Processed++
		match, err := s.resolveImportedStay(ctx, row, nightlyPrices)
		if err != nil {
			s.LogError(ctx, err, "Row deletion failed", slog.Int("row_index", i))
			result.Errors = append(result.Errors, *classifyRowError(i, row, err))
			continue
		}
		if match == nil {
			result.NotFound++
			continue
		}

		counts, err := s.deleteMatch(ctx, match)
		if err != nil {
			s.LogError(ctx, err, "Row deletion failed", slog.Int("row_index", i))
			result.Errors = append(result.Errors, *classifyRowError(i, row, err))
			continue
		}
		result.Deleted++
		result.DeletedCounts.Reservations += counts.Reservations
		result.DeletedCounts.Payments += counts.Payments
		result.DeletedCounts.LineItems += counts.LineItems
		result.DeletedCounts.AuditEntries += counts.AuditEntries
	}

	s.LogInfo(ctx, "Stay deletion finished",
		slog.Int("processed", result.Processed),
		slog.Int("deleted", result.Deleted),
		slog.Int("not_found", result.NotFound),
		slog.Int64("reservations", result.DeletedCounts.Reservations))
	return result, nil
}

// AnalyzeImportedStays runs the same resolution without deleting anything,
// partitioning rows into those a prior import created and those missing.
func (s *importServiceImpl) AnalyzeImportedStays(ctx context.Context, rows []dto.RowRecord) (*dto.AnalysisResult, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrEmptyBatch)
	}
	if len(rows) > s.cfg.MaxRows {
		return nil, fmt.Errorf("%w: %d rows, cap is %d: %w", apperrors.ErrValidation, len(rows), s.cfg.MaxRows, ErrTooManyRows)
	}

	nightlyPrices, err := s.activeNightlyPrices(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.AnalysisResult{Imported: []dto.RowRecord{}, Missing: []dto.RowRecord{}}
	for _, row := range rows {
		match, err := s.resolveImportedStay(ctx, row, nightlyPrices)
		if err != nil || match == nil {
			result.Missing = append(result.Missing, row)
			continue
		}
		result.Imported = append(result.Imported, row)
	}
	return result, nil
}

// stayMatch is the resolved target of one deletion row.
type stayMatch struct {
	guest        *domain.GuestProfile
	reservations []domain.Reservation
}

// resolveImportedStay finds the guest and reservations a prior import created
// for one row. A nil match with nil error means the row is simply not there.
func (s *importServiceImpl) resolveImportedStay(ctx context.Context, row dto.RowRecord, nightlyPrices []decimal.Decimal) (*stayMatch, error) {
	guest, err := s.resolveGuest(ctx, row)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, nil
	}

	recordedTotal, _ := parseRecordedTotal(row[dto.ColTotalPrice])
	period, err := staydates.Infer(staydates.Input{
		RawDayCount:   row[dto.ColDayCount],
		RawCheckIn:    row[dto.ColCheckIn],
		RawCheckOut:   row[dto.ColCheckOut],
		RecordedTotal: recordedTotal,
		NightlyPrices: nightlyPrices,
	}, staydates.Options{
		MaxSpanDays:        s.cfg.MaxStaySpanDays,
		MaxEstimatedNights: s.cfg.MaxEstimatedNights,
	})
	if err != nil {
		return nil, err
	}

	from := period.CheckIn.Add(-checkInMatchWindow)
	to := period.CheckIn.Add(checkInMatchWindow)
	candidates, err := s.repos.Reservations().FindReservationsByGuest(ctx, guest.GuestID, from, to)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Reservation, 0, len(candidates))
	for _, r := range candidates {
		if r.Origin == domain.OriginImported && r.Status == domain.StatusCheckedOut {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return nil, nil
	}
	return &stayMatch{guest: guest, reservations: matched}, nil
}

// resolveGuest runs the identity cascade: exact normalized document, known
// document-number variants, then fuzzy name matching among candidates sharing
// a partial document or name fragment.
func (s *importServiceImpl) resolveGuest(ctx context.Context, row dto.RowRecord) (*domain.GuestProfile, error) {
	docType := normalize.DocumentType(row[dto.ColDocumentType])
	docNumber, synthetic := normalize.DocumentNumber(row[dto.ColDocumentNumber], docType)
	fullName := strings.TrimSpace(row[dto.ColFullName])

	if !synthetic {
		guest, err := s.repos.Guests().FindGuestByDocument(ctx, docNumber)
		if err == nil {
			return guest, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		for _, variant := range normalize.DocumentVariants(docNumber) {
			if variant == docNumber {
				continue
			}
			guest, err := s.repos.Guests().FindGuestByDocument(ctx, variant)
			if err == nil {
				return guest, nil
			}
			if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
		}
	}

	return s.resolveGuestByName(ctx, docNumber, synthetic, fullName)
}

func (s *importServiceImpl) resolveGuestByName(ctx context.Context, docNumber string, synthetic bool, fullName string) (*domain.GuestProfile, error) {
	folded := normalize.FoldName(fullName)
	if folded == "" {
		return nil, nil
	}

	docFragment := ""
	if !synthetic && len(docNumber) >= docFragmentLen {
		docFragment = docNumber[:docFragmentLen]
	}
	nameFragment := strings.Fields(folded)[0]

	candidates, err := s.repos.Guests().FindGuestCandidates(ctx, docFragment, nameFragment)
	if err != nil {
		return nil, err
	}

	var best *domain.GuestProfile
	bestScore := 0.0
	for i, c := range candidates {
		score := normalize.Similarity(folded, normalize.FoldName(c.FullName))
		if score > bestScore {
			best = &candidates[i]
			bestScore = score
		}
	}
	if best == nil || bestScore < normalize.NameMatchThreshold {
		return nil, nil
	}
	return best, nil
}

// deleteMatch removes one row's reservations with their payments, line items
// and creation audit entries inside a single transaction, recording deletion
// audit entries. The guest profile survives.
func (s *importServiceImpl) deleteMatch(ctx context.Context, match *stayMatch) (*dto.DeletionCounts, error) {
	counts := &dto.DeletionCounts{}
	ids := make([]string, 0, len(match.reservations))
	for _, r := range match.reservations {
		ids = append(ids, r.ReservationID)
	}

	err := s.repos.WithinTransaction(ctx, s.cfg.TxTimeout, func(txCtx context.Context, repos portsrepo.Provider) error {
		payments, lineItems, err := repos.Payments().DeletePaymentsByReservations(txCtx, ids)
		if err != nil {
			return err
		}
		auditEntries, err := repos.Audit().DeleteAuditEntries(txCtx, ids, entityTypeReservation)
		if err != nil {
			return err
		}
		reservations, err := repos.Reservations().DeleteReservations(txCtx, ids)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, r := range match.reservations {
			err := repos.Audit().SaveAuditEntry(txCtx, domain.AuditEntry{
				EntryID:       uuid.NewString(),
				EntityID:      r.ReservationID,
				EntityType:    entityTypeReservation,
				Action:        domain.AuditDelete,
				PerformedByID: r.StaffID,
				CreatedAt:     now,
			})
			if err != nil {
				return err
			}
		}

		counts.Reservations = reservations
		counts.Payments = payments
		counts.LineItems = lineItems
		counts.AuditEntries = auditEntries
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *importServiceImpl) activeNightlyPrices(ctx context.Context) ([]decimal.Decimal, error) {
	roomTypes, err := s.repos.Rooms().FindActiveRoomTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load room types: %w", err)
	}
	prices := make([]decimal.Decimal, 0, len(roomTypes))
	for _, t := range roomTypes {
		prices = append(prices, t.NightlyPrice)
	}
	return prices, nil
}
