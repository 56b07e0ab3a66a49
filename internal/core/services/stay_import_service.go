package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/hostalqori/hotel_management_app/internal/apperrors"
	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hostalqori/hotel_management_app/internal/core/ports/repositories"
	portssvc "github.com/hostalqori/hotel_management_app/internal/core/ports/services"
	"github.com/hostalqori/hotel_management_app/internal/dto"
	"github.com/hostalqori/hotel_management_app/internal/utils/normalize"
	"github.com/hostalqori/hotel_management_app/internal/utils/staydates"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Batch-fatal validation errors.
var (
	ErrEmptyBatch  = errors.New("no rows to import")
	ErrTooManyRows = errors.New("row count exceeds the import cap")
)

// Row-level errors raised inside the record processor, mapped to categories by
// classifyRowError.
var (
	errInsufficientIdentity = errors.New("row has no usable guest name")
	errUnpriceableRow       = errors.New("row has no recorded total and no nightly price to fall back on")
)

const (
	entityTypeReservation = "reservation"
	syntheticDocAttempts  = 5
	paymentCodeAttempts   = 25
)

// ImportConfig tunes the batch orchestrator. The span and night thresholds are
// legacy heuristics, not business rules, so they stay configurable.
type ImportConfig struct {
	MaxRows            int
	SubBatchSize       int
	TxTimeout          time.Duration
	MaxStaySpanDays    int
	MaxEstimatedNights int
	BreakfastService   string
}

// DefaultImportConfig mirrors the legacy importer's tuning.
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		MaxRows:            1000,
		SubBatchSize:       50,
		TxTimeout:          5 * time.Minute,
		MaxStaySpanDays:    365,
		MaxEstimatedNights: 30,
		BreakfastService:   "Desayuno",
	}
}

type importServiceImpl struct {
	BaseService
	repos portsrepo.TransactionManager
	cfg   ImportConfig
}

// NewImportService creates the import engine. Zero-valued config knobs fall
// back to the legacy defaults.
func NewImportService(repos portsrepo.TransactionManager, cfg ImportConfig) portssvc.ImportSvcFacade {
	def := DefaultImportConfig()
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = def.MaxRows
	}
	if cfg.SubBatchSize <= 0 {
		cfg.SubBatchSize = def.SubBatchSize
	}
	if cfg.TxTimeout <= 0 {
		cfg.TxTimeout = def.TxTimeout
	}
	if cfg.MaxStaySpanDays <= 0 {
		cfg.MaxStaySpanDays = def.MaxStaySpanDays
	}
	if cfg.MaxEstimatedNights <= 0 {
		cfg.MaxEstimatedNights = def.MaxEstimatedNights
	}
	if cfg.BreakfastService == "" {
		cfg.BreakfastService = def.BreakfastService
	}
	return &importServiceImpl{repos: repos, cfg: cfg}
}

// Ensure importServiceImpl implements the ImportSvcFacade interface
var _ portssvc.ImportSvcFacade = (*importServiceImpl)(nil)

// batchCatalogs holds the collaborator data preloaded once per call. The
// active sets are small; loading them up front keeps row processing off the
// read path and makes the no-rooms/no-staff conditions batch-fatal as they
// must be.
type batchCatalogs struct {
	rooms         []domain.Room
	roomTypes     []domain.RoomType
	nightlyPrices []decimal.Decimal
	receptionists []domain.StaffUser
	products      []domain.Product
	breakfast     *domain.HotelService
}

func (s *importServiceImpl) loadCatalogs(ctx context.Context) (*batchCatalogs, error) {
	rooms, err := s.repos.Rooms().FindActiveRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	if len(rooms) == 0 {
		return nil, ErrNoActiveRooms
	}
	roomTypes, err := s.repos.Rooms().FindActiveRoomTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load room types: %w", err)
	}
	receptionists, err := s.repos.Staff().FindActiveStaffByRole(ctx, domain.RoleReceptionist)
	if err != nil {
		return nil, fmt.Errorf("failed to load receptionists: %w", err)
	}
	if len(receptionists) == 0 {
		return nil, ErrNoReceptionists
	}
	products, err := s.repos.Products().FindActiveProductsByCost(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	breakfast, err := s.repos.Products().FindServiceByName(ctx, s.cfg.BreakfastService)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load breakfast service: %w", err)
	}

	prices := make([]decimal.Decimal, 0, len(roomTypes))
	for _, t := range roomTypes {
		prices = append(prices, t.NightlyPrice)
	}
	return &batchCatalogs{
		rooms:         rooms,
		roomTypes:     roomTypes,
		nightlyPrices: prices,
		receptionists: receptionists,
		products:      products,
		breakfast:     breakfast,
	}, nil
}

func (s *importServiceImpl) ImportStays(ctx context.Context, rows []dto.RowRecord, batchNumber, totalBatches int) (*dto.BatchResult, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrEmptyBatch)
	}
	if len(rows) > s.cfg.MaxRows {
		return nil, fmt.Errorf("%w: %d rows, cap is %d: %w", apperrors.ErrValidation, len(rows), s.cfg.MaxRows, ErrTooManyRows)
	}

	catalogs, err := s.loadCatalogs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Import preflight failed",
			slog.Int("rows", len(rows)),
			slog.Int("batch_number", batchNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Starting stay import",
		slog.Int("rows", len(rows)),
		slog.Int("batch_number", batchNumber),
		slog.Int("total_batches", totalBatches))

	result := &dto.BatchResult{Errors: []dto.RowError{}, InternalBatches: []dto.SubBatchResult{}}
	seenDocs := map[string]int{}
	unnormalized := map[string]struct{}{}

	for start := 0; start < len(rows); start += s.cfg.SubBatchSize {
		end := start + s.cfg.SubBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		sub := dto.SubBatchResult{Index: len(result.InternalBatches), Rows: end - start}
		began := time.Now()

		for i := start; i < end; i++ {
			rowErr, skipped := s.processRecord(ctx, catalogs, rows[i], i, seenDocs, unnormalized)
			result.Processed++
			switch {
			case rowErr == nil:
				result.Successful++
				sub.Successful++
			case skipped:
				result.Skipped++
				sub.Skipped++
				result.Errors = append(result.Errors, *rowErr)
			default:
				result.Failed++
				sub.Failed++
				result.Errors = append(result.Errors, *rowErr)
			}
		}

		sub.Elapsed = time.Since(began)
		result.InternalBatches = append(result.InternalBatches, sub)
	}

	result.Success = result.Failed == 0
	result.UnnormalizedNationalities = sortedKeys(unnormalized)
	result.Summary = buildSummary(result)

	s.LogInfo(ctx, "Stay import finished",
		slog.Int("processed", result.Processed),
		slog.Int("successful", result.Successful),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped))
	return result, nil
}

// processRecord imports one row inside its own transaction. A nil row error
// means the row committed; the bool reports the duplicate-skip case.
func (s *importServiceImpl) processRecord(ctx context.Context, catalogs *batchCatalogs, row dto.RowRecord, rowIndex int, seenDocs map[string]int, unnormalized map[string]struct{}) (*dto.RowError, bool) {
	fullName := strings.TrimSpace(row[dto.ColFullName])
	if normalize.IsPlaceholder(fullName) {
		return rowError(rowIndex, row, dto.ErrCategoryIdentity, errInsufficientIdentity.Error()), false
	}

	docType := normalize.DocumentType(row[dto.ColDocumentType])
	docNumber, synthetic := normalize.DocumentNumber(row[dto.ColDocumentNumber], docType)

	// First occurrence of a document wins; later rows are skipped, not failed.
	if !synthetic {
		if firstIdx, dup := seenDocs[docNumber]; dup {
			msg := fmt.Sprintf("document %s already imported at row %d", docNumber, firstIdx)
			return rowError(rowIndex, row, dto.ErrCategoryDuplicate, msg), true
		}
		seenDocs[docNumber] = rowIndex
	}

	recordedTotal, priced := parseRecordedTotal(row[dto.ColTotalPrice])

	period, err := staydates.Infer(staydates.Input{
		RawDayCount:   row[dto.ColDayCount],
		RawCheckIn:    row[dto.ColCheckIn],
		RawCheckOut:   row[dto.ColCheckOut],
		RecordedTotal: recordedTotal,
		NightlyPrices: catalogs.nightlyPrices,
	}, staydates.Options{
		MaxSpanDays:        s.cfg.MaxStaySpanDays,
		MaxEstimatedNights: s.cfg.MaxEstimatedNights,
	})
	if err != nil {
		return classifyRowError(rowIndex, row, err), false
	}
	nights := period.Nights()

	pick, err := pickRoom(catalogs.rooms, catalogs.roomTypes, row[dto.ColRoomNumber], row[dto.ColRoomType], recordedTotal, nights)
	if err != nil {
		return classifyRowError(rowIndex, row, err), false
	}
	receptionist, err := pickReceptionist(catalogs.receptionists, row[dto.ColStaffName])
	if err != nil {
		return classifyRowError(rowIndex, row, err), false
	}

	// An unparsable or missing total falls back to the room charge. When the
	// nightly price is unknown too the row cannot produce a payment.
	if !priced {
		recordedTotal = pick.nightlyPrice.Mul(decimal.NewFromInt(int64(nights)))
		if recordedTotal.LessThanOrEqual(decimal.Zero) {
			return rowError(rowIndex, row, dto.ErrCategoryPriceParse, errUnpriceableRow.Error()), false
		}
	}

	country, department, normalized := resolveOrigin(row[dto.ColNationality], docType)
	if !normalized {
		unnormalized[strings.TrimSpace(row[dto.ColNationality])] = struct{}{}
	}

	err = s.repos.WithinTransaction(ctx, s.cfg.TxTimeout, func(txCtx context.Context, repos portsrepo.Provider) error {
		guest, err := s.findOrCreateGuest(txCtx, repos, guestDraft{
			fullName:      fullName,
			docType:       docType,
			docNumber:     docNumber,
			synthetic:     synthetic,
			address:       strings.TrimSpace(row[dto.ColAddress]),
			phone:         normalize.Phone(row[dto.ColPhone]),
			maritalStatus: normalize.MaritalStatusOf(row[dto.ColMaritalStatus]),
			country:       country,
			department:    department,
			blacklisted:   normalize.Blacklisted(row[dto.ColBlacklisted]),
			checkIn:       period.CheckIn,
			staffID:       receptionist.UserID,
		})
		if err != nil {
			return err
		}

		now := time.Now()
		reservation := domain.Reservation{
			ReservationID: uuid.NewString(),
			GuestID:       guest.GuestID,
			RoomID:        pick.room.RoomID,
			StaffID:       receptionist.UserID,
			Stay:          period,
			Status:        domain.StatusCheckedOut,
			Origin:        domain.OriginImported,
			IsActive:      false,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     receptionist.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: receptionist.UserID,
			},
		}
		if err := repos.Reservations().SaveReservation(txCtx, reservation); err != nil {
			return err
		}

		code, err := nextPaymentCode(txCtx, repos, period.CheckIn.Year())
		if err != nil {
			return err
		}
		payment := domain.Payment{
			PaymentID:     uuid.NewString(),
			Code:          code,
			ReservationID: reservation.ReservationID,
			Amount:        recordedTotal,
			AmountPaid:    recordedTotal,
			Method:        normalize.PaymentMethodOf(row[dto.ColPaymentMethod]),
			Receipt:       normalize.ReceiptTypeOf(row[dto.ColReceiptType]),
			Status:        domain.PaymentPaid,
			PaidAt:        period.CheckOut,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     receptionist.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: receptionist.UserID,
			},
		}
		items := allocateLineItems(allocationInput{
			paymentID:     payment.PaymentID,
			recordedTotal: recordedTotal,
			nightlyPrice:  pick.nightlyPrice,
			nights:        nights,
			breakfast:     catalogs.breakfast,
			products:      catalogs.products,
			receipt:       payment.Receipt,
			stay:          period,
		})
		if err := repos.Payments().SavePayment(txCtx, payment, items); err != nil {
			return err
		}

		return repos.Audit().SaveAuditEntry(txCtx, domain.AuditEntry{
			EntryID:       uuid.NewString(),
			EntityID:      reservation.ReservationID,
			EntityType:    entityTypeReservation,
			Action:        domain.AuditCreate,
			PerformedByID: receptionist.UserID,
			CreatedAt:     now,
		})
	})
	if err != nil {
		s.LogError(ctx, err, "Row import failed", slog.Int("row_index", rowIndex))
		return classifyRowError(rowIndex, row, err), false
	}
	return nil, false
}

type guestDraft struct {
	fullName      string
	docType       domain.DocumentType
	docNumber     string
	synthetic     bool
	address       string
	phone         string
	maritalStatus domain.MaritalStatus
	country       string
	department    string
	blacklisted   bool
	checkIn       time.Time
	staffID       string
}

// findOrCreateGuest resolves the guest by normalized document number, creating
// the profile when no guest holds it. Created profiles are back-dated to the
// inferred check-in so imported guests sort plausibly in history views.
func (s *importServiceImpl) findOrCreateGuest(ctx context.Context, repos portsrepo.Provider, draft guestDraft) (*domain.GuestProfile, error) {
	if !draft.synthetic {
		existing, err := repos.Guests().FindGuestByDocument(ctx, draft.docNumber)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	} else {
		doc, err := ensureUniqueSyntheticDoc(ctx, repos, draft.docNumber)
		if err != nil {
			return nil, err
		}
		draft.docNumber = doc
	}

	guest := domain.GuestProfile{
		GuestID:        uuid.NewString(),
		DocumentType:   draft.docType,
		DocumentNumber: draft.docNumber,
		FullName:       draft.fullName,
		Address:        draft.address,
		Phone:          draft.phone,
		MaritalStatus:  draft.maritalStatus,
		Country:        draft.country,
		Department:     draft.department,
		IsBlacklisted:  draft.blacklisted,
		AuditFields: domain.AuditFields{
			CreatedAt:     draft.checkIn,
			CreatedBy:     draft.staffID,
			LastUpdatedAt: draft.checkIn,
			LastUpdatedBy: draft.staffID,
		},
	}
	if err := repos.Guests().SaveGuest(ctx, guest); err != nil {
		return nil, err
	}
	return &guest, nil
}

// ensureUniqueSyntheticDoc verifies a placeholder document number is unused,
// regenerating a bounded number of times before falling back to a clock-derived
// identifier. Correct under serial imports only.
func ensureUniqueSyntheticDoc(ctx context.Context, repos portsrepo.Provider, candidate string) (string, error) {
	for attempt := 0; attempt < syntheticDocAttempts; attempt++ {
		_, err := repos.Guests().FindGuestByDocument(ctx, candidate)
		if errors.Is(err, apperrors.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = normalize.SyntheticDoc()
	}
	return normalize.SyntheticDocFromTime(time.Now()), nil
}

// nextPaymentCode issues the next yearly sequential code, retrying past codes
// already taken. Correct under serial imports only.
func nextPaymentCode(ctx context.Context, repos portsrepo.Provider, year int) (string, error) {
	seq, err := repos.Payments().MaxPaymentSequence(ctx, year)
	if err != nil {
		return "", err
	}
	for attempt := 0; attempt < paymentCodeAttempts; attempt++ {
		seq++
		code := fmt.Sprintf("R%d-%04d", year, seq)
		taken, err := repos.Payments().PaymentCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not issue a payment code for %d after %d attempts", year, paymentCodeAttempts)
}

// resolveOrigin interprets the nationality cell, reclassifying values that
// actually name a Peruvian department.
func resolveOrigin(rawNationality string, docType domain.DocumentType) (country, department string, normalized bool) {
	if dept, ok := normalize.PeruvianDepartment(rawNationality); ok {
		return "Perú", dept, true
	}
	country, normalized = normalize.Nationality(rawNationality, docType)
	return country, "", normalized
}

func rowError(rowIndex int, row dto.RowRecord, category dto.ErrorCategory, msg string) *dto.RowError {
	return &dto.RowError{RowIndex: rowIndex, Category: category, Message: msg, Data: row}
}

func classifyRowError(rowIndex int, row dto.RowRecord, err error) *dto.RowError {
	category := dto.ErrCategoryOther
	switch {
	case errors.Is(err, staydates.ErrCheckInParse), errors.Is(err, staydates.ErrCheckOutParse):
		category = dto.ErrCategoryDateParse
	case errors.Is(err, ErrNoActiveRooms):
		category = dto.ErrCategoryRoom
	case errors.Is(err, ErrNoReceptionists):
		category = dto.ErrCategoryStaff
	case errors.Is(err, apperrors.ErrDuplicate):
		category = dto.ErrCategoryDuplicate
	case errors.Is(err, errInsufficientIdentity):
		category = dto.ErrCategoryIdentity
	case errors.Is(err, errUnpriceableRow):
		category = dto.ErrCategoryPriceParse
	}
	return rowError(rowIndex, row, category, err.Error())
}

// buildSummary renders the human-readable report with per-category percentages.
func buildSummary(result *dto.BatchResult) string {
	if result.Processed == 0 {
		return "no rows processed"
	}
	pct := func(n int) float64 { return float64(n) * 100 / float64(result.Processed) }

	var b strings.Builder
	fmt.Fprintf(&b, "processed %d rows: %d successful (%.1f%%), %d failed (%.1f%%), %d skipped (%.1f%%)",
		result.Processed,
		result.Successful, pct(result.Successful),
		result.Failed, pct(result.Failed),
		result.Skipped, pct(result.Skipped))

	if len(result.Errors) > 0 {
		byCategory := map[dto.ErrorCategory]int{}
		for _, e := range result.Errors {
			byCategory[e.Category]++
		}
		categories := make([]string, 0, len(byCategory))
		for c := range byCategory {
			categories = append(categories, string(c))
		}
		sort.Strings(categories)
		b.WriteString("; errors by category:")
		for _, c := range categories {
			n := byCategory[dto.ErrorCategory(c)]
			fmt.Fprintf(&b, " %s %d (%.1f%%)", c, n, pct(n))
		}
	}
	if n := len(result.UnnormalizedNationalities); n > 0 {
		fmt.Fprintf(&b, "; %d nationality value(s) left unnormalized", n)
	}
	return b.String()
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
