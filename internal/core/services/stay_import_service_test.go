package services_test

import (
	"context"
	"testing"

	"github.com/hostalqori/hotel_management_app/internal/apperrors"
	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	portssvc "github.com/hostalqori/hotel_management_app/internal/core/ports/services"
	"github.com/hostalqori/hotel_management_app/internal/core/services"
	"github.com/hostalqori/hotel_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ImportServiceTestSuite struct {
	suite.Suite
	provider *mockRepoProvider
	service  portssvc.ImportSvcFacade
	ctx      context.Context
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.provider = newMockRepoProvider()
	suite.service = services.NewImportService(suite.provider, services.DefaultImportConfig())
	suite.ctx = context.Background()
}

// --- Catalog fixtures ---

func matrimonialType() domain.RoomType {
	return domain.RoomType{
		RoomTypeID:   "rt-matrimonial",
		Name:         "Matrimonial",
		NightlyPrice: decimal.NewFromInt(80),
		IsActive:     true,
	}
}

func simpleType() domain.RoomType {
	return domain.RoomType{
		RoomTypeID:   "rt-simple",
		Name:         "Simple",
		NightlyPrice: decimal.NewFromInt(50),
		IsActive:     true,
	}
}

func activeRooms() []domain.Room {
	return []domain.Room{
		{RoomID: "room-101", Number: "101", RoomTypeID: "rt-matrimonial", IsActive: true},
		{RoomID: "room-201", Number: "201", RoomTypeID: "rt-simple", IsActive: true},
	}
}

func activeReceptionists() []domain.StaffUser {
	return []domain.StaffUser{
		{UserID: "staff-rosa", Name: "Rosa Huamán", Role: domain.RoleReceptionist, IsActive: true},
	}
}

func activeProducts() []domain.Product {
	return []domain.Product{
		{ProductID: "prod-agua", Name: "Agua mineral", UnitCost: decimal.RequireFromString("2.50"), IsActive: true},
		{ProductID: "prod-gaseosa", Name: "Gaseosa", UnitCost: decimal.NewFromInt(5), IsActive: true},
	}
}

func breakfastService() *domain.HotelService {
	return &domain.HotelService{
		ServiceID: "svc-desayuno",
		Name:      "Desayuno",
		Price:     decimal.NewFromInt(15),
		IsActive:  true,
	}
}

func (suite *ImportServiceTestSuite) expectCatalogs() {
	suite.provider.rooms.On("FindActiveRooms", mock.Anything).Return(activeRooms(), nil).Once()
	suite.provider.rooms.On("FindActiveRoomTypes", mock.Anything).Return([]domain.RoomType{matrimonialType(), simpleType()}, nil).Once()
	suite.provider.staff.On("FindActiveStaffByRole", mock.Anything, domain.RoleReceptionist).Return(activeReceptionists(), nil).Once()
	suite.provider.products.On("FindActiveProductsByCost", mock.Anything).Return(activeProducts(), nil).Once()
	suite.provider.products.On("FindServiceByName", mock.Anything, "Desayuno").Return(breakfastService(), nil).Once()
}

func validRow() dto.RowRecord {
	return dto.RowRecord{
		dto.ColFullName:       "Juan Pérez Quispe",
		dto.ColDocumentType:   "DNI",
		dto.ColDocumentNumber: "12345678",
		dto.ColNationality:    "PERUANA",
		dto.ColAddress:        "Av. El Sol 123",
		dto.ColMaritalStatus:  "SOLTERO",
		dto.ColRoomNumber:     "101",
		dto.ColCheckIn:        "15/03/2014",
		dto.ColCheckOut:       "17/03/2014",
		dto.ColDayCount:       "2",
		dto.ColTotalPrice:     "S/ 190.00",
		dto.ColPaymentMethod:  "EFECTIVO",
		dto.ColReceiptType:    "BOLETA",
		dto.ColStaffName:      "Rosa",
	}
}

func (suite *ImportServiceTestSuite) TestImportStaysSuccess() {
	suite.expectCatalogs()
	suite.provider.guests.On("FindGuestByDocument", mock.Anything, "12345678").Return(nil, apperrors.ErrNotFound).Once()
	suite.provider.guests.On("SaveGuest", mock.Anything, mock.MatchedBy(func(g domain.GuestProfile) bool {
		return g.DocumentNumber == "12345678" && g.FullName == "Juan Pérez Quispe" && g.Country == "Perú"
	})).Return(nil).Once()
	suite.provider.reservations.On("SaveReservation", mock.Anything, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.RoomID == "room-101" &&
			r.StaffID == "staff-rosa" &&
			r.Origin == domain.OriginImported &&
			r.Status == domain.StatusCheckedOut &&
			!r.IsActive &&
			r.Stay.Nights() == 2
	})).Return(nil).Once()
	suite.provider.payments.On("MaxPaymentSequence", mock.Anything, 2014).Return(0, nil).Once()
	suite.provider.payments.On("PaymentCodeExists", mock.Anything, "R2014-0001").Return(false, nil).Once()
	suite.provider.payments.On("SavePayment", mock.Anything,
		mock.MatchedBy(func(p domain.Payment) bool {
			return p.Code == "R2014-0001" &&
				p.Amount.Equal(decimal.NewFromInt(190)) &&
				p.AmountPaid.Equal(decimal.NewFromInt(190)) &&
				p.Method == domain.MethodCash &&
				p.Receipt == domain.ReceiptBoleta &&
				p.Status == domain.PaymentPaid
		}),
		mock.MatchedBy(func(items []domain.PaymentLineItem) bool {
			total := decimal.Zero
			for _, it := range items {
				total = total.Add(it.Subtotal)
			}
			return total.Equal(decimal.NewFromInt(190)) && items[0].Kind == domain.LineRoom
		})).Return(nil).Once()
	suite.provider.audit.On("SaveAuditEntry", mock.Anything, mock.MatchedBy(func(e domain.AuditEntry) bool {
		return e.EntityType == "reservation" && e.Action == domain.AuditCreate && e.PerformedByID == "staff-rosa"
	})).Return(nil).Once()

	result, err := suite.service.ImportStays(suite.ctx, []dto.RowRecord{validRow()}, 1, 1)

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.Equal(1, result.Processed)
	suite.Equal(1, result.Successful)
	suite.Equal(0, result.Failed)
	suite.Equal(0, result.Skipped)
	suite.Empty(result.Errors)
	suite.Empty(result.UnnormalizedNationalities)
	suite.Len(result.InternalBatches, 1)
	suite.provider.assertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportStaysDuplicateDocumentSkipsRow() {
	suite.expectCatalogs()
	suite.provider.guests.On("FindGuestByDocument", mock.Anything, "12345678").Return(nil, apperrors.ErrNotFound).Once()
	suite.provider.guests.On("SaveGuest", mock.Anything, mock.AnythingOfType("domain.GuestProfile")).Return(nil).Once()
	suite.provider.reservations.On("SaveReservation", mock.Anything, mock.AnythingOfType("domain.Reservation")).Return(nil).Once()
	suite.provider.payments.On("MaxPaymentSequence", mock.Anything, 2014).Return(41, nil).Once()
	suite.provider.payments.On("PaymentCodeExists", mock.Anything, "R2014-0042").Return(false, nil).Once()
	suite.provider.payments.On("SavePayment", mock.Anything, mock.AnythingOfType("domain.Payment"), mock.Anything).Return(nil).Once()
	suite.provider.audit.On("SaveAuditEntry", mock.Anything, mock.AnythingOfType("domain.AuditEntry")).Return(nil).Once()

	rows := []dto.RowRecord{validRow(), validRow()}
	result, err := suite.service.ImportStays(suite.ctx, rows, 1, 1)

	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.Equal(2, result.Processed)
	suite.Equal(1, result.Successful)
	suite.Equal(1, result.Skipped)
	suite.Equal(0, result.Failed)
	suite.Require().Len(result.Errors, 1)
	suite.Equal(dto.ErrCategoryDuplicate, result.Errors[0].Category)
	suite.Equal(1, result.Errors[0].RowIndex)
	suite.provider.assertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportStaysRowFailureDoesNotAbortBatch() {
	suite.expectCatalogs()
	suite.provider.guests.On("FindGuestByDocument", mock.Anything, "12345678").Return(nil, apperrors.ErrNotFound).Once()
	suite.provider.guests.On("SaveGuest", mock.Anything, mock.AnythingOfType("domain.GuestProfile")).Return(nil).Once()
	suite.provider.reservations.On("SaveReservation", mock.Anything, mock.AnythingOfType("domain.Reservation")).Return(nil).Once()
	suite.provider.payments.On("MaxPaymentSequence", mock.Anything, 2014).Return(0, nil).Once()
	suite.provider.payments.On("PaymentCodeExists", mock.Anything, "R2014-0001").Return(false, nil).Once()
	suite.provider.payments.On("SavePayment", mock.Anything, mock.AnythingOfType("domain.Payment"), mock.Anything).Return(nil).Once()
	suite.provider.audit.On("SaveAuditEntry", mock.Anything, mock.AnythingOfType("domain.AuditEntry")).Return(nil).Once()

	badRow := validRow()
	badRow[dto.ColDocumentNumber] = "87654321"
	badRow[dto.ColCheckIn] = "mañana"

	result, err := suite.service.ImportStays(suite.ctx, []dto.RowRecord{badRow, validRow()}, 1, 1)

	suite.Require().NoError(err)
	suite.False(result.Success)
	suite.Equal(2, result.Processed)
	suite.Equal(1, result.Successful)
	suite.Equal(1, result.Failed)
	suite.Require().Len(result.Errors, 1)
	suite.Equal(dto.ErrCategoryDateParse, result.Errors[0].Category)
	suite.Equal(0, result.Errors[0].RowIndex)
	suite.provider.assertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportStaysRepositoryErrorFailsOnlyThatRow() {
	suite.expectCatalogs()
	// Both rows reach the transaction; the first one's reservation insert fails.
	suite.provider.guests.On("FindGuestByDocument", mock.Anything, "12345678").Return(nil, apperrors.ErrNotFound).Once()
	suite.provider.guests.On("FindGuestByDocument", mock.Anything, "87654321").Return(nil, apperrors.ErrNotFound).Once()
	suite.provider.guests.On("SaveGuest", mock.Anything, mock.AnythingOfType("domain.GuestProfile")).Return(nil).Twice()
	suite.provider.reservations.On("SaveReservation", mock.Anything, mock.AnythingOfType("domain.Reservation")).Return(assert.AnError).Once()
	suite.provider.reservations.On("SaveReservation", mock.Anything, mock.AnythingOfType("domain.Reservation")).Return(nil).Once()
	suite.provider.payments.On("MaxPaymentSequence", mock.Anything, 2014).Return(0, nil).Once()
	suite.provider.payments.On("PaymentCodeExists", mock.Anything, "R2014-0001").Return(false, nil).Once()
	suite.provider.payments.On("SavePayment", mock.Anything, mock.AnythingOfType("domain.Payment"), mock.Anything).Return(nil).Once()
	suite.provider.audit.On("SaveAuditEntry", mock.Anything, mock.AnythingOfType("domain.AuditEntry")).Return(nil).Once()

	second := validRow()
	second[dto.ColDocumentNumber] = "87654321"

	result, err := suite.service.ImportStays(suite.ctx, []dto.RowRecord{validRow(), second}, 1, 1)

	suite.Require().NoError(err)
	suite.False(result.Success)
	suite.Equal(1, result.Successful)
	suite.Equal(1, result.Failed)
	suite.Require().Len(result.Errors, 1)
	suite.Equal(dto.ErrCategoryOther, result.Errors[0].Category)
	suite.provider.assertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportStaysPlaceholderNameIsIdentityError() {
	suite.expectCatalogs()

	row := validRow()
	row[dto.ColFullName] = "xxx"

	result, err := suite.service.ImportStays(suite.ctx, []dto.RowRecord{row}, 1, 1)

	suite.Require().NoError(err)
	suite.Equal(1, result.Failed)
	suite.Require().Len(result.Errors, 1)
	suite.Equal(dto.ErrCategoryIdentity, result.Errors[0].Category)
	suite.provider.assertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportStaysExistingGuestIsReused() {
	suite.expectCatalogs()
	existing := &domain.GuestProfile{GuestID: "guest-1", DocumentNumber: "12345678", FullName: "Juan Pérez Quispe"}
	suite.provider.guests.On("FindGuestByDocument", mock.Anything, "12345678").Return(existing, nil).Once()
	suite.provider.reservations.On("SaveReservation", mock.Anything, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.GuestID == "guest-1"
	})).Return(nil).Once()
	suite.provider.payments.On("MaxPaymentSequence", mock.Anything, 2014).Return(0, nil).Once()
	suite.provider.payments.On("PaymentCodeExists", mock.Anything, "R2014-0001").Return(false, nil).Once()
	suite.provider.payments.On("SavePayment", mock.Anything, mock.AnythingOfType("domain.Payment"), mock.Anything).Return(nil).Once()
	suite.provider.audit.On("SaveAuditEntry", mock.Anything, mock.AnythingOfType("domain.AuditEntry")).Return(nil).Once()

	result, err := suite.service.ImportStays(suite.ctx, []dto.RowRecord{validRow()}, 1, 1)

	suite.Require().NoError(err)
	suite.Equal(1, result.Successful)
	suite.provider.guests.AssertNotCalled(suite.T(), "SaveGuest", mock.Anything, mock.Anything)
	suite.provider.assertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportStaysUnnormalizedNationalityIsReported() {
	suite.expectCatalogs()
	suite.provider.guests.On("FindGuestByDocument", mock.Anything, "12345678").Return(nil, apperrors.ErrNotFound).Once()
	suite.provider.guests.On("SaveGuest", mock.Anything, mock.AnythingOfType("domain.GuestProfile")).Return(nil).Once()
	suite.provider.reservations.On("SaveReservation", mock.Anything, mock.AnythingOfType("domain.Reservation")).Return(nil).Once()
	suite.provider.payments.On("MaxPaymentSequence", mock.Anything, 2014).Return(0, nil).Once()
	suite.provider.payments.On("PaymentCodeExists", mock.Anything, "R2014-0001").Return(false, nil).Once()
	suite.provider.payments.On("SavePayment", mock.Anything, mock.AnythingOfType("domain.Payment"), mock.Anything).Return(nil).Once()
	suite.provider.audit.On("SaveAuditEntry", mock.Anything, mock.AnythingOfType("domain.AuditEntry")).Return(nil).Once()

	row := validRow()
	row[dto.ColNationality] = "Atlantis"

	result, err := suite.service.ImportStays(suite.ctx, []dto.RowRecord{row}, 1, 1)

	suite.Require().NoError(err)
	suite.Equal(1, result.Successful)
	suite.Equal([]string{"Atlantis"}, result.UnnormalizedNationalities)
	suite.provider.assertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportStaysEmptyBatchRejected() {
	result, err := suite.service.ImportStays(suite.ctx, nil, 1, 1)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrEmptyBatch)
}

func (suite *ImportServiceTestSuite) TestImportStaysRowCapRejected() {
	svc := services.NewImportService(suite.provider, services.ImportConfig{MaxRows: 2})

	rows := []dto.RowRecord{validRow(), validRow(), validRow()}
	result, err := svc.ImportStays(suite.ctx, rows, 1, 1)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrTooManyRows)
}

func (suite *ImportServiceTestSuite) TestImportStaysNoActiveRoomsIsBatchFatal() {
	suite.provider.rooms.On("FindActiveRooms", mock.Anything).Return([]domain.Room{}, nil).Once()

	result, err := suite.service.ImportStays(suite.ctx, []dto.RowRecord{validRow()}, 1, 1)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrNoActiveRooms)
	suite.provider.assertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportStaysNoReceptionistsIsBatchFatal() {
	suite.provider.rooms.On("FindActiveRooms", mock.Anything).Return(activeRooms(), nil).Once()
	suite.provider.rooms.On("FindActiveRoomTypes", mock.Anything).Return([]domain.RoomType{matrimonialType()}, nil).Once()
	suite.provider.staff.On("FindActiveStaffByRole", mock.Anything, domain.RoleReceptionist).Return([]domain.StaffUser{}, nil).Once()

	result, err := suite.service.ImportStays(suite.ctx, []dto.RowRecord{validRow()}, 1, 1)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, services.ErrNoReceptionists)
	suite.provider.assertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportStaysSubBatchSplit() {
	suite.expectCatalogs()
	suite.provider.guests.On("FindGuestByDocument", mock.Anything, "12345678").Return(nil, apperrors.ErrNotFound).Once()
	suite.provider.guests.On("SaveGuest", mock.Anything, mock.AnythingOfType("domain.GuestProfile")).Return(nil).Once()
	suite.provider.reservations.On("SaveReservation", mock.Anything, mock.AnythingOfType("domain.Reservation")).Return(nil).Once()
	suite.provider.payments.On("MaxPaymentSequence", mock.Anything, 2014).Return(0, nil).Once()
	suite.provider.payments.On("PaymentCodeExists", mock.Anything, "R2014-0001").Return(false, nil).Once()
	suite.provider.payments.On("SavePayment", mock.Anything, mock.AnythingOfType("domain.Payment"), mock.Anything).Return(nil).Once()
	suite.provider.audit.On("SaveAuditEntry", mock.Anything, mock.AnythingOfType("domain.AuditEntry")).Return(nil).Once()

	svc := services.NewImportService(suite.provider, services.ImportConfig{SubBatchSize: 1})

	first := validRow()
	first[dto.ColFullName] = "xxx"
	second := validRow()
	second[dto.ColFullName] = "s/d"

	result, err := svc.ImportStays(suite.ctx, []dto.RowRecord{first, second, validRow()}, 1, 2)

	suite.Require().NoError(err)
	suite.Len(result.InternalBatches, 3)
	suite.Equal(1, result.InternalBatches[0].Rows)
	// The only surviving row still commits.
	suite.Equal(1, result.Successful)
	suite.Equal(2, result.Failed)
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
