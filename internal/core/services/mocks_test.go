package services_test

import (
	"context"
	"time"

	"github.com/hostalqori/hotel_management_app/internal/core/domain"
	portsrepo "github.com/hostalqori/hotel_management_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Hand-written repository mocks ---

type MockGuestRepository struct {
	mock.Mock
}

func (m *MockGuestRepository) FindGuestByDocument(ctx context.Context, documentNumber string) (*domain.GuestProfile, error) {
	args := m.Called(ctx, documentNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuestProfile), args.Error(1)
}

func (m *MockGuestRepository) FindGuestCandidates(ctx context.Context, docFragment string, nameFragment string) ([]domain.GuestProfile, error) {
	args := m.Called(ctx, docFragment, nameFragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GuestProfile), args.Error(1)
}

func (m *MockGuestRepository) SaveGuest(ctx context.Context, guest domain.GuestProfile) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) FindActiveRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomRepository) FindActiveRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomType), args.Error(1)
}

func (m *MockRoomRepository) FindRoomTypeByID(ctx context.Context, roomTypeID string) (*domain.RoomType, error) {
	args := m.Called(ctx, roomTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindActiveProductsByCost(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindServiceByName(ctx context.Context, name string) (*domain.HotelService, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HotelService), args.Error(1)
}

type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindActiveStaffByRole(ctx context.Context, role domain.StaffRole) ([]domain.StaffUser, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StaffUser), args.Error(1)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) FindReservationsByGuest(ctx context.Context, guestID string, from, to time.Time) ([]domain.Reservation, error) {
	args := m.Called(ctx, guestID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) DeleteReservations(ctx context.Context, reservationIDs []string) (int64, error) {
	args := m.Called(ctx, reservationIDs)
	return args.Get(0).(int64), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) MaxPaymentSequence(ctx context.Context, year int) (int, error) {
	args := m.Called(ctx, year)
	return args.Int(0), args.Error(1)
}

func (m *MockPaymentRepository) PaymentCodeExists(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment, items []domain.PaymentLineItem) error {
	args := m.Called(ctx, payment, items)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePaymentsByReservations(ctx context.Context, reservationIDs []string) (int64, int64, error) {
	args := m.Called(ctx, reservationIDs)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) DeleteAuditEntries(ctx context.Context, entityIDs []string, entityType string) (int64, error) {
	args := m.Called(ctx, entityIDs, entityType)
	return args.Get(0).(int64), args.Error(1)
}

// mockRepoProvider bundles the mocks and runs transaction functions against
// itself so tests see every repository call the service makes.
type mockRepoProvider struct {
	guests       *MockGuestRepository
	rooms        *MockRoomRepository
	products     *MockProductRepository
	staff        *MockStaffRepository
	reservations *MockReservationRepository
	payments     *MockPaymentRepository
	audit        *MockAuditRepository
}

func newMockRepoProvider() *mockRepoProvider {
	return &mockRepoProvider{
		guests:       new(MockGuestRepository),
		rooms:        new(MockRoomRepository),
		products:     new(MockProductRepository),
		staff:        new(MockStaffRepository),
		reservations: new(MockReservationRepository),
		payments:     new(MockPaymentRepository),
		audit:        new(MockAuditRepository),
	}
}

func (p *mockRepoProvider) Guests() portsrepo.GuestRepositoryFacade       { return p.guests }
func (p *mockRepoProvider) Rooms() portsrepo.RoomRepositoryFacade         { return p.rooms }
func (p *mockRepoProvider) Products() portsrepo.ProductRepositoryFacade   { return p.products }
func (p *mockRepoProvider) Staff() portsrepo.StaffRepositoryFacade        { return p.staff }
func (p *mockRepoProvider) Reservations() portsrepo.ReservationRepositoryFacade {
	return p.reservations
}
func (p *mockRepoProvider) Payments() portsrepo.PaymentRepositoryFacade { return p.payments }
func (p *mockRepoProvider) Audit() portsrepo.AuditRepositoryFacade      { return p.audit }

func (p *mockRepoProvider) WithinTransaction(ctx context.Context, timeout time.Duration, fn func(ctx context.Context, repos portsrepo.Provider) error) error {
	return fn(ctx, p)
}

func (p *mockRepoProvider) assertExpectations(t mock.TestingT) {
	p.guests.AssertExpectations(t)
	p.rooms.AssertExpectations(t)
	p.products.AssertExpectations(t)
	p.staff.AssertExpectations(t)
	p.reservations.AssertExpectations(t)
	p.payments.AssertExpectations(t)
	p.audit.AssertExpectations(t)
}
