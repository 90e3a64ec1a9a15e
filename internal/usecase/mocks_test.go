package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/mailer"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockHotelRepo struct {
	mock.Mock
}

func (m *mockHotelRepo) Create(ctx context.Context, h *entity.Hotel) error {
	return m.Called(ctx, h).Error(0)
}

func (m *mockHotelRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Hotel), args.Error(1)
}

func (m *mockHotelRepo) FindWithCreator(ctx context.Context, id uuid.UUID) (*entity.HotelWithCreator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.HotelWithCreator), args.Error(1)
}

func (m *mockHotelRepo) FindAllWithCreator(ctx context.Context) ([]*entity.HotelWithCreator, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*entity.HotelWithCreator), args.Error(1)
}

func (m *mockHotelRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Hotel, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]*entity.Hotel), args.Error(1)
}

func (m *mockHotelRepo) Update(ctx context.Context, h *entity.Hotel) error {
	return m.Called(ctx, h).Error(0)
}

func (m *mockHotelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) CreateIfAvailable(ctx context.Context, b *entity.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockBookingRepo) FindDetailByID(ctx context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.BookingDetail), args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, f repository.BookingFilter) ([]*entity.BookingDetail, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]*entity.BookingDetail), args.Error(1)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, msg mailer.Message) error {
	return m.Called(ctx, msg).Error(0)
}

type mocks struct {
	users    *mockUserRepo
	hotels   *mockHotelRepo
	bookings *mockBookingRepo
}

func newMocks() (*mocks, *repository.Repository) {
	m := &mocks{
		users:    new(mockUserRepo),
		hotels:   new(mockHotelRepo),
		bookings: new(mockBookingRepo),
	}
	return m, &repository.Repository{User: m.users, Hotel: m.hotels, Booking: m.bookings}
}
