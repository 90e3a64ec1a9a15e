package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"hotel-booking/internal/authz"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/apperror"
	"hotel-booking/pkg/metrics"
)

func testHotel(owner uuid.UUID, price float64) *entity.Hotel {
	return &entity.Hotel{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
		Title:        "Sea View",
		Location:     "Nice",
		Price:        price,
		CreatedBy:    owner,
	}
}

func TestBookingService_CreatePricesByStartedDays(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     float64
	}{
		{name: "two nights", checkIn: "2026-03-10", checkOut: "2026-03-12", want: 200},
		{name: "partial day rounds up", checkIn: "2026-03-10T12:00:00Z", checkOut: "2026-03-11T14:00:00Z", want: 200},
		{name: "single night", checkIn: "2026-03-10", checkOut: "2026-03-11", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, repo := newMocks()
			hotel := testHotel(uuid.New(), 100)
			guest := authz.Identity{UserID: uuid.New(), Role: entity.RoleUser}

			m.hotels.On("FindByID", mock.Anything, hotel.ID).Return(hotel, nil)
			var created *entity.Booking
			m.bookings.On("CreateIfAvailable", mock.Anything, mock.AnythingOfType("*entity.Booking")).
				Run(func(args mock.Arguments) { created = args.Get(1).(*entity.Booking) }).
				Return(nil)
			m.bookings.On("FindDetailByID", mock.Anything, mock.Anything).Return(nil, nil)

			svc := NewBookingService(repo, nil, zap.NewNop())
			resp, err := svc.Create(context.Background(), guest, &request.CreateBookingRequest{
				HotelID: hotel.ID.String(), CheckIn: tt.checkIn, CheckOut: tt.checkOut, Guests: 2,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.TotalPrice)
			assert.Equal(t, entity.BookingStatusActive, resp.Status)
			require.NotNil(t, resp.Hotel)
			assert.Equal(t, hotel.ID.String(), resp.Hotel.ID)
			assert.Equal(t, guest.UserID, created.UserID)
		})
	}
}

func TestBookingService_CreateRejects(t *testing.T) {
	owner := uuid.New()
	hotel := testHotel(owner, 100)
	guest := authz.Identity{UserID: uuid.New(), Role: entity.RoleUser}

	tests := []struct {
		name     string
		req      request.CreateBookingRequest
		setup    func(m *mocks)
		wantKind apperror.Kind
	}{
		{
			name:     "bad hotel id",
			req:      request.CreateBookingRequest{HotelID: "nope", CheckIn: "2026-03-10", CheckOut: "2026-03-12", Guests: 1},
			wantKind: apperror.KindValidation,
		},
		{
			name:     "bad date",
			req:      request.CreateBookingRequest{HotelID: hotel.ID.String(), CheckIn: "10/03/2026", CheckOut: "2026-03-12", Guests: 1},
			wantKind: apperror.KindValidation,
		},
		{
			name: "unknown hotel",
			req:  request.CreateBookingRequest{HotelID: hotel.ID.String(), CheckIn: "2026-03-10", CheckOut: "2026-03-12", Guests: 1},
			setup: func(m *mocks) {
				m.hotels.On("FindByID", mock.Anything, hotel.ID).Return(nil, nil)
			},
			wantKind: apperror.KindNotFound,
		},
		{
			name: "check-out before check-in",
			req:  request.CreateBookingRequest{HotelID: hotel.ID.String(), CheckIn: "2026-03-12", CheckOut: "2026-03-10", Guests: 1},
			setup: func(m *mocks) {
				m.hotels.On("FindByID", mock.Anything, hotel.ID).Return(hotel, nil)
			},
			wantKind: apperror.KindValidation,
		},
		{
			name: "same day",
			req:  request.CreateBookingRequest{HotelID: hotel.ID.String(), CheckIn: "2026-03-10", CheckOut: "2026-03-10", Guests: 1},
			setup: func(m *mocks) {
				m.hotels.On("FindByID", mock.Anything, hotel.ID).Return(hotel, nil)
			},
			wantKind: apperror.KindValidation,
		},
		{
			name: "overlap",
			req:  request.CreateBookingRequest{HotelID: hotel.ID.String(), CheckIn: "2026-03-10", CheckOut: "2026-03-12", Guests: 1},
			setup: func(m *mocks) {
				m.hotels.On("FindByID", mock.Anything, hotel.ID).Return(hotel, nil)
				m.bookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(repository.ErrBookingOverlap)
			},
			wantKind: apperror.KindConflict,
		},
		{
			name: "store failure",
			req:  request.CreateBookingRequest{HotelID: hotel.ID.String(), CheckIn: "2026-03-10", CheckOut: "2026-03-12", Guests: 1},
			setup: func(m *mocks) {
				m.hotels.On("FindByID", mock.Anything, hotel.ID).Return(hotel, nil)
				m.bookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(errors.New("conn reset"))
			},
			wantKind: apperror.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, repo := newMocks()
			if tt.setup != nil {
				tt.setup(m)
			}

			svc := NewBookingService(repo, metrics.New(), zap.NewNop())
			_, err := svc.Create(context.Background(), guest, &tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	owner := uuid.New()
	guest := uuid.New()
	stranger := uuid.New()

	detail := func(status entity.BookingStatus) *entity.BookingDetail {
		return &entity.BookingDetail{
			Booking: entity.Booking{
				BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()},
				UserID:       guest,
				Status:       status,
			},
			Hotel: entity.Hotel{CreatedBy: owner},
		}
	}

	tests := []struct {
		name      string
		caller    authz.Identity
		status    entity.BookingStatus
		cancelErr error
		wantKind  apperror.Kind
		wantOK    bool
	}{
		{name: "guest", caller: authz.Identity{UserID: guest, Role: entity.RoleUser}, status: entity.BookingStatusActive, wantOK: true},
		{name: "hotel owner", caller: authz.Identity{UserID: owner, Role: entity.RoleHotelOwner}, status: entity.BookingStatusActive, wantOK: true},
		{name: "admin", caller: authz.Identity{UserID: stranger, Role: entity.RoleAdmin}, status: entity.BookingStatusActive, wantOK: true},
		{name: "stranger", caller: authz.Identity{UserID: stranger, Role: entity.RoleUser}, status: entity.BookingStatusActive, wantKind: apperror.KindForbidden},
		{name: "already cancelled", caller: authz.Identity{UserID: guest, Role: entity.RoleUser}, status: entity.BookingStatusCancelled, wantKind: apperror.KindConflict},
		{name: "lost race", caller: authz.Identity{UserID: guest, Role: entity.RoleUser}, status: entity.BookingStatusActive, cancelErr: repository.ErrBookingNotActive, wantKind: apperror.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, repo := newMocks()
			d := detail(tt.status)
			m.bookings.On("FindDetailByID", mock.Anything, d.ID).Return(d, nil)
			m.bookings.On("Cancel", mock.Anything, d.ID).Return(tt.cancelErr)

			svc := NewBookingService(repo, nil, zap.NewNop())
			resp, err := svc.Cancel(context.Background(), tt.caller, d.ID.String())

			if tt.wantOK {
				require.NoError(t, err)
				assert.Equal(t, entity.BookingStatusCancelled, resp.Status)
				m.bookings.AssertCalled(t, "Cancel", mock.Anything, d.ID)
				return
			}
			assert.Equal(t, tt.wantKind, apperror.KindOf(err))
		})
	}
}

func TestBookingService_CancelMissing(t *testing.T) {
	m, repo := newMocks()
	id := uuid.New()
	m.bookings.On("FindDetailByID", mock.Anything, id).Return(nil, nil)

	svc := NewBookingService(repo, nil, zap.NewNop())
	_, err := svc.Cancel(context.Background(), authz.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}, id.String())

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestBookingService_HotelBookings(t *testing.T) {
	owner := uuid.New()
	hotel := testHotel(owner, 80)

	m, repo := newMocks()
	m.hotels.On("FindByID", mock.Anything, hotel.ID).Return(hotel, nil)
	m.bookings.On("List", mock.Anything, repository.BookingFilter{HotelID: &hotel.ID}).Return([]*entity.BookingDetail{
		{
			Booking: entity.Booking{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, HotelID: hotel.ID},
			Guest:   entity.UserSummary{FirstName: "Ann", Email: "ann@example.com"},
		},
	}, nil)

	svc := NewBookingService(repo, nil, zap.NewNop())

	out, err := svc.HotelBookings(context.Background(), authz.Identity{UserID: owner, Role: entity.RoleHotelOwner}, hotel.ID.String())
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].User)
	assert.Equal(t, "ann@example.com", out[0].User.Email)
	assert.Nil(t, out[0].Hotel)

	_, err = svc.HotelBookings(context.Background(), authz.Identity{UserID: uuid.New(), Role: entity.RoleHotelOwner}, hotel.ID.String())
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
}

func TestBookingService_AdminOnly(t *testing.T) {
	m, repo := newMocks()
	m.bookings.On("List", mock.Anything, repository.BookingFilter{}).Return([]*entity.BookingDetail{
		{
			Booking: entity.Booking{
				BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now()},
				CheckIn:      time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
				CheckOut:     time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
				Status:       entity.BookingStatusActive,
			},
			Hotel: entity.Hotel{Title: "Sea View"},
			Guest: entity.UserSummary{FirstName: "Ann", LastName: "Lee"},
		},
	}, nil)

	svc := NewBookingService(repo, nil, zap.NewNop())
	user := authz.Identity{UserID: uuid.New(), Role: entity.RoleUser}
	admin := authz.Identity{UserID: uuid.New(), Role: entity.RoleAdmin}

	_, err := svc.AllBookings(context.Background(), user)
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(err))
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(svc.ExportAll(context.Background(), user, &bytes.Buffer{})))

	all, err := svc.AllBookings(context.Background(), admin)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotNil(t, all[0].Hotel)
	assert.NotNil(t, all[0].User)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportAll(context.Background(), admin, &buf))
	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ann Lee", rows[1][3])
}
