package wire

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/mailer"
)

// memStore is an in-memory stand-in for the Postgres repositories.
type memStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*entity.User
	hotels   map[uuid.UUID]*entity.Hotel
	bookings map[uuid.UUID]*entity.Booking
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uuid.UUID]*entity.User),
		hotels:   make(map[uuid.UUID]*entity.Hotel),
		bookings: make(map[uuid.UUID]*entity.Booking),
	}
}

func (s *memStore) repository() *repository.Repository {
	return &repository.Repository{
		User:    memUsers{s},
		Hotel:   memHotels{s},
		Booking: memBookings{s},
	}
}

type memUsers struct{ s *memStore }

func (r memUsers) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email && existing.DeletedAt == nil {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r memUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email && u.DeletedAt == nil {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memUsers) FindAll(_ context.Context) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if u.DeletedAt == nil {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memUsers) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r memUsers) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok || u.DeletedAt != nil {
		return repository.ErrNotFound
	}
	now := u.UpdatedAt
	u.DeletedAt = &now
	return nil
}

type memHotels struct{ s *memStore }

func (r memHotels) Create(_ context.Context, h *entity.Hotel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *h
	r.s.hotels[h.ID] = &cp
	return nil
}

func (r memHotels) FindByID(_ context.Context, id uuid.UUID) (*entity.Hotel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h, ok := r.s.hotels[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (r memHotels) withCreator(h *entity.Hotel) *entity.HotelWithCreator {
	out := &entity.HotelWithCreator{Hotel: *h}
	if u, ok := r.s.users[h.CreatedBy]; ok {
		out.Creator = u.Summary()
	}
	return out
}

func (r memHotels) FindWithCreator(_ context.Context, id uuid.UUID) (*entity.HotelWithCreator, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h, ok := r.s.hotels[id]
	if !ok {
		return nil, nil
	}
	return r.withCreator(h), nil
}

func (r memHotels) FindAllWithCreator(_ context.Context) ([]*entity.HotelWithCreator, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.HotelWithCreator, 0, len(r.s.hotels))
	for _, h := range r.s.hotels {
		out = append(out, r.withCreator(h))
	}
	return out, nil
}

func (r memHotels) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Hotel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Hotel, 0)
	for _, h := range r.s.hotels {
		if h.CreatedBy == ownerID {
			cp := *h
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r memHotels) Update(_ context.Context, h *entity.Hotel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.hotels[h.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *h
	r.s.hotels[h.ID] = &cp
	return nil
}

func (r memHotels) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.hotels[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.hotels, id)
	for bid, b := range r.s.bookings {
		if b.HotelID == id {
			delete(r.s.bookings, bid)
		}
	}
	return nil
}

type memBookings struct{ s *memStore }

func (r memBookings) CreateIfAvailable(_ context.Context, b *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.hotels[b.HotelID]; !ok {
		return repository.ErrNotFound
	}
	for _, existing := range r.s.bookings {
		if existing.HotelID == b.HotelID &&
			existing.Status == entity.BookingStatusActive &&
			!existing.CheckIn.After(b.CheckOut) &&
			!existing.CheckOut.Before(b.CheckIn) {
			return repository.ErrBookingOverlap
		}
	}
	cp := *b
	r.s.bookings[b.ID] = &cp
	return nil
}

func (r memBookings) detail(b *entity.Booking) *entity.BookingDetail {
	d := &entity.BookingDetail{Booking: *b}
	if h, ok := r.s.hotels[b.HotelID]; ok {
		d.Hotel = *h
	}
	if u, ok := r.s.users[b.UserID]; ok {
		d.Guest = u.Summary()
	}
	return d
}

func (r memBookings) FindDetailByID(_ context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, nil
	}
	return r.detail(b), nil
}

func (r memBookings) List(_ context.Context, f repository.BookingFilter) ([]*entity.BookingDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.BookingDetail, 0)
	for _, b := range r.s.bookings {
		if f.UserID != nil && b.UserID != *f.UserID {
			continue
		}
		if f.HotelID != nil && b.HotelID != *f.HotelID {
			continue
		}
		if f.HotelOwnerID != nil {
			h, ok := r.s.hotels[b.HotelID]
			if !ok || h.CreatedBy != *f.HotelOwnerID {
				continue
			}
		}
		out = append(out, r.detail(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memBookings) Cancel(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok || b.Status != entity.BookingStatusActive {
		return repository.ErrBookingNotActive
	}
	b.Status = entity.BookingStatusCancelled
	return nil
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}
