package services

import (
	"context"

	"bizmeet/internal/domain"
)

type mockEntrepreneurRepository struct {
	entrepreneurs map[string]*domain.Entrepreneur
	createErr     error
	updateErr     error
	lastCreated   *domain.Entrepreneur
	lastUpdated   *domain.Entrepreneur
}

func (m *mockEntrepreneurRepository) Create(ctx context.Context, e *domain.Entrepreneur) error {
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = "ent-new"
	m.lastCreated = e
	return nil
}

func (m *mockEntrepreneurRepository) GetByID(ctx context.Context, id string) (*domain.Entrepreneur, error) {
	e, ok := m.entrepreneurs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (m *mockEntrepreneurRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Entrepreneur, int, error) {
	return nil, 0, nil
}

func (m *mockEntrepreneurRepository) ListActive(ctx context.Context) ([]*domain.Entrepreneur, error) {
	return nil, nil
}

func (m *mockEntrepreneurRepository) Update(ctx context.Context, e *domain.Entrepreneur) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.lastUpdated = e
	return nil
}

func (m *mockEntrepreneurRepository) Delete(ctx context.Context, id string) error { return nil }

type mockEventRepository struct {
	events          map[string]*domain.Event
	entsByEvent     map[string][]*domain.Entrepreneur
	assignErr       error
	listEntsErr     error
	lastCreated     *domain.Event
	lastAssigned    *domain.EventEntrepreneur
	removedEventID  string
	removedEntID    string
}

func (m *mockEventRepository) Create(ctx context.Context, e *domain.Event) error {
	e.ID = "ev-new"
	m.lastCreated = e
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (m *mockEventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	return nil, 0, nil
}

func (m *mockEventRepository) Update(ctx context.Context, e *domain.Event) error { return nil }

func (m *mockEventRepository) Delete(ctx context.Context, id string) error { return nil }

func (m *mockEventRepository) AssignEntrepreneur(ctx context.Context, link *domain.EventEntrepreneur) error {
	if m.assignErr != nil {
		return m.assignErr
	}
	link.ID = "link-new"
	m.lastAssigned = link
	return nil
}

func (m *mockEventRepository) RemoveEntrepreneur(ctx context.Context, eventID, entrepreneurID string) error {
	m.removedEventID = eventID
	m.removedEntID = entrepreneurID
	return nil
}

func (m *mockEventRepository) ListEntrepreneurs(ctx context.Context, eventID string) ([]*domain.Entrepreneur, error) {
	if m.listEntsErr != nil {
		return nil, m.listEntsErr
	}
	return m.entsByEvent[eventID], nil
}

type mockParticipantRepository struct {
	participants map[string]*domain.Participant
}

func (m *mockParticipantRepository) Create(ctx context.Context, p *domain.Participant) error {
	p.ID = "par-new"
	return nil
}

func (m *mockParticipantRepository) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	p, ok := m.participants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (m *mockParticipantRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	return nil, 0, nil
}

func (m *mockParticipantRepository) Update(ctx context.Context, p *domain.Participant) error {
	return nil
}

func (m *mockParticipantRepository) Delete(ctx context.Context, id string) error { return nil }

type mockBookingRepository struct {
	bookings     map[string]*domain.MeetingBooking
	byEvent      map[string][]*domain.MeetingBooking
	existing     map[string]bool // eventID:entrepreneurID:slot -> taken
	createErr    error
	existsErr    error
	lastCreated  *domain.MeetingBooking
	deletedID    string
}

func slotKey(eventID, entrepreneurID string, slot domain.TimeSlot) string {
	return eventID + ":" + entrepreneurID + ":" + string(slot)
}

func (m *mockBookingRepository) Create(ctx context.Context, b *domain.MeetingBooking) error {
	if m.createErr != nil {
		return m.createErr
	}
	b.ID = "bk-new"
	m.lastCreated = b
	return nil
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id string) (*domain.MeetingBooking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}

func (m *mockBookingRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.MeetingBooking, error) {
	return m.byEvent[eventID], nil
}

func (m *mockBookingRepository) ExistsForSlot(ctx context.Context, eventID, entrepreneurID string, slot domain.TimeSlot) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.existing[slotKey(eventID, entrepreneurID, slot)], nil
}

func (m *mockBookingRepository) Delete(ctx context.Context, id string) error {
	m.deletedID = id
	return nil
}

type mockEmailService struct {
	sent    []*domain.BookingConfirmationEmailData
	sendErr error
}

func (m *mockEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, data)
	return nil
}
