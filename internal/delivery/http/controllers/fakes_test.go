package controllers

import (
	"context"
	"io"
	"log/slog"

	"bizmeet/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEntrepreneurService implements domain.EntrepreneurService for handler tests.
type fakeEntrepreneurService struct {
	createResult     *domain.Entrepreneur
	createErr        error
	lastCreateInput  domain.EntrepreneurInput
	getResult        *domain.Entrepreneur
	getErr           error
	listResult       []*domain.Entrepreneur
	listTotal        int
	listErr          error
	lastListParams   domain.PaginationParams
	listActiveResult []*domain.Entrepreneur
	listActiveErr    error
	updateResult     *domain.Entrepreneur
	updateErr        error
	lastUpdateID     string
	deleteErr        error
	lastDeleteID     string
}

func (f *fakeEntrepreneurService) Create(ctx context.Context, input domain.EntrepreneurInput) (*domain.Entrepreneur, error) {
	f.lastCreateInput = input
	return f.createResult, f.createErr
}

func (f *fakeEntrepreneurService) GetByID(ctx context.Context, id string) (*domain.Entrepreneur, error) {
	return f.getResult, f.getErr
}

func (f *fakeEntrepreneurService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Entrepreneur, int, error) {
	f.lastListParams = params
	return f.listResult, f.listTotal, f.listErr
}

func (f *fakeEntrepreneurService) ListActive(ctx context.Context) ([]*domain.Entrepreneur, error) {
	return f.listActiveResult, f.listActiveErr
}

func (f *fakeEntrepreneurService) Update(ctx context.Context, id string, input domain.EntrepreneurInput) (*domain.Entrepreneur, error) {
	f.lastUpdateID = id
	return f.updateResult, f.updateErr
}

func (f *fakeEntrepreneurService) Delete(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

// fakeParticipantService implements domain.ParticipantService for handler tests.
type fakeParticipantService struct {
	createResult *domain.Participant
	createErr    error
	getResult    *domain.Participant
	getErr       error
	listResult   []*domain.Participant
	listTotal    int
	listErr      error
	updateResult *domain.Participant
	updateErr    error
	lastUpdateID string
	deleteErr    error
}

func (f *fakeParticipantService) Create(ctx context.Context, input domain.ParticipantInput) (*domain.Participant, error) {
	return f.createResult, f.createErr
}

func (f *fakeParticipantService) GetByID(ctx context.Context, id string) (*domain.Participant, error) {
	return f.getResult, f.getErr
}

func (f *fakeParticipantService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Participant, int, error) {
	return f.listResult, f.listTotal, f.listErr
}

func (f *fakeParticipantService) Update(ctx context.Context, id string, input domain.ParticipantInput) (*domain.Participant, error) {
	f.lastUpdateID = id
	return f.updateResult, f.updateErr
}

func (f *fakeParticipantService) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createResult *domain.Event
	createErr    error
	getResult    *domain.Event
	getErr       error
	listResult   []*domain.Event
	listTotal    int
	listErr      error
	updateResult *domain.Event
	updateErr    error
	deleteErr    error
	assignResult *domain.EventEntrepreneur
	assignErr    error
	lastAssign   domain.EventEntrepreneurInput
	removeErr    error
}

func (f *fakeEventService) Create(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	return f.createResult, f.createErr
}

func (f *fakeEventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return f.getResult, f.getErr
}

func (f *fakeEventService) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	return f.listResult, f.listTotal, f.listErr
}

func (f *fakeEventService) Update(ctx context.Context, id string, input domain.EventInput) (*domain.Event, error) {
	return f.updateResult, f.updateErr
}

func (f *fakeEventService) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

func (f *fakeEventService) AssignEntrepreneur(ctx context.Context, input domain.EventEntrepreneurInput) (*domain.EventEntrepreneur, error) {
	f.lastAssign = input
	return f.assignResult, f.assignErr
}

func (f *fakeEventService) RemoveEntrepreneur(ctx context.Context, eventID, entrepreneurID string) error {
	return f.removeErr
}

// fakeBookingService implements domain.BookingService for handler tests.
type fakeBookingService struct {
	createResult      *domain.MeetingBooking
	createErr         error
	getResult         *domain.MeetingBooking
	getErr            error
	listResult        []*domain.MeetingBooking
	listErr           error
	deleteErr         error
	gridResult        *domain.AvailabilityGrid
	gridErr           error
	lastGridEventID   string
	lastGridOverrides domain.SlotOverrides
}

func (f *fakeBookingService) Create(ctx context.Context, input domain.BookingInput) (*domain.MeetingBooking, error) {
	return f.createResult, f.createErr
}

func (f *fakeBookingService) GetByID(ctx context.Context, id string) (*domain.MeetingBooking, error) {
	return f.getResult, f.getErr
}

func (f *fakeBookingService) ListByEventID(ctx context.Context, eventID string) ([]*domain.MeetingBooking, error) {
	return f.listResult, f.listErr
}

func (f *fakeBookingService) Delete(ctx context.Context, id string) error {
	return f.deleteErr
}

func (f *fakeBookingService) GetAvailabilityGrid(ctx context.Context, eventID string, overrides domain.SlotOverrides) (*domain.AvailabilityGrid, error) {
	f.lastGridEventID = eventID
	f.lastGridOverrides = overrides
	return f.gridResult, f.gridErr
}

// fakeSubscriber implements domain.BookingSubscriber for stream tests.
type fakeSubscriber struct {
	ch        chan domain.BookingChange
	cancelled bool
}

func (f *fakeSubscriber) Subscribe(ctx context.Context, eventID string) (<-chan domain.BookingChange, func(), error) {
	return f.ch, func() { f.cancelled = true }, nil
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	signUpResult *domain.User
	signUpErr    error
	loginToken   string
	loginUser    *domain.User
	loginErr     error
}

func (f *fakeAuthService) SignUp(ctx context.Context, email, password, name string) (*domain.User, error) {
	return f.signUpResult, f.signUpErr
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return f.loginToken, f.loginUser, f.loginErr
}
