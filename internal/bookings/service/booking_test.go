package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "eventdesk/internal/bookings/errors"
	"eventdesk/internal/bookings/repository"
	"eventdesk/internal/bookings/validator"
	"eventdesk/pkg/config"
	mongotx "eventdesk/pkg/db/mongo"
	apperrors "eventdesk/pkg/errors"
	"eventdesk/pkg/kafka"
	"eventdesk/pkg/logger"
	"eventdesk/pkg/model"
	"eventdesk/pkg/scheduling"
)

// --- Mocks ---

type mockBookingRepository struct {
	bookings []*model.EventBooking
	nextID   int
	failFind bool
}

func (m *mockBookingRepository) Create(_ context.Context, booking *model.EventBooking) error {
	m.nextID++
	// 24 hex chars so handlers that re-validate ids stay happy.
	booking.ID = fmt.Sprintf("%024x", m.nextID)
	copied := *booking
	m.bookings = append(m.bookings, &copied)
	return nil
}

func (m *mockBookingRepository) FindByID(_ context.Context, id string) (*model.EventBooking, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) FindAll(_ context.Context, _ repository.BookingFilter, limit int, offset int64) ([]*model.EventBooking, error) {
	return m.bookings, nil
}

func (m *mockBookingRepository) Count(_ context.Context, _ repository.BookingFilter) (int64, error) {
	return int64(len(m.bookings)), nil
}

func (m *mockBookingRepository) FindOverlappingDates(_ context.Context, startDate, endDate string) ([]*model.EventBooking, error) {
	if m.failFind {
		return nil, fmt.Errorf("mongo unavailable")
	}
	var out []*model.EventBooking
	for _, b := range m.bookings {
		if scheduling.DateRangesOverlap(b.StartDate, b.EndDate, startDate, endDate) {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockBookingRepository) FindByDay(ctx context.Context, date string) ([]*model.EventBooking, error) {
	return m.FindOverlappingDates(ctx, date, date)
}

func (m *mockBookingRepository) FindUpcoming(_ context.Context, fromDate string, limit int) ([]*model.EventBooking, error) {
	var out []*model.EventBooking
	for _, b := range m.bookings {
		if b.StartDate > fromDate {
			out = append(out, b)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockBookingRepository) FindUnpaid(_ context.Context) ([]*model.EventBooking, error) {
	var out []*model.EventBooking
	for _, b := range m.bookings {
		if !b.PaymentStatus {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepository) CountUnpaid(ctx context.Context) (int64, error) {
	unpaid, _ := m.FindUnpaid(ctx)
	return int64(len(unpaid)), nil
}

func (m *mockBookingRepository) Update(_ context.Context, id string, booking *model.EventBooking) (*mongo.UpdateResult, error) {
	for i, b := range m.bookings {
		if b.ID == id {
			copied := *booking
			copied.ID = id
			m.bookings[i] = &copied
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return nil, bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) SetPaymentStatus(_ context.Context, id string, paid bool) error {
	for _, b := range m.bookings {
		if b.ID == id {
			b.PaymentStatus = paid
			return nil
		}
	}
	return bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) Delete(_ context.Context, id string) error {
	for i, b := range m.bookings {
		if b.ID == id {
			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)
			return nil
		}
	}
	return bookingserrors.ErrNotFound
}

func (m *mockBookingRepository) ExecuteTransaction(ctx context.Context, fn mongotx.TransactionFunc) error {
	return fn(nil)
}

type mockLockRepository struct {
	held    map[string]bool
	created int
	deleted int
}

func newMockLockRepository() *mockLockRepository {
	return &mockLockRepository{held: make(map[string]bool)}
}

func (m *mockLockRepository) Create(_ context.Context, lock *model.BookingLock) (*model.BookingLock, error) {
	if m.held[lock.ID] {
		return nil, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	m.held[lock.ID] = true
	m.created++
	return lock, nil
}

func (m *mockLockRepository) Delete(_ context.Context, lockID string) error {
	delete(m.held, lockID)
	m.deleted++
	return nil
}

type fixedLimit int

func (f fixedLimit) EventLimit(context.Context) (int, error) { return int(f), nil }

type capturePublisher struct {
	events []kafka.BookingEvent
}

func (c *capturePublisher) Publish(_ context.Context, event kafka.BookingEvent) error {
	c.events = append(c.events, event)
	return nil
}

// --- Fixtures ---

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: logger.LevelError, Output: io.Discard}),
	}
}

func newService(repo *mockBookingRepository, locks *mockLockRepository, limit int, pub EventPublisher) BookingService {
	cfg := testConfig()
	return NewBookingService(repo, locks, validator.NewBookingValidator(cfg.Log), fixedLimit(limit), pub, cfg)
}

func testBooking(title, startDate, endDate, startTime, endTime string) *model.EventBooking {
	return &model.EventBooking{
		CustomerID:  "66f0000000000000000000bb",
		EventTypeID: "66f0000000000000000000cc",
		Title:       title,
		StartDate:   startDate,
		EndDate:     endDate,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    "Lotus Garden Hall",
		TotalPrice:  50000,
	}
}

// --- Tests ---

func TestCreateBooking(t *testing.T) {
	repo := &mockBookingRepository{}
	locks := newMockLockRepository()
	pub := &capturePublisher{}
	svc := newService(repo, locks, 4, pub)

	booking := testBooking("Sharma Wedding", "2026-06-10", "2026-06-11", "10:00", "18:00")
	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if booking.ID == "" {
		t.Error("expected booking ID to be assigned")
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected 1 stored booking, got %d", len(repo.bookings))
	}
	if locks.created != 2 {
		t.Errorf("expected 2 day locks for a 2-day booking, got %d", locks.created)
	}
	if locks.deleted != 2 {
		t.Errorf("expected all locks released, deleted = %d", locks.deleted)
	}
	if len(pub.events) != 1 || pub.events[0].EventType != kafka.EventBookingCreated {
		t.Errorf("expected one booking.created event, got %+v", pub.events)
	}
}

func TestCreateBookingRejectsConflict(t *testing.T) {
	repo := &mockBookingRepository{}
	locks := newMockLockRepository()
	svc := newService(repo, locks, 4, nil)

	first := testBooking("Morning Shoot", "2026-06-10", "2026-06-10", "10:00", "14:00")
	if err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("Create() first booking error: %v", err)
	}

	second := testBooking("Overlapping Shoot", "2026-06-10", "2026-06-10", "13:00", "16:00")
	err := svc.Create(context.Background(), second)
	if err == nil {
		t.Fatal("expected conflict error, got nil")
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected CONFLICT error, got %v", err)
	}
	if len(repo.bookings) != 1 {
		t.Errorf("conflicting booking must not be stored, have %d", len(repo.bookings))
	}
	if len(locks.held) != 0 {
		t.Errorf("locks must be released after a rejected create, still held: %v", locks.held)
	}
}

func TestCreateBookingAllowsBackToBack(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newService(repo, newMockLockRepository(), 4, nil)

	first := testBooking("Morning Shoot", "2026-06-10", "2026-06-10", "10:00", "12:00")
	if err := svc.Create(context.Background(), first); err != nil {
		t.Fatalf("Create() first booking error: %v", err)
	}

	second := testBooking("Afternoon Shoot", "2026-06-10", "2026-06-10", "12:00", "14:00")
	if err := svc.Create(context.Background(), second); err != nil {
		t.Errorf("back-to-back booking should be allowed, got: %v", err)
	}
}

func TestCreateBookingEnforcesDayLimit(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newService(repo, newMockLockRepository(), 2, nil)

	slots := [][2]string{{"08:00", "09:00"}, {"10:00", "11:00"}}
	for i, slot := range slots {
		b := testBooking(fmt.Sprintf("Event %d", i), "2026-06-10", "2026-06-10", slot[0], slot[1])
		if err := svc.Create(context.Background(), b); err != nil {
			t.Fatalf("Create() booking %d error: %v", i, err)
		}
	}

	extra := testBooking("One Too Many", "2026-06-10", "2026-06-10", "12:00", "13:00")
	err := svc.Create(context.Background(), extra)
	if err == nil {
		t.Fatal("expected day limit error, got nil")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected CONFLICT error for day limit, got %v", err)
	}
	if !strings.Contains(appErr.Message, "limit") {
		t.Errorf("expected limit message, got %q", appErr.Message)
	}
}

func TestCreateBookingLockContention(t *testing.T) {
	repo := &mockBookingRepository{}
	locks := newMockLockRepository()
	locks.held["booking_day_2026-06-11"] = true
	svc := newService(repo, locks, 4, nil)

	booking := testBooking("Contended", "2026-06-10", "2026-06-12", "10:00", "12:00")
	err := svc.Create(context.Background(), booking)
	if err == nil {
		t.Fatal("expected lock contention error, got nil")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected CONFLICT for held lock, got %v", err)
	}
	if locks.held["booking_day_2026-06-10"] {
		t.Error("partially acquired locks must be released on contention")
	}
}

func TestCreateBookingValidationFailure(t *testing.T) {
	svc := newService(&mockBookingRepository{}, newMockLockRepository(), 4, nil)

	booking := testBooking("Bad Times", "2026-06-10", "2026-06-10", "18:00", "10:00")
	err := svc.Create(context.Background(), booking)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestUpdateBookingSkipsSelfConflict(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newService(repo, newMockLockRepository(), 4, nil)

	booking := testBooking("Sharma Wedding", "2026-06-10", "2026-06-10", "10:00", "14:00")
	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Stretching the same booking's hours must not conflict with itself.
	endTime := "16:00"
	err := svc.Update(context.Background(), booking.ID, &model.EventBookingUpdate{EndTime: &endTime})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	updated, err := svc.GetByID(context.Background(), booking.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if updated.EndTime != "16:00" {
		t.Errorf("EndTime = %s, want 16:00", updated.EndTime)
	}
}

func TestUpdateBookingRejectsConflictWithOthers(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newService(repo, newMockLockRepository(), 4, nil)

	first := testBooking("Morning Shoot", "2026-06-10", "2026-06-10", "10:00", "12:00")
	second := testBooking("Evening Gala", "2026-06-10", "2026-06-10", "18:00", "21:00")
	for _, b := range []*model.EventBooking{first, second} {
		if err := svc.Create(context.Background(), b); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	startTime := "11:00"
	endTime := "19:00"
	err := svc.Update(context.Background(), second.ID, &model.EventBookingUpdate{
		StartTime: &startTime,
		EndTime:   &endTime,
	})
	if err == nil {
		t.Fatal("expected conflict error, got nil")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeConflict {
		t.Errorf("expected CONFLICT error, got %v", err)
	}
}

func TestUpdateBookingNotFound(t *testing.T) {
	svc := newService(&mockBookingRepository{}, newMockLockRepository(), 4, nil)

	title := "Ghost"
	err := svc.Update(context.Background(), "66f0000000000000000000ff", &model.EventBookingUpdate{Title: &title})
	if err == nil {
		t.Fatal("expected not found error, got nil")
	}
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestDeleteBookingPublishesEvent(t *testing.T) {
	repo := &mockBookingRepository{}
	pub := &capturePublisher{}
	svc := newService(repo, newMockLockRepository(), 4, pub)

	booking := testBooking("Sharma Wedding", "2026-06-10", "2026-06-10", "10:00", "14:00")
	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := svc.Delete(context.Background(), booking.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if len(repo.bookings) != 0 {
		t.Error("expected booking to be removed")
	}

	last := pub.events[len(pub.events)-1]
	if last.EventType != kafka.EventBookingDeleted {
		t.Errorf("last event type = %s, want %s", last.EventType, kafka.EventBookingDeleted)
	}
}

func TestCheckConflict(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newService(repo, newMockLockRepository(), 4, nil)

	existing := testBooking("Morning Shoot", "2026-06-10", "2026-06-10", "10:00", "14:00")
	if err := svc.Create(context.Background(), existing); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	conflicting, err := svc.CheckConflict(context.Background(), scheduling.Candidate{
		StartDate: "2026-06-10", EndDate: "2026-06-10",
		StartTime: "13:00", EndTime: "15:00",
	})
	if err != nil {
		t.Fatalf("CheckConflict() error: %v", err)
	}
	if conflicting == nil || conflicting.ID != existing.ID {
		t.Errorf("expected conflict with %s, got %+v", existing.ID, conflicting)
	}

	free, err := svc.CheckConflict(context.Background(), scheduling.Candidate{
		StartDate: "2026-06-11", EndDate: "2026-06-11",
		StartTime: "13:00", EndTime: "15:00",
	})
	if err != nil {
		t.Fatalf("CheckConflict() error: %v", err)
	}
	if free != nil {
		t.Errorf("expected no conflict, got %+v", free)
	}
}

func TestCheckConflictBadInput(t *testing.T) {
	svc := newService(&mockBookingRepository{}, newMockLockRepository(), 4, nil)

	_, err := svc.CheckConflict(context.Background(), scheduling.Candidate{
		StartDate: "garbage", EndDate: "2026-06-10",
		StartTime: "10:00", EndTime: "12:00",
	})
	if err == nil {
		t.Fatal("expected error for bad start date")
	}

	_, err = svc.CheckConflict(context.Background(), scheduling.Candidate{
		StartDate: "2026-06-12", EndDate: "2026-06-10",
		StartTime: "10:00", EndTime: "12:00",
	})
	if err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestCheckConflictIncompleteCandidate(t *testing.T) {
	svc := newService(&mockBookingRepository{}, newMockLockRepository(), 4, nil)

	conflicting, err := svc.CheckConflict(context.Background(), scheduling.Candidate{
		StartDate: "2026-06-10", EndDate: "2026-06-10", StartTime: "10:00",
	})
	if err != nil {
		t.Fatalf("CheckConflict() error: %v", err)
	}
	if conflicting != nil {
		t.Errorf("expected no conflict for incomplete candidate, got %+v", conflicting)
	}
}

func TestCalendar(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newService(repo, newMockLockRepository(), 2, nil)

	bookings := []*model.EventBooking{
		testBooking("A", "2026-06-10", "2026-06-10", "08:00", "09:00"),
		testBooking("B", "2026-06-10", "2026-06-10", "10:00", "11:00"),
		testBooking("C", "2026-06-15", "2026-06-16", "10:00", "11:00"),
	}
	for _, b := range bookings {
		if err := svc.Create(context.Background(), b); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}

	view, err := svc.Calendar(context.Background(), "2026-06", "")
	if err != nil {
		t.Fatalf("Calendar() error: %v", err)
	}

	if view.Month != "2026-06" || view.Limit != 2 {
		t.Errorf("view header = %s/%d, want 2026-06/2", view.Month, view.Limit)
	}
	if len(view.Days) != 30 {
		t.Fatalf("expected 30 days for June, got %d", len(view.Days))
	}

	byDate := make(map[string]CalendarDay, len(view.Days))
	for _, d := range view.Days {
		byDate[d.Date] = d
	}

	full := byDate["2026-06-10"]
	if full.Count != 2 || full.Tier != scheduling.TierUnavailable || full.Selectable {
		t.Errorf("2026-06-10 = %+v, want count 2, unavailable, not selectable", full)
	}
	partial := byDate["2026-06-15"]
	if partial.Count != 1 || partial.Tier != scheduling.TierAvailable || !partial.Selectable {
		t.Errorf("2026-06-15 = %+v, want count 1, available, selectable", partial)
	}
	empty := byDate["2026-06-01"]
	if empty.Count != 0 || empty.Tier != scheduling.TierAvailable {
		t.Errorf("2026-06-01 = %+v, want empty available day", empty)
	}
}

func TestCalendarExcludesBooking(t *testing.T) {
	repo := &mockBookingRepository{}
	svc := newService(repo, newMockLockRepository(), 1, nil)

	booking := testBooking("Solo", "2026-06-10", "2026-06-10", "10:00", "11:00")
	if err := svc.Create(context.Background(), booking); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	view, err := svc.Calendar(context.Background(), "2026-06", booking.ID)
	if err != nil {
		t.Fatalf("Calendar() error: %v", err)
	}
	for _, d := range view.Days {
		if d.Date == "2026-06-10" && d.Count != 0 {
			t.Errorf("excluded booking still counted on %s: %+v", d.Date, d)
		}
	}
}

func TestCalendarBadMonth(t *testing.T) {
	svc := newService(&mockBookingRepository{}, newMockLockRepository(), 4, nil)

	if _, err := svc.Calendar(context.Background(), "June 2026", ""); err == nil {
		t.Error("expected error for malformed month")
	}
}

func TestPendingPayments(t *testing.T) {
	repo := &mockBookingRepository{}
	pub := &capturePublisher{}
	svc := newService(repo, newMockLockRepository(), 4, pub)

	paid := testBooking("Paid Event", "2026-06-10", "2026-06-10", "08:00", "09:00")
	unpaid := testBooking("Unpaid Event", "2026-06-11", "2026-06-11", "08:00", "09:00")
	for _, b := range []*model.EventBooking{paid, unpaid} {
		if err := svc.Create(context.Background(), b); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
	}
	if err := svc.SetPaymentStatus(context.Background(), paid.ID, true); err != nil {
		t.Fatalf("SetPaymentStatus() error: %v", err)
	}

	pending, count, err := svc.PendingPayments(context.Background())
	if err != nil {
		t.Fatalf("PendingPayments() error: %v", err)
	}
	if count != 1 || len(pending) != 1 || pending[0].ID != unpaid.ID {
		t.Errorf("PendingPayments() = %d bookings (count %d), want just %s", len(pending), count, unpaid.ID)
	}

	last := pub.events[len(pub.events)-1]
	if last.EventType != kafka.EventPaymentReceived {
		t.Errorf("expected payment event after SetPaymentStatus, got %s", last.EventType)
	}
}
