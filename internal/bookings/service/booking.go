package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "eventdesk/internal/bookings/errors"
	"eventdesk/internal/bookings/repository"
	"eventdesk/internal/bookings/validator"
	"eventdesk/pkg/config"
	apperrors "eventdesk/pkg/errors"
	"eventdesk/pkg/kafka"
	"eventdesk/pkg/model"
	"eventdesk/pkg/sanitizer"
	"eventdesk/pkg/scheduling"
)

// EventLimitProvider resolves the configured daily event limit. The
// settings service implements it.
type EventLimitProvider interface {
	EventLimit(ctx context.Context) (int, error)
}

// EventPublisher publishes booking lifecycle events. May be left nil
// when eventing is disabled.
type EventPublisher interface {
	Publish(ctx context.Context, event kafka.BookingEvent) error
}

// CalendarDay is one day of the availability calendar.
type CalendarDay struct {
	Date       string          `json:"date"`
	Count      int             `json:"count"`
	Tier       scheduling.Tier `json:"tier"`
	Selectable bool            `json:"selectable"`
}

// CalendarView is the availability calendar for one month.
type CalendarView struct {
	Month string        `json:"month"`
	Limit int           `json:"limit"`
	Days  []CalendarDay `json:"days"`
}

type BookingService interface {
	Create(ctx context.Context, booking *model.EventBooking) error
	GetByID(ctx context.Context, id string) (*model.EventBooking, error)
	GetAll(ctx context.Context, filter repository.BookingFilter, limit int, offset int64) ([]*model.EventBooking, int64, error)
	Update(ctx context.Context, id string, updates *model.EventBookingUpdate) error
	Delete(ctx context.Context, id string) error
	CheckConflict(ctx context.Context, candidate scheduling.Candidate) (*model.EventBooking, error)
	Calendar(ctx context.Context, month string, excludeID string) (*CalendarView, error)
	PendingPayments(ctx context.Context) ([]*model.EventBooking, int64, error)
	SetPaymentStatus(ctx context.Context, id string, paid bool) error
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.BookingLockRepository
	validator *validator.BookingValidator
	limits    EventLimitProvider
	publisher EventPublisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.BookingLockRepository,
	validator *validator.BookingValidator,
	limits EventLimitProvider,
	publisher EventPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		validator: validator,
		limits:    limits,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.EventBooking) error {
	booking.ID = ""
	s.sanitize(booking)
	if err := s.validate(booking); err != nil {
		return err
	}

	limit, err := s.limits.EventLimit(ctx)
	if err != nil {
		return apperrors.Internal("Failed to resolve daily event limit", err)
	}

	// Advisory locks on every day the booking covers keep two
	// concurrent requests for the same days from both passing the
	// conflict re-check.
	lockIDs, err := s.acquireDayLocks(ctx, booking.StartDate, booking.EndDate)
	if err != nil {
		return err
	}
	defer s.releaseDayLocks(ctx, lockIDs)

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		candidate := scheduling.Candidate{
			StartDate: booking.StartDate,
			EndDate:   booking.EndDate,
			StartTime: booking.StartTime,
			EndTime:   booking.EndTime,
		}
		if err := s.guardSchedule(sessCtx, candidate, limit); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			return apperrors.Internal("Failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return err
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"title", booking.Title,
		"start_date", booking.StartDate,
		"end_date", booking.EndDate,
	)
	s.publish(ctx, kafka.EventBookingCreated, *booking)
	return nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.EventBooking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, filter repository.BookingFilter, limit int, offset int64) ([]*model.EventBooking, int64, error) {
	if filter.StartDate != "" && !scheduling.ValidDate(filter.StartDate) {
		return nil, 0, apperrors.InvalidInput("start_date must be a date in YYYY-MM-DD format")
	}
	if filter.EndDate != "" && !scheduling.ValidDate(filter.EndDate) {
		return nil, 0, apperrors.InvalidInput("end_date must be a date in YYYY-MM-DD format")
	}

	var count int64
	var bookings []*model.EventBooking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx, filter)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, filter, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) Update(ctx context.Context, id string, updates *model.EventBookingUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		return apperrors.Internal("Failed to check booking existence", err)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Booking update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := updates.ApplyTo(*existing)
	s.sanitize(&merged)
	if err := s.validate(&merged); err != nil {
		return err
	}

	limit, err := s.limits.EventLimit(ctx)
	if err != nil {
		return apperrors.Internal("Failed to resolve daily event limit", err)
	}

	lockIDs, err := s.acquireDayLocks(ctx, merged.StartDate, merged.EndDate)
	if err != nil {
		return err
	}
	defer s.releaseDayLocks(ctx, lockIDs)

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		candidate := scheduling.Candidate{
			ExcludeID: id,
			StartDate: merged.StartDate,
			EndDate:   merged.EndDate,
			StartTime: merged.StartTime,
			EndTime:   merged.EndTime,
		}
		if err := s.guardSchedule(sessCtx, candidate, limit); err != nil {
			return err
		}
		if _, err := s.repo.Update(sessCtx, id, &merged); err != nil {
			return apperrors.Internal("Failed to update booking", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
		return err
	}

	s.cfg.Log.Info("Booking updated successfully", "id", id)
	merged.ID = id
	s.publish(ctx, kafka.EventBookingUpdated, merged)
	return nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		return apperrors.Internal("Failed to check booking existence", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.cfg.Log.Info("Booking deleted successfully", "id", id)
	s.publish(ctx, kafka.EventBookingDeleted, *existing)
	return nil
}

// CheckConflict runs the reactive pre-check used by the booking form:
// it reports the first existing booking the candidate schedule would
// collide with, without holding locks or writing anything.
func (s *bookingService) CheckConflict(ctx context.Context, candidate scheduling.Candidate) (*model.EventBooking, error) {
	// A half-filled form is not an error, there is just nothing to
	// check yet.
	if candidate.StartDate == "" || candidate.EndDate == "" ||
		candidate.StartTime == "" || candidate.EndTime == "" {
		return nil, nil
	}
	if !scheduling.ValidDate(candidate.StartDate) || !scheduling.ValidDate(candidate.EndDate) {
		return nil, apperrors.InvalidInput("start_date and end_date must be dates in YYYY-MM-DD format")
	}
	if candidate.EndDate < candidate.StartDate {
		return nil, apperrors.InvalidInput("end_date must not be before start_date")
	}

	existing, err := s.repo.FindOverlappingDates(ctx, candidate.StartDate, candidate.EndDate)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch bookings for conflict check", "error", err)
		return nil, apperrors.Internal("Failed to check for conflicts", err)
	}

	return scheduling.CheckConflict(candidate, derefBookings(existing)), nil
}

// Calendar builds the month availability view. When excludeID is set
// that booking is left out of the counts, so editing a booking shows
// the calendar as if it were not there.
func (s *bookingService) Calendar(ctx context.Context, month string, excludeID string) (*CalendarView, error) {
	first, last, ok := scheduling.MonthWindow(month)
	if !ok {
		return nil, apperrors.InvalidInput("month must be in YYYY-MM format")
	}

	limit, err := s.limits.EventLimit(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to resolve daily event limit", err)
	}

	bookings, err := s.repo.FindOverlappingDates(ctx, first, last)
	if err != nil {
		s.cfg.Log.Error("Failed to fetch bookings for calendar", "month", month, "error", err)
		return nil, apperrors.Internal("Failed to build calendar", err)
	}

	counts := scheduling.BuildDayCounts(derefBookings(bookings), excludeID)

	days := scheduling.DatesInRange(first, last)
	view := &CalendarView{
		Month: month,
		Limit: limit,
		Days:  make([]CalendarDay, 0, len(days)),
	}
	for _, day := range days {
		count := counts[day]
		view.Days = append(view.Days, CalendarDay{
			Date:       day,
			Count:      count,
			Tier:       scheduling.ClassifyDay(count, limit),
			Selectable: scheduling.IsDateSelectable(count, limit),
		})
	}

	return view, nil
}

func (s *bookingService) PendingPayments(ctx context.Context) ([]*model.EventBooking, int64, error) {
	var count int64
	var bookings []*model.EventBooking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.CountUnpaid(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count unpaid bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count pending payments", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindUnpaid(ctx)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list unpaid bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve pending payments", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) SetPaymentStatus(ctx context.Context, id string, paid bool) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.repo.SetPaymentStatus(ctx, id, paid); err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		return apperrors.Internal("Failed to update payment status", err)
	}

	s.cfg.Log.Info("Booking payment status updated", "id", id, "paid", paid)
	if paid {
		if booking, err := s.repo.FindByID(ctx, id); err == nil {
			s.publish(ctx, kafka.EventPaymentReceived, *booking)
		}
	}
	return nil
}

// --- Helpers ---

func (s *bookingService) sanitize(b *model.EventBooking) {
	b.Title = sanitizer.NormalizeTitle(b.Title)
	b.Location = sanitizer.NormalizeLocation(b.Location)
	b.Notes = sanitizer.TrimAndNormalize(b.Notes)
	b.Images = sanitizer.NormalizeImageURLs(b.Images)
}

func (s *bookingService) validate(booking *model.EventBooking) error {
	if err := s.validator.Validate(booking); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// guardSchedule re-checks the candidate against current data inside
// the transaction: no time conflict on any shared day, and no day in
// the candidate's range already at the daily limit.
func (s *bookingService) guardSchedule(ctx context.Context, candidate scheduling.Candidate, limit int) error {
	existing, err := s.repo.FindOverlappingDates(ctx, candidate.StartDate, candidate.EndDate)
	if err != nil {
		return apperrors.Internal("Failed to check existing bookings", err)
	}

	bookings := derefBookings(existing)

	if conflicting := scheduling.CheckConflict(candidate, bookings); conflicting != nil {
		return apperrors.Conflict(fmt.Sprintf(
			"Booking schedule overlaps with %q (%s, %s)",
			conflicting.Title,
			scheduling.DateRangeLabel(conflicting.StartDate, conflicting.EndDate),
			scheduling.TimeRangeLabel(conflicting.StartTime, conflicting.EndTime),
		))
	}

	counts := scheduling.BuildDayCounts(bookings, candidate.ExcludeID)
	for _, day := range scheduling.DatesInRange(candidate.StartDate, candidate.EndDate) {
		if counts[day] >= limit {
			return apperrors.Conflict(fmt.Sprintf(
				"Daily event limit (%d) reached on %s", limit, scheduling.FormatDate(day),
			))
		}
	}

	return nil
}

// acquireDayLocks takes one advisory lock per day the booking covers,
// in date order. On any failure the already-acquired locks are
// released before returning.
func (s *bookingService) acquireDayLocks(ctx context.Context, startDate, endDate string) ([]string, error) {
	days := scheduling.DatesInRange(startDate, endDate)
	if len(days) == 0 {
		return nil, apperrors.InvalidInput("Booking date range is invalid")
	}

	acquired := make([]string, 0, len(days))
	for _, day := range days {
		lockID := "booking_day_" + day
		lock := &model.BookingLock{
			ID:        lockID,
			ExpiresAt: time.Now().Add(10 * time.Second),
		}

		if _, err := s.lockRepo.Create(ctx, lock); err != nil {
			s.releaseDayLocks(ctx, acquired)
			if mongo.IsDuplicateKeyError(err) {
				return nil, apperrors.Conflict("These dates are currently being booked by another request. Please try again.")
			}
			return nil, apperrors.Internal("Failed to acquire booking lock", err)
		}
		acquired = append(acquired, lockID)
	}

	return acquired, nil
}

func (s *bookingService) releaseDayLocks(ctx context.Context, lockIDs []string) {
	for _, lockID := range lockIDs {
		if err := s.lockRepo.Delete(ctx, lockID); err != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", err)
		}
	}
}

func (s *bookingService) publish(ctx context.Context, eventType string, booking model.EventBooking) {
	if s.publisher == nil {
		return
	}
	event := kafka.NewBookingEvent(eventType, booking)
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event",
			"event_type", eventType,
			"booking_id", booking.ID,
			"error", err,
		)
	}
}

func derefBookings(bookings []*model.EventBooking) []model.EventBooking {
	out := make([]model.EventBooking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil {
			out = append(out, *b)
		}
	}
	return out
}
