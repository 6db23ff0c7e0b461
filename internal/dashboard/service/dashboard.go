package service

import (
	"context"
	"sync"
	"time"

	"eventdesk/internal/bookings/repository"
	"eventdesk/pkg/config"
	apperrors "eventdesk/pkg/errors"
	"eventdesk/pkg/model"
	"eventdesk/pkg/scheduling"
)

// Entry is a booking with display labels prebuilt for the landing page.
type Entry struct {
	*model.EventBooking
	DateLabel string `json:"date_label"`
	TimeLabel string `json:"time_label"`
}

// Summary is the landing-page snapshot: what is happening today, what
// is coming next, and how many bookings still owe payment.
type Summary struct {
	Date                string  `json:"date"`
	Today               []Entry `json:"today"`
	Upcoming            []Entry `json:"upcoming"`
	PendingPaymentCount int64   `json:"pending_payment_count"`
	TotalBookings       int64   `json:"total_bookings"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*Summary, error)
}

type dashboardService struct {
	repo repository.BookingRepository
	cfg  *config.Config
	now  func() time.Time
}

func NewDashboardService(repo repository.BookingRepository, cfg *config.Config) DashboardService {
	return &dashboardService{
		repo: repo,
		cfg:  cfg,
		now:  time.Now,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*Summary, error) {
	today := s.now().Format(scheduling.DateLayout)

	summary := &Summary{Date: today}
	var todayBookings, upcomingBookings []*model.EventBooking
	var errToday, errUpcoming, errPending, errTotal error
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		todayBookings, errToday = s.repo.FindByDay(ctx, today)
	}()

	go func() {
		defer wg.Done()
		upcomingBookings, errUpcoming = s.repo.FindUpcoming(ctx, today, s.cfg.DashboardUpcomingCount)
	}()

	go func() {
		defer wg.Done()
		summary.PendingPaymentCount, errPending = s.repo.CountUnpaid(ctx)
	}()

	go func() {
		defer wg.Done()
		summary.TotalBookings, errTotal = s.repo.Count(ctx, repository.BookingFilter{})
	}()

	wg.Wait()

	for _, err := range []error{errToday, errUpcoming, errPending, errTotal} {
		if err != nil {
			s.cfg.Log.Error("Failed to build dashboard summary", "error", err)
			return nil, apperrors.Internal("Failed to build dashboard summary", err)
		}
	}

	summary.Today = toEntries(todayBookings)
	summary.Upcoming = toEntries(upcomingBookings)

	return summary, nil
}

func toEntries(bookings []*model.EventBooking) []Entry {
	entries := make([]Entry, 0, len(bookings))
	for _, b := range bookings {
		entries = append(entries, Entry{
			EventBooking: b,
			DateLabel:    scheduling.DateRangeLabel(b.StartDate, b.EndDate),
			TimeLabel:    scheduling.TimeRangeLabel(b.StartTime, b.EndTime),
		})
	}
	return entries
}
