package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"weddingplanner/internal/model"
	"weddingplanner/internal/repository"
)

// DashboardService computes summary statistics over a user's records.
type DashboardService interface {
	Summarize(ctx context.Context, ownerID string) (*model.DashboardSummary, error)
}

type dashboardService struct {
	budgets repository.RecordRepository[model.Budget]
	guests  repository.RecordRepository[model.Guest]
	tasks   repository.RecordRepository[model.Task]
	vendors repository.RecordRepository[model.Vendor]
	limit   int
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(repos *repository.Repositories, limit int) DashboardService {
	return &dashboardService{
		budgets: repos.Budgets,
		guests:  repos.Guests,
		tasks:   repos.Tasks,
		vendors: repos.Vendors,
		limit:   limit,
	}
}

// Summarize reads the four summarized kinds concurrently. It is a best-effort
// snapshot: writes racing with it may or may not be reflected. If any read
// fails no summary is returned and every failing kind is named in the error.
func (s *dashboardService) Summarize(ctx context.Context, ownerID string) (*model.DashboardSummary, error) {
	var (
		summary model.DashboardSummary
		errs    [4]error
		g       errgroup.Group
	)

	g.Go(func() error {
		budgets, err := s.budgets.ListByOwner(ctx, ownerID, s.limit)
		if err != nil {
			errs[0] = fmt.Errorf("summarize budgets: %w", err)
			return errs[0]
		}
		summary.Budget = SummarizeBudgets(budgets)
		return nil
	})
	g.Go(func() error {
		guests, err := s.guests.ListByOwner(ctx, ownerID, s.limit)
		if err != nil {
			errs[1] = fmt.Errorf("summarize guests: %w", err)
			return errs[1]
		}
		summary.Guests = SummarizeGuests(guests)
		return nil
	})
	g.Go(func() error {
		tasks, err := s.tasks.ListByOwner(ctx, ownerID, s.limit)
		if err != nil {
			errs[2] = fmt.Errorf("summarize tasks: %w", err)
			return errs[2]
		}
		summary.Tasks = SummarizeTasks(tasks)
		return nil
	})
	g.Go(func() error {
		vendors, err := s.vendors.ListByOwner(ctx, ownerID, s.limit)
		if err != nil {
			errs[3] = fmt.Errorf("summarize vendors: %w", err)
			return errs[3]
		}
		summary.Vendors = SummarizeVendors(vendors)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Join(errs[:]...)
	}
	return &summary, nil
}

// SummarizeBudgets totals planned and spent amounts. Sums are exact decimal
// additions converted to float64 at the end.
func SummarizeBudgets(budgets []model.Budget) model.BudgetSummary {
	planned := decimal.Zero
	spent := decimal.Zero
	categories := make(map[string]struct{}, len(budgets))
	for _, b := range budgets {
		planned = planned.Add(decimal.NewFromFloat(b.Planned()))
		spent = spent.Add(decimal.NewFromFloat(b.SpentAmount))
		categories[b.Category] = struct{}{}
	}
	return model.BudgetSummary{
		TotalPlanned: planned.InexactFloat64(),
		TotalSpent:   spent.InexactFloat64(),
		Remaining:    planned.Sub(spent).InexactFloat64(),
		Categories:   len(categories),
	}
}

// SummarizeGuests counts guests per RSVP status. Statuses outside
// pending/accepted/declined count toward the total only.
func SummarizeGuests(guests []model.Guest) model.GuestSummary {
	out := model.GuestSummary{Total: len(guests)}
	for _, g := range guests {
		switch g.RSVPStatus {
		case model.RSVPAccepted:
			out.Accepted++
		case model.RSVPDeclined:
			out.Declined++
		case model.RSVPPending:
			out.Pending++
		}
	}
	return out
}

func SummarizeTasks(tasks []model.Task) model.TaskSummary {
	out := model.TaskSummary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			out.Completed++
		}
	}
	out.Pending = out.Total - out.Completed
	return out
}

func SummarizeVendors(vendors []model.Vendor) model.VendorSummary {
	out := model.VendorSummary{Total: len(vendors)}
	for _, v := range vendors {
		if v.Status == model.VendorStatusBooked {
			out.Booked++
		}
	}
	return out
}
