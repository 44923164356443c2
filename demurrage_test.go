package landedcost

import (
	"testing"
	"time"

	"github.com/luizmugnaicomex-art/landedcost/date"
)

func TestComputeDemurrageExposure(t *testing.T) {
	milestones := []Milestone{
		{Stage: Booked, Date: date.New(2023, 11, 20)},
		{Stage: DepartedOrigin, Date: date.New(2023, 12, 1)},
		{Stage: ArrivalAtPort, Date: date.New(2024, 1, 1)},
	}
	rate := dec("150")

	tests := []struct {
		name          string
		freeTime      int
		today         date.Date
		wantEnd       date.Date
		wantRemaining int
		wantCost      *Money
	}{
		{"within free time", 45, date.New(2024, 2, 1), date.New(2024, 2, 15), 14, nil},
		{"last free day", 45, date.New(2024, 2, 15), date.New(2024, 2, 15), 0, nil},
		{"five days overdue", 45, date.New(2024, 2, 20), date.New(2024, 2, 15), -5, ptr(USDs(750))},
		{"negative free time is zero", -3, date.New(2024, 1, 2), date.New(2024, 1, 1), -1, ptr(USDs(150))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeDemurrageExposure(milestones, tt.freeTime, tt.today, rate)
			if !ok {
				t.Fatal("ComputeDemurrageExposure() not computable, want an exposure")
			}
			if got.FreeTimeEnd != tt.wantEnd {
				t.Errorf("FreeTimeEnd = %v, want %v", got.FreeTimeEnd, tt.wantEnd)
			}
			if got.DaysRemaining != tt.wantRemaining {
				t.Errorf("DaysRemaining = %d, want %d", got.DaysRemaining, tt.wantRemaining)
			}
			switch {
			case tt.wantCost == nil && got.EstimatedCost != nil:
				t.Errorf("EstimatedCost = %v, want none", *got.EstimatedCost)
			case tt.wantCost != nil && got.EstimatedCost == nil:
				t.Errorf("EstimatedCost = none, want %v", *tt.wantCost)
			case tt.wantCost != nil:
				assertMoney(t, "EstimatedCost", *got.EstimatedCost, *tt.wantCost)
			}
			if got.Overdue() != (tt.wantRemaining < 0) {
				t.Errorf("Overdue() = %v", got.Overdue())
			}
		})
	}
}

func TestComputeDemurrageExposure_NotArrived(t *testing.T) {
	milestones := []Milestone{{Stage: DepartedOrigin, Date: date.New(2024, 1, 1)}}
	if _, ok := ComputeDemurrageExposure(milestones, 10, date.New(2024, 6, 1), dec("100")); ok {
		t.Error("ComputeDemurrageExposure() without arrival should not be computable")
	}
	if _, ok := ComputeDemurrageExposure(nil, 10, date.New(2024, 6, 1), dec("100")); ok {
		t.Error("ComputeDemurrageExposure() without milestones should not be computable")
	}
}

func TestComputeDemurrageExposure_GrowsWithTime(t *testing.T) {
	p := ImportCostProfile{
		Milestones:            []Milestone{{Stage: ArrivalAtPort, Date: date.New(2024, 1, 1)}},
		DemurrageFreeTimeDays: 10,
	}
	previous := 0
	for day := 0; day < 30; day++ {
		e, ok := p.Demurrage(date.New(2024, 1, 1).Add(day), dec("100"))
		if !ok {
			t.Fatal("exposure not computable")
		}
		if day > 0 && e.DaysRemaining != previous-1 {
			t.Fatalf("day %d: DaysRemaining = %d, want %d", day, e.DaysRemaining, previous-1)
		}
		previous = e.DaysRemaining
	}
}

func TestComputeDemurrageExposure_TimestampsAreTruncated(t *testing.T) {
	// a late-evening event and an early-morning evaluation are a whole day apart, not a few hours.
	arrived := date.FromTime(time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC))
	today := date.FromTime(time.Date(2024, 1, 3, 0, 15, 0, 0, time.UTC))
	e, _ := ComputeDemurrageExposure([]Milestone{{Stage: ArrivalAtPort, Date: arrived}}, 1, today, dec("100"))
	if e.DaysRemaining != -1 {
		t.Errorf("DaysRemaining = %d, want -1", e.DaysRemaining)
	}
}

func TestComputeDemurrageExposure_EarliestArrival(t *testing.T) {
	milestones := []Milestone{
		{Stage: ArrivalAtPort, Date: date.New(2024, 1, 10)},
		{Stage: ArrivalAtPort, Date: date.New(2024, 1, 5)}, // recorded late
	}
	e, ok := ComputeDemurrageExposure(milestones, 10, date.New(2024, 1, 12), dec("100"))
	if !ok || e.FreeTimeEnd != date.New(2024, 1, 15) {
		t.Errorf("FreeTimeEnd = %v, %v, want 2024-01-15", e.FreeTimeEnd, ok)
	}
}

func TestComputeDemurrageExposure_UndatedArrival(t *testing.T) {
	milestones := []Milestone{{Stage: ArrivalAtPort}}
	if e, ok := ComputeDemurrageExposure(milestones, 10, date.New(2024, 6, 1), dec("100")); ok {
		t.Errorf("ComputeDemurrageExposure() = %+v, want not computable", e)
	}
}

func ptr[T any](v T) *T { return &v }
