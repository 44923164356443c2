package renderer

import (
	"errors"

	"github.com/luizmugnaicomex-art/landedcost"
	"github.com/luizmugnaicomex-art/landedcost/date"
	"github.com/shopspring/decimal"
)

// Breakdown is the data of the landed cost report.
// Amounts are kept as landedcost.Money so that templates can use its String methods.
type Breakdown struct {
	ImportID  string
	NotReady  string // why the figures are missing, empty when they are available
	RatesDate date.Date
	Rows      []BreakdownRow
	CIF       landedcost.Money
	Total     landedcost.Money
}

// BreakdownRow is a category total and its share of the landed cost.
type BreakdownRow struct {
	Category landedcost.Category
	Amount   landedcost.Money
	Share    string
}

// NewBreakdown computes the landed cost of p.
func NewBreakdown(p landedcost.ImportCostProfile, rates *landedcost.ExchangeRateTable) *Breakdown {
	v := &Breakdown{ImportID: p.ID}
	b, err := p.Breakdown(rates)
	if err != nil {
		v.NotReady = notReadyReason(err)
		return v
	}
	v.RatesDate = rates.Date
	for _, c := range b.Categories() {
		v.Rows = append(v.Rows, BreakdownRow{Category: c, Amount: b.Amount(c), Share: share(b.Amount(c), b.Total())})
	}
	v.CIF, v.Total = b.CIF(), b.Total()
	return v
}

// Comparison is the data of the simulation report.
type Comparison struct {
	ImportID       string
	NotReady       string
	ExTariff       string // granted relief, empty when not applied
	Schedule       string // warehouse schedule name, empty when none
	StorageDays    int
	Periods        int
	AdditionalFees landedcost.Money
	Rows           []ComparisonRow
	Original       landedcost.Money
	Simulated      landedcost.Money
	WarehouseFee   landedcost.Money
	Savings        landedcost.Money
}

// ComparisonRow is a category in both breakdowns.
type ComparisonRow struct {
	Category  landedcost.Category
	Original  landedcost.Money
	Simulated landedcost.Money
	Delta     landedcost.Money
}

// NewComparison simulates params on p.
func NewComparison(p landedcost.ImportCostProfile, params landedcost.SimulationParameters, rates *landedcost.ExchangeRateTable) *Comparison {
	v := &Comparison{ImportID: p.ID}
	cmp, err := landedcost.Simulate(p, params, rates)
	if err != nil {
		v.NotReady = notReadyReason(err)
		return v
	}
	if params.ApplyExTariff {
		v.ExTariff = p.ExTariffPercent.String() + "%"
	}
	if params.WarehouseSchedule != nil {
		v.Schedule = params.WarehouseSchedule.Name
		v.StorageDays = params.StorageDays
		v.Periods = landedcost.StoragePeriods(params.StorageDays)
	}
	if params.AdditionalFeesBRL.IsPositive() {
		v.AdditionalFees = landedcost.M(params.AdditionalFeesBRL, landedcost.ReportingCurrency)
	}
	for _, c := range cmp.Categories() {
		v.Rows = append(v.Rows, ComparisonRow{
			Category:  c,
			Original:  cmp.Original.Amount(c),
			Simulated: cmp.Simulated.Amount(c),
			Delta:     cmp.Delta(c),
		})
	}
	v.Original, v.Simulated = cmp.Original.Total(), cmp.Simulated.Total()
	v.WarehouseFee, v.Savings = cmp.WarehouseFee, cmp.Savings()
	return v
}

// Demurrage is the data of the demurrage report.
type Demurrage struct {
	ImportID      string
	NotReady      string
	Today         date.Date
	Arrival       date.Date
	FreeTimeDays  int
	FreeTimeEnd   date.Date
	DaysRemaining int
	OverdueDays   int
	DailyRate     landedcost.Money
	EstimatedCost *landedcost.Money
}

// NewDemurrage computes the demurrage exposure of p on day today.
func NewDemurrage(p landedcost.ImportCostProfile, today date.Date, dailyRateUSD decimal.Decimal) *Demurrage {
	v := &Demurrage{
		ImportID:     p.ID,
		Today:        today,
		FreeTimeDays: max(p.DemurrageFreeTimeDays, 0),
		DailyRate:    landedcost.M(dailyRateUSD, landedcost.USD),
	}
	e, ok := p.Demurrage(today, dailyRateUSD)
	if !ok {
		v.NotReady = "the container has not arrived at port yet, there is no free time running."
		return v
	}
	v.Arrival, _ = p.Arrival()
	v.FreeTimeEnd = e.FreeTimeEnd
	v.DaysRemaining = e.DaysRemaining
	if e.Overdue() {
		v.OverdueDays = -e.DaysRemaining
	}
	v.EstimatedCost = e.EstimatedCost
	return v
}

// CashFlow is the data of the cash-flow report.
type CashFlow struct {
	NotReady       string
	From, To       string // month labels
	RatesDate      date.Date
	Months         []landedcost.CashFlowMonth
	TotalProjected landedcost.Money
	TotalActual    landedcost.Money
	Pending        []PendingRow
}

// PendingRow is an outstanding item of the pending ledger, in its original currency.
type PendingRow struct {
	DueDate     date.Date
	ImportID    string
	Category    landedcost.Category
	Description string
	Amount      landedcost.Money
	Status      landedcost.Status
}

// NewCashFlow projects items over the months from start to end.
func NewCashFlow(items []landedcost.ImportItem, start, end date.Date, rates *landedcost.ExchangeRateTable) *CashFlow {
	r := date.MonthRange(start, end)
	v := &CashFlow{From: r.From.MonthLabel(), To: r.To.MonthLabel()}
	p, err := landedcost.ProjectCashFlow(items, start, end, rates)
	if err != nil {
		v.NotReady = notReadyReason(err)
		return v
	}
	v.RatesDate = rates.Date
	v.Months = p.Series
	v.TotalProjected, v.TotalActual = p.TotalProjected(), p.TotalActual()
	for _, it := range p.Pending {
		v.Pending = append(v.Pending, PendingRow{
			DueDate:     *it.Item.DueDate,
			ImportID:    cell(it.ImportID),
			Category:    it.Item.Category,
			Description: cell(it.Item.Description),
			Amount:      it.Item.Amount(),
			Status:      it.Item.Status,
		})
	}
	return v
}

func notReadyReason(err error) string {
	if errors.Is(err, landedcost.ErrRatesUnavailable) {
		return "exchange rates are unavailable, load a rate table to convert the costs into BRL."
	}
	return err.Error()
}

// share returns part as a percentage of total, "-" when total is zero.
func share(part, total landedcost.Money) string {
	if total.IsZero() {
		return "-"
	}
	return part.Value().Div(total.Value()).Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// BreakdownMarkdown renders the landed cost breakdown of p.
func BreakdownMarkdown(p landedcost.ImportCostProfile, rates *landedcost.ExchangeRateTable) string {
	return RenderBreakdown(NewBreakdown(p, rates))
}

// RenderBreakdown renders b to markdown.
func RenderBreakdown(b *Breakdown) string {
	return renderTemplate("breakdown", "breakdown.md", notReady, b)
}

// ComparisonMarkdown renders the simulation of params on p next to its real figures.
func ComparisonMarkdown(p landedcost.ImportCostProfile, params landedcost.SimulationParameters, rates *landedcost.ExchangeRateTable) string {
	return RenderComparison(NewComparison(p, params, rates))
}

// RenderComparison renders c to markdown.
func RenderComparison(c *Comparison) string {
	return renderTemplate("comparison", "comparison.md", notReady, c)
}

// DemurrageMarkdown renders the demurrage exposure of p on day today.
func DemurrageMarkdown(p landedcost.ImportCostProfile, today date.Date, dailyRateUSD decimal.Decimal) string {
	return RenderDemurrage(NewDemurrage(p, today, dailyRateUSD))
}

// RenderDemurrage renders d to markdown.
func RenderDemurrage(d *Demurrage) string {
	return renderTemplate("demurrage", "demurrage.md", notReady, d)
}

// CashFlowMarkdown renders the cash-flow projection of items from start to end.
func CashFlowMarkdown(items []landedcost.ImportItem, start, end date.Date, rates *landedcost.ExchangeRateTable) string {
	return RenderCashFlow(NewCashFlow(items, start, end, rates))
}

// RenderCashFlow renders c to markdown. The pending ledger is omitted when empty.
func RenderCashFlow(c *CashFlow) string {
	partials := map[string]string{
		"not_ready":        "not_ready.md",
		"cashflow_pending": "cashflow_pending.md",
	}
	return renderTemplate("cashflow", "cashflow.md", partials, c)
}

// Catalog is the data of the warehouse catalog report.
type Catalog struct {
	PeriodDays int
	Schedules  []CatalogRow
}

// CatalogRow is a warehouse schedule.
type CatalogRow struct {
	Name    string
	Percent string
	Minimum landedcost.Money
}

// CatalogMarkdown renders the warehouse schedules of c.
func CatalogMarkdown(c landedcost.Catalog) string {
	v := &Catalog{PeriodDays: landedcost.BillingPeriodDays}
	for _, s := range c {
		v.Schedules = append(v.Schedules, CatalogRow{
			Name:    cell(s.Name),
			Percent: s.PercentOfCIF.Mul(decimal.NewFromInt(100)).String() + "%",
			Minimum: landedcost.M(s.MinimumFeeBRL, landedcost.ReportingCurrency),
		})
	}
	return renderTemplate("catalog", "catalog.md", nil, v)
}
