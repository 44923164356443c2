package landedcost

import (
	"errors"
	"fmt"

	"github.com/luizmugnaicomex-art/landedcost/date"
	"github.com/shopspring/decimal"
)

// CostLineItem is a single cost of an import, in its original currency.
type CostLineItem struct {
	ID          string
	Category    Category
	Description string
	Value       decimal.Decimal // face value, in Currency, never negative
	Currency    Currency
	Status      Status
	DueDate     *date.Date
	PaymentDate *date.Date
	// MonthlyProvision is an explicit BRL estimate that replaces the converted face value when
	// projecting cash flow. Only strictly positive provisions are used.
	MonthlyProvision *decimal.Decimal
}

// Amount returns the face value as Money in the item's own currency.
func (c CostLineItem) Amount() Money { return Money{value: c.Value, cur: string(c.Currency)} }

// Validate checks the item and returns all failures joined.
func (c CostLineItem) Validate() error {
	var errs []error
	if c.Value.IsNegative() {
		errs = append(errs, fmt.Errorf("value %s is negative", c.Value))
	}
	if !c.Category.Valid() {
		errs = append(errs, fmt.Errorf("unknown category %q", c.Category))
	}
	switch c.Status {
	case Paid:
		if c.PaymentDate == nil {
			errs = append(errs, errors.New("paid item has no payment date"))
		}
	case "":
		errs = append(errs, errors.New("missing status"))
	default:
		if _, err := ParseStatus(string(c.Status)); err != nil {
			errs = append(errs, err)
		}
	}
	if c.MonthlyProvision != nil && c.MonthlyProvision.IsNegative() {
		errs = append(errs, fmt.Errorf("monthly provision %s is negative", c.MonthlyProvision))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid cost item %q: %w", c.ID, err)
	}
	return nil
}

// MarshalJSON writes the item with a stable field order, omitting unset optional fields.
func (c CostLineItem) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", c.ID)
	w.Append("category", c.Category)
	w.Optional("description", c.Description)
	w.Append("value", c.Value)
	w.Append("currency", c.Currency)
	w.Append("status", c.Status)
	if c.DueDate != nil {
		w.Append("dueDate", c.DueDate)
	}
	if c.PaymentDate != nil {
		w.Append("paymentDate", c.PaymentDate)
	}
	if c.MonthlyProvision != nil {
		w.Append("monthlyProvision", c.MonthlyProvision)
	}
	return w.MarshalJSON()
}
