package landedcost

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Category classifies a cost line item.
type Category string

const (
	FOB                  Category = "FOB"
	InternationalFreight Category = "InternationalFreight"
	Insurance            Category = "Insurance"
	II                   Category = "II" // import duty, the only category relieved by an EX-tariff
	IPI                  Category = "IPI"
	PISCOFINS            Category = "PIS_COFINS"
	ICMS                 Category = "ICMS"
	BrokerFees           Category = "BrokerFees"
	Stevedoring          Category = "Stevedoring"
	Warehousing          Category = "Warehousing"
	PortFees             Category = "PortFees"
	DomesticTransport    Category = "DomesticTransport"
	BondedWarehouse      Category = "BondedWarehouse"
	Demurrage            Category = "Demurrage"
	Other                Category = "Other"

	// Synthetic categories, only produced by Simulate.
	SimulatedWarehouse      Category = "SimulatedWarehouse"
	SimulatedAdditionalFees Category = "SimulatedAdditionalFees"
)

// Categories lists the categories a cost line item can carry, in display order.
var Categories = []Category{
	FOB, InternationalFreight, Insurance,
	II, IPI, PISCOFINS, ICMS,
	BrokerFees, Stevedoring, Warehousing, PortFees, DomesticTransport,
	BondedWarehouse, Demurrage, Other,
}

// allCategories is the display order, synthetic categories last.
var allCategories = slices.Concat(Categories, []Category{SimulatedWarehouse, SimulatedAdditionalFees})

var categoryOrder = func() map[Category]int {
	order := make(map[Category]int)
	for i, c := range allCategories {
		order[c] = i
	}
	return order
}()

// CIFCategories are the categories that make up the customs value (Cost, Insurance and Freight).
var CIFCategories = []Category{FOB, InternationalFreight, Insurance}

// Valid reports whether c is a line item category.
func (c Category) Valid() bool {
	_, ok := categoryOrder[c]
	return ok && !c.Synthetic()
}

// Synthetic reports whether c only exists in simulated breakdowns.
func (c Category) Synthetic() bool { return c == SimulatedWarehouse || c == SimulatedAdditionalFees }

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q%s", s, suggest(s, Categories))
}

// Status is the approval/payment state of a cost line item.
type Status string

const (
	PendingApproval Status = "PendingApproval"
	Approved        Status = "Approved"
	Processed       Status = "Processed"
	Reconciled      Status = "Reconciled"
	Paid            Status = "Paid"
	Disputed        Status = "Disputed"
	Cancelled       Status = "Cancelled"
)

// Statuses lists every Status.
var Statuses = []Status{PendingApproval, Approved, Processed, Reconciled, Paid, Disputed, Cancelled}

// Outstanding reports whether an item in this status is still to be paid.
func (s Status) Outstanding() bool { return s != Paid && s != Cancelled }

// ParseStatus parses a status name, case-insensitively.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, st := range Statuses {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q%s", s, suggest(s, Statuses))
}

// suggest returns a ", did you mean X?" hint for the closest candidate, or "" when nothing is
// close enough to be a typo.
func suggest[T ~string](s string, candidates []T) string {
	const maxDistance = 3
	best, bestDistance := "", maxDistance+1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(s), strings.ToLower(string(c)))
		if d < bestDistance {
			best, bestDistance = string(c), d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(", did you mean %q?", best)
}
