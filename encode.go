package landedcost

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/luizmugnaicomex-art/landedcost/date"
	"github.com/shopspring/decimal"
)

// This file contains the JSON snapshot formats exchanged with the record-storage and rate-source
// collaborators. Decoding goes through local structs with tag annotations, then each field is
// parsed into its domain type so that errors point at the offending value.

// jitem is the JSON form of a CostLineItem.
type jitem struct {
	ID               string       `json:"id,omitempty" jsonschema_description:"Stable identifier, generated from the content when missing"`
	Category         string       `json:"category" jsonschema:"enum=FOB,enum=InternationalFreight,enum=Insurance,enum=II,enum=IPI,enum=PIS_COFINS,enum=ICMS,enum=BrokerFees,enum=Stevedoring,enum=Warehousing,enum=PortFees,enum=DomesticTransport,enum=BondedWarehouse,enum=Demurrage,enum=Other"`
	Description      string       `json:"description,omitempty"`
	Value            json.Number  `json:"value" jsonschema:"type=number" jsonschema_description:"Face value in currency, never negative"`
	Currency         string       `json:"currency" jsonschema_description:"USD, BRL, EUR or CNY; other codes are taken as BRL"`
	Status           string       `json:"status" jsonschema:"enum=PendingApproval,enum=Approved,enum=Processed,enum=Reconciled,enum=Paid,enum=Disputed,enum=Cancelled"`
	DueDate          string       `json:"dueDate,omitempty" jsonschema:"format=date"`
	PaymentDate      string       `json:"paymentDate,omitempty" jsonschema:"format=date"`
	MonthlyProvision *json.Number `json:"monthlyProvision,omitempty" jsonschema:"type=number" jsonschema_description:"BRL amount used instead of the converted value in cash-flow projections"`
}

// jprofile is the JSON form of an ImportCostProfile.
type jprofile struct {
	ID                    string      `json:"id"`
	Items                 []jitem     `json:"items"`
	ExTariffPercent       json.Number `json:"exTariffPercent,omitempty" jsonschema:"type=number" jsonschema_description:"Granted import duty relief, 0 to 100"`
	Milestones            []Milestone `json:"milestones,omitempty"`
	DemurrageFreeTimeDays int         `json:"demurrageFreeTimeDays,omitempty"`
}

func parseDecimal(field string, n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, n, err)
	}
	return d, nil
}

func parseOptionalDate(field, s string) (*date.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := date.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return &d, nil
}

// itemID derives a stable ID for an item that has none. The import and the item's position are
// part of the name so that identical items never share an ID.
func itemID(importID string, index int, raw []byte) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, fmt.Appendf(nil, "%s/%d/%s", importID, index, raw)).String()
}

// decodeItem parses the raw JSON of the index-th item of import importID.
func decodeItem(importID string, index int, raw []byte) (CostLineItem, error) {
	var j jitem
	if err := json.Unmarshal(raw, &j); err != nil {
		return CostLineItem{}, err
	}
	item, err := j.toItem()
	if err != nil {
		return CostLineItem{}, fmt.Errorf("invalid cost item %s: %w", raw, err)
	}
	if item.ID == "" {
		item.ID = itemID(importID, index, raw)
	}
	return item, nil
}

// toItem parses a jitem.
func (j jitem) toItem() (CostLineItem, error) {
	var errs []error
	item := CostLineItem{ID: j.ID, Description: j.Description, Currency: Currency(strings.ToUpper(strings.TrimSpace(j.Currency)))}
	var err error
	if item.Category, err = ParseCategory(j.Category); err != nil {
		errs = append(errs, err)
	}
	if item.Status, err = ParseStatus(j.Status); err != nil {
		errs = append(errs, err)
	}
	if item.Value, err = parseDecimal("value", j.Value); err != nil {
		errs = append(errs, err)
	}
	if item.DueDate, err = parseOptionalDate("dueDate", j.DueDate); err != nil {
		errs = append(errs, err)
	}
	if item.PaymentDate, err = parseOptionalDate("paymentDate", j.PaymentDate); err != nil {
		errs = append(errs, err)
	}
	if j.MonthlyProvision != nil {
		p, err := parseDecimal("monthlyProvision", *j.MonthlyProvision)
		if err != nil {
			errs = append(errs, err)
		}
		item.MonthlyProvision = &p
	}
	return item, errors.Join(errs...)
}

// UnmarshalJSON decodes an item, parsing its category, status and dates.
func (c *CostLineItem) UnmarshalJSON(data []byte) error {
	item, err := decodeItem("", 0, data)
	if err != nil {
		return err
	}
	*c = item
	return nil
}

// UnmarshalJSON decodes a profile snapshot.
func (p *ImportCostProfile) UnmarshalJSON(data []byte) error {
	var j struct {
		jprofile
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	percent, err := parseDecimal("exTariffPercent", j.ExTariffPercent)
	if err != nil {
		return err
	}
	var items []CostLineItem
	for i, raw := range j.Items {
		item, err := decodeItem(j.ID, i, raw)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	*p = ImportCostProfile{
		ID:                    j.ID,
		Items:                 items,
		ExTariffPercent:       percent,
		Milestones:            j.Milestones,
		DemurrageFreeTimeDays: j.DemurrageFreeTimeDays,
	}
	return nil
}

func (p ImportCostProfile) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("items", p.Items)
	w.Append("exTariffPercent", p.ExTariffPercent)
	w.Optional("milestones", p.Milestones)
	w.Append("demurrageFreeTimeDays", p.DemurrageFreeTimeDays)
	return w.MarshalJSON()
}

// DecodeProfile reads a single JSON import profile and validates it.
func DecodeProfile(r io.Reader) (ImportCostProfile, error) {
	var p ImportCostProfile
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return ImportCostProfile{}, fmt.Errorf("cannot decode import profile: %w", err)
	}
	return p, p.Validate()
}

// DecodeRates reads a JSON exchange-rate table and validates it.
func DecodeRates(r io.Reader) (*ExchangeRateTable, error) {
	var t ExchangeRateTable
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("cannot decode exchange rates: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks that every sell rate is strictly positive, a zero rate would silently zero
// every converted amount.
func (t *ExchangeRateTable) Validate() error {
	var errs []error
	rates := []struct {
		name string
		rate decimal.Decimal
	}{{"usd.venda", t.USD.Venda}, {"eur.venda", t.EUR.Venda}, {"cny", t.CNY}}
	for _, r := range rates {
		if !r.rate.IsPositive() {
			errs = append(errs, fmt.Errorf("%s rate %s is not positive", r.name, r.rate))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid exchange rates of %s: %w", t.Date, err)
	}
	return nil
}

// DecodeItems reads a JSONL stream of {"importId": ..., "item": {...}} lines, as exported by the
// record-storage collaborator for cash-flow projection. name is for error messages only.
func DecodeItems(name string, r io.Reader) ([]ImportItem, error) {
	var items []ImportItem
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var j struct {
			ImportID string          `json:"importId"`
			Item     json.RawMessage `json:"item"`
		}
		if err := json.Unmarshal(line, &j); err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", name, lineno, err)
		}
		item, err := decodeItem(j.ImportID, lineno, j.Item)
		if err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", name, lineno, err)
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%q on line %d: %w", name, lineno, err)
		}
		items = append(items, ImportItem{ImportID: j.ImportID, Item: item})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", name, err)
	}
	return items, nil
}

// EncodeItems writes items as JSONL, the format read by DecodeItems.
func EncodeItems(w io.Writer, items []ImportItem) error {
	enc := json.NewEncoder(w)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return fmt.Errorf("cannot encode item %q: %w", it.Item.ID, err)
		}
	}
	return nil
}
