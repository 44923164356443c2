package landedcost

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAggregate(t *testing.T) {
	b, err := Aggregate(sampleItems(), testRates())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	want := map[Category]string{
		FOB:                  "100000", // 20000 USD
		InternationalFreight: "15000",  // 3000 USD
		Insurance:            "1100",   // 200 EUR
		II:                   "12500",  // 12000 BRL + 100 USD
		IPI:                  "5000",
		BrokerFees:           "1500",
		PortFees:             "700", // 1000 CNY
	}
	got := make(map[Category]string)
	for c, m := range b.totals {
		got[c] = m.Value().String()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate() totals mismatch (-want +got):\n%s", diff)
	}
	assertMoney(t, "Total()", b.Total(), BRLs(135800))
	assertMoney(t, "CIF()", b.CIF(), BRLs(116100))
}

func TestAggregate_OnlyPresentCategories(t *testing.T) {
	b, err := Aggregate([]CostLineItem{item("a", FOB, "0", USD)}, testRates())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if got := b.Categories(); !slices.Equal(got, []Category{FOB}) {
		t.Errorf("Categories() = %v, want [FOB]", got)
	}
	// FOB is present with a zero total, which is not the same as absent.
	if m, ok := b.Get(FOB); !ok || !m.IsZero() {
		t.Errorf("Get(FOB) = %v, %v; want 0, true", m, ok)
	}
	if _, ok := b.Get(Insurance); ok {
		t.Error("Get(Insurance) should report an absent category")
	}
}

func TestAggregate_Empty(t *testing.T) {
	b, err := Aggregate(nil, testRates())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	if len(b.totals) != 0 {
		t.Errorf("totals = %v, want none", b.totals)
	}
	assertMoney(t, "Total()", b.Total(), BRLs(0))
}

func TestAggregate_RatesUnavailable(t *testing.T) {
	_, err := Aggregate(sampleItems(), nil)
	if !errors.Is(err, ErrRatesUnavailable) {
		t.Errorf("Aggregate(nil rates) error = %v, want ErrRatesUnavailable", err)
	}
}

func TestAggregate_PermutationInvariant(t *testing.T) {
	items := sampleItems()
	want, err := Aggregate(items, testRates())
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := slices.Clone(items)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		got, err := Aggregate(shuffled, testRates())
		if err != nil {
			t.Fatalf("Aggregate() error = %v", err)
		}
		if !got.Equal(want) {
			t.Fatalf("Aggregate(shuffled) = %v, want %v", got.totals, want.totals)
		}
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	items, rates := sampleItems(), testRates()
	first, _ := Aggregate(items, rates)
	second, _ := Aggregate(items, rates)
	for _, c := range first.Categories() {
		a, b := first.Amount(c), second.Amount(c)
		if a.Value().String() != b.Value().String() {
			t.Errorf("category %s: %s then %s", c, a.Value(), b.Value())
		}
	}
	if !first.Equal(second) {
		t.Error("two evaluations of the same snapshot differ")
	}
	for i, it := range sampleItems() {
		if !items[i].Value.Equal(it.Value) || items[i].Category != it.Category {
			t.Errorf("Aggregate() modified input item %d", i)
		}
	}
}

func TestCostBreakdown_MarshalJSON(t *testing.T) {
	b, _ := Aggregate([]CostLineItem{
		item("ins", Insurance, "10", BRL),
		item("fob", FOB, "1", USD),
	}, testRates())
	got, err := b.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	want := `{"perCategoryTotalsBRL":{"FOB":{"currency":"BRL","amount":"5"},"Insurance":{"currency":"BRL","amount":"10"}},"totalBRL":{"currency":"BRL","amount":"15"}}`
	if string(got) != want {
		t.Errorf("MarshalJSON() =\n%s\nwant\n%s", got, want)
	}
}
