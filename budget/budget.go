// Package budget validates extracted per-category amounts against a reported
// total and repairs inconsistent results so the invariant
// total == sum(categories) holds on every output.
package budget

import (
	"math"

	"github.com/tripweave/tripweave/extract"
	"github.com/tripweave/tripweave/schema"
)

const (
	CategoryAccommodation  = "accommodation"
	CategoryActivities     = "activities"
	CategoryTransportation = "transportation"
	CategoryFood           = "food"
	CategoryMiscellaneous  = "miscellaneous"
	CategoryTotal          = "total"
)

// When the per-category figures sum to less than this fraction of the
// reported total, they are judged unreliable and discarded.
const _reliableFraction = 0.5

// Proportions is the fixed split used when a total is redistributed across
// categories.
type Proportions struct {
	Accommodation  float64
	Food           float64
	Activities     float64
	Transportation float64
	Miscellaneous  float64
}

// DefaultProportions returns the documented 40/25/20/10/5 split.
func DefaultProportions() Proportions {
	return Proportions{
		Accommodation:  0.40,
		Food:           0.25,
		Activities:     0.20,
		Transportation: 0.10,
		Miscellaneous:  0.05,
	}
}

// DefaultCategories returns the amount categories with their domain
// plausibility floors. Declaration order matters: a line is attributed to the
// first category whose keywords it contains.
func DefaultCategories() []extract.AmountCategory {
	return []extract.AmountCategory{
		{Name: CategoryAccommodation, Keywords: []string{"accommodation", "hotel", "lodging"}, MinPlausible: 50},
		{Name: CategoryActivities, Keywords: []string{"activities", "attractions", "tours"}, MinPlausible: 20},
		{Name: CategoryTransportation, Keywords: []string{"transportation", "transport"}, MinPlausible: 10},
		{Name: CategoryFood, Keywords: []string{"food", "dining", "meals"}, MinPlausible: 20},
		{Name: CategoryMiscellaneous, Keywords: []string{"miscellaneous", "other", "shopping"}, MinPlausible: 10},
		{Name: CategoryTotal, Keywords: []string{"total", "overall"}, MinPlausible: 100},
	}
}

// DefaultFallback returns the fixed baseline budget used when nothing usable
// was extracted: a 7-night/7-day estimate ($60/night accommodation, $40/day
// food, $30/day activities, $10/day transport, $10/day misc). It is applied
// regardless of actual trip length.
func DefaultFallback() schema.Budget {
	return schema.Budget{
		Accommodation:  420,
		Food:           280,
		Activities:     210,
		Transportation: 70,
		Miscellaneous:  70,
		Total:          1050,
		Currency:       "USD",
	}
}

// Reconciler repairs extracted budget figures. The zero value is not usable;
// construct with New.
type Reconciler struct {
	categories  []extract.AmountCategory
	proportions Proportions
	fallback    schema.Budget
	currency    string
}

type Option func(*Reconciler)

// WithCategories overrides the keyword categories and plausibility floors.
func WithCategories(categories []extract.AmountCategory) Option {
	return func(r *Reconciler) {
		r.categories = categories
	}
}

// WithProportions overrides the redistribution split.
func WithProportions(p Proportions) Option {
	return func(r *Reconciler) {
		r.proportions = p
	}
}

// WithFallback overrides the budget emitted when nothing was extracted.
// Callers that want a length-scaled fallback supply one here.
func WithFallback(b schema.Budget) Option {
	return func(r *Reconciler) {
		r.fallback = b
	}
}

// WithCurrency overrides the currency code attached to reconciled budgets.
func WithCurrency(currency string) Option {
	return func(r *Reconciler) {
		r.currency = currency
	}
}

func New(opts ...Option) *Reconciler {
	r := &Reconciler{
		categories:  DefaultCategories(),
		proportions: DefaultProportions(),
		fallback:    DefaultFallback(),
		currency:    "USD",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Categories returns the amount categories the reconciler expects, for use
// with extract.Amounts.
func (r *Reconciler) Categories() []extract.AmountCategory {
	return r.categories
}

// Parse extracts amounts from free text and reconciles them in one step.
func (r *Reconciler) Parse(text string) *schema.Budget {
	return r.Reconcile(extract.Amounts(text, r.categories))
}

// Reconcile turns a possibly-partial category→amount map into a consistent
// budget. Absent categories count as zero. The repair rules, in order:
//
//  1. A positive total with category figures summing to less than half of it
//     means the figures were likely mixed with unrelated numbers; they are
//     discarded and the total redistributed by the configured proportions,
//     with the rounding remainder assigned to accommodation.
//  2. A missing total is recomputed from the category figures.
//  3. When nothing at all was extracted, the fallback budget is emitted.
//  4. Otherwise the category figures win and the total is re-anchored to
//     their sum.
func (r *Reconciler) Reconcile(found map[string]float64) *schema.Budget {
	b := &schema.Budget{
		Accommodation:  found[CategoryAccommodation],
		Activities:     found[CategoryActivities],
		Transportation: found[CategoryTransportation],
		Food:           found[CategoryFood],
		Miscellaneous:  found[CategoryMiscellaneous],
		Total:          found[CategoryTotal],
		Currency:       r.currency,
	}

	calculated := b.CategoryTotal()
	switch {
	case b.Total > 0 && calculated < _reliableFraction*b.Total:
		r.redistribute(b)
	case b.Total == 0 && calculated > 0:
		b.Total = calculated
	case b.Total == 0 && calculated == 0:
		*b = r.fallback
	default:
		b.Total = calculated
	}
	return b
}

func (r *Reconciler) redistribute(b *schema.Budget) {
	total := b.Total
	b.Accommodation = math.Round(total * r.proportions.Accommodation)
	b.Food = math.Round(total * r.proportions.Food)
	b.Activities = math.Round(total * r.proportions.Activities)
	b.Transportation = math.Round(total * r.proportions.Transportation)
	b.Miscellaneous = math.Round(total * r.proportions.Miscellaneous)

	// assign the rounding remainder to accommodation so the invariant
	// total == sum(categories) holds exactly
	b.Accommodation += total - b.CategoryTotal()
}
