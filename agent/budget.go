package agent

import (
	"context"
	"fmt"

	"github.com/tripweave/tripweave/budget"
	"github.com/tripweave/tripweave/schema"
)

const _budgetPrompt = `You are an expert travel budget planner. Create a detailed budget breakdown for the following trip:
Destination: %s
Start Date: %s
End Date: %s
Preferences: %s

Please provide a detailed budget breakdown with specific USD amounts for each category:

1. Accommodation: $XXX (total for the trip)
2. Activities: $XXX (museums, tours, attractions)
3. Transportation: $XXX (local transport, taxis, etc.)
4. Food: $XXX (meals, snacks, drinks)
5. Miscellaneous: $XXX (souvenirs, tips, emergency fund)

Total Budget: $XXX USD

For each category, provide:
- Specific dollar amounts
- Brief explanation of what's included
- Money-saving tips where applicable

Use this exact format with dollar signs and amounts clearly marked.`

// BudgetAgent prompts the model for a cost breakdown and reconciles the
// extracted figures into a consistent budget. Extraction never fails; a
// response with no usable amounts still yields the fallback budget.
type BudgetAgent struct {
	base
	reconciler *budget.Reconciler
}

func NewBudgetAgent(opts ...Option) *BudgetAgent {
	a := &BudgetAgent{base: newBase("budget", opts...)}
	a.reconciler = a.opts.Reconciler
	if a.reconciler == nil {
		a.reconciler = budget.New()
	}
	return a
}

func (a *BudgetAgent) Process(ctx context.Context, request *schema.TravelPlanRequest) (*schema.Budget, error) {
	a.onStart(ctx)
	if err := request.Validate(); err != nil {
		a.onEnd(ctx, err)
		return nil, err
	}

	prompt := fmt.Sprintf(_budgetPrompt,
		request.Destination,
		request.StartDate.Format(_dateLayout),
		request.EndDate.Format(_dateLayout),
		preferencesJSON(request.Preferences))

	response, err := a.generate(ctx, prompt)
	if err != nil {
		a.onEnd(ctx, err)
		return nil, err
	}

	b := a.reconciler.Parse(response)
	a.onEnd(ctx, nil)
	return b, nil
}
