package agent

import (
	"context"
	"fmt"

	"github.com/tripweave/tripweave/extract"
	"github.com/tripweave/tripweave/schema"
)

const _localExpertPrompt = `You are a knowledgeable local expert for %s. Provide detailed local insights and recommendations for a visitor staying from %s to %s.
Their preferences: %s

Please provide recommendations for:
1. Hidden gems and local favorites
2. Cultural customs and etiquette
3. Local transportation tips
4. Food and dining recommendations
5. Safety considerations
6. Seasonal considerations
7. Local festivals or events during the visit
8. Best times for popular attractions
9. Local phrases and communication tips
10. Shopping and souvenirs

Format your response in clear sections with practical, actionable advice.`

// LocalExpertAgent prompts for the ten numbered advice sections and maps them
// into recommendation buckets by position. The mapping is positional on
// purpose: bucket i holds whatever the model put under heading i+1, so the
// prompt's section order is part of the contract.
type LocalExpertAgent struct {
	base
}

func NewLocalExpertAgent(opts ...Option) *LocalExpertAgent {
	return &LocalExpertAgent{base: newBase("local-expert", opts...)}
}

func (a *LocalExpertAgent) Process(ctx context.Context, request *schema.TravelPlanRequest) (*schema.LocalRecommendations, error) {
	a.onStart(ctx)
	if err := request.Validate(); err != nil {
		a.onEnd(ctx, err)
		return nil, err
	}

	prompt := fmt.Sprintf(_localExpertPrompt,
		request.Destination,
		request.StartDate.Format(_dateLayout),
		request.EndDate.Format(_dateLayout),
		preferencesJSON(request.Preferences))

	response, err := a.generate(ctx, prompt)
	if err != nil {
		a.onEnd(ctx, err)
		return nil, err
	}

	sections := extract.NumberedSections(response)
	recommendations := &schema.LocalRecommendations{
		HiddenGems:     extract.Section(sections, 0),
		Customs:        extract.Section(sections, 1),
		Transportation: extract.Section(sections, 2),
		Dining:         extract.Section(sections, 3),
		Safety:         extract.Section(sections, 4),
		Seasonal:       extract.Section(sections, 5),
		Events:         extract.Section(sections, 6),
		Timing:         extract.Section(sections, 7),
		Language:       extract.Section(sections, 8),
		Shopping:       extract.Section(sections, 9),
	}
	a.onEnd(ctx, nil)
	return recommendations, nil
}
