package schema

import "time"

// TravelPlanRequest is the input every agent consumes. Agents never mutate it;
// the coordinator copies it when threading one agent's output into another's
// preferences.
type TravelPlanRequest struct {
	Destination string      `json:"destination"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     time.Time   `json:"endDate"`
	Preferences Preferences `json:"preferences"`
}

// Preferences carries optional trip parameters plus the typed cross-agent
// inputs: LocalRecommendations feeds the itinerary agent, PlannedActivities
// feeds the budget agent.
type Preferences struct {
	Budget               string                `json:"budget,omitempty"`
	Interests            []string              `json:"interests,omitempty"`
	AccommodationType    string                `json:"accommodationType,omitempty"`
	TravelStyle          string                `json:"travelStyle,omitempty"`
	Origin               string                `json:"origin,omitempty"`
	LocalRecommendations *LocalRecommendations `json:"localRecommendations,omitempty"`
	PlannedActivities    []DayPlan             `json:"plannedActivities,omitempty"`
}

// Validate rejects requests whose dates cannot form a trip. Same-day start and
// end is allowed. Time-of-day is ignored.
func (r *TravelPlanRequest) Validate() error {
	if r.Destination == "" {
		return ErrMissingDestination
	}
	start := truncateDay(r.StartDate)
	end := truncateDay(r.EndDate)
	today := truncateDay(time.Now())
	if start.Before(today) {
		return ErrStartInPast
	}
	if end.Before(start) {
		return ErrEndBeforeStart
	}
	return nil
}

// Nights returns the number of nights between start and end, at least 1.
func (r *TravelPlanRequest) Nights() int {
	n := int(truncateDay(r.EndDate).Sub(truncateDay(r.StartDate)).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
