// ABOUTME: Default metric set seeded for new users.
// ABOUTME: Covers Health, Wealth, and Relationships categories.
package catalog

import (
	"errors"

	"github.com/scandolo/life-tracker/internal/models"
)

// DefaultDefinitions returns the starter metric set.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Name:        "Sleep Quality",
			Kind:        models.KindQualitative,
			Domain:      models.RatingScale(1, 10),
			Category:    "Health",
			Description: "How refreshed do you feel? (1-10)",
			ExampleLow:  "1 = Feeling like a zombie who binge-watched all seasons of everything",
			ExampleHigh: "10 = Ready to fight a bear (not recommended)",
		},
		{
			Name:        "Hours of Sleep",
			Kind:        models.KindQuantitative,
			Domain:      models.QuantitativeDomain(models.Bound(0), models.Bound(24)),
			Category:    "Health",
			Description: "How many hours did you sleep? (0-24)",
			Example:     "Round to nearest quarter hour (e.g., 7.25, 7.5, 7.75)",
		},
		{
			Name:        "Daily Steps",
			Kind:        models.KindQuantitative,
			Domain:      models.QuantitativeDomain(models.Bound(0), models.Bound(100000)),
			Category:    "Health",
			Description: "How many steps did you take today?",
			Example:     "From your fitness tracker/phone",
		},
		{
			Name:        "Discretionary Spending",
			Kind:        models.KindQuantitative,
			Domain:      models.QuantitativeDomain(models.Bound(0), nil),
			Category:    "Wealth",
			Description: "How much did you spend on non-essentials? ($)",
			Example:     "That coffee you 'needed' counts!",
		},
		{
			Name:        "Financial Stress Level",
			Kind:        models.KindQualitative,
			Domain:      models.RatingScale(1, 10),
			Category:    "Wealth",
			Description: "How stressed are you about money? (1-10)",
			ExampleLow:  "1 = Living your best budget life",
			ExampleHigh: "10 = Considering selling your comic book collection",
		},
		{
			Name:        "Quality Time",
			Kind:        models.KindQuantitative,
			Domain:      models.QuantitativeDomain(models.Bound(0), models.Bound(1440)),
			Category:    "Relationships",
			Description: "Minutes spent in meaningful interactions",
			Example:     "Real conversations, not just liking their Instagram posts",
		},
		{
			Name:        "Social Connection",
			Kind:        models.KindQualitative,
			Domain:      models.RatingScale(1, 10),
			Category:    "Relationships",
			Description: "How connected do you feel to others? (1-10)",
			ExampleLow:  "1 = Your plant is your best friend",
			ExampleHigh: "10 = You're the main character in everyone's story",
		},
	}
}

// SeedDefaults defines the default metric set for the user.
// Metrics already defined are left untouched, so seeding is idempotent.
// Returns the number of metrics created.
func (c *Catalog) SeedDefaults(userID string) (int, error) {
	created := 0
	for _, def := range DefaultDefinitions() {
		if _, err := c.Define(userID, def); err != nil {
			if errors.Is(err, models.ErrDuplicateMetric) {
				continue
			}
			return created, err
		}
		created++
	}
	return created, nil
}
