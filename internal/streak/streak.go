// Package streak computes per-user meal metrics: aggregate diet counts plus
// the longest consecutive run of diet-compliant meals.
package streak

import (
	"github.com/google/uuid"

	"github.com/mvcarvalho/daily-diet-api/internal/models"
)

// MealSummary is the projection of a meal carried inside a streak result.
// Diet is always true for a summary that made it into a streak.
type MealSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Diet        bool      `json:"diet"`
}

// Result is the metrics payload for one user, computed on demand and never
// stored.
type Result struct {
	TotalMeals     int           `json:"totalMeals"`
	MealsInDiet    int           `json:"mealsInDiet"`
	MealsOutOfDiet int           `json:"mealsOutOfDiet"`
	BestStreak     []MealSummary `json:"bestStreak"`
}

// Compute scans meals once, in the order given. Callers pass meals sorted by
// date ascending; meals sharing a date keep their input order. A run of
// consecutive diet-compliant meals ends at each non-compliant meal, and only
// a strictly longer run replaces the best one, so the earliest run wins ties
// and a run ending on the last meal is still captured by the final
// comparison.
func Compute(meals []models.Meal) Result {
	res := Result{BestStreak: []MealSummary{}}
	current := []MealSummary{}

	for _, m := range meals {
		res.TotalMeals++
		if m.Diet {
			res.MealsInDiet++
			current = append(current, MealSummary{
				ID:          m.ID,
				Name:        m.Name,
				Description: m.Description,
				Diet:        true,
			})
			continue
		}

		res.MealsOutOfDiet++
		if len(current) > len(res.BestStreak) {
			res.BestStreak = current
		}
		current = []MealSummary{}
	}

	if len(current) > len(res.BestStreak) {
		res.BestStreak = current
	}

	return res
}
