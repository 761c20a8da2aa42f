package streak

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvcarvalho/daily-diet-api/internal/models"
)

// mealsFromPattern builds one meal per flag, dated on consecutive days so the
// slice is already in scan order.
func mealsFromPattern(pattern ...bool) []models.Meal {
	meals := make([]models.Meal, len(pattern))
	for i, diet := range pattern {
		meals[i] = models.Meal{
			ID:          uuid.New(),
			Name:        fmt.Sprintf("Meal %d", i+1),
			Description: fmt.Sprintf("Description for meal %d", i+1),
			Date:        fmt.Sprintf("2024-10-%02d", i+1),
			Time:        "12:00:00",
			Diet:        diet,
		}
	}
	return meals
}

func summaryIDs(streak []MealSummary) []uuid.UUID {
	ids := make([]uuid.UUID, len(streak))
	for i, s := range streak {
		ids[i] = s.ID
	}
	return ids
}

func mealIDs(meals []models.Meal, indexes ...int) []uuid.UUID {
	ids := make([]uuid.UUID, len(indexes))
	for i, idx := range indexes {
		ids[i] = meals[idx].ID
	}
	return ids
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		pattern    []bool
		total      int
		inDiet     int
		outOfDiet  int
		streakIdxs []int
	}{
		{
			name:       "compliant then non-compliant",
			pattern:    []bool{true, false},
			total:      2,
			inDiet:     1,
			outOfDiet:  1,
			streakIdxs: []int{0},
		},
		{
			name:       "leading pair beats trailing single",
			pattern:    []bool{true, true, false, true},
			total:      4,
			inDiet:     3,
			outOfDiet:  1,
			streakIdxs: []int{0, 1},
		},
		{
			name:       "no compliant meals",
			pattern:    []bool{false, false},
			total:      2,
			inDiet:     0,
			outOfDiet:  2,
			streakIdxs: nil,
		},
		{
			name:       "all compliant",
			pattern:    []bool{true, true},
			total:      2,
			inDiet:     2,
			outOfDiet:  0,
			streakIdxs: []int{0, 1},
		},
		{
			name:       "equal-length runs keep the earliest",
			pattern:    []bool{true, false, true, false, true},
			total:      5,
			inDiet:     3,
			outOfDiet:  2,
			streakIdxs: []int{0},
		},
		{
			name:       "single compliant meal",
			pattern:    []bool{true},
			total:      1,
			inDiet:     1,
			outOfDiet:  0,
			streakIdxs: []int{0},
		},
		{
			name:       "trailing run wins when strictly longer",
			pattern:    []bool{true, false, true, true},
			total:      4,
			inDiet:     3,
			outOfDiet:  1,
			streakIdxs: []int{2, 3},
		},
		{
			name:       "later equal run does not replace the first",
			pattern:    []bool{true, true, false, true, true},
			total:      5,
			inDiet:     4,
			outOfDiet:  1,
			streakIdxs: []int{0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meals := mealsFromPattern(tt.pattern...)
			res := Compute(meals)

			assert.Equal(t, tt.total, res.TotalMeals)
			assert.Equal(t, tt.inDiet, res.MealsInDiet)
			assert.Equal(t, tt.outOfDiet, res.MealsOutOfDiet)

			want := mealIDs(meals, tt.streakIdxs...)
			assert.Equal(t, want, summaryIDs(res.BestStreak))
		})
	}
}

func TestComputeEmptyInput(t *testing.T) {
	res := Compute(nil)

	assert.Equal(t, 0, res.TotalMeals)
	assert.Equal(t, 0, res.MealsInDiet)
	assert.Equal(t, 0, res.MealsOutOfDiet)
	assert.NotNil(t, res.BestStreak)
	assert.Empty(t, res.BestStreak)
}

func TestComputeSummaryProjection(t *testing.T) {
	meals := mealsFromPattern(true)
	res := Compute(meals)

	require.Len(t, res.BestStreak, 1)
	got := res.BestStreak[0]
	assert.Equal(t, meals[0].ID, got.ID)
	assert.Equal(t, "Meal 1", got.Name)
	assert.Equal(t, "Description for meal 1", got.Description)
	assert.True(t, got.Diet)
}

func TestComputeIsDeterministic(t *testing.T) {
	meals := mealsFromPattern(true, true, false, true, false, true, true, true)

	first := Compute(meals)
	second := Compute(meals)

	assert.Equal(t, first, second)
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	meals := mealsFromPattern(true, false, true)
	before := make([]models.Meal, len(meals))
	copy(before, meals)

	Compute(meals)

	assert.Equal(t, before, meals)
}

// TestComputeProperties cross-checks random compliance patterns against the
// invariants the result must satisfy: counts partition the total, the best
// streak is a contiguous all-compliant sub-run no longer than the compliant
// count, and it starts at the earliest maximal run.
func TestComputeProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		size := rng.Intn(30)
		pattern := make([]bool, size)
		for j := range pattern {
			pattern[j] = rng.Intn(2) == 0
		}

		meals := mealsFromPattern(pattern...)
		res := Compute(meals)

		assert.Equal(t, res.TotalMeals, res.MealsInDiet+res.MealsOutOfDiet)
		assert.LessOrEqual(t, len(res.BestStreak), res.MealsInDiet)

		for _, s := range res.BestStreak {
			assert.True(t, s.Diet)
		}

		start, length := earliestLongestRun(pattern)
		require.Len(t, res.BestStreak, length, "pattern %v", pattern)
		assert.Equal(t, mealIDs(meals, indexRange(start, length)...), summaryIDs(res.BestStreak), "pattern %v", pattern)
	}
}

// earliestLongestRun is an independent reference: it enumerates every run of
// true flags and picks the longest, preferring the earliest on ties.
func earliestLongestRun(pattern []bool) (start, length int) {
	runStart := -1
	for i, diet := range pattern {
		if diet {
			if runStart < 0 {
				runStart = i
			}
			if run := i - runStart + 1; run > length {
				start, length = runStart, run
			}
		} else {
			runStart = -1
		}
	}
	return start, length
}

func indexRange(start, length int) []int {
	idxs := make([]int, length)
	for i := range idxs {
		idxs[i] = start + i
	}
	return idxs
}
