package scoring

import (
	"reflect"
	"testing"

	"github.com/footmap/footmap/internal/model"
)

// TestPlan tests the structural invariants of the cleanup plan.
func TestPlan(t *testing.T) {
	t.Parallel()

	inputs := map[string][]model.ExposureCategory{
		"no categories": {},
		"one category": {
			{Name: "Social Media", Platforms: []string{"Facebook", "Instagram"}},
		},
		"many categories": {
			{Name: "A", Platforms: []string{"P1"}},
			{Name: "B", Platforms: []string{"P2"}},
			{Name: "C", Platforms: []string{"P3"}},
			{Name: "D", Platforms: []string{"P4"}},
			{Name: "E", Platforms: []string{"P5"}},
		},
	}

	for name, categories := range inputs {
		categories := categories
		t.Run(name+" yields exactly three ascending actions", func(t *testing.T) {
			t.Parallel()

			plan := Plan(categories)
			if len(plan) != 3 {
				t.Fatalf("expected 3 actions, got %d", len(plan))
			}
			for i, action := range plan {
				if action.Priority != i+1 {
					t.Errorf("action %d has priority %d, expected %d", i, action.Priority, i+1)
				}
				if action.Action == "" || action.EstimatedTime == "" {
					t.Errorf("action %d has empty fields: %+v", i, action)
				}
			}
		})
	}
}

// TestPlanDynamicPlatforms tests the privacy-settings platform derivation.
func TestPlanDynamicPlatforms(t *testing.T) {
	t.Parallel()

	t.Run("takes the lead platform of the first three categories", func(t *testing.T) {
		t.Parallel()

		plan := Plan([]model.ExposureCategory{
			{Name: "A", Platforms: []string{"Facebook", "Instagram"}},
			{Name: "B", Platforms: []string{"Amazon India"}},
			{Name: "C", Platforms: []string{"Swiggy"}},
			{Name: "D", Platforms: []string{"Paytm"}}, // beyond the first three
		})

		expected := []string{"Facebook", "Amazon India", "Swiggy"}
		if !reflect.DeepEqual(plan[1].Platforms, expected) {
			t.Errorf("expected platforms %v, got %v", expected, plan[1].Platforms)
		}
	})

	t.Run("categories without platforms are skipped", func(t *testing.T) {
		t.Parallel()

		plan := Plan([]model.ExposureCategory{
			{Name: "A", Platforms: []string{"Facebook"}},
			{Name: "B"}, // no platforms
			{Name: "C", Platforms: []string{"Swiggy"}},
		})

		expected := []string{"Facebook", "Swiggy"}
		if !reflect.DeepEqual(plan[1].Platforms, expected) {
			t.Errorf("expected platforms %v, got %v", expected, plan[1].Platforms)
		}
	})

	t.Run("empty category list yields an empty platform list", func(t *testing.T) {
		t.Parallel()

		plan := Plan(nil)
		if len(plan[1].Platforms) != 0 {
			t.Errorf("expected empty platform list, got %v", plan[1].Platforms)
		}
	})

	t.Run("fixed steps are identifier independent", func(t *testing.T) {
		t.Parallel()

		a := Plan(nil)
		b := Plan([]model.ExposureCategory{{Name: "X", Platforms: []string{"Y"}}})
		if !reflect.DeepEqual(a[0], b[0]) || !reflect.DeepEqual(a[2], b[2]) {
			t.Error("expected steps 1 and 3 to be identical across inputs")
		}
	})
}
