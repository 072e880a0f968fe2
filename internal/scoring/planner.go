package scoring

import "github.com/footmap/footmap/internal/model"

// maxDynamicPlatforms is the number of exposure categories whose lead
// platform feeds the privacy-settings step of the cleanup plan.
const maxDynamicPlatforms = 3

// Plan generates the prioritized cleanup plan for a scan.
//
// The plan always has exactly three actions with ascending priorities 1-3.
// Only the second action depends on the scan: its platform list is the lead
// platform of each of the first three matched categories. Categories without
// platforms are skipped, and an empty category list yields an empty platform
// list rather than an error.
func Plan(categories []model.ExposureCategory) []model.CleanupAction {
	return []model.CleanupAction{
		{
			Priority:      1,
			Action:        "Review and delete unused accounts",
			Platforms:     []string{"Old social media", "Inactive shopping accounts"},
			EstimatedTime: "15-20 minutes",
		},
		{
			Priority:      2,
			Action:        "Update privacy settings on active accounts",
			Platforms:     leadPlatforms(categories),
			EstimatedTime: "20-30 minutes",
		},
		{
			Priority:      3,
			Action:        "Enable two-factor authentication",
			Platforms:     []string{"Email", "Banking apps", "Payment apps"},
			EstimatedTime: "10-15 minutes",
		},
	}
}

// leadPlatforms collects the first platform of each of the first
// maxDynamicPlatforms categories that have at least one platform.
func leadPlatforms(categories []model.ExposureCategory) []string {
	platforms := make([]string, 0, maxDynamicPlatforms)
	for i, c := range categories {
		if i >= maxDynamicPlatforms {
			break
		}
		if len(c.Platforms) == 0 {
			continue
		}
		platforms = append(platforms, c.Platforms[0])
	}
	return platforms
}
