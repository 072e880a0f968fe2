package catalog

import "github.com/footmap/footmap/internal/model"

// Tag is a named trigger condition for a catalog entry. A category is
// included in a scan result when at least one of its tags is satisfied by
// the identifier's features.
type Tag string

// Trigger tag vocabulary for email classification.
const (
	// TagAnyEmail matches every syntactically valid email identifier.
	TagAnyEmail Tag = "any_email"
	// TagGmail matches when the domain is exactly gmail.com.
	TagGmail Tag = "gmail"
	// TagYahoo matches when the domain is exactly yahoo.com.
	TagYahoo Tag = "yahoo"
	// TagOutlook matches when the domain is outlook.com or hotmail.com.
	TagOutlook Tag = "outlook"
	// TagCommonEmail matches any of the known free email providers.
	TagCommonEmail Tag = "common_email"
	// TagProfessionalEmail matches corporate or educational domains.
	TagProfessionalEmail Tag = "professional_email"
	// TagCorporateDomain matches corporate domains only.
	TagCorporateDomain Tag = "corporate_domain"
	// TagEduEmail matches educational domains only.
	TagEduEmail Tag = "edu_email"
	// TagPhoneLikely marks phone-centric platforms that also accept email
	// signups. It is always satisfied for valid emails.
	TagPhoneLikely Tag = "phone_likely"
)

// CategoryDefinition is one immutable catalog entry.
// Entries are created at process start and never mutated.
type CategoryDefinition struct {
	// ID is the stable internal identifier of the category.
	ID string

	// Name is the human-readable category name shown in reports.
	Name string

	// Platforms lists representative platform names, most relevant first.
	// The cleanup planner uses the first entry as the privacy-settings hint.
	Platforms []string

	// RiskWeight is the integer severity weight of the category.
	// Weights of 8+ map to a high risk label, 5-7 to medium, below 5 to low.
	RiskWeight int

	// Triggers is the set of tags that include this entry in a result.
	// Inclusion is an OR across tags; an entry appears at most once even
	// when several of its tags are satisfied.
	Triggers []Tag

	// Explanation describes what data platforms in this category hold.
	Explanation string
}

// RiskLevel returns the risk label derived from the entry's weight.
func (d CategoryDefinition) RiskLevel() model.RiskLevel {
	return model.RiskLevelFromWeight(d.RiskWeight)
}

// HasTrigger returns true if the entry declares the given tag.
func (d CategoryDefinition) HasTrigger(tag Tag) bool {
	for _, t := range d.Triggers {
		if t == tag {
			return true
		}
	}
	return false
}

// emailCategories is the catalog for email identifiers.
//
// Design decision: We use an ordered slice rather than a map because
// classification output order must be deterministic; map iteration order
// would shuffle categories between otherwise identical scans.
var emailCategories = []CategoryDefinition{
	{
		ID:          "social_media",
		Name:        "Social Media",
		Platforms:   []string{"Facebook", "Instagram", "Twitter/X", "LinkedIn", "Snapchat"},
		RiskWeight:  5,
		Triggers:    []Tag{TagGmail, TagYahoo, TagOutlook, TagCommonEmail},
		Explanation: "Personal email addresses are commonly used for social media signups. Your profile data, posts, and photos may be publicly searchable or visible to connections.",
	},
	{
		ID:          "professional",
		Name:        "Professional Networks",
		Platforms:   []string{"LinkedIn", "GitHub", "Stack Overflow", "Medium", "Dev.to"},
		RiskWeight:  4,
		Triggers:    []Tag{TagProfessionalEmail, TagCorporateDomain},
		Explanation: "Professional profiles typically contain your work history, skills, projects, and educational background. This data is intentionally public for networking.",
	},
	{
		ID:          "ecommerce_india",
		Name:        "E-Commerce (India)",
		Platforms:   []string{"Amazon India", "Flipkart", "Myntra", "Meesho", "Ajio"},
		RiskWeight:  6,
		Triggers:    []Tag{TagGmail, TagYahoo, TagOutlook, TagAnyEmail},
		Explanation: "Shopping platforms store your delivery addresses, phone numbers, payment methods (last 4 digits), and purchase history.",
	},
	{
		ID:          "food_delivery",
		Name:        "Food & Delivery Apps",
		Platforms:   []string{"Swiggy", "Zomato", "Dunzo", "Blinkit", "Zepto"},
		RiskWeight:  6,
		Triggers:    []Tag{TagGmail, TagPhoneLikely},
		Explanation: "Food delivery apps have your home/office addresses, phone number, and location history from past orders.",
	},
	{
		ID:          "job_portals",
		Name:        "Job Portals (India)",
		Platforms:   []string{"Naukri", "LinkedIn", "Indeed", "Monster India", "Shine"},
		RiskWeight:  7,
		Triggers:    []Tag{TagProfessionalEmail, TagGmail, TagAnyEmail},
		Explanation: "Job portals store comprehensive data: full resume, phone number, current/past employers, salary expectations, and educational certificates.",
	},
	{
		ID:          "fintech",
		Name:        "Financial & Payment Apps",
		Platforms:   []string{"Paytm", "PhonePe", "Google Pay", "CRED", "Razorpay"},
		RiskWeight:  9,
		Triggers:    []Tag{TagPhoneLikely, TagGmail},
		Explanation: "Payment apps are linked to your bank accounts, UPI ID, transaction history, and may have KYC documents (Aadhaar, PAN).",
	},
	{
		ID:          "edtech",
		Name:        "Education & Learning",
		Platforms:   []string{"Coursera", "Udemy", "NPTEL", "Unacademy", "BYJU'S"},
		RiskWeight:  3,
		Triggers:    []Tag{TagEduEmail, TagGmail},
		Explanation: "Ed-tech platforms have your learning history, certificates, and possibly payment information if you've made purchases.",
	},
	{
		ID:          "streaming",
		Name:        "Streaming & Entertainment",
		Platforms:   []string{"Netflix", "Amazon Prime", "Hotstar", "Spotify", "YouTube"},
		RiskWeight:  4,
		Triggers:    []Tag{TagGmail, TagAnyEmail},
		Explanation: "Streaming services store viewing habits, preferences, payment methods, and device information.",
	},
	{
		ID:          "travel",
		Name:        "Travel & Booking",
		Platforms:   []string{"MakeMyTrip", "Goibibo", "OYO", "Airbnb", "Ola", "Uber"},
		RiskWeight:  7,
		Triggers:    []Tag{TagGmail, TagPhoneLikely},
		Explanation: "Travel apps store your ID proof (for bookings), travel history, payment details, and frequently visited locations.",
	},
	{
		ID:          "communication",
		Name:        "Communication Apps",
		Platforms:   []string{"WhatsApp", "Telegram", "Discord", "Slack", "Microsoft Teams"},
		RiskWeight:  5,
		Triggers:    []Tag{TagPhoneLikely, TagAnyEmail},
		Explanation: "Communication apps have your phone number, profile photo, status updates, and group memberships.",
	},
	{
		ID:          "gaming",
		Name:        "Gaming Platforms",
		Platforms:   []string{"Steam", "Epic Games", "PlayStation", "Xbox Live", "Mobile Gaming Apps"},
		RiskWeight:  4,
		Triggers:    []Tag{TagGmail},
		Explanation: "Gaming accounts contain username, gaming history, friends list, and payment information for in-game purchases.",
	},
}

// UsernameCategory is one entry of the fixed username catalog.
// Username entries carry a hardcoded risk label instead of a weight and
// declare no triggers: every username scan returns the same set.
//
// The value-independence is inherited from the current rule set, which has
// no per-username heuristics yet. Keep it value-independent until real
// username signals exist; see the package tests that pin this behavior.
type UsernameCategory struct {
	// ID is the stable internal identifier of the category.
	ID string

	// Name is the human-readable category name shown in reports.
	Name string

	// Platforms lists representative platform names.
	Platforms []string

	// RiskLevel is the fixed risk label for the category.
	RiskLevel model.RiskLevel

	// Explanation describes what data platforms in this category hold.
	Explanation string
}

// usernameCategories is the catalog for username identifiers.
var usernameCategories = []UsernameCategory{
	{
		ID:          "social_media",
		Name:        "Social Media",
		Platforms:   []string{"Twitter/X", "Instagram", "TikTok", "Reddit", "Pinterest"},
		RiskLevel:   model.RiskLevelMedium,
		Explanation: "Your username may be registered on social platforms. Public posts, comments, and follower/following lists may be visible.",
	},
	{
		ID:          "developer_platforms",
		Name:        "Developer Platforms",
		Platforms:   []string{"GitHub", "GitLab", "Stack Overflow", "HackerRank", "LeetCode"},
		RiskLevel:   model.RiskLevelLow,
		Explanation: "Developer profiles show your code repositories, contributions, problem-solving activity, and technical discussions.",
	},
	{
		ID:          "gaming",
		Name:        "Gaming Platforms",
		Platforms:   []string{"Steam", "Discord", "Twitch", "Epic Games", "Roblox"},
		RiskLevel:   model.RiskLevelLow,
		Explanation: "Gaming usernames reveal your gaming activity, friends list, achievements, and playtime statistics.",
	},
	{
		ID:          "forums",
		Name:        "Forums & Communities",
		Platforms:   []string{"Reddit", "Quora", "Medium", "Dev.to", "Hacker News"},
		RiskLevel:   model.RiskLevelMedium,
		Explanation: "Forum accounts contain your post history, comments, interests, and interaction patterns with communities.",
	},
}

// EmailCategories returns the email category catalog in declaration order.
// The returned slice is shared; callers must not modify entries.
func EmailCategories() []CategoryDefinition {
	return emailCategories
}

// UsernameCategories returns the username category catalog in declaration
// order. The returned slice is shared; callers must not modify entries.
func UsernameCategories() []UsernameCategory {
	return usernameCategories
}

// EmailCategoryNames returns the names of all email catalog entries.
// Useful for validating that classifier output stays inside the catalog.
func EmailCategoryNames() []string {
	names := make([]string, len(emailCategories))
	for i, c := range emailCategories {
		names[i] = c.Name
	}
	return names
}
