package classify

import (
	"strings"

	"github.com/footmap/footmap/internal/catalog"
)

// commonProviders is the fixed set of free email provider domains.
// Domain membership here satisfies the common_email trigger tag.
var commonProviders = map[string]bool{
	"gmail.com":      true,
	"yahoo.com":      true,
	"outlook.com":    true,
	"hotmail.com":    true,
	"protonmail.com": true,
	"icloud.com":     true,
	"aol.com":        true,
}

// corporateMarkers are substrings that mark a domain as corporate.
var corporateMarkers = []string{
	"company.com", "corp.com", "inc.com", "ltd.com",
}

// eduMarkers are suffixes and keywords that mark a domain as educational.
var eduMarkers = []string{
	".edu", ".ac.in", "university", "college", "school",
}

// EmailFeatures holds the boolean features derived from an email domain.
// Features are computed once per scan and consulted by tag evaluation.
type EmailFeatures struct {
	// Domain is the normalized domain part of the email.
	Domain string

	// IsCommonProvider is true when the domain is a known free provider.
	IsCommonProvider bool

	// IsCorporate is true when the domain contains a corporate marker.
	IsCorporate bool

	// IsEdu is true when the domain contains an educational marker.
	IsEdu bool

	// IsCustomDomain is true when none of the other features apply.
	// No trigger tag consults it yet; it is kept for future rules around
	// self-hosted domains.
	IsCustomDomain bool
}

// ExtractEmailFeatures derives the feature set from a normalized domain.
func ExtractEmailFeatures(domain string) EmailFeatures {
	f := EmailFeatures{Domain: domain}

	f.IsCommonProvider = commonProviders[domain]
	for _, marker := range corporateMarkers {
		if strings.Contains(domain, marker) {
			f.IsCorporate = true
			break
		}
	}
	for _, marker := range eduMarkers {
		if strings.Contains(domain, marker) {
			f.IsEdu = true
			break
		}
	}
	f.IsCustomDomain = !f.IsCommonProvider && !f.IsCorporate && !f.IsEdu

	return f
}

// SatisfiedTags returns the set of trigger tags satisfied by the features.
// This is the first stage of classification; the second stage intersects
// the result against each catalog entry's declared tags.
func SatisfiedTags(f EmailFeatures) map[catalog.Tag]bool {
	tags := map[catalog.Tag]bool{
		// Every valid email reaches feature extraction, so the
		// unconditional tags are always present.
		catalog.TagAnyEmail:    true,
		catalog.TagPhoneLikely: true,
	}

	if f.Domain == "gmail.com" {
		tags[catalog.TagGmail] = true
	}
	if f.Domain == "yahoo.com" {
		tags[catalog.TagYahoo] = true
	}
	if f.Domain == "outlook.com" || f.Domain == "hotmail.com" {
		tags[catalog.TagOutlook] = true
	}
	if f.IsCommonProvider {
		tags[catalog.TagCommonEmail] = true
	}
	if f.IsCorporate || f.IsEdu {
		tags[catalog.TagProfessionalEmail] = true
	}
	if f.IsCorporate {
		tags[catalog.TagCorporateDomain] = true
	}
	if f.IsEdu {
		tags[catalog.TagEduEmail] = true
	}

	return tags
}
