package usecase

import (
	"regexp"
	"strings"

	"outreach/internal/core/domain"
)

const defaultBusinessName = "Valued Customer"

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// placeholderAliases maps misspellings seen in authored templates to the
// canonical lowercase key.
var placeholderAliases = map[string]string{
	"bussinessname":  "businessname",
	"bussiness_name": "businessname",
	"business_name":  "businessname",
	"businessnmae":   "businessname",
}

// Substitute replaces every {{Key}} placeholder in tpl with the matching
// value. Keys match case-insensitively and unknown keys render empty.
// Substituted values are never re-scanned.
func Substitute(tpl string, values map[string]string) string {
	lookup := make(map[string]string, len(values))
	for k, v := range values {
		lookup[strings.ToLower(k)] = v
	}
	return placeholderPattern.ReplaceAllStringFunc(tpl, func(token string) string {
		key := strings.ToLower(placeholderPattern.FindStringSubmatch(token)[1])
		if canonical, ok := placeholderAliases[key]; ok {
			key = canonical
		}
		return lookup[key]
	})
}

// LeadValues returns the placeholder values of a lead.
func LeadValues(l domain.Lead) map[string]string {
	business := strings.TrimSpace(l.BusinessName)
	if business == "" {
		business = defaultBusinessName
	}
	return map[string]string{
		"BusinessName": business,
		"City":         l.City,
		"State":        l.State,
		"Category":     l.Category,
	}
}

// Render produces the subject and tracked HTML body for one lead.
func Render(subject, body string, l domain.Lead, trackingBase string) (string, string) {
	values := LeadValues(l)
	return Substitute(subject, values), InjectTracking(Substitute(body, values), l.ID, trackingBase)
}
