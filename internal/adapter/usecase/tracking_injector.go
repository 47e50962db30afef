package usecase

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
)

const (
	openPath  = "/api/track/open"
	clickPath = "/api/track/click"
)

var (
	anchorPattern = regexp.MustCompile(`(?i)<a\s[^>]*>`)
	hrefPattern   = regexp.MustCompile(`(?i)\bhref\s*=\s*(?:"([^"]*)"|'([^']*)')`)
	bodyClose     = regexp.MustCompile(`(?i)</body\s*>`)
)

// OpenURL is the pixel address for a lead.
func OpenURL(base, leadID string) string {
	return strings.TrimRight(base, "/") + openPath + "?leadId=" + encodeComponent(leadID)
}

// ClickURL wraps target in a click-tracking redirect for a lead.
func ClickURL(base, leadID, target string) string {
	return strings.TrimRight(base, "/") + clickPath +
		"?leadId=" + encodeComponent(leadID) +
		"&url=" + encodeComponent(target)
}

// InjectTracking rewrites every anchor href to a click-tracking URL and
// adds an open-tracking pixel. Anchors that already point at the click
// endpoint are left alone so the rewrite is idempotent for links.
func InjectTracking(body, leadID, base string) string {
	out := anchorPattern.ReplaceAllStringFunc(body, func(tag string) string {
		loc := hrefPattern.FindStringSubmatchIndex(tag)
		if loc == nil {
			return tag
		}
		start, end := loc[2], loc[3]
		if start < 0 {
			start, end = loc[4], loc[5]
		}
		target := html.UnescapeString(tag[start:end])
		if strings.TrimSpace(target) == "" || strings.Contains(target, clickPath) {
			return tag
		}
		return tag[:start] + ClickURL(base, leadID, target) + tag[end:]
	})

	pixel := fmt.Sprintf(`<img src="%s" width="1" height="1" style="display:none;" alt="" />`, OpenURL(base, leadID))
	if all := bodyClose.FindAllStringIndex(out, -1); len(all) > 0 {
		i := all[len(all)-1][0]
		return out[:i] + pixel + out[i:]
	}
	return out + pixel
}

// encodeComponent percent-encodes s for use as a query value, encoding
// spaces as %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
