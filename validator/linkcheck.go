package validator

import (
	"fmt"
	"sort"

	"github.com/tschaub/stac-validator/internal/urlutil"
)

// linksReport buckets every entry of the document's links array. Relative
// targets resolve against the document's own "self" link when one is
// present, falling back to the document's reference.
func (r *run) linksReport(ref string, doc map[string]any) *LinkReport {
	base := ref
	links := documentLinks(doc)
	for _, link := range links {
		if rel, _ := link["rel"].(string); rel == "self" {
			if href, ok := link["href"].(string); ok {
				base = href
			}
		}
	}

	report := newLinkReport()
	for _, link := range links {
		r.bucketTarget(report, base, link["href"])
	}
	return report
}

// assetsReport buckets every asset's href, resolved the same way as links.
// Assets are visited in sorted key order so the report is reproducible.
func (r *run) assetsReport(ref string, doc map[string]any) *LinkReport {
	base := ref
	for _, link := range documentLinks(doc) {
		if rel, _ := link["rel"].(string); rel == "self" {
			if href, ok := link["href"].(string); ok {
				base = href
			}
		}
	}

	report := newLinkReport()
	assets, ok := doc["assets"].(map[string]any)
	if !ok {
		return report
	}
	ids := make([]string, 0, len(assets))
	for id := range assets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		asset, ok := assets[id].(map[string]any)
		if !ok {
			report.FormatInvalid = append(report.FormatInvalid, fmt.Sprint(assets[id]))
			continue
		}
		r.bucketTarget(report, base, asset["href"])
	}
	return report
}

// bucketTarget resolves one raw href against base and appends it to exactly
// one of the report's four buckets:
//
//   - format_invalid: not a string, or does not resolve to an absolute
//     reference
//   - request_valid/request_invalid: an http(s) reference that did or did
//     not answer a probe
//   - format_valid: an absolute reference with a scheme the fetcher cannot
//     probe (s3 and the like)
func (r *run) bucketTarget(report *LinkReport, base string, rawHref any) {
	href, ok := rawHref.(string)
	if !ok {
		report.FormatInvalid = append(report.FormatInvalid, fmt.Sprint(rawHref))
		return
	}
	target := urlutil.Resolve(base, href)
	switch {
	case urlutil.IsHTTP(target):
		if err := r.fetcher.Probe(target); err != nil {
			r.logger.Debug("link probe failed", "target", target, "error", err)
			report.RequestInvalid = append(report.RequestInvalid, target)
		} else {
			report.RequestValid = append(report.RequestValid, target)
		}
	case urlutil.HasScheme(target):
		report.FormatValid = append(report.FormatValid, target)
	default:
		report.FormatInvalid = append(report.FormatInvalid, target)
	}
}
