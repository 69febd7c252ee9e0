package pbirview

import (
	"sort"
	"strings"
)

// UnknownReport names the report group of pages that carry no report name.
const UnknownReport = "(unknown report)"

// ChangeGroup aggregates the changed definition files of one page.
type ChangeGroup struct {
	Key         string // See PageKey
	Page        Page
	PageChanged bool            // True if the page's own definition changed
	PagePath    string          // Path of the page definition
	Visuals     []ChangedVisual // In changed-file order
}

// ChangedVisual is a visual whose definition file changed.
type ChangedVisual struct {
	Path   string
	Visual Visual
}

// ReportGroup holds the change groups of one report, in presentation order.
type ReportGroup struct {
	Report string
	Pages  []*ChangeGroup
}

// PageKey returns the stable grouping key of a page: its ID, or
// "report/name" when the page has no ID.
func PageKey(p Page) string {
	if p.ID != "" {
		return p.ID
	}
	return p.Report + "/" + p.Name
}

type visualRef struct {
	page   *Page
	visual Visual
}

// Correlate attaches changed paths to the indexed pages they define.
// Paths that are neither a page nor a visual definition are ignored.
// Groups are returned in the order their first matching path was seen.
func Correlate(index *ReportIndex, changed []string) []*ChangeGroup {
	if index == nil {
		return nil
	}

	pagesByPath := make(map[string]*Page)
	visualsByPath := make(map[string]visualRef)
	for i := range index.Pages {
		page := &index.Pages[i]
		if page.Path != "" {
			pagesByPath[NormalizePath(page.Path)] = page
		}
		for _, v := range page.Visuals {
			if v.Path != "" {
				visualsByPath[NormalizePath(v.Path)] = visualRef{page: page, visual: v}
			}
		}
	}

	var groups []*ChangeGroup
	byKey := make(map[string]*ChangeGroup)
	groupFor := func(page *Page) *ChangeGroup {
		key := PageKey(*page)
		if g, ok := byKey[key]; ok {
			return g
		}
		g := &ChangeGroup{Key: key, Page: *page, PagePath: NormalizePath(page.Path)}
		byKey[key] = g
		groups = append(groups, g)
		return g
	}

	seen := make(map[string]bool)
	for _, p := range changed {
		p = NormalizePath(strings.TrimSpace(p))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true

		if page, ok := pagesByPath[p]; ok {
			g := groupFor(page)
			g.PageChanged = true
			g.PagePath = p
		}
		if ref, ok := visualsByPath[p]; ok {
			g := groupFor(ref.page)
			g.Visuals = append(g.Visuals, ChangedVisual{Path: p, Visual: ref.visual})
		}
	}
	return groups
}

// GroupByReport buckets change groups by report name. Reports are ordered
// case-insensitively by name; pages within a report by name, then ID.
func GroupByReport(groups []*ChangeGroup) []ReportGroup {
	byReport := make(map[string][]*ChangeGroup)
	for _, g := range groups {
		report := strings.TrimSpace(g.Page.Report)
		if report == "" {
			report = UnknownReport
		}
		byReport[report] = append(byReport[report], g)
	}

	out := make([]ReportGroup, 0, len(byReport))
	for report, pages := range byReport {
		sort.SliceStable(pages, func(i, j int) bool {
			a, b := pages[i].Page, pages[j].Page
			if an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name); an != bn {
				return an < bn
			}
			return strings.ToLower(a.ID) < strings.ToLower(b.ID)
		})
		out = append(out, ReportGroup{Report: report, Pages: pages})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].Report), strings.ToLower(out[j].Report)
		if a != b {
			return a < b
		}
		return out[i].Report < out[j].Report
	})
	return out
}
