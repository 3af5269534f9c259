// Package emailcheck inspects assembled newsletter HTML for structural
// problems and known email-client quirks. It only reads the document,
// fixing anything is left to the caller.
package emailcheck

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/edmkit/edmkit/internal/domain"
)

// Issue is one finding, graded and attributed to the client family it
// affects when applicable.
type Issue struct {
	Severity domain.Severity `json:"severity"`
	Client   string          `json:"client,omitempty"`
	Message  string          `json:"message"`
}

// Report is the outcome of a validation run.
type Report struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Validate checks the document structure: doctype, balanced tables,
// image alt text and styling patterns that break in email clients.
func Validate(html string) (Report, error) {
	var issues []Issue

	if !strings.Contains(strings.ToLower(html), "<!doctype html") {
		issues = append(issues, Issue{
			Severity: domain.SeverityWarning,
			Message:  "missing doctype declaration, clients may render in quirks mode",
		})
	}

	opens := strings.Count(strings.ToLower(html), "<table")
	closes := strings.Count(strings.ToLower(html), "</table")
	if opens != closes {
		issues = append(issues, Issue{
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("unbalanced table tags: %d opening, %d closing", opens, closes),
		})
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Report{}, fmt.Errorf("parsing html: %w", err)
	}

	missingAlt := 0
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr("alt"); !ok {
			missingAlt++
		}
	})
	if missingAlt > 0 {
		issues = append(issues, Issue{
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("%d image(s) without alt text", missingAlt),
		})
	}

	classOnly := 0
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr("style"); !ok {
			classOnly++
		}
	})
	if classOnly > 0 {
		issues = append(issues, Issue{
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("%d element(s) rely on class without inline style, many clients strip stylesheets", classOnly),
		})
	}

	if !strings.Contains(strings.ToLower(html), "font-family") {
		issues = append(issues, Issue{
			Severity: domain.SeverityWarning,
			Message:  "no font-family declared, clients will fall back to their default font",
		})
	}

	valid := true
	for _, issue := range issues {
		if issue.Severity == domain.SeverityError {
			valid = false
		}
	}
	return Report{Valid: valid, Issues: issues}, nil
}

// ClientCompat flags constructs known to degrade in specific client
// families.
func ClientCompat(html string) []Issue {
	var issues []Issue
	lower := strings.ToLower(html)

	if strings.Contains(lower, "border-radius") {
		issues = append(issues, Issue{
			Severity: domain.SeverityWarning,
			Client:   "outlook",
			Message:  "border-radius is ignored by Outlook, buttons render with square corners",
		})
	}
	if strings.Contains(lower, "display: flex") || strings.Contains(lower, "display:flex") {
		issues = append(issues, Issue{
			Severity: domain.SeverityWarning,
			Client:   "outlook",
			Message:  "flexbox layout is not supported by Outlook, use tables instead",
		})
	}
	if strings.Contains(lower, "@media") {
		issues = append(issues, Issue{
			Severity: domain.SeverityWarning,
			Client:   "gmail",
			Message:  "media queries are dropped by some Gmail clients, verify the non-responsive fallback",
		})
	}
	if strings.Contains(lower, "position: absolute") || strings.Contains(lower, "position:absolute") {
		issues = append(issues, Issue{
			Severity: domain.SeverityWarning,
			Client:   "outlook",
			Message:  "absolute positioning is not supported in most email clients",
		})
	}
	return issues
}
