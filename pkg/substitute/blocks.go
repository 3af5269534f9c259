package substitute

import "regexp"

// Optional template regions are wrapped in paired HTML comments:
//
//	<!-- label --> ... <!-- //label -->
//
// Removing the pair and everything between is the canonical way to drop
// an optional block. The structural helpers further down exist only for
// legacy templates that predate the marker convention.

// OpenMarker returns the opening comment for a labeled block.
func OpenMarker(label string) string {
	return "<!-- " + label + " -->"
}

// CloseMarker returns the closing comment for a labeled block.
func CloseMarker(label string) string {
	return "<!-- //" + label + " -->"
}

func blockPattern(label string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(label)
	return regexp.MustCompile(`<!-- ` + quoted + ` -->[\s\S]*?<!-- //` + quoted + ` -->`)
}

// RemoveCommentBlock deletes every comment-delimited block with the
// given label, non-greedily.
func RemoveCommentBlock(html, label string) string {
	return blockPattern(label).ReplaceAllString(html, "")
}

// HasCommentBlock reports whether a complete marker pair for label is
// present.
func HasCommentBlock(html, label string) bool {
	return blockPattern(label).MatchString(html)
}

// UnwrapCommentBlock drops a labeled <a> wrapper while keeping its inner
// content. Used for images whose enclosing link is toggled off.
func UnwrapCommentBlock(html, label string) string {
	quoted := regexp.QuoteMeta(label)
	re := regexp.MustCompile(`<!-- ` + quoted + ` --><a[^>]*>([\s\S]*?)</a><!-- //` + quoted + ` -->`)
	return re.ReplaceAllString(html, "$1")
}

// defaultEnclosingTags are tried in order by RemoveEnclosing.
var defaultEnclosingTags = []string{"tr", "td", "div", "table", "p", "strong", "span", "h1", "h2", "h3", "h4", "h5", "h6"}

// RemoveEnclosing deletes the smallest matching element of one of the
// given tags (all block-level candidates when none are given) that
// contains the needle pattern. This is a best-effort legacy shim for
// templates without comment markers: the non-greedy match can misfire
// on nested same-tag structures, so callers should prefer
// RemoveCommentBlock whenever markers exist.
func RemoveEnclosing(html string, needle *regexp.Regexp, tags ...string) string {
	if len(tags) == 0 {
		tags = defaultEnclosingTags
	}
	for _, tag := range tags {
		re := regexp.MustCompile(`<` + tag + `[^>]*>[\s\S]*?` + needle.String() + `[\s\S]*?</` + tag + `>`)
		html = re.ReplaceAllString(html, "")
	}
	return html
}

// RemovePlaceholderOrElement removes the element that contains a named
// placeholder, falling back to erasing just the placeholder token when
// no enclosing element matches. Used when an optional field is empty
// and its whole visual slot should disappear.
func RemovePlaceholderOrElement(html, key string, tags ...string) string {
	needle := regexp.MustCompile(`\{\{\s*` + regexp.QuoteMeta(key) + `\s*\}\}`)
	html = RemoveEnclosing(html, needle, tags...)
	return needle.ReplaceAllString(html, "")
}
