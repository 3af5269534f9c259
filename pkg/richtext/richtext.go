// Package richtext normalizes HTML fragments produced by the embedded
// WYSIWYG editor into markup that survives email clients: hex colors
// only, explicit spacing on block elements, inline alignment styles and
// height-preserving blank lines.
package richtext

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rgbPattern  = regexp.MustCompile(`rgb\((\d+),\s*(\d+),\s*(\d+)\)`)
	rgbaPattern = regexp.MustCompile(`rgba\((\d+),\s*(\d+),\s*(\d+),\s*([0-9.]+)\)`)

	emptyParagraphPattern = regexp.MustCompile(`<p([^>]*)>(?:\s|<br\s*/?>|&nbsp;)*</p>`)

	blockTagPattern = regexp.MustCompile(`(?i)<(p|h[1-3])(\s+[^>]*)?>`)
	stylePattern    = regexp.MustCompile(`style="([^"]*)"`)

	emptyClassPattern = regexp.MustCompile(`\s*class=""\s*`)
)

const blankLineStyle = "margin: 0; padding: 0; min-height: 1em; line-height: 1.5;"

// Normalize runs the full post-processing pipeline in fixed order.
// Later steps assume the earlier normalization, keep the order.
func Normalize(html string) string {
	if html == "" {
		return ""
	}
	html = ConvertColorsToHex(html)
	html = PreserveBlankLines(html)
	html = ApplyBlockSpacing(html)
	html = ConvertAlignClasses(html)
	return html
}

func channelToHex(raw string) string {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return fmt.Sprintf("%02x", n)
}

// ConvertColorsToHex rewrites every rgb()/rgba() color function to hex.
// rgba keeps a two-digit alpha channel unless alpha is exactly 1.
func ConvertColorsToHex(html string) string {
	if html == "" {
		return ""
	}

	// rgba first so the rgb pattern never matches inside it
	html = rgbaPattern.ReplaceAllStringFunc(html, func(match string) string {
		parts := rgbaPattern.FindStringSubmatch(match)
		alpha, err := strconv.ParseFloat(parts[4], 64)
		if err != nil {
			return match
		}
		hex := "#" + channelToHex(parts[1]) + channelToHex(parts[2]) + channelToHex(parts[3])
		if alpha == 1 {
			return hex
		}
		return hex + fmt.Sprintf("%02x", int(math.Round(alpha*255)))
	})

	return rgbPattern.ReplaceAllStringFunc(html, func(match string) string {
		parts := rgbPattern.FindStringSubmatch(match)
		return "#" + channelToHex(parts[1]) + channelToHex(parts[2]) + channelToHex(parts[3])
	})
}

// PreserveBlankLines rewrites paragraphs that contain only a line break
// (or nothing) into a non-breaking space with explicit height so email
// clients that collapse empty blocks keep the intentional blank line.
func PreserveBlankLines(html string) string {
	if html == "" {
		return ""
	}
	return emptyParagraphPattern.ReplaceAllString(html, `<p style="`+blankLineStyle+`">&nbsp;</p>`)
}

// cleanStyle collapses duplicate semicolons and trims the edges.
func cleanStyle(style string) string {
	style = regexp.MustCompile(`;+`).ReplaceAllString(style, ";")
	style = strings.TrimSpace(style)
	style = strings.TrimPrefix(style, ";")
	style = strings.TrimSuffix(style, ";")
	return strings.TrimSpace(style)
}

// ApplyBlockSpacing merges margin:0, padding:0 and soft word-breaking
// into the inline style of every p/h1/h2/h3 element, preserving any
// styles already present.
func ApplyBlockSpacing(html string) string {
	if html == "" {
		return ""
	}

	return blockTagPattern.ReplaceAllStringFunc(html, func(match string) string {
		parts := blockTagPattern.FindStringSubmatch(match)
		tag := parts[1]
		attrs := parts[2]

		additions := []string{}
		existing := ""

		styleMatch := stylePattern.FindStringSubmatch(attrs)
		if styleMatch != nil {
			existing = strings.TrimSpace(styleMatch[1])
		}

		if !strings.Contains(existing, "margin") {
			additions = append(additions, "margin: 0")
		}
		if !strings.Contains(existing, "padding") {
			additions = append(additions, "padding: 0")
		}
		if !strings.Contains(existing, "word-wrap") {
			additions = append(additions, "word-wrap: break-word")
		}
		if !strings.Contains(existing, "overflow-wrap") {
			additions = append(additions, "overflow-wrap: break-word")
		}
		if !strings.Contains(existing, "word-break") {
			additions = append(additions, "word-break: break-all")
		}

		merged := existing
		if len(additions) > 0 {
			if merged != "" {
				merged += "; "
			}
			merged += strings.Join(additions, "; ")
		}
		merged = cleanStyle(merged)

		if styleMatch != nil {
			newAttrs := stylePattern.ReplaceAllString(attrs, `style="`+merged+`;"`)
			return "<" + tag + newAttrs + ">"
		}
		if strings.TrimSpace(attrs) == "" {
			return "<" + tag + ` style="` + merged + `;">`
		}
		return "<" + tag + attrs + ` style="` + merged + `;">`
	})
}

var alignClasses = []struct {
	class string
	value string
}{
	{"align-center", "center"},
	{"align-right", "right"},
	{"align-justify", "justify"},
}

// ConvertAlignClasses turns editor alignment classes on block elements
// into an inline text-align style. The class token is removed, and the
// class attribute is dropped entirely once empty. An existing
// text-align style always wins.
func ConvertAlignClasses(html string) string {
	if html == "" {
		return ""
	}

	for _, align := range alignClasses {
		re := regexp.MustCompile(`(?i)(<(?:p|h1|h2|h3)[^>]*?)class="([^"]*?` + align.class + `[^"]*?)"([^>]*?>)`)

		html = re.ReplaceAllStringFunc(html, func(match string) string {
			parts := re.FindStringSubmatch(match)
			before, classAttr, after := parts[1], parts[2], parts[3]

			classes := strings.TrimSpace(strings.Replace(classAttr, align.class, "", 1))
			classes = regexp.MustCompile(`\s+`).ReplaceAllString(classes, " ")

			style := ""
			styleMatch := stylePattern.FindStringSubmatch(before + after)
			if styleMatch != nil {
				style = strings.TrimSpace(styleMatch[1])
			}
			if !strings.Contains(style, "text-align") {
				if style != "" {
					style += "; "
				}
				style += "text-align: " + align.value
			}
			style = cleanStyle(style)

			classPart := ""
			if classes != "" {
				classPart = ` class="` + classes + `"`
			}

			cleanBefore := strings.TrimRight(stylePattern.ReplaceAllString(before, ""), " ")
			cleanAfter := strings.TrimLeft(stylePattern.ReplaceAllString(after, ""), " ")

			return cleanBefore + classPart + ` style="` + style + `;"` + cleanAfter
		})
	}

	return emptyClassPattern.ReplaceAllString(html, " ")
}
