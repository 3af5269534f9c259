package htmltext

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// IsValidHexColor reports whether the value is a #rgb or #rrggbb color.
func IsValidHexColor(color string) bool {
	if color == "" {
		return false
	}
	return govalidator.IsHexcolor(color)
}

// FormatHexColor trims, prefixes # when missing and lowercases.
func FormatHexColor(color string) string {
	if color == "" {
		return ""
	}
	formatted := strings.TrimSpace(color)
	if !strings.HasPrefix(formatted, "#") {
		formatted = "#" + formatted
	}
	return strings.ToLower(formatted)
}

// ExpandHexColor expands a 3-digit hex color to 6 digits (#abc → #aabbcc).
func ExpandHexColor(color string) string {
	if color == "" {
		return "#000000"
	}
	hex := strings.TrimPrefix(color, "#")
	if len(hex) == 3 {
		var b strings.Builder
		for _, c := range hex {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		return "#" + b.String()
	}
	return "#" + hex
}

// NormalizeColorInput cleans up a partially typed hex color: trims,
// prefixes #, drops non-hex characters and caps length at #rrggbb.
func NormalizeColorInput(color string) string {
	if color == "" {
		return ""
	}
	normalized := strings.TrimSpace(color)
	if normalized != "" && !strings.HasPrefix(normalized, "#") {
		normalized = "#" + normalized
	}
	var b strings.Builder
	for _, c := range normalized {
		if c == '#' || (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
			b.WriteRune(c)
		}
	}
	normalized = b.String()
	if len(normalized) > 7 {
		normalized = normalized[:7]
	}
	return normalized
}

// ColorPreset is a commonly used color offered by the editor UI.
type ColorPreset struct {
	Label string
	Value string
}

var ColorPresets = []ColorPreset{
	{Label: "black", Value: "#111111"},
	{Label: "white", Value: "#ffffff"},
	{Label: "gray", Value: "#e5e5e5"},
	{Label: "dark gray", Value: "#666666"},
	{Label: "blue", Value: "#2196F3"},
	{Label: "green", Value: "#4CAF50"},
	{Label: "red", Value: "#FF5722"},
	{Label: "orange", Value: "#FF9800"},
	{Label: "purple", Value: "#9C27B0"},
	{Label: "navy", Value: "#3F51B5"},
}
