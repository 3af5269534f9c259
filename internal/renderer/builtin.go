package renderer

// Built-in module registry. Each entry mirrors the structure of its
// HTML template: the positional steps rely on the occurrence order of
// the default literals inside the template files, so template and
// registry must change together.

const (
	defaultImageURL = "https://cdn.edmkit.io/assets/placeholder.png"
	defaultLinkURL  = "https://example.com"

	defaultButtonBackground = "#111111"
	defaultButtonText       = "#ffffff"
)

// NewBuiltinRegistry returns the registry for the standard module set.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()

	r.Register("header", &moduleProcessor{
		autoReplace: true,
		defaults: map[string]any{
			"logoUrl":  defaultImageURL,
			"logoAlt":  "Company logo",
			"showDate": false,
		},
		pipeline: []PipelineStep{
			SwapImageSources(defaultImageURL, "logoUrl"),
			RemoveBlockUnless("issue date", "showDate"),
		},
	})

	r.Register("intro-text", &moduleProcessor{
		autoReplace:  true,
		richTextKeys: []string{"body"},
		defaults: map[string]any{
			"title": "Newsletter title",
			"body":  "",
		},
	})

	r.Register("image", &moduleProcessor{
		autoReplace: true,
		defaults: map[string]any{
			"imageUrl": defaultImageURL,
			"imageAlt": "",
			"linkUrl":  "",
		},
		pipeline: []PipelineStep{
			SwapImageSources(defaultImageURL, "imageUrl"),
			UnwrapLinkWhenEmpty("image link", "linkUrl"),
			SwapLinks(defaultLinkURL, "linkUrl"),
		},
	})

	r.Register("one-button", &moduleProcessor{
		autoReplace: true,
		defaults: map[string]any{
			"buttonText":       "Read more",
			"buttonUrl":        "",
			"buttonBackground": defaultButtonBackground,
			"buttonTextColor":  defaultButtonText,
		},
		pipeline: []PipelineStep{
			SwapLinks(defaultLinkURL, "buttonUrl"),
			SwapColor(defaultButtonBackground, "buttonBackground"),
			SwapColor(defaultButtonText, "buttonTextColor"),
		},
	})

	r.Register("two-button", &moduleProcessor{
		autoReplace: false,
		defaults: map[string]any{
			"firstText":   "Learn more",
			"firstUrl":    "",
			"showFirst":   true,
			"secondText":  "Sign up",
			"secondUrl":   "",
			"showSecond":  true,
			"buttonColor": defaultButtonBackground,
			"textColor":   defaultButtonText,
		},
		// positional steps first: occurrence indexes are assigned
		// against the full template, removal must not shift a hidden
		// button's values onto its neighbour
		pipeline: []PipelineStep{
			PositionalText("button label", "firstText", "secondText"),
			SwapLinks(defaultLinkURL, "firstUrl", "secondUrl"),
			SwapColor(defaultButtonBackground, "buttonColor"),
			SwapColor(defaultButtonText, "textColor"),
			RemoveBlockUnless("button 1", "showFirst"),
			RemoveBlockUnless("button 2", "showSecond"),
		},
	})

	r.Register("section-title", &moduleProcessor{
		autoReplace: true,
		defaults: map[string]any{
			"title":    "Section title",
			"subTitle": "",
		},
		pipeline: []PipelineStep{
			RemoveBlockWhenEmpty("subtitle", "subTitle"),
		},
	})

	r.Register("two-column", &moduleProcessor{
		autoReplace:  false,
		richTextKeys: []string{"leftBody", "rightBody"},
		defaults: map[string]any{
			"leftTitle":  "",
			"leftBody":   "",
			"leftImage":  defaultImageURL,
			"rightTitle": "",
			"rightBody":  "",
			"rightImage": defaultImageURL,
		},
		pipeline: []PipelineStep{
			PositionalText("column title", "leftTitle", "rightTitle"),
			PositionalText("column body", "leftBody", "rightBody"),
			SwapImageSources(defaultImageURL, "leftImage", "rightImage"),
		},
	})

	r.Register("image-text", &moduleProcessor{
		autoReplace:  true,
		richTextKeys: []string{"body"},
		defaults: map[string]any{
			"title":    "",
			"body":     "",
			"imageUrl": defaultImageURL,
			"linkUrl":  "",
		},
		pipeline: []PipelineStep{
			SwapImageSources(defaultImageURL, "imageUrl"),
			UnwrapLinkWhenEmpty("image link", "linkUrl"),
			SwapLinks(defaultLinkURL, "linkUrl"),
		},
	})

	r.Register("promo", &moduleProcessor{
		autoReplace:  true,
		richTextKeys: []string{"body"},
		defaults: map[string]any{
			"title":            "",
			"body":             "",
			"showButton":       false,
			"buttonText":       "View offer",
			"buttonUrl":        "",
			"buttonBackground": defaultButtonBackground,
		},
		pipeline: []PipelineStep{
			RemoveBlockUnless("promo button", "showButton"),
			SwapLinks(defaultLinkURL, "buttonUrl"),
			SwapColor(defaultButtonBackground, "buttonBackground"),
		},
	})

	r.Register("card", &moduleProcessor{
		autoReplace:  true,
		richTextKeys: []string{"body"},
		defaults: map[string]any{
			"title":    "",
			"body":     "",
			"imageUrl": defaultImageURL,
			"linkUrl":  "",
			"tag":      "",
		},
		pipeline: []PipelineStep{
			SwapImageSources(defaultImageURL, "imageUrl"),
			SwapLinks(defaultLinkURL, "linkUrl"),
			RemoveBlockWhenEmpty("card tag", "tag"),
		},
	})

	r.Register("split-feature", &moduleProcessor{
		autoReplace: false,
		defaults: map[string]any{
			"leftTitle":  "",
			"leftText":   "",
			"leftImage":  defaultImageURL,
			"leftUrl":    "",
			"rightTitle": "",
			"rightText":  "",
			"rightImage": defaultImageURL,
			"rightUrl":   "",
		},
		pipeline: []PipelineStep{
			PositionalText("feature title", "leftTitle", "rightTitle"),
			PositionalText("feature text", "leftText", "rightText"),
			SwapImageSources(defaultImageURL, "leftImage", "rightImage"),
			SwapLinks(defaultLinkURL, "leftUrl", "rightUrl"),
		},
	})

	r.Register("duo", &moduleProcessor{
		autoReplace: false,
		defaults: map[string]any{
			"firstTitle":  "",
			"firstText":   "",
			"firstImage":  defaultImageURL,
			"secondTitle": "",
			"secondText":  "",
			"secondImage": defaultImageURL,
		},
		pipeline: []PipelineStep{
			PositionalText("content title", "firstTitle", "secondTitle"),
			PositionalText("content text", "firstText", "secondText"),
			SwapImageSources(defaultImageURL, "firstImage", "secondImage"),
		},
	})

	mediaText := func() *moduleProcessor {
		return &moduleProcessor{
			autoReplace:  true,
			richTextKeys: []string{"body"},
			defaults: map[string]any{
				"title":    "",
				"body":     "",
				"imageUrl": defaultImageURL,
				"linkUrl":  "",
				"caption":  "",
			},
			pipeline: []PipelineStep{
				SwapImageSources(defaultImageURL, "imageUrl"),
				SwapLinks(defaultLinkURL, "linkUrl"),
				RemoveBlockWhenEmpty("caption", "caption"),
			},
		}
	}
	r.Register("media-text", mediaText())
	r.Register("media-text-reverse", mediaText())

	r.Register("grid-table", &moduleProcessor{
		autoReplace: true,
		defaults: map[string]any{
			"title":      "",
			"showTable":  true,
			"tableCells": nil,
		},
		pipeline: []PipelineStep{
			RemoveBlockUnless("table section", "showTable"),
			GridTableAt("<!-- table cells -->", "tableCells"),
		},
	})

	r.Register("speaker", &moduleProcessor{
		autoReplace: true,
		defaults: map[string]any{
			"name":      "",
			"role":      "",
			"photoUrl":  defaultImageURL,
			"tableRows": nil,
		},
		pipeline: []PipelineStep{
			SwapImageSources(defaultImageURL, "photoUrl"),
			TableRowsAt("<!-- table rows -->", "tableRows"),
			AdditionalContentAt("<!-- additional content -->", "additionalContents"),
		},
	})

	r.Register("speaker-duo", &moduleProcessor{
		autoReplace: false,
		defaults: map[string]any{
			"firstName":   "",
			"firstRole":   "",
			"firstPhoto":  defaultImageURL,
			"secondName":  "",
			"secondRole":  "",
			"secondPhoto": defaultImageURL,
		},
		pipeline: []PipelineStep{
			PositionalText("speaker name", "firstName", "secondName"),
			PositionalText("speaker role", "firstRole", "secondRole"),
			SwapImageSources(defaultImageURL, "firstPhoto", "secondPhoto"),
		},
	})

	r.Register("footer", &moduleProcessor{
		autoReplace: true,
		defaults: map[string]any{
			"companyName":     "EDM Kit",
			"address":         "",
			"contactEmail":    "",
			"unsubscribeUrl":  "",
			"showSocialLinks": false,
		},
		pipeline: []PipelineStep{
			RemoveBlockUnless("social links", "showSocialLinks"),
			RemoveBlockWhenEmpty("postal address", "address"),
			SwapLinks(defaultLinkURL, "unsubscribeUrl"),
		},
	})

	// no generic pass: the structural fallback for marker-less legacy
	// templates needs the raw {{subTitle}} placeholder intact
	r.Register("subtitle-bar", &moduleProcessor{
		autoReplace: false,
		defaults: map[string]any{
			"subTitle": "",
		},
		pipeline: []PipelineStep{
			RemoveBlockWhenEmpty("subtitle", "subTitle"),
			RemoveLegacyElement("subTitle", "tr", "div"),
			ReplaceText("subTitle"),
		},
	})

	return r
}
