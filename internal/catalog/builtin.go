package catalog

import "github.com/edmkit/edmkit/internal/domain"

// Builtin returns the catalog for the standard module set, used when no
// external catalog source is configured. The property schemas mirror
// the built-in renderer registry.
func Builtin() *Catalog {
	text := func(key, label, placeholder string) domain.EditableProp {
		return domain.EditableProp{Key: key, Label: label, Kind: domain.PropText, Placeholder: placeholder}
	}
	rich := func(key, label string) domain.EditableProp {
		return domain.EditableProp{Key: key, Label: label, Kind: domain.PropRichText}
	}
	image := func(key, label string) domain.EditableProp {
		return domain.EditableProp{Key: key, Label: label, Kind: domain.PropImage}
	}
	link := func(key, label string) domain.EditableProp {
		return domain.EditableProp{Key: key, Label: label, Kind: domain.PropURL}
	}
	boolean := func(key, label string) domain.EditableProp {
		return domain.EditableProp{Key: key, Label: label, Kind: domain.PropBool}
	}
	color := func(key, label string) domain.EditableProp {
		return domain.EditableProp{Key: key, Label: label, Kind: domain.PropColor}
	}

	return FromMetadata([]domain.ModuleMetadata{
		{
			TypeID: "header", Name: "Header", Category: "layout",
			Props: []domain.EditableProp{
				image("logoUrl", "Logo"),
				text("logoAlt", "Logo alt text", "Company logo"),
				boolean("showDate", "Show issue date"),
			},
		},
		{
			TypeID: "intro-text", Name: "Intro text", Category: "content",
			Props: []domain.EditableProp{
				text("title", "Title", "Newsletter title"),
				rich("body", "Body"),
			},
		},
		{
			TypeID: "image", Name: "Image", Category: "media",
			Props: []domain.EditableProp{
				image("imageUrl", "Image"),
				text("imageAlt", "Alt text", ""),
				link("linkUrl", "Link"),
			},
		},
		{
			TypeID: "one-button", Name: "Button", Category: "action",
			Props: []domain.EditableProp{
				text("buttonText", "Label", "Read more"),
				link("buttonUrl", "Target"),
				color("buttonBackground", "Background color"),
				color("buttonTextColor", "Text color"),
			},
		},
		{
			TypeID: "two-button", Name: "Button pair", Category: "action",
			Props: []domain.EditableProp{
				text("firstText", "First label", "Learn more"),
				link("firstUrl", "First target"),
				boolean("showFirst", "Show first button"),
				text("secondText", "Second label", "Sign up"),
				link("secondUrl", "Second target"),
				boolean("showSecond", "Show second button"),
				color("buttonColor", "Button color"),
				color("textColor", "Text color"),
			},
		},
		{
			TypeID: "section-title", Name: "Section title", Category: "layout",
			Props: []domain.EditableProp{
				text("title", "Title", "Section title"),
				text("subTitle", "Subtitle", ""),
			},
		},
		{
			TypeID: "two-column", Name: "Two columns", Category: "content",
			Props: []domain.EditableProp{
				text("leftTitle", "Left title", ""),
				rich("leftBody", "Left body"),
				image("leftImage", "Left image"),
				text("rightTitle", "Right title", ""),
				rich("rightBody", "Right body"),
				image("rightImage", "Right image"),
			},
		},
		{
			TypeID: "image-text", Name: "Image and text", Category: "content",
			Props: []domain.EditableProp{
				text("title", "Title", ""),
				rich("body", "Body"),
				image("imageUrl", "Image"),
				link("linkUrl", "Link"),
			},
		},
		{
			TypeID: "promo", Name: "Promotion", Category: "content",
			Props: []domain.EditableProp{
				text("title", "Title", ""),
				rich("body", "Body"),
				boolean("showButton", "Show button"),
				text("buttonText", "Button label", "View offer"),
				link("buttonUrl", "Button target"),
				color("buttonBackground", "Button color"),
			},
		},
		{
			TypeID: "card", Name: "Card", Category: "content",
			Props: []domain.EditableProp{
				text("title", "Title", ""),
				rich("body", "Body"),
				image("imageUrl", "Image"),
				link("linkUrl", "Link"),
				text("tag", "Tag", ""),
			},
		},
		{
			TypeID: "split-feature", Name: "Split feature", Category: "content",
			Props: []domain.EditableProp{
				text("leftTitle", "Left title", ""),
				text("leftText", "Left text", ""),
				image("leftImage", "Left image"),
				link("leftUrl", "Left link"),
				text("rightTitle", "Right title", ""),
				text("rightText", "Right text", ""),
				image("rightImage", "Right image"),
				link("rightUrl", "Right link"),
			},
		},
		{
			TypeID: "duo", Name: "Content duo", Category: "content",
			Props: []domain.EditableProp{
				text("firstTitle", "First title", ""),
				text("firstText", "First text", ""),
				image("firstImage", "First image"),
				text("secondTitle", "Second title", ""),
				text("secondText", "Second text", ""),
				image("secondImage", "Second image"),
			},
		},
		{
			TypeID: "media-text", Name: "Media with text", Category: "media",
			Props: []domain.EditableProp{
				text("title", "Title", ""),
				rich("body", "Body"),
				image("imageUrl", "Image"),
				link("linkUrl", "Link"),
				text("caption", "Caption", ""),
			},
		},
		{
			TypeID: "media-text-reverse", Name: "Media with text (reversed)", Category: "media",
			Props: []domain.EditableProp{
				text("title", "Title", ""),
				rich("body", "Body"),
				image("imageUrl", "Image"),
				link("linkUrl", "Link"),
				text("caption", "Caption", ""),
			},
		},
		{
			TypeID: "grid-table", Name: "Grid table", Category: "data",
			Props: []domain.EditableProp{
				text("title", "Title", ""),
				boolean("showTable", "Show table"),
				{Key: "tableCells", Label: "Cells", Kind: domain.PropTable},
			},
		},
		{
			TypeID: "speaker", Name: "Speaker", Category: "people",
			Props: []domain.EditableProp{
				text("name", "Name", ""),
				text("role", "Role", ""),
				image("photoUrl", "Photo"),
				{Key: "tableRows", Label: "Details", Kind: domain.PropTable},
				{Key: "additionalContents", Label: "Additional content", Kind: domain.PropList},
			},
		},
		{
			TypeID: "speaker-duo", Name: "Speaker pair", Category: "people",
			Props: []domain.EditableProp{
				text("firstName", "First name", ""),
				text("firstRole", "First role", ""),
				image("firstPhoto", "First photo"),
				text("secondName", "Second name", ""),
				text("secondRole", "Second role", ""),
				image("secondPhoto", "Second photo"),
			},
		},
		{
			TypeID: "footer", Name: "Footer", Category: "layout",
			Props: []domain.EditableProp{
				text("companyName", "Company name", "EDM Kit"),
				text("address", "Postal address", ""),
				text("contactEmail", "Contact email", ""),
				link("unsubscribeUrl", "Unsubscribe link"),
				boolean("showSocialLinks", "Show social links"),
			},
		},
		{
			TypeID: "subtitle-bar", Name: "Subtitle bar", Category: "layout",
			Props: []domain.EditableProp{
				text("subTitle", "Subtitle", ""),
			},
		},
	})
}
