// Copyright easylive1989, 2026. All rights reserved.

// Package markdown renders a page's property map and block sequence as a
// Markdown document. The conversion is pure: no I/O, no errors — blocks
// with missing pieces degrade to rendering nothing for the missing piece.
package markdown

import (
	"strings"

	"github.com/easylive1989/noteops/internal/notion"
)

// Title extracts the page title: the concatenated plain text of the first
// property whose declared type is "title". Returns "" when the page has
// no title property.
func Title(props map[string]notion.PropertyValue) string {
	for _, p := range props {
		if p.Type != "title" {
			continue
		}
		var b strings.Builder
		for _, run := range p.Title {
			b.WriteString(run.Content())
		}
		return b.String()
	}
	return ""
}

// Document renders a whole page. A non-empty title becomes a leading H1;
// blocks follow in input order.
func Document(props map[string]notion.PropertyValue, blocks []notion.Block) string {
	var b strings.Builder
	if title := Title(props); title != "" {
		b.WriteString("# " + title + "\n\n")
	}
	for _, blk := range blocks {
		b.WriteString(Render(blk))
	}
	return b.String()
}

// Render converts one block into its Markdown fragment. Unrecognized
// block types render as the empty string, never an error.
func Render(b notion.Block) string {
	text := Spans(b.Text())
	switch b.Type {
	case notion.BlockParagraph:
		return text + "\n\n"
	case notion.BlockHeading1:
		return "# " + text + "\n\n"
	case notion.BlockHeading2:
		return "## " + text + "\n\n"
	case notion.BlockHeading3:
		return "### " + text + "\n\n"
	case notion.BlockBulletedListItem:
		return "- " + text + "\n"
	case notion.BlockNumberedListItem:
		// The literal "1." is intentional: Markdown renderers renumber
		// ordered lists themselves.
		return "1. " + text + "\n"
	case notion.BlockQuote:
		return "> " + text + "\n\n"
	case notion.BlockCode:
		language := ""
		if b.Code != nil {
			language = b.Code.Language
		}
		return "```" + language + "\n" + text + "\n```\n\n"
	case notion.BlockDivider:
		return "---\n\n"
	default:
		return ""
	}
}

// Spans renders a rich text sequence, concatenating each run in order.
func Spans(runs []notion.RichText) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(span(r))
	}
	return b.String()
}

// span renders one run, applying delimiters in fixed order: bold, italic,
// inline code, strikethrough, then the hyperlink wrap.
func span(r notion.RichText) string {
	text := r.Content()
	if a := r.Annotations; a != nil {
		if a.Bold {
			text = "**" + text + "**"
		}
		if a.Italic {
			text = "*" + text + "*"
		}
		if a.Code {
			text = "`" + text + "`"
		}
		if a.Strikethrough {
			text = "~~" + text + "~~"
		}
	}
	if href := r.LinkURL(); href != "" {
		text = "[" + text + "](" + href + ")"
	}
	return text
}
