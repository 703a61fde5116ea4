// Copyright easylive1989, 2026. All rights reserved.

package notion

// Wire types for the subset of the API this tool touches. Properties and
// blocks are modeled as tagged structs rather than raw JSON bags so call
// sites address fields by role, not by guessing at map keys.

// Page is a database row or a standalone page with its property map.
type Page struct {
	ID         string                   `json:"id"`
	Properties map[string]PropertyValue `json:"properties"`
}

// PropertyValue is one property of a page. Type names which of the typed
// payload fields is populated.
type PropertyValue struct {
	ID       string        `json:"id,omitempty"`
	Type     string        `json:"type,omitempty"`
	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Number   *float64      `json:"number,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Date     *DateValue    `json:"date,omitempty"`
}

// SelectOption is the chosen value of a select property.
type SelectOption struct {
	Name string `json:"name"`
}

// DateValue is the value of a date property.
type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// RichText is one run of text sharing the same style flags and link.
type RichText struct {
	Type        string       `json:"type,omitempty"`
	Text        *TextContent `json:"text,omitempty"`
	Annotations *Annotations `json:"annotations,omitempty"`
	PlainText   string       `json:"plain_text,omitempty"`
	Href        string       `json:"href,omitempty"`
}

// TextContent carries the literal text of a rich text run.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link is a hyperlink target.
type Link struct {
	URL string `json:"url"`
}

// Annotations are the style flags of a rich text run.
type Annotations struct {
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`
	Underline     bool   `json:"underline,omitempty"`
	Code          bool   `json:"code,omitempty"`
	Color         string `json:"color,omitempty"`
}

// Content returns the plain text of the run, preferring the server-computed
// plain_text field over the literal text content.
func (r RichText) Content() string {
	if r.PlainText != "" {
		return r.PlainText
	}
	if r.Text != nil {
		return r.Text.Content
	}
	return ""
}

// LinkURL returns the hyperlink target of the run, if any.
func (r RichText) LinkURL() string {
	if r.Href != "" {
		return r.Href
	}
	if r.Text != nil && r.Text.Link != nil {
		return r.Text.Link.URL
	}
	return ""
}

// BlockType tags one unit of rendered page content.
type BlockType string

const (
	BlockParagraph        BlockType = "paragraph"
	BlockHeading1         BlockType = "heading_1"
	BlockHeading2         BlockType = "heading_2"
	BlockHeading3         BlockType = "heading_3"
	BlockBulletedListItem BlockType = "bulleted_list_item"
	BlockNumberedListItem BlockType = "numbered_list_item"
	BlockQuote            BlockType = "quote"
	BlockCode             BlockType = "code"
	BlockDivider          BlockType = "divider"
)

// Block is one content block of a page. Only the payload matching Type is
// populated; unrecognized types leave every payload nil.
type Block struct {
	ID               string     `json:"id,omitempty"`
	Object           string     `json:"object,omitempty"`
	Type             BlockType  `json:"type"`
	Paragraph        *TextBlock `json:"paragraph,omitempty"`
	Heading1         *TextBlock `json:"heading_1,omitempty"`
	Heading2         *TextBlock `json:"heading_2,omitempty"`
	Heading3         *TextBlock `json:"heading_3,omitempty"`
	BulletedListItem *TextBlock `json:"bulleted_list_item,omitempty"`
	NumberedListItem *TextBlock `json:"numbered_list_item,omitempty"`
	Quote            *TextBlock `json:"quote,omitempty"`
	Code             *CodeBlock `json:"code,omitempty"`
	Divider          *struct{}  `json:"divider,omitempty"`
}

// TextBlock is the payload shared by every text-bearing block type.
type TextBlock struct {
	RichText []RichText `json:"rich_text"`
}

// CodeBlock is the payload of a code block.
type CodeBlock struct {
	RichText []RichText `json:"rich_text"`
	Language string     `json:"language,omitempty"`
}

// Text returns the rich text runs of the block's payload, or nil for
// dividers, structurally incomplete blocks and unrecognized types.
func (b Block) Text() []RichText {
	switch b.Type {
	case BlockParagraph:
		if b.Paragraph != nil {
			return b.Paragraph.RichText
		}
	case BlockHeading1:
		if b.Heading1 != nil {
			return b.Heading1.RichText
		}
	case BlockHeading2:
		if b.Heading2 != nil {
			return b.Heading2.RichText
		}
	case BlockHeading3:
		if b.Heading3 != nil {
			return b.Heading3.RichText
		}
	case BlockBulletedListItem:
		if b.BulletedListItem != nil {
			return b.BulletedListItem.RichText
		}
	case BlockNumberedListItem:
		if b.NumberedListItem != nil {
			return b.NumberedListItem.RichText
		}
	case BlockQuote:
		if b.Quote != nil {
			return b.Quote.RichText
		}
	case BlockCode:
		if b.Code != nil {
			return b.Code.RichText
		}
	}
	return nil
}

// Database is a remote database's identity and column schema.
type Database struct {
	ID         string                        `json:"id"`
	Properties map[string]PropertyDefinition `json:"properties"`
}

// PropertyDefinition is the declared type of one database column.
type PropertyDefinition struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// TitleProperty builds a title property value for a page write.
func TitleProperty(text string) PropertyValue {
	return PropertyValue{Title: []RichText{{Text: &TextContent{Content: text}}}}
}

// RichTextProperty builds a rich text property value for a page write.
func RichTextProperty(text string) PropertyValue {
	return PropertyValue{RichText: []RichText{{Text: &TextContent{Content: text}}}}
}

// NumberProperty builds a number property value for a page write.
func NumberProperty(value float64) PropertyValue {
	return PropertyValue{Number: &value}
}

// SelectProperty builds a select property value for a page write.
func SelectProperty(name string) PropertyValue {
	return PropertyValue{Select: &SelectOption{Name: name}}
}
