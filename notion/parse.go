package notion

import (
	"encoding/json"

	"github.com/Usmansagemode/imam-shamsan/content"
)

// rawBlock is a block object as returned by the API. The per-type
// payload lives under a key named after the block type, so unmarshaling
// keeps the whole object and resolves the payload afterwards.
type rawBlock struct {
	ID          string
	Type        string
	HasChildren bool
	payload     blockPayload
}

// blockPayload is the union of the per-type fields the site reads.
// Unrecognized types simply decode to an empty payload.
type blockPayload struct {
	RichText []richTextValue `json:"rich_text"`
	Caption  []richTextValue `json:"caption"`
	URL      string          `json:"url"`
	Language string          `json:"language"`
	Type     string          `json:"type"`
	File     *urlValue       `json:"file"`
	External *urlValue       `json:"external"`
	Icon     *iconValue      `json:"icon"`
}

type iconValue struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

type richTextValue struct {
	PlainText   string `json:"plain_text"`
	Href        string `json:"href"`
	Annotations struct {
		Bold          bool   `json:"bold"`
		Italic        bool   `json:"italic"`
		Underline     bool   `json:"underline"`
		Strikethrough bool   `json:"strikethrough"`
		Code          bool   `json:"code"`
		Color         string `json:"color"`
	} `json:"annotations"`
}

func (b *rawBlock) UnmarshalJSON(data []byte) error {
	var envelope struct {
		ID          string `json:"id"`
		Type        string `json:"type"`
		HasChildren bool   `json:"has_children"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	b.ID = envelope.ID
	b.Type = envelope.Type
	b.HasChildren = envelope.HasChildren

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields[envelope.Type]; ok {
		// Payload shape varies by type; tolerate anything that does not
		// decode rather than failing the whole listing.
		_ = json.Unmarshal(raw, &b.payload)
	}
	return nil
}

func parseRichText(items []richTextValue) []content.RichTextItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]content.RichTextItem, 0, len(items))
	for _, item := range items {
		run := content.RichTextItem{
			Text:          item.PlainText,
			Bold:          item.Annotations.Bold,
			Italic:        item.Annotations.Italic,
			Underline:     item.Annotations.Underline,
			Strikethrough: item.Annotations.Strikethrough,
			Code:          item.Annotations.Code,
			Href:          item.Href,
		}
		if item.Annotations.Color != "" && item.Annotations.Color != "default" {
			run.Color = item.Annotations.Color
		}
		out = append(out, run)
	}
	return out
}

// ParseBlocks converts raw API blocks into the site's content model.
func ParseBlocks(raw []rawBlock) []content.Block {
	out := make([]content.Block, 0, len(raw))
	for _, rb := range raw {
		out = append(out, parseBlock(rb))
	}
	return out
}

func parseBlock(rb rawBlock) content.Block {
	b := content.Block{
		ID:       rb.ID,
		Type:     content.ParseBlockType(rb.Type),
		Content:  joinPlainText(rb.payload.RichText),
		RichText: parseRichText(rb.payload.RichText),
	}

	switch b.Type {
	case content.Image:
		if rb.payload.Type == "external" && rb.payload.External != nil {
			b.ImageURL = rb.payload.External.URL
		} else if rb.payload.Type == "file" && rb.payload.File != nil {
			b.ImageURL = rb.payload.File.URL
		}
		b.Caption = joinPlainText(rb.payload.Caption)

	case content.Code:
		b.Content = joinPlainText(rb.payload.RichText)
		b.RichText = nil
		b.CodeLanguage = rb.payload.Language
		if b.CodeLanguage == "" {
			b.CodeLanguage = "plain text"
		}

	case content.Callout:
		if rb.payload.Icon != nil && rb.payload.Icon.Type == "emoji" {
			b.Icon = rb.payload.Icon.Emoji
		}

	case content.Embed, content.Bookmark:
		b.Content = rb.payload.URL

	case content.Video:
		// Only externally hosted videos are embeddable.
		if rb.payload.Type == "external" && rb.payload.External != nil {
			b.Content = rb.payload.External.URL
		} else {
			b.Content = ""
		}
	}
	return b
}
