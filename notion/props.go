package notion

import "strings"

// page is a Notion page object restricted to what the site reads.
type page struct {
	ID         string              `json:"id"`
	Properties map[string]property `json:"properties"`
}

// property is the union of the property variants the site's databases
// use. Type selects which field carries the value.
type property struct {
	Type           string          `json:"type"`
	Title          []richTextValue `json:"title"`
	RichText       []richTextValue `json:"rich_text"`
	Number         *float64        `json:"number"`
	Select         *selectValue    `json:"select"`
	MultiSelect    []selectValue   `json:"multi_select"`
	URL            string          `json:"url"`
	Checkbox       bool            `json:"checkbox"`
	Date           *dateValue      `json:"date"`
	Files          []fileValue     `json:"files"`
	CreatedTime    string          `json:"created_time"`
	LastEditedTime string          `json:"last_edited_time"`
}

type selectValue struct {
	Name string `json:"name"`
}

type dateValue struct {
	Start string `json:"start"`
}

type fileValue struct {
	Type     string    `json:"type"`
	File     *urlValue `json:"file"`
	External *urlValue `json:"external"`
}

type urlValue struct {
	URL string `json:"url"`
}

func (f fileValue) url() string {
	switch f.Type {
	case "file":
		if f.File != nil {
			return f.File.URL
		}
	case "external":
		if f.External != nil {
			return f.External.URL
		}
	}
	return ""
}

func joinPlainText(items []richTextValue) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(item.PlainText)
	}
	return sb.String()
}

// text returns the property's textual value for title, rich_text,
// select, url, date, and timestamp variants.
func (p property) text() string {
	switch p.Type {
	case "title":
		return joinPlainText(p.Title)
	case "rich_text":
		return joinPlainText(p.RichText)
	case "select":
		if p.Select != nil {
			return p.Select.Name
		}
	case "url":
		return p.URL
	case "date":
		if p.Date != nil {
			return p.Date.Start
		}
	case "created_time":
		return p.CreatedTime
	case "last_edited_time":
		return p.LastEditedTime
	}
	return ""
}

func (p page) text(name string) string {
	return p.Properties[name].text()
}

func (p page) number(name string) int {
	prop := p.Properties[name]
	if prop.Type == "number" && prop.Number != nil {
		return int(*prop.Number)
	}
	return 0
}

func (p page) checkbox(name string) bool {
	prop := p.Properties[name]
	return prop.Type == "checkbox" && prop.Checkbox
}

func (p page) multiSelect(name string) []string {
	prop := p.Properties[name]
	if prop.Type != "multi_select" {
		return nil
	}
	names := make([]string, 0, len(prop.MultiSelect))
	for _, s := range prop.MultiSelect {
		names = append(names, s.Name)
	}
	return names
}

// imageURL reads an image reference stored either as a url property or
// as the first entry of a files property.
func (p page) imageURL(name string) string {
	prop := p.Properties[name]
	switch prop.Type {
	case "url":
		return prop.URL
	case "files":
		if len(prop.Files) > 0 {
			return prop.Files[0].url()
		}
	}
	return ""
}
