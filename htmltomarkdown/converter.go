// Package htmltomarkdown produces Markdown reading copies of rendered articles.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/easynews"
)

// Ensure Converter implements easynews.Converter at compile time.
var _ easynews.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert articles to Markdown.
// Ruby readings (<rt>, <rp>) are dropped so the base text reads naturally.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms the body of an HTML document into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", easynews.Errorf(easynews.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", easynews.Errorf(easynews.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find("rt, rp").Remove()

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(body)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}
