// Newsdesk - RSS Reading Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsdesk

package ingest

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// unsafeElements are removed with their content.
const unsafeElements = "script, style, iframe, frame, frameset, object, embed, applet, form, input, button, textarea, select, link, meta, base, noscript"

// urlAttributes may not carry script URLs.
var urlAttributes = map[string]struct{}{
	"href":       {},
	"src":        {},
	"action":     {},
	"formaction": {},
	"xlink:href": {},
	"poster":     {},
}

// Sanitize removes active content from feed HTML: unsafe elements, inline
// event handlers, and javascript:, vbscript: or data: URLs outside images.
func Sanitize(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find(unsafeElements).Remove()

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		if len(s.Nodes) == 0 {
			return
		}
		tag := goquery.NodeName(s)
		var drop []string
		for _, attr := range s.Nodes[0].Attr {
			name := strings.ToLower(attr.Key)
			if strings.HasPrefix(name, "on") || name == "style" || name == "srcdoc" {
				drop = append(drop, attr.Key)
				continue
			}
			if _, ok := urlAttributes[name]; ok && unsafeURL(attr.Val, tag) {
				drop = append(drop, attr.Key)
			}
		}
		for _, name := range drop {
			s.RemoveAttr(name)
		}
	})

	out, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func unsafeURL(raw, tag string) bool {
	v := strings.ToLower(strings.Join(strings.Fields(raw), ""))
	switch {
	case strings.HasPrefix(v, "javascript:"), strings.HasPrefix(v, "vbscript:"):
		return true
	case strings.HasPrefix(v, "data:"):
		return !(tag == "img" && strings.HasPrefix(v, "data:image/"))
	default:
		return false
	}
}

// ExtractText returns the text content of html with surrounding whitespace
// trimmed. Paragraph breaks between block elements are kept.
func ExtractText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("p, div, br, li, h1, h2, h3, h4, h5, h6, blockquote, pre").Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})
	return strings.TrimSpace(doc.Find("body").Text())
}

// FirstImage returns the src of the first <img> in html, or "".
func FirstImage(html string) string {
	if html == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img[src]").First().Attr("src")
	return strings.TrimSpace(src)
}
