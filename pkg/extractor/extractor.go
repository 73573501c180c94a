package extractor

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
	"golang.org/x/net/publicsuffix"

	"github.com/kineticbrand/demandlab/pkg/utils"
)

// Link is one navigable hyperlink extracted from a page.
type Link struct {
	URL        string
	AnchorText string
}

// skippedSchemes lists href prefixes that never lead to a crawlable page.
var skippedSchemes = []string{"mailto:", "tel:", "javascript:", "#", "data:"}

// Links walks the HTML document and returns resolved, deduplicated links.
// Anchors, mailto/tel/javascript hrefs and unparseable references are
// dropped.
func Links(htmlContent, baseURL string) []Link {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	var links []Link
	seen := make(map[string]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			var href string
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					href = strings.TrimSpace(attr.Val)
				}
			}
			if resolved, ok := resolve(base, href); ok && !seen[resolved] {
				seen[resolved] = true
				links = append(links, Link{
					URL:        resolved,
					AnchorText: utils.CleanText(nodeText(n)),
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links
}

func resolve(base *url.URL, href string) (string, bool) {
	if href == "" {
		return "", false
	}
	lower := strings.ToLower(href)
	for _, scheme := range skippedSchemes {
		if strings.HasPrefix(lower, scheme) {
			return "", false
		}
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}
	resolved.Fragment = ""
	return resolved.String(), true
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}

// SameOrigin reports whether candidate belongs to the same registrable
// domain (eTLD+1) as base. Unparseable candidates are treated as foreign.
func SameOrigin(baseURL, candidate string) bool {
	bu, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	cu, err := url.Parse(candidate)
	if err != nil || cu.Hostname() == "" {
		return false
	}
	baseDomain, err := publicsuffix.EffectiveTLDPlusOne(bu.Hostname())
	if err != nil {
		// Hosts without a public suffix (localhost, test servers) fall
		// back to an exact hostname match.
		return strings.EqualFold(bu.Hostname(), cu.Hostname()) && bu.Port() == cu.Port()
	}
	candDomain, err := publicsuffix.EffectiveTLDPlusOne(cu.Hostname())
	if err != nil {
		return false
	}
	return baseDomain == candDomain
}

// Title extracts the page title, preferring <title> then og:title.
func Title(htmlContent string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}
	if title := utils.CleanText(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if og, exists := doc.Find("meta[property='og:title']").Attr("content"); exists {
		return utils.CleanText(og)
	}
	return ""
}

// Excerpt extracts a clean-text snippet of the main page content,
// truncated to maxLen characters. Pages trafilatura cannot handle fall
// back to stripped body text.
func Excerpt(htmlContent string, maxLen int) string {
	result, err := trafilatura.Extract(strings.NewReader(htmlContent), trafilatura.Options{})
	if err == nil && result != nil && result.ContentText != "" {
		return utils.TruncateText(utils.CleanText(result.ContentText), maxLen)
	}
	return utils.TruncateText(fallbackText(htmlContent), maxLen)
}

func fallbackText(htmlContent string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}
	body := doc.Find("body").First()
	body.Find("script, style, nav, header, footer").Remove()
	return utils.CleanText(body.Text())
}
