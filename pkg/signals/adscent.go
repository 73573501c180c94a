package signals

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kineticbrand/demandlab/internal/models"
	"github.com/kineticbrand/demandlab/pkg/utils"
)

// adPathKeywords mark paths that look purpose-built for paid campaigns.
var adPathKeywords = []string{"lp", "landing", "promo", "offer", "campaign"}

// adQueryMarkers in page HTML indicate the site receives tagged ad
// clicks.
var adQueryMarkers = []string{"utm_source", "gclid", "fbclid"}

const (
	// Repetition-ratio buckets for headline messaging.
	strongConsistencyRatio   = 1.5
	moderateConsistencyRatio = 1.2

	headlineTokenMinLen = 3
	minHeadlineSample   = 2
)

// AnalyzeAdScent flags ad-landing patterns and grades headline message
// consistency. Consistency is never inferred from fewer than two
// headlines.
func AnalyzeAdScent(pages []models.CrawledPage) models.AdScentSignals {
	sig := models.AdScentSignals{
		MessageConsistency: models.ConsistencyUnknown,
	}

	var headlines []string
	for _, p := range pages {
		if !sig.HasAdLandingPatterns && hasAdPattern(p) {
			sig.HasAdLandingPatterns = true
		}
		if h1 := firstH1(p.HTML); h1 != "" {
			headlines = append(headlines, h1)
		}
	}

	if len(headlines) >= minHeadlineSample {
		sig.MessageConsistency = gradeConsistency(headlines)
	}
	return sig
}

func hasAdPattern(p models.CrawledPage) bool {
	lowerPath := strings.ToLower(p.Path)
	for _, kw := range adPathKeywords {
		if strings.Contains(lowerPath, kw) {
			return true
		}
	}
	lowerHTML := strings.ToLower(p.HTML)
	for _, m := range adQueryMarkers {
		if strings.Contains(lowerHTML, m) {
			return true
		}
	}
	return false
}

func firstH1(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return utils.CleanText(doc.Find("h1").First().Text())
}

// gradeConsistency tokenizes all headline text and buckets the
// total-to-unique word ratio: repetitive wording reads as a deliberately
// consistent message.
func gradeConsistency(headlines []string) models.MessageConsistency {
	var words []string
	for _, h := range headlines {
		words = append(words, utils.Tokenize(h, headlineTokenMinLen)...)
	}
	if len(words) == 0 {
		return models.ConsistencyWeak
	}

	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[w] = true
	}
	ratio := float64(len(words)) / float64(len(unique))

	switch {
	case ratio > strongConsistencyRatio:
		return models.ConsistencyStrong
	case ratio > moderateConsistencyRatio:
		return models.ConsistencyModerate
	default:
		return models.ConsistencyWeak
	}
}
