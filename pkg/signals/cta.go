package signals

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kineticbrand/demandlab/internal/models"
	"github.com/kineticbrand/demandlab/pkg/utils"
)

const (
	minCTALength = 3
	maxCTALength = 49

	clarityBase           = 50
	clarityAnyCTABonus    = 20
	clarityPrimaryBonus   = 15
	clarityNoCompeteBonus = 15

	// competingTypeThreshold is a calibration constant: more than this
	// many distinct conversion-oriented CTA types flags a competing set.
	competingTypeThreshold = 2
)

// canonicalPhrases are matched as substrings anywhere in page HTML, in
// addition to the DOM scan for button/anchor elements.
var canonicalPhrases = []string{
	"get started",
	"book a demo",
	"request a demo",
	"request demo",
	"schedule a demo",
	"start free trial",
	"free trial",
	"try for free",
	"sign up",
	"subscribe",
	"contact sales",
	"talk to sales",
	"get a quote",
	"learn more",
}

// ctaSelector matches button elements and anchors styled as buttons.
const ctaSelector = "button, a[class*='btn'], a[class*='button'], a[class*='cta']"

// typeRules classify CTA text. Order matters: text matching several
// keyword families resolves to the first matching rule.
var typeRules = []struct {
	ctaType  models.CTAType
	keywords []string
}{
	{models.CTADemo, []string{"demo"}},
	{models.CTATrial, []string{"trial", "try"}},
	{models.CTAContact, []string{"contact", "talk to", "get in touch"}},
	{models.CTADownload, []string{"download"}},
	{models.CTASubscribe, []string{"subscribe", "sign up", "newsletter"}},
	{models.CTABuy, []string{"buy", "purchase", "order", "shop", "cart"}},
	{models.CTALearn, []string{"learn", "read", "explore", "discover"}},
}

// typePriority ranks CTA types for primary selection, best first.
var typePriority = map[models.CTAType]int{
	models.CTADemo:      1,
	models.CTATrial:     2,
	models.CTAContact:   3,
	models.CTADownload:  4,
	models.CTASubscribe: 5,
	models.CTABuy:       6,
	models.CTALearn:     7,
	models.CTAOther:     8,
}

// conversionTypes are the CTA types counted toward the competing-CTA
// rule. Download, subscribe and learn are soft asks and excluded.
var conversionTypes = map[models.CTAType]bool{
	models.CTADemo:    true,
	models.CTATrial:   true,
	models.CTAContact: true,
	models.CTABuy:     true,
}

// AnalyzeCTAs extracts, deduplicates and ranks the calls to action found
// across the crawled pages.
func AnalyzeCTAs(pages []models.CrawledPage) models.CtaSignals {
	var candidates []models.CTA
	for _, p := range pages {
		candidates = append(candidates, pageCandidates(p.HTML)...)
	}

	ctas := dedupe(candidates)

	sig := models.CtaSignals{
		CTAs:  ctas,
		Count: len(ctas),
	}

	typesSeen := make(map[models.CTAType]bool)
	conversionSeen := make(map[models.CTAType]bool)
	for _, cta := range ctas {
		if !typesSeen[cta.Type] {
			typesSeen[cta.Type] = true
			sig.Types = append(sig.Types, cta.Type)
		}
		if conversionTypes[cta.Type] {
			conversionSeen[cta.Type] = true
		}
	}
	sig.HasCompetingCTAs = len(conversionSeen) > competingTypeThreshold

	if primary := selectPrimary(ctas); primary != nil {
		sig.PrimaryCTA = primary.Text
		sig.HasClearPrimaryCTA = true
	}

	sig.ClarityScore = clarityScore(sig)
	return sig
}

// pageCandidates collects CTA candidates from one page: the DOM scan for
// buttons and button-styled anchors, then the canonical phrase scan over
// the raw HTML. The first DOM candidate on the page is marked primary.
func pageCandidates(html string) []models.CTA {
	var out []models.CTA

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err == nil {
		first := true
		doc.Find(ctaSelector).Each(func(_ int, sel *goquery.Selection) {
			text := utils.CleanText(sel.Text())
			if len(text) < minCTALength || len(text) > maxCTALength {
				return
			}
			out = append(out, models.CTA{
				Text:      text,
				Type:      classifyCTA(text),
				IsPrimary: first,
			})
			first = false
		})
	}

	lower := strings.ToLower(html)
	for _, phrase := range canonicalPhrases {
		if strings.Contains(lower, phrase) {
			out = append(out, models.CTA{
				Text: phrase,
				Type: classifyCTA(phrase),
			})
		}
	}
	return out
}

// dedupe removes case-insensitive duplicates by exact text. The first
// occurrence wins, keeping its IsPrimary flag.
func dedupe(candidates []models.CTA) []models.CTA {
	seen := make(map[string]bool, len(candidates))
	out := make([]models.CTA, 0, len(candidates))
	for _, c := range candidates {
		key := strings.ToLower(c.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

func classifyCTA(text string) models.CTAType {
	lower := strings.ToLower(text)
	for _, rule := range typeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.ctaType
			}
		}
	}
	return models.CTAOther
}

// selectPrimary ranks deduplicated CTAs by type priority. Ties on
// priority are broken by the IsPrimary flag, then by discovery order.
func selectPrimary(ctas []models.CTA) *models.CTA {
	var best *models.CTA
	for i := range ctas {
		c := &ctas[i]
		if best == nil {
			best = c
			continue
		}
		bp, cp := typePriority[best.Type], typePriority[c.Type]
		if cp < bp || (cp == bp && c.IsPrimary && !best.IsPrimary) {
			best = c
		}
	}
	return best
}

func clarityScore(sig models.CtaSignals) int {
	score := clarityBase
	if sig.Count > 0 {
		score += clarityAnyCTABonus
		if !sig.HasCompetingCTAs {
			score += clarityNoCompeteBonus
		}
	}
	if sig.HasClearPrimaryCTA {
		score += clarityPrimaryBonus
	}
	if score > 100 {
		score = 100
	}
	return score
}
