package sgdi

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var domainPattern = regexp.MustCompile(`(?i)@[\w.\-]+\.gov\.sg`)

// ExtractDomains returns the unique @*.gov.sg email domains found in the
// rendered text of markup, lowercased. Tag structure is discarded before
// matching.
func ExtractDomains(markup string) *DomainSet {
	domains := NewDomainSet()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return domains
	}

	collectDomains(doc.Text(), domains)
	return domains
}

// ExtractResultDomains narrows extraction to search-result elements: first
// elements whose id contains "searchresult", then elements whose class
// contains "result" or "search". When neither matches, the entire page is
// parsed and scoped is false.
func ExtractResultDomains(markup string) (domains *DomainSet, scoped bool) {
	domains = NewDomainSet()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return domains, false
	}

	elements := doc.Find("[id]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		id, _ := sel.Attr("id")
		return strings.Contains(strings.ToLower(id), "searchresult")
	})

	if elements.Length() == 0 {
		elements = doc.Find("[class]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
			class, _ := sel.Attr("class")
			class = strings.ToLower(class)
			return strings.Contains(class, "result") || strings.Contains(class, "search")
		})
	}

	if elements.Length() == 0 {
		collectDomains(doc.Text(), domains)
		return domains, false
	}

	elements.Each(func(_ int, sel *goquery.Selection) {
		collectDomains(sel.Text(), domains)
	})
	return domains, true
}

func collectDomains(text string, domains *DomainSet) {
	for _, match := range domainPattern.FindAllString(text, -1) {
		domains.Add(match)
	}
}
