package sgdi

import "testing"

func TestExtractDomains(t *testing.T) {
	tests := []struct {
		name     string
		markup   string
		expected []string
	}{
		{
			"plain text",
			"reach us at john@moe.gov.sg or JANE@MOH.GOV.SG",
			[]string{"@moe.gov.sg", "@moh.gov.sg"},
		},
		{
			"tags discarded",
			"<html><body><p>Contact: <b>foo@agency.gov.sg</b></p></body></html>",
			[]string{"@agency.gov.sg"},
		},
		{
			"duplicates collapse",
			"a@moe.gov.sg b@moe.gov.sg",
			[]string{"@moe.gov.sg"},
		},
		{
			"subdomains",
			"x@sub.moe.gov.sg",
			[]string{"@sub.moe.gov.sg"},
		},
		{
			"hyphenated",
			"y@pa-office.gov.sg",
			[]string{"@pa-office.gov.sg"},
		},
		{
			"no matches",
			"<div>nothing to see</div>",
			[]string{},
		},
		{
			"other domains ignored",
			"bob@example.com alice@gov.sg.com",
			[]string{},
		},
	}

	for _, test := range tests {
		result := ExtractDomains(test.markup).Sorted()
		if len(result) != len(test.expected) {
			t.Errorf("%s: expected %d domains, got %d (%v)", test.name, len(test.expected), len(result), result)
			continue
		}
		for i, domain := range test.expected {
			if result[i] != domain {
				t.Errorf("%s: expected %q at index %d, got %q", test.name, domain, i, result[i])
			}
		}
	}
}

func TestExtractDomainsIdempotent(t *testing.T) {
	markup := "<div>first@moe.gov.sg second@MOH.gov.SG</div>"

	first := ExtractDomains(markup).Sorted()
	second := ExtractDomains(markup).Sorted()

	if len(first) != len(second) {
		t.Fatalf("Expected identical sets, got %v and %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Expected identical sets, got %v and %v", first, second)
		}
	}
}

func TestExtractResultDomainsScoped(t *testing.T) {
	markup := `<html><body>
		<div id="SearchResult1">a@moe.gov.sg</div>
		<div id="SearchResult2">b@moh.gov.sg</div>
		<footer>webmaster@footer.gov.sg</footer>
	</body></html>`

	domains, scoped := ExtractResultDomains(markup)
	if !scoped {
		t.Fatal("Expected scoped extraction")
	}
	if domains.Len() != 2 {
		t.Fatalf("Expected 2 domains, got %v", domains.Sorted())
	}
	if domains.Contains("@footer.gov.sg") {
		t.Error("Expected domains outside search result elements to be excluded")
	}
}

func TestExtractResultDomainsIDMatchCaseInsensitive(t *testing.T) {
	markup := `<div id="totalsearchresultbox">c@mnd.gov.sg</div>`

	domains, scoped := ExtractResultDomains(markup)
	if !scoped {
		t.Fatal("Expected scoped extraction")
	}
	if !domains.Contains("@mnd.gov.sg") {
		t.Errorf("Expected @mnd.gov.sg, got %v", domains.Sorted())
	}
}

func TestExtractResultDomainsClassFallback(t *testing.T) {
	markup := `<html><body>
		<div id="hero">c@hero.gov.sg</div>
		<div class="search-listing">b@moh.gov.sg</div>
	</body></html>`

	domains, scoped := ExtractResultDomains(markup)
	if !scoped {
		t.Fatal("Expected scoped extraction via class fallback")
	}
	if !domains.Contains("@moh.gov.sg") {
		t.Errorf("Expected @moh.gov.sg, got %v", domains.Sorted())
	}
	if domains.Contains("@hero.gov.sg") {
		t.Error("Expected domains outside result-like elements to be excluded")
	}
}

func TestExtractResultDomainsWholePageFallback(t *testing.T) {
	markup := `<html><body><div id="main">d@mnd.gov.sg</div></body></html>`

	domains, scoped := ExtractResultDomains(markup)
	if scoped {
		t.Fatal("Expected whole-page fallback")
	}
	if !domains.Contains("@mnd.gov.sg") {
		t.Errorf("Expected fallback to keep the domain, got %v", domains.Sorted())
	}

	whole := ExtractDomains(markup)
	if whole.Len() != domains.Len() {
		t.Errorf("Expected fallback to match whole-page extraction, got %v and %v",
			domains.Sorted(), whole.Sorted())
	}
}
