// Package catalog holds the built-in table of popular services used to
// autocomplete the add form, plus the shared brand color palette.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"subtrack/internal/domain"
)

// Service is a well-known subscription preset. Prices are indicative
// monthly amounts in EUR cents.
type Service struct {
	Name       string
	PriceCents int64
	Category   domain.Category
	Color      string // hex from the brand palette
	Domain     string // for the favicon URL
}

// LogoURL returns a favicon URL for the service's domain.
func (s Service) LogoURL() string {
	if s.Domain == "" {
		return ""
	}
	return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=128", s.Domain)
}

// BrandColors is the card color palette offered in the add form.
var BrandColors = []string{
	"#FF6B6B", // coral
	"#4ECDC4", // mint
	"#45B7D1", // sky
	"#96CEB4", // sage
	"#FFEEAD", // cream
	"#D4A5A5", // mauve
	"#9B59B6", // purple
	"#34495E", // dark
	"#E67E22", // carrot
	"#2ECC71", // emerald
	"#000000", // black
}

var popular = []Service{
	{"Netflix", 1349, domain.CategoryEntertainment, "#FF6B6B", "netflix.com"},
	{"Spotify", 1099, domain.CategoryEntertainment, "#2ECC71", "spotify.com"},
	{"YouTube Premium", 1299, domain.CategoryEntertainment, "#FF6B6B", "youtube.com"},
	{"Amazon Prime", 699, domain.CategoryEntertainment, "#45B7D1", "amazon.com"},
	{"Disney+", 899, domain.CategoryEntertainment, "#34495E", "disneyplus.com"},
	{"Apple Music", 1099, domain.CategoryEntertainment, "#FF6B6B", "music.apple.com"},
	{"Apple One", 1995, domain.CategoryUtility, "#000000", "apple.com"},
	{"iCloud+", 299, domain.CategoryUtility, "#45B7D1", "icloud.com"},
	{"ChatGPT Plus", 2200, domain.CategoryWork, "#4ECDC4", "openai.com"},
	{"Canal+", 2299, domain.CategoryEntertainment, "#000000", "canalplus.com"},
	{"Adobe Creative Cloud", 6701, domain.CategoryWork, "#FF6B6B", "adobe.com"},
	{"Figma", 1500, domain.CategoryWork, "#000000", "figma.com"},
	{"Notion", 1000, domain.CategoryWork, "#34495E", "notion.so"},
	{"NordVPN", 399, domain.CategoryUtility, "#45B7D1", "nordvpn.com"},
	{"PlayStation Plus", 899, domain.CategoryEntertainment, "#45B7D1", "playstation.com"},
	{"Xbox Game Pass", 1499, domain.CategoryEntertainment, "#2ECC71", "xbox.com"},
	{"Tinder", 1499, domain.CategorySocial, "#FF6B6B", "tinder.com"},
	{"Linkedin Premium", 2999, domain.CategoryWork, "#45B7D1", "linkedin.com"},
	{"Google One", 199, domain.CategoryUtility, "#45B7D1", "google.com"},
	{"Free Mobile", 1999, domain.CategoryUtility, "#FF6B6B", "free.fr"},
	{"Navigo", 8640, domain.CategoryTransport, "#45B7D1", "iledefrance-mobilites.fr"},
	{"Uber One", 599, domain.CategoryTransport, "#000000", "uber.com"},
	{"Deliveroo Plus", 599, domain.CategoryFood, "#4ECDC4", "deliveroo.fr"},
	{"HelloFresh", 6000, domain.CategoryFood, "#2ECC71", "hellofresh.com"},
	{"Alan", 5500, domain.CategoryInsurance, "#4ECDC4", "alan.com"},
	{"Axa", 4500, domain.CategoryInsurance, "#34495E", "axa.fr"},
}

// maxSuggestDistance caps the edit distance for near-miss matches so a
// one-letter query does not match the whole catalog.
const maxSuggestDistance = 3

// Services returns the full preset table.
func Services() []Service {
	out := make([]Service, len(popular))
	copy(out, popular)
	return out
}

// Suggest returns up to limit presets matching the query: substring
// matches first in catalog order, then near misses ranked by edit
// distance against the service name. An empty query yields nothing.
func Suggest(query string, limit int) []Service {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return nil
	}

	var direct []Service
	type scored struct {
		svc  Service
		dist int
	}
	var near []scored
	for _, svc := range popular {
		name := strings.ToLower(svc.Name)
		if strings.Contains(name, q) {
			direct = append(direct, svc)
			continue
		}
		prefix := name
		if len(prefix) > len(q) {
			prefix = prefix[:len(q)]
		}
		if d := levenshtein.ComputeDistance(q, prefix); d <= maxSuggestDistance {
			near = append(near, scored{svc: svc, dist: d})
		}
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].dist < near[j].dist })

	out := direct
	for _, s := range near {
		out = append(out, s.svc)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
