package logos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bolao-backend/internal/cache"
	"bolao-backend/internal/utils"
)

// FreshnessWindow for resolved logos. Assets on disk rarely change.
const FreshnessWindow = 24 * time.Hour

// teamNames maps external team ids to asset base names.
var teamNames = map[string]string{
	"1957": "corinthians",
	"1958": "gremio",
	"1961": "botafogo",
	"1963": "flamengo",
	"1966": "internacional",
	"1968": "fluminense",
	"1974": "atletico mineiro",
	"1975": "palmeiras",
	"1977": "cruzeiro",
	"1980": "vasco da gama",
	"1981": "sao paulo",
	"1999": "santos",
	"2020": "fortaleza",
	"5981": "bahia",
	"7315": "red bull bragantino",
	"21982": "juventude",
}

// Resolver serves team logo SVGs from a fixed asset directory, caching per
// team id and synthesizing a placeholder when nothing matches.
type Resolver struct {
	Dir   string
	Cache *cache.Cache[[]byte]

	// ReadFile is swappable in tests; defaults to os.ReadFile.
	ReadFile func(string) ([]byte, error)
}

func NewResolver(dir string) *Resolver {
	return &Resolver{
		Dir:      dir,
		Cache:    cache.New[[]byte](FreshnessWindow),
		ReadFile: os.ReadFile,
	}
}

// Logo never fails: a team with no mapped or matching asset gets a
// placeholder SVG carrying the first four characters of its id.
func (r *Resolver) Logo(teamID string) []byte {
	if cached, freshness := r.Cache.Get(teamID); freshness == cache.Fresh {
		return cached
	}

	if svg := r.readAsset(teamID); svg != nil {
		r.Cache.Put(teamID, svg)
		return svg
	}

	utils.LogEvent("", "logos", "resolve", "sem asset para time "+teamID)
	svg := Placeholder(teamID)
	r.Cache.Put(teamID, svg)
	return svg
}

func (r *Resolver) readAsset(teamID string) []byte {
	readFile := r.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}

	for _, name := range candidateNames(teamID) {
		data, err := readFile(filepath.Join(r.Dir, name+".svg"))
		if err == nil && len(data) > 0 {
			return data
		}
	}
	return nil
}

// candidateNames yields the mapped name plus slug variations (lowercase,
// hyphenated, underscored), then the raw id.
func candidateNames(teamID string) []string {
	out := []string{}
	if name, ok := teamNames[teamID]; ok {
		lower := strings.ToLower(strings.TrimSpace(name))
		out = append(out, lower)
		if hyphen := utils.Slug(name, "-"); hyphen != lower {
			out = append(out, hyphen)
		}
		if underscore := utils.Slug(name, "_"); underscore != lower {
			out = append(out, underscore)
		}
	}
	return append(out, teamID)
}

// Placeholder builds a minimal SVG with the id's first four characters.
func Placeholder(teamID string) []byte {
	short := sanitize(teamID)
	if len(short) > 4 {
		short = short[:4]
	}
	return []byte(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">`+
			`<circle cx="32" cy="32" r="30" fill="#1B5E20"/>`+
			`<text x="32" y="38" font-family="sans-serif" font-size="16" fill="#FFFFFF" text-anchor="middle">%s</text>`+
			`</svg>`,
		strings.ToUpper(short),
	))
}

// sanitize keeps the placeholder text safe inside the SVG body.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "TIME"
	}
	return b.String()
}
