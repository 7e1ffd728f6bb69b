package standings

// fallbackStandings is served when the upstream is down and nothing good is
// cached. A short static snapshot beats an empty dashboard.
var fallbackStandings = []byte(`{
  "standings": [
    {
      "name": "Brasileirão Série A",
      "rows": [
        {"position": 1, "team": {"id": 1963, "name": "Flamengo"}, "matches": 10, "wins": 7, "draws": 2, "losses": 1, "points": 23},
        {"position": 2, "team": {"id": 1975, "name": "Palmeiras"}, "matches": 10, "wins": 7, "draws": 1, "losses": 2, "points": 22},
        {"position": 3, "team": {"id": 1977, "name": "Cruzeiro"}, "matches": 10, "wins": 6, "draws": 2, "losses": 2, "points": 20},
        {"position": 4, "team": {"id": 1981, "name": "São Paulo"}, "matches": 10, "wins": 5, "draws": 3, "losses": 2, "points": 18},
        {"position": 5, "team": {"id": 1957, "name": "Corinthians"}, "matches": 10, "wins": 5, "draws": 2, "losses": 3, "points": 17},
        {"position": 6, "team": {"id": 1966, "name": "Internacional"}, "matches": 10, "wins": 4, "draws": 4, "losses": 2, "points": 16},
        {"position": 7, "team": {"id": 1961, "name": "Botafogo"}, "matches": 10, "wins": 4, "draws": 3, "losses": 3, "points": 15},
        {"position": 8, "team": {"id": 5981, "name": "Bahia"}, "matches": 10, "wins": 4, "draws": 2, "losses": 4, "points": 14}
      ]
    }
  ],
  "source": "static"
}`)

// FallbackStandings exposes the static dataset for the MOCK path.
func FallbackStandings() []byte {
	out := make([]byte, len(fallbackStandings))
	copy(out, fallbackStandings)
	return out
}
