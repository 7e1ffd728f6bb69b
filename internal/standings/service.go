package standings

import (
	"time"

	"bolao-backend/internal/cache"
	"bolao-backend/internal/utils"
)

// Cache-state tags reported in the X-Cache response header.
const (
	TagHit   = "HIT"
	TagMiss  = "MISS"
	TagStale = "STALE"
	TagMock  = "MOCK"
)

// FreshnessWindow is how long a fetched table is served without refetching.
const FreshnessWindow = 5 * time.Minute

// Service memoizes upstream standings and degrades to stale or static data
// instead of surfacing upstream failures.
type Service struct {
	Client *Client
	Cache  *cache.Cache[[]byte]
}

func NewService(client *Client) *Service {
	return &Service{
		Client: client,
		Cache:  cache.New[[]byte](FreshnessWindow),
	}
}

// Standings returns the payload plus the cache-state tag. It never fails:
// upstream errors fall back to last-known-good, then to the static dataset.
func (s *Service) Standings(tournamentID, seasonID string) ([]byte, string) {
	key := tournamentID + ":" + seasonID

	cached, freshness := s.Cache.Get(key)
	if freshness == cache.Fresh {
		return cached, TagHit
	}

	payload, err := s.Client.FetchStandings(tournamentID, seasonID)
	if err == nil {
		s.Cache.Put(key, payload)
		return payload, TagMiss
	}

	utils.LogEvent("", "standings", "fetch", "upstream falhou: "+err.Error())
	if freshness == cache.Stale {
		return cached, TagStale
	}
	return FallbackStandings(), TagMock
}
