package source

import (
	"context"
	"sync"
	"time"

	"github.com/bostontheory/events/internal/config"
	"github.com/bostontheory/events/internal/fetch"
)

// Observation is one partially populated extraction from a source
// document: normalized field values, with "" meaning the source did
// not provide the field. Defaults and series identity are applied
// later by the assembler.
type Observation struct {
	Title       string
	Date        string
	Time        string
	Speaker     string
	Affiliation string
	Location    string
	URL         string
}

// Profile carries a source's assembly configuration: the series
// identity stamped on every event plus the defaults and institution
// prefix applied to observations that arrive without them.
type Profile struct {
	Series          string
	SeriesURL       string
	DefaultLocation string
	DefaultTime     string
	LocationPrefix  string
}

// Source extracts normalized observations from one seminar listing.
// Implementations skip blocks they cannot parse; only a failed
// document retrieval surfaces as an error.
type Source interface {
	Name() string
	Profile() Profile
	Extract(ctx context.Context) ([]Observation, error)
}

// Result pairs a source with what its extraction produced.
type Result struct {
	Name         string
	Profile      Profile
	Observations []Observation
	Err          error
}

// All returns the eight configured seminar sources.
func All(f fetch.Fetcher, cfg config.Config, now time.Time) []Source {
	return []Source{
		NewBUTheory(f, cfg),
		NewCryptoDay(f, cfg),
		NewHarvardTheory(f),
		NewMITTheory(f),
		NewMITAlgorithms(f),
		NewMITCIS(f, cfg, now),
		NewMLCrypto(f),
		NewNortheastern(f, cfg, now),
	}
}

// ExtractAll runs every source concurrently and collects the results
// in source order. A failing source yields a Result with Err set and
// no observations; it cannot disturb what the other sources return.
func ExtractAll(ctx context.Context, sources []Source) []Result {
	results := make([]Result, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			obs, err := src.Extract(ctx)
			results[i] = Result{
				Name:         src.Name(),
				Profile:      src.Profile(),
				Observations: obs,
				Err:          err,
			}
		}(i, src)
	}
	wg.Wait()

	return results
}
