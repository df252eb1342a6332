package network

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/errgroup"
)

// MeasureRestAPI fetches the character and then every one of its episodes.
//
// Episode requests are all started before any of them is awaited. The first
// failing request cancels the others and is returned, no partial Metrics are
// produced.
func MeasureRestAPI(ctx context.Context, cfg Config) (Metrics, error) {
	client := cfg.httpClient()

	start := time.Now()

	characterURL := cfg.CharacterURL()
	body, characterTiming, err := fetch(ctx, client, characterURL)
	if err != nil {
		return Metrics{}, err
	}

	var character Character
	if err := json.Unmarshal(body, &character); err != nil {
		return Metrics{}, &ShapeError{URL: characterURL, Err: err}
	}
	if character.Episode == nil {
		return Metrics{}, &ShapeError{URL: characterURL, Field: "episode"}
	}

	timings := make([]RequestTiming, len(character.Episode))
	episodes := make([]Episode, len(character.Episode))

	g, gctx := errgroup.WithContext(ctx)
	for i, episodeURL := range character.Episode {
		i, episodeURL := i, episodeURL
		g.Go(func() error {
			body, timing, err := fetch(gctx, client, episodeURL)
			if err != nil {
				return err
			}
			if err := json.Unmarshal(body, &episodes[i]); err != nil {
				return &ShapeError{URL: episodeURL, Err: err}
			}
			timings[i] = timing
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Metrics{}, err
	}

	elapsed := time.Since(start)

	payloadSize := characterTiming.Size
	for _, t := range timings {
		payloadSize += t.Size
	}

	return Metrics{
		ResponseTime: milliseconds(elapsed),
		PayloadSize:  payloadSize,
		RequestCount: 1 + len(episodes),
		Requests:     append([]RequestTiming{characterTiming}, timings...),
	}, nil
}
