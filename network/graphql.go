package network

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptrace"
	"time"

	"github.com/machinebox/graphql"
	"github.com/rs/zerolog/log"
)

// MeasureGraphQLAPI sends the character query as a single GraphQL request.
// PayloadSize is the length of the data object returned by the endpoint.
func MeasureGraphQLAPI(ctx context.Context, cfg Config) (Metrics, error) {
	client := graphql.NewClient(cfg.GraphQLURL, graphql.WithHTTPClient(withStatusCheck(cfg.httpClient())))
	client.Log = func(s string) {
		log.Debug().Str("endpoint", cfg.GraphQLURL).Msg(s)
	}

	req := graphql.NewRequest(cfg.Query)
	req.Header.Set("User-Agent", userAgent)

	timing := RequestTiming{URL: cfg.GraphQLURL}

	start := time.Now()
	ctx = httptrace.WithClientTrace(ctx, createHTTPTrace(start, &timing))

	var data json.RawMessage
	if err := client.Run(ctx, req, &data); err != nil {
		return Metrics{}, fmt.Errorf("error querying %s: %w", cfg.GraphQLURL, err)
	}

	elapsed := time.Since(start)
	timing.Duration = elapsed
	timing.Size = len(data)

	var resp GraphQLCharacterData
	if err := json.Unmarshal(data, &resp); err != nil {
		return Metrics{}, &ShapeError{URL: cfg.GraphQLURL, Err: err}
	}
	if resp.Character == nil {
		return Metrics{}, &ShapeError{URL: cfg.GraphQLURL, Field: "character"}
	}

	return Metrics{
		ResponseTime: milliseconds(elapsed),
		PayloadSize:  len(data),
		RequestCount: 1,
		Requests:     []RequestTiming{timing},
	}, nil
}
