package network

import (
	"time"
)

// Metrics holds the result of one measurement pass
type Metrics struct {
	// ResponseTime is the wall-clock duration of the pass in milliseconds
	ResponseTime float64
	// PayloadSize is the summed byte length of every response body
	PayloadSize int
	// RequestCount is the number of network requests issued
	RequestCount int
	// Requests holds one timing per request, in issue order
	Requests []RequestTiming
}

// RequestTiming holds timing information for a single request
type RequestTiming struct {
	URL              string
	Duration         time.Duration
	TTFB             time.Duration
	Size             int
	ConnectionReused bool
}

// ExtractDurations extracts request durations for graphing
func (m Metrics) ExtractDurations() []float64 {
	durations := make([]float64, 0, len(m.Requests))
	for _, r := range m.Requests {
		durations = append(durations, float64(r.Duration)/float64(time.Millisecond))
	}
	return durations
}

// NewConnections counts requests that did not reuse a pooled connection
func (m Metrics) NewConnections() int {
	n := 0
	for _, r := range m.Requests {
		if !r.ConnectionReused {
			n++
		}
	}
	return n
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Character is the REST character resource
type Character struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Status  string   `json:"status"`
	Episode []string `json:"episode"`
}

// Episode is the REST episode resource
type Episode struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	AirDate string `json:"air_date"`
	Episode string `json:"episode"`
	URL     string `json:"url"`
}

// GraphQLCharacterData is the data member of the character query response
type GraphQLCharacterData struct {
	Character *GraphQLCharacter `json:"character"`
}

// GraphQLCharacter is the character selection of the query
type GraphQLCharacter struct {
	Name    string           `json:"name"`
	Status  string           `json:"status"`
	Episode []GraphQLEpisode `json:"episode"`
}

// GraphQLEpisode is the episode selection of the query
type GraphQLEpisode struct {
	Name    string `json:"name"`
	AirDate string `json:"air_date"`
}
