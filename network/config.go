package network

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultRestBaseURL is the REST root of the demo API
	DefaultRestBaseURL = "https://rickandmortyapi.com/api"
	// DefaultGraphQLURL is the GraphQL endpoint of the demo API
	DefaultGraphQLURL = "https://rickandmortyapi.com/graphql"
	// DefaultCharacterID is the character both measurers ask for
	DefaultCharacterID = 1

	characterQuery = `{
  character(id: %d) {
    name
    status
    episode {
      name
      air_date
    }
  }
}`
)

// Config describes where and how the measurers send their requests
type Config struct {
	RestBaseURL string
	GraphQLURL  string
	CharacterID int
	// Query is the GraphQL document sent by MeasureGraphQLAPI
	Query string
	// Timeout bounds every request. Zero means no timeout.
	Timeout time.Duration
	// Client overrides the HTTP client built from Timeout
	Client *http.Client
}

// DefaultConfig returns the configuration for the public demo API
func DefaultConfig() Config {
	return Config{
		RestBaseURL: DefaultRestBaseURL,
		GraphQLURL:  DefaultGraphQLURL,
		CharacterID: DefaultCharacterID,
		Query:       CharacterQuery(DefaultCharacterID),
	}
}

// CharacterQuery returns the GraphQL query for a character's name, status and episodes
func CharacterQuery(id int) string {
	return fmt.Sprintf(characterQuery, id)
}

// CharacterURL returns the REST URL of the configured character
func (c Config) CharacterURL() string {
	return fmt.Sprintf("%s/character/%d", strings.TrimSuffix(c.RestBaseURL, "/"), c.CharacterID)
}

func (c Config) httpClient() *http.Client {
	if c.Client != nil {
		return c.Client
	}
	return CreateHTTPClient(c.Timeout)
}
