package feed

import (
	"strings"

	"github.com/google/go-querystring/query"
)

// changesQuery holds the query parameters the feed sets itself.
type changesQuery struct {
	Feed      string `url:"feed,omitempty"`
	Heartbeat int    `url:"heartbeat,omitempty"`
}

// BuildURL returns the changes feed URL of database on server.
//
// The base is server/database/_changes. When the feed is continuous, has a
// heartbeat or carries extra options, a query string follows with
// feed=continuous, heartbeat=<ms> and the extra options in that order. One
// trailing '&' is trimmed.
func (c Config) BuildURL(server, database string) string {
	base := server + "/" + database + "/_changes"
	if !c.Continuous && c.HeartbeatMillis <= 0 && c.ExtraOptions == "" {
		return base
	}

	q := changesQuery{Heartbeat: max(c.HeartbeatMillis, 0)}
	if c.Continuous {
		q.Feed = "continuous"
	}
	// Values only fails for non-struct input.
	values, _ := query.Values(q)

	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteByte('?')
	if enc := values.Encode(); enc != "" {
		sb.WriteString(enc)
		sb.WriteByte('&')
	}
	sb.WriteString(c.ExtraOptions)

	return strings.TrimSuffix(sb.String(), "&")
}
