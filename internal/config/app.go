package config

import (
	"os"
	"strings"
)

const DefaultHTTPAddr = ":8080"

// Development switches logging to colored debug output. Any value of
// DEVELOPMENT other than "", "0" and "false" turns it on.
func Development() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("DEVELOPMENT"))) {
	case "", "0", "false":
		return false
	}
	return true
}

// HTTPAddr is where the websocket and spectator endpoints listen. An empty
// MINES_HTTP_ADDR disables them.
func HTTPAddr() string {
	addr, ok := os.LookupEnv("MINES_HTTP_ADDR")
	if !ok {
		return DefaultHTTPAddr
	}
	return addr
}

// CorsOrigins lists the origins allowed to call the HTTP endpoints, read from
// the comma separated MINES_CORS_ORIGINS. Nil allows any origin.
func CorsOrigins() []string {
	origins, ok := os.LookupEnv("MINES_CORS_ORIGINS")
	if !ok || strings.TrimSpace(origins) == "" {
		return nil
	}
	var list []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			list = append(list, o)
		}
	}
	return list
}
