package middleware

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// Cors allows browsers from origins to use the read-only endpoints. An empty
// list allows every origin.
func Cors(origins []string) Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return len(origins) == 0 || slices.Contains(origins, origin)
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
