package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/angularstore/catalog/pkg/correlationid"
)

// CorrelationID propagates the caller's correlation id, generating one when
// the header is absent. The id is echoed back on the response and stored in
// the request context for log enrichment.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationid.Header)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(correlationid.Header, id)

			ctx := correlationid.WithContext(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
