// Package obs provides lightweight operation timing for log-based
// observability: one key=value line per timed operation.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey carries the request correlation id through a context.
const RequestIDKey ctxKey = "req_id"

// Time returns a func to defer at the top of an operation. It logs the
// operation name, duration and the error the operation ended with:
//
//	defer obs.Time(ctx, "services.PlanVoyage")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
