package infra

import (
	"log"

	"github.com/getsentry/sentry-go"
)

func SetupSentry(dsn, env string) {
	if dsn == "" {
		return
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:           dsn,
		EnableTracing: true,
		Environment:   env,
		TracesSampler: sentry.TracesSampler(func(ctx sentry.SamplingContext) float64 {
			if ctx.Span.Name == "GET /liveness" {
				return 0.0
			}
			return 0.2
		}),
	}); err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
}
