package operations

import (
	"time"

	"encore.dev/config"
)

type Config struct {
	// RecordTTLHours is how long an idempotency key stays bound to its outcome. 0 keeps records forever.
	RecordTTLHours        config.Int
	HandlerTimeoutSeconds config.Int
	PurgeSchedule         config.String

	TemporalHostPort  config.String
	TemporalNamespace config.String
	TaskQueue         config.String
}

var cfg = config.Load[*Config]()

var secrets struct {
	AuthTokenSigningKey string
}

func recordTTL() time.Duration {
	return time.Duration(cfg.RecordTTLHours()) * time.Hour
}

func handlerTimeout() time.Duration {
	return time.Duration(cfg.HandlerTimeoutSeconds()) * time.Second
}
