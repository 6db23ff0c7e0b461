package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "eventdesk"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// Daily event limit: how many bookings may cover the same calendar day
	// before the day is blocked from further selection. The stored setting
	// overrides this default; the min/max bound both.
	DefaultEventLimitPerDay = 4
	MinEventLimitPerDay     = 1
	MaxEventLimitPerDay     = 20

	DefaultDashboardUpcomingCount = 5

	DefaultKafkaBookingEventsTopic = "eventdesk.booking-events"

	DefaultPaginationLimit = 100

	// EventLimitSettingKey is the key of the settings row holding the
	// daily event limit.
	EventLimitSettingKey = "event_limit_per_day"
)
