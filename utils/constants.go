// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// SessionKeyPrefix is the prefix used for booking session cache keys.
const SessionKeyPrefix = "booking:session:"

// AnalyticsCachePrefix is the prefix used for cached dashboard metrics.
const AnalyticsCachePrefix = "analytics:"
