// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix keys the admin token hashes in the auth cache.
const AuthCachePrefix = "auth:"

// AuthCacheTTL bounds how long a token check can skip the admin lookup.
const AuthCacheTTL = 10 * time.Minute

// QuoteCachePrefix is the prefix used for Redis quote cache keys.
const QuoteCachePrefix = "quote:"

// QuoteCacheTTL is the time-to-live for cached quote responses. Tariffs change
// rarely, so a short TTL keeps stale prices bounded without hammering Mongo.
const QuoteCacheTTL = 5 * time.Minute
