package cache

import "time"

// Dashboard status counters. Every write that changes the counts (new booking,
// approve, decline) deletes the entry; the TTL bounds staleness if a writer
// misses the delete.
const (
	DashboardStatsKey = "admin:dashboard:stats"
	DashboardStatsTTL = 30 * time.Second
)
