package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

const (
	// ActiveJobsKey holds the public job listing.
	ActiveJobsKey = "jobboard:jobs:active"
	CompaniesKey  = "jobboard:companies"
)

// UserApplicationsKey holds one candidate's submitted applications.
func UserApplicationsKey(userID string) string {
	return "jobboard:applications:user:" + userID
}
