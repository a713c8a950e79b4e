package interfaces

import "context"

// IModerationRegistry is the moderation gate consumed by the booking core.
//
// IsBookable must evaluate live provider and service flags at call time:
// moderation state can change between request and commit, so the result is
// never cached.
type IModerationRegistry interface {
	IsBookable(ctx context.Context, serviceID string) (bool, error)
}
