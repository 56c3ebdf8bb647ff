package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix    = "user:%d"
	PostKeyPrefix    = "post:%d"
	ProfileKeyPrefix = "profile:%d"
	FeedKeyPrefix    = "feed:page:%d"
)

const (
	UserTTL    = 5 * time.Minute
	PostTTL    = 30 * time.Minute
	ProfileTTL = 5 * time.Minute
	FeedTTL    = 30 * time.Second
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func FeedKey(page int) string {
	return fmt.Sprintf(FeedKeyPrefix, page)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidateProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileKey(userID))
}

// InvalidateFeed drops the cached first feed page. Deeper pages are never cached,
// so a single delete keeps the feed consistent after writes.
func InvalidateFeed(ctx context.Context) {
	Invalidate(ctx, FeedKey(1))
}
