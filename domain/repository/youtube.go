package repository

import (
	"context"

	"yt-catalog/domain/model"
)

// IYouTube defines the read operations the importer needs from the video
// platform.
type IYouTube interface {
	// ResolveChannelID looks a channel up by display name and returns its
	// stable identifier.
	ResolveChannelID(ctx context.Context, channelName string) (string, error)

	// ListChannelVideoIDs pages through a channel's video listing, newest
	// first. publishedAfter is an optional YYYY-MM-DD lower bound; empty
	// means unbounded.
	ListChannelVideoIDs(ctx context.Context, channelID, publishedAfter string) ([]string, error)

	// GetVideoDetail fetches the detail record for one video.
	GetVideoDetail(ctx context.Context, videoID string) (*model.VideoRecord, error)
}
