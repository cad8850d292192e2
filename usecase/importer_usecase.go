package usecase

import (
	"context"
	"fmt"
	"sync"

	"yt-catalog/domain/dto"
	"yt-catalog/domain/model"
	"yt-catalog/domain/repository"
	"yt-catalog/infrastructure/logger"

	"golang.org/x/sync/errgroup"
)

// IImporterUseCase defines the catalog import operations.
type IImporterUseCase interface {
	// ImportChannel resolves the channel when needed, lists its videos and
	// fetches every detail record. The catalog entry is created or replaced
	// only after the whole import succeeded; a failed import leaves the
	// previous catalog state untouched.
	ImportChannel(ctx context.Context, req *dto.ImportChannelRequest) (*dto.ImportChannelResponse, error)

	// Catalog returns a snapshot of the whole catalog.
	Catalog() model.Catalog

	// ChannelVideos returns one channel's entry, or false when absent.
	ChannelVideos(channelID string) (*model.ChannelVideos, bool)
}

// ImporterUseCase implements the catalog import operations.
type ImporterUseCase struct {
	youtubeRepo      repository.IYouTube
	fetchConcurrency int

	mu      sync.RWMutex
	catalog model.Catalog
}

// NewImporterUseCase creates a new importer use case instance. Detail
// fetches run strictly sequentially by default.
func NewImporterUseCase(youtubeRepo repository.IYouTube) IImporterUseCase {
	return &ImporterUseCase{
		youtubeRepo:      youtubeRepo,
		fetchConcurrency: 1,
		catalog:          model.Catalog{},
	}
}

// NewImporterUseCaseWithConcurrency creates an importer with parallel detail
// fetching configured.
func NewImporterUseCaseWithConcurrency(youtubeRepo repository.IYouTube, concurrency int) IImporterUseCase {
	u := &ImporterUseCase{
		youtubeRepo:      youtubeRepo,
		fetchConcurrency: 1,
		catalog:          model.Catalog{},
	}
	return u.WithFetchConcurrency(concurrency)
}

// WithFetchConcurrency sets the number of detail fetches in flight (fluent).
func (u *ImporterUseCase) WithFetchConcurrency(concurrency int) *ImporterUseCase {
	if concurrency > 0 {
		u.fetchConcurrency = concurrency
	}
	return u
}

// ImportChannel imports every matching video of one channel into the catalog.
func (u *ImporterUseCase) ImportChannel(ctx context.Context, req *dto.ImportChannelRequest) (*dto.ImportChannelResponse, error) {
	if req == nil || req.ChannelName == "" {
		return nil, fmt.Errorf("channel name is required")
	}

	channelID := req.ChannelID
	if channelID == "" {
		id, err := u.youtubeRepo.ResolveChannelID(ctx, req.ChannelName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve channel id: %w", err)
		}
		channelID = id
	}

	videoIDs, err := u.youtubeRepo.ListChannelVideoIDs(ctx, channelID, req.PublishedAfter)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel videos: %w", err)
	}

	videos, err := u.fetchDetails(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	u.catalog[channelID] = &model.ChannelVideos{
		ChannelName: req.ChannelName,
		Videos:      videos,
	}
	u.mu.Unlock()

	logger.GetLogger().
		WithField("channel_id", channelID).
		WithField("videos", len(videos)).
		Info("Channel import finished")

	return &dto.ImportChannelResponse{ChannelID: channelID, VideoCount: len(videos)}, nil
}

// fetchDetails stages a record for every id. The catalog is only touched by
// the caller once the whole set succeeded, so a partial failure can never
// leave half an entry behind.
func (u *ImporterUseCase) fetchDetails(ctx context.Context, videoIDs []string) (map[string]model.VideoRecord, error) {
	videos := make(map[string]model.VideoRecord, len(videoIDs))

	if u.fetchConcurrency <= 1 {
		for _, id := range videoIDs {
			record, err := u.youtubeRepo.GetVideoDetail(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("failed to fetch video %s: %w", id, err)
			}
			videos[id] = *record
		}
		return videos, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.fetchConcurrency)
	for _, id := range videoIDs {
		id := id
		g.Go(func() error {
			record, err := u.youtubeRepo.GetVideoDetail(gctx, id)
			if err != nil {
				return fmt.Errorf("failed to fetch video %s: %w", id, err)
			}
			mu.Lock()
			videos[id] = *record
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return videos, nil
}

// Catalog returns a snapshot of the catalog. Channel entries are shared:
// they are never mutated after installation, only replaced.
func (u *ImporterUseCase) Catalog() model.Catalog {
	u.mu.RLock()
	defer u.mu.RUnlock()
	out := make(model.Catalog, len(u.catalog))
	for id, entry := range u.catalog {
		out[id] = entry
	}
	return out
}

// ChannelVideos returns one channel's catalog entry.
func (u *ImporterUseCase) ChannelVideos(channelID string) (*model.ChannelVideos, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	entry, ok := u.catalog[channelID]
	return entry, ok
}
