package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/alirezasoltanian/youtube-api-server/internal/model"
	"github.com/alirezasoltanian/youtube-api-server/internal/scraper"
)

// TelegramService fans a post-scrape request out over the requested channels.
// Channels are fetched concurrently; one channel failing records an inline
// error for that channel only and never aborts the batch.
type TelegramService struct {
	scraper *scraper.Telegram
}

func NewTelegramService(s *scraper.Telegram) *TelegramService {
	return &TelegramService{scraper: s}
}

// GetChannelPosts returns one entry per requested channel: either its posts
// in chronological order or an error record.
func (s *TelegramService) GetChannelPosts(ctx context.Context, channelNames []string) map[string]model.ChannelResult {
	results := make(map[string]model.ChannelResult, len(channelNames))

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for _, name := range channelNames {
		g.Go(func() error {
			posts, err := s.scraper.FetchPosts(ctx, name)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				results[name] = model.ChannelResult{Err: err.Error()}
			} else {
				results[name] = model.ChannelResult{Posts: posts}
			}
			return nil
		})
	}

	// Goroutines never return errors; failures are recorded inline.
	_ = g.Wait()

	return results
}
