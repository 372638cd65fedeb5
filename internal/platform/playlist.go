package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	ytget "github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultPlaylistTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// PlaylistTitleSource lists YouTube playlist entries in bulk so that entry
// titles missing from the flat extraction can be filled without one yt-dlp
// call per entry.
type PlaylistTitleSource struct {
	timeout time.Duration
}

// NewPlaylistTitleSource creates a new playlist title source
func NewPlaylistTitleSource() *PlaylistTitleSource {
	return &PlaylistTitleSource{
		timeout: DefaultPlaylistTimeout,
	}
}

// SetTimeout sets the timeout for one listing
func (p *PlaylistTitleSource) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// CollectionTitles returns entry titles keyed by video id
func (p *PlaylistTitleSource) CollectionTitles(ctx context.Context, url string) (map[string]string, error) {
	playlistID, err := ExtractPlaylistID(url)
	if err != nil {
		return nil, err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	items, err := ytget.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	titles := make(map[string]string, len(items))
	for _, it := range items {
		if it.VideoID != "" && it.Title != "" {
			titles[it.VideoID] = it.Title
		}
	}
	return titles, nil
}

// ExtractPlaylistID extracts the playlist ID from a YouTube URL, e.g.
// https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID or
// https://www.youtube.com/playlist?list=PLAYLIST_ID
func ExtractPlaylistID(url string) (string, error) {
	_, after, found := strings.Cut(url, PlaylistParam)
	if !found {
		return "", fmt.Errorf("URL does not contain playlist parameter: %s", url)
	}

	playlistID, _, _ := strings.Cut(after, ParamSeparator)
	if playlistID == "" {
		return "", fmt.Errorf("empty playlist ID in URL: %s", url)
	}
	return playlistID, nil
}
