package probe

import (
	"context"

	"github.com/ytget/ytdlui/internal/model"
)

// Extractor runs the extraction library in flat, no-download mode.
type Extractor interface {
	ExtractFlat(ctx context.Context, url string) (*model.MediaInfo, error)
}

// TitleSource resolves entry titles of a whole collection in one call. It
// returns titles keyed by entry id; missing ids are simply absent.
type TitleSource interface {
	CollectionTitles(ctx context.Context, url string) (map[string]string, error)
}
