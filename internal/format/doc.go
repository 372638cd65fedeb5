package format

// Package format translates user-facing download options into a yt-dlp format
// selection expression and the post-processing that goes with it.
