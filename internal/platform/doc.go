package platform

// Package platform contains OS integration and external tooling glue: the
// yt-dlp boundary, the YouTube playlist title listing, filesystem helpers,
// temp directory bookkeeping and revealing folders in the file manager.
