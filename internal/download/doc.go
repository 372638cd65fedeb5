package download

// Package download runs a batch of URLs through the download library. The
// Controller caches one metadata probe per URL, waits for all of them when a run
// starts, then downloads items and collection entries strictly in order while
// propagating progress to the UI and honouring cooperative cancellation.
