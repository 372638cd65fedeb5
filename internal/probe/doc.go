package probe

// Package probe resolves a URL into a single media item or a collection of
// entries using the extraction library in flat mode. Entries without titles
// are re-probed individually on a bounded pool.
