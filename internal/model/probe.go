package model

// Entry is one item of a collection. Empty fields are absent in the source.
type Entry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ProbeResult is the resolved metadata for one URL
type ProbeResult struct {
	URL   string
	Title string
	// ID is set when the URL is downloaded as a single item.
	ID string
	// CollectionBaseURL is the per-entry URL prefix of collection-capable sources.
	CollectionBaseURL string
	Entries           []Entry
	// Err is the extraction failure, if any. Title is empty whenever Err is set.
	Err error
}

// Failed reports whether the probe produced no title
func (r ProbeResult) Failed() bool {
	return r.Title == ""
}

// IsCollection reports whether the URL should be downloaded entry by entry
func (r ProbeResult) IsCollection() bool {
	return r.ID == "" && r.CollectionBaseURL != ""
}

// EntryURL returns the download URL of the i-th entry
func (r ProbeResult) EntryURL(i int) string {
	return r.CollectionBaseURL + r.Entries[i].ID
}

// MissingEntryIDs reports whether any entry lacks an id
func (r ProbeResult) MissingEntryIDs() bool {
	for _, e := range r.Entries {
		if e.ID == "" {
			return true
		}
	}
	return false
}

// MissingEntryTitles reports whether any entry lacks a title
func (r ProbeResult) MissingEntryTitles() bool {
	for _, e := range r.Entries {
		if e.Title == "" {
			return true
		}
	}
	return false
}

// MediaInfo is the flat extraction result returned by the extraction library
type MediaInfo struct {
	ID        string
	Title     string
	Extractor string
	Entries   []Entry
	// HasEntries distinguishes "no entries field" from an empty collection.
	HasEntries bool
}

// DownloadRequest describes one call into the download library
type DownloadRequest struct {
	URL       string
	OutputDir string
}
