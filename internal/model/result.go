package model

import "time"

// Result is the complete segmentation result for one input text
type Result struct {
	SourceURL   string     `json:"source_url,omitempty" yaml:"source_url,omitempty"` // set when the text came from a scanned page
	Text        string     `json:"text" yaml:"text"`
	SegmentedAt time.Time  `json:"segmented_at" yaml:"segmented_at"`
	FetchMeta   *FetchMeta `json:"fetch_meta,omitempty" yaml:"fetch_meta,omitempty"`
	Spans       []Span     `json:"spans" yaml:"spans"`
}

// FetchMeta contains HTTP metadata from fetching the source page
type FetchMeta struct {
	StatusCode   int    `json:"status_code" yaml:"status_code"`
	ContentType  string `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	LastModified string `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`
	ETag         string `json:"etag,omitempty" yaml:"etag,omitempty"`
}
