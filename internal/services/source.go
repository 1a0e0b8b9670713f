package services

import "strings"

// StagedFile is a request-scoped temporary copy of an uploaded file. It is
// removed unconditionally once the pipeline has run, success or not.
type StagedFile struct {
	Path        string
	Name        string
	Size        int64
	ContentType string
}

type sourceKind int

const (
	sourceOmitted sourceKind = iota
	sourceURL
	sourceFile
)

// MediaSource is the per-field "file or url or nothing" union, resolved once
// at the transport boundary. A file wins over a URL when both are sent.
type MediaSource struct {
	kind sourceKind
	url  string
	file *StagedFile
}

func NoSource() MediaSource {
	return MediaSource{kind: sourceOmitted}
}

func URLSource(raw string) MediaSource {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return NoSource()
	}
	return MediaSource{kind: sourceURL, url: raw}
}

func FileSource(f *StagedFile) MediaSource {
	if f == nil {
		return NoSource()
	}
	return MediaSource{kind: sourceFile, file: f}
}

func (s MediaSource) Omitted() bool {
	return s.kind == sourceOmitted
}

func (s MediaSource) isFile() bool {
	return s.kind == sourceFile
}
