package domain

import (
	m "mpakit.dev/pkg/mpakit/internal/model"
)

// Options mirrors the option bag accepted by bundler configurations that
// call into entry discovery: comma-separated include/exclude lists and the
// noskip override for underscore-prefixed files.
type Options struct {
	SourceRoot string
	BaseDir    string
	Includes   string
	Excludes   string
	NoSkip     bool
	Verbose    bool
}

// Request converts extensions and options into a ScanRequest.
func (o Options) Request(extensions []string) m.ScanRequest {
	exts := make([]m.Extension, 0, len(extensions))
	for _, ext := range extensions {
		exts = append(exts, m.Extension(ext))
	}

	return m.ScanRequest{
		Extensions:             exts,
		SourceRoot:             m.Path(o.SourceRoot),
		BaseDir:                m.Path(o.BaseDir),
		Includes:               m.ParseKeyList(o.Includes),
		Excludes:               m.ParseKeyList(o.Excludes),
		AllowLeadingUnderscore: o.NoSkip,
		Verbose:                o.Verbose,
	}
}
