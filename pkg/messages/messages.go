package messages

const (
	CacheFailed      = "cache failed"
	FiltersNotNil    = "filters can't be nil"
	TeamNotFound     = "couldn't find the requested team"
	FailedToParseMsg = "failed to parse the cached response"
)
