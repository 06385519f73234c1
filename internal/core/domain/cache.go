package domain

// SourceKind tells where a PAC document comes from.
type SourceKind uint8

const (
	// SourceURL is a document downloaded over HTTP. Its cache entries expire.
	SourceURL SourceKind = iota + 1
	// SourceFile is a local document. Its cache key embeds the file mtime, so entries never expire.
	SourceFile
)

func (s SourceKind) String() string {
	switch s {
	case SourceURL:
		return "url"
	case SourceFile:
		return "file"
	default:
		return "unknown"
	}
}

// CacheKeyLength is the number of hex characters in a cache key.
const CacheKeyLength = 16

// CacheKey identifies a cache entry. Hash doubles as the entry's file name.
type CacheKey struct {
	Hash   string
	Source SourceKind
}

func (k CacheKey) String() string {
	return k.Hash
}
