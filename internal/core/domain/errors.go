package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrConfigDecodeFailed is reported when the persisted config file is malformed.
	ErrConfigDecodeFailed = zerr.New("config file couldn't be loaded")

	// ErrInvalidOption is reported when the config file carries an unknown key or a value of the wrong type.
	ErrInvalidOption = zerr.New("invalid option")

	// ErrMutuallyExclusiveOptions is reported when keys that exclude each other are set together.
	ErrMutuallyExclusiveOptions = zerr.New("mutually exclusive options found together")

	// ErrCacheDirCreationFailed is returned when neither the requested nor the default cache directory can be created.
	ErrCacheDirCreationFailed = zerr.New("all attempts to create cache directory failed")

	// ErrMissingSource is returned when neither a PAC URL nor a PAC file was provided.
	ErrMissingSource = zerr.New("you must provide either an URL to get the WPAD or a path to a WPAD file")

	// ErrSourceNotFound is returned when the local PAC file does not exist.
	ErrSourceNotFound = zerr.New("WPAD file was not found")

	// ErrFetchFailed is returned when downloading the PAC document fails.
	ErrFetchFailed = zerr.New("error downloading the WPAD file")

	// ErrEvaluationFailed is returned when the PAC document cannot be parsed or evaluated.
	ErrEvaluationFailed = zerr.New("the WPAD file couldn't be parsed")

	// ErrCacheWriteFailed is returned when a cache entry cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write cache entry")

	// ErrSourceReadFailed is returned when the local PAC file exists but cannot be read or decoded.
	ErrSourceReadFailed = zerr.New("failed to read WPAD file")
)

// ErrorKind classifies the failures the resolution layer can surface.
type ErrorKind uint8

const (
	// KindUnknown is any error outside the closed set below.
	KindUnknown ErrorKind = iota
	// KindConfigDecode marks a malformed config file. Recovered locally.
	KindConfigDecode
	// KindInvalidOption marks a bad config key or value. Recovered locally.
	KindInvalidOption
	// KindMutuallyExclusive marks exclusive config keys set together. Recovered locally.
	KindMutuallyExclusive
	// KindCacheDirCreation marks an unusable cache directory. Fatal.
	KindCacheDirCreation
	// KindMissingSource marks a run without pac_url or pac_file. Fatal.
	KindMissingSource
	// KindSourceNotFound marks a missing local PAC file. Fatal.
	KindSourceNotFound
	// KindFetch marks a network or HTTP failure. Fatal.
	KindFetch
	// KindEvaluation marks a PAC document the evaluator rejected. Fatal.
	KindEvaluation
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfigDecode:
		return "config_decode"
	case KindInvalidOption:
		return "invalid_option"
	case KindMutuallyExclusive:
		return "mutually_exclusive_options"
	case KindCacheDirCreation:
		return "cache_dir_creation_failed"
	case KindMissingSource:
		return "missing_source"
	case KindSourceNotFound:
		return "source_not_found"
	case KindFetch:
		return "fetch_error"
	case KindEvaluation:
		return "evaluation_error"
	default:
		return "unknown"
	}
}

// Error tags an underlying error with its kind.
type Error struct {
	Kind ErrorKind
	err  error
}

// NewError tags err with kind. A nil err yields nil.
func NewError(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, err: err}
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf returns the kind of the first tagged error in err's chain.
func KindOf(err error) ErrorKind {
	var tagged *Error
	if errors.As(err, &tagged) {
		return tagged.Kind
	}
	return KindUnknown
}
