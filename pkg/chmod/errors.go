package chmod

import "errors"

var (
	// Path decomposition errors 📂
	ErrUnsupportedPathPrefix = errors.New("❌ unsupported path prefix")
	ErrNullBytePathSegment   = errors.New("❌ path segment contains null byte")
	ErrNoTargetEntry         = errors.New("❌ path does not reference an entry")
)
