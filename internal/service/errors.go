package service

import "errors"

// ErrInvalidURL marks input errors: the caller supplied a URL that does not
// name a YouTube video. Handlers map it to 400; everything else is an
// upstream failure mapped to 500.
var ErrInvalidURL = errors.New("invalid YouTube URL")
