package defaults

import "errors"

var errBodyTooLarge = errors.New("response body exceeds 10 MiB")
