package dateutil

import "errors"

var ErrUnknownLayout = errors.New("dateutil: unknown layout")
