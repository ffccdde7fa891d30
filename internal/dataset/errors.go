package dataset

import "errors"

var (
	ErrDataUnavailable = errors.New("no dataset source available")
	ErrSchemaInvalid   = errors.New("dataset schema invalid")
)
