package domain

import "errors"

// ErrInvalidFiscalYear is returned for fiscal-year strings that are not of the
// form "YYYY-YYYY" with consecutive years.
var ErrInvalidFiscalYear = errors.New("invalid fiscal year")
