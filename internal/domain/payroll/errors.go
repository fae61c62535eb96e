package payroll

import "errors"

// Payroll domain errors. The computation itself never fails on degenerate
// input; these cover the request boundary only.
var (
	ErrInvalidPeriod = errors.New("invalid payroll period")
)
