package check

import (
	"fmt"
)

// Pass sets the result to passed status with a detail message.
func (r *Result) Pass(detail string) Result {
	r.Status = StatusPass
	r.Details = append(r.Details, detail)
	r.Err = nil
	return *r
}

// Fail sets the result to failed status with a detail message.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusFail
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// FailErr sets the result to failed status using the error text as detail.
func (r *Result) FailErr(err error) Result {
	return r.Fail(err.Error(), err)
}

// Skip sets the result to skipped status with a detail message.
// A skipped result carries no error.
func (r *Result) Skip(detail string) Result {
	r.Status = StatusSkip
	r.Details = append(r.Details, detail)
	r.Err = nil
	return *r
}

// Skipf sets the result to skipped status with a formatted detail message.
func (r *Result) Skipf(format string, args ...interface{}) Result {
	return r.Skip(fmt.Sprintf(format, args...))
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
