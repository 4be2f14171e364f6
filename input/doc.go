// Package input provides validated, blocking prompt loops for console games.
//
// A Handler reads whole lines. Invalid answers are never returned as errors: the
// handler prints why the answer was rejected and asks again. Errors only come from
// the underlying streams (ErrInputClosed) or from an optional attempt cap.
package input
