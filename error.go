// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fin

// InvariantError reports a violated internal invariant of a combinator:
// a slot found in a state no valid transition can produce. It indicates
// an implementation defect, not bad input, so it is delivered by panic —
// there is no well-defined result left to return. The payload is a typed
// error value rather than a string, so hosts that recover can classify
// it and choose their own policy (crash, log and abort, or convert).
//
// Ordinary data failures — Left elements of a fallible stream — are
// values, never panics.
type InvariantError struct {
	// Op names the operation that detected the violation.
	Op string
	// Reason describes the impossible state.
	Reason string
}

// Error implements error.
func (e *InvariantError) Error() string {
	return "fin: " + e.Op + ": " + e.Reason
}

// invariant panics with an *InvariantError.
func invariant(op, reason string) {
	panic(&InvariantError{Op: op, Reason: reason})
}
