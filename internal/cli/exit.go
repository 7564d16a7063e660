package cli

import "errors"

// ExitError carries an intended process exit code.
//
// Usage errors exit 2. A pick that ends without a selection exits 1
// silently.
type ExitError struct {
	Code   int
	Silent bool   // if true, main should not print "Error: ..." for this
	Msg    string // optional message (already user-facing)
}

func (e *ExitError) Error() string {
	return e.Msg
}

func ExitCode(err error) (code int, silent bool, ok bool) {
	var ee *ExitError
	if !errors.As(err, &ee) {
		return 0, false, false
	}
	return ee.Code, ee.Silent, true
}

func usageError(msg string) error {
	return &ExitError{Code: 2, Msg: msg}
}

// Report prints err the way main should and returns the exit code.
// Silent ExitErrors print nothing.
func Report(err error) int {
	if err == nil {
		return 0
	}
	code, silent, ok := ExitCode(err)
	if !ok {
		code = 1
	}
	if !silent && err.Error() != "" {
		errMsg("Error: " + err.Error())
	}
	return code
}
