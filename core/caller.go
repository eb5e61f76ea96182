package core

import "runtime"

// CallerInfo contains information about a log call site.
type CallerInfo struct {
	File     string
	Line     int
	Function string
	Defined  bool
}

// Caller retrieves information about a call site. skip counts stack
// frames as in runtime.Caller, relative to Caller's own frame: 1 is the
// caller of Caller.
func Caller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:     file,
		Line:     line,
		Function: funcName,
		Defined:  true,
	}
}
