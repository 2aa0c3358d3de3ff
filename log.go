package codec

// InfoLogFunc and DebugLogFunc receive the package log lines. Both are nil,
// i.e. silent, by default.
var (
	InfoLogFunc  func(string, ...any)
	DebugLogFunc func(string, ...any)
)

func log(f string, a ...any) {
	if InfoLogFunc != nil {
		InfoLogFunc(f, a...)
	}
}

func debugLog(f string, a ...any) {
	if DebugLogFunc != nil {
		DebugLogFunc(f, a...)
	}
}
