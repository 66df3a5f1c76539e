package tlog

// TestingPrinter то, что нужно от *testing.T для вывода ошибок.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}
