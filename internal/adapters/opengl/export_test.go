// export_test.go exports private functions for white-box testing.
package opengl

var (
	CursorToPixels = cursorToPixels
	TrimLog        = trimLog
)
