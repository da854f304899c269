// Package formatter turns log entries into human-readable lines.
//
// LineFormatter is the only built-in formatter. A line looks like
//
//	2024-03-09 14:05:06.789  INFO handler:42     --- listening
//
// The target column keeps only the last segment of the entry's target
// (split on Config.Separator, "/" by default) followed by the source line.
// ShortenTarget and TargetWithLine expose that step as pure functions.
//
// With Config.Colorize the level column is colored by severity (Trace and
// Debug default, Info green, Warn yellow, Error red) and the target column
// cyan. The colored level strings are rendered once at init, so the hot path
// is a single WriteString per column.
//
// Formatters use a pooled bytes.Buffer internally. Buffers larger than
// 64 KiB are not returned to the pool.
package formatter
