// Package sink provides the write destinations for formatted lines.
//
// A Sink accepts one complete line at a time, without its newline:
//
//   - Terminal writes to an io.Writer, typically standard output. Stdout
//     picks a go-colorable writer for colorized output.
//   - ConsoleBridge hands lines to a ConsoleWriter, the native console of
//     mobile platforms.
//   - Nop discards everything.
//
// Sinks write synchronously and never retry. Errors are returned to the
// dispatcher, which counts them.
package sink
