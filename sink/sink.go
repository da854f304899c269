package sink

// Sink is the final destination of a formatted line. The line carries no
// trailing newline; each sink terminates it the way its output expects.
type Sink interface {
	WriteLine(line string) error
}

// Func adapts a plain function to a Sink.
type Func func(line string) error

// WriteLine calls f(line).
func (f Func) WriteLine(line string) error {
	return f(line)
}

// Nop discards every line.
type Nop struct{}

// WriteLine does nothing.
func (Nop) WriteLine(string) error { return nil }
