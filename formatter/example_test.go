package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/logonce/core"
	"github.com/philipp01105/logonce/formatter"
)

func ExampleNewLineFormatter() {
	f := formatter.NewLineFormatter(formatter.Config{Separator: "::"})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.Local),
		Level:   core.InfoLevel,
		Target:  "app::net::server",
		Message: "hello world",
		Caller:  core.CallerInfo{Line: 42, Defined: true},
	}

	out, _ := f.Format(entry)
	fmt.Println(string(out))
	// Output:
	// 2026-01-15 12:00:00.000  INFO server:42      --- hello world
}

func ExampleShortenTarget() {
	fmt.Println(formatter.ShortenTarget("a::b::c", "::"))
	fmt.Println(formatter.TargetWithLine("github.com/acme/api/handler", "/", 7))
	// Output:
	// c
	// handler:7
}
