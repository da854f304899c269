package core

import (
	"runtime"
	"strings"
	"sync"
	"time"
)

// Entry is a single log record. It lives for one emission: built by the
// facade, formatted by the backend, then returned to the pool.
type Entry struct {
	Time    time.Time
	Level   Level
	Target  string
	Message string
	Fields  []Field
	Caller  CallerInfo
}

// CallerInfo contains information about the call site
type CallerInfo struct {
	File     string
	Line     int
	Function string
	Defined  bool
}

// Package returns the import path of the function that made the call.
func (c CallerInfo) Package() string {
	return PackagePath(c.Function)
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8),
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Fields = e.Fields[:0]
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Fields = e.Fields[:0]
	e.Message = ""
	e.Target = ""
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// GetCaller returns the call site skip frames above the function calling
// GetCaller; GetCaller(0) describes that function itself.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}

	var funcName string
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:     file,
		Line:     line,
		Function: funcName,
		Defined:  true,
	}
}

// CallerFromPC resolves a program counter such as slog.Record.PC.
func CallerFromPC(pc uintptr) CallerInfo {
	if pc == 0 {
		return CallerInfo{}
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	if frame.Line == 0 {
		return CallerInfo{}
	}
	return CallerInfo{
		File:     frame.File,
		Line:     frame.Line,
		Function: frame.Function,
		Defined:  true,
	}
}

// CallerOutside walks up the stack from the function calling it and returns
// the first frame whose function name does not start with any of prefixes.
// Bridges use it to find the user's call site behind another logging library.
func CallerOutside(prefixes ...string) CallerInfo {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !hasAnyPrefix(frame.Function, prefixes) && !strings.HasPrefix(frame.Function, "runtime.") {
			return CallerInfo{
				File:     frame.File,
				Line:     frame.Line,
				Function: frame.Function,
				Defined:  true,
			}
		}
		if !more {
			return CallerInfo{}
		}
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

// PackagePath extracts the import path from a fully qualified function name:
// "github.com/a/b/pkg.(*T).Method" yields "github.com/a/b/pkg".
func PackagePath(funcName string) string {
	if i := strings.IndexByte(funcName, '['); i >= 0 {
		funcName = funcName[:i]
	}
	slash := strings.LastIndexByte(funcName, '/')
	dot := strings.IndexByte(funcName[slash+1:], '.')
	if dot < 0 {
		return funcName
	}
	return funcName[:slash+1+dot]
}
