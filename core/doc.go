// Package core defines the shared types used across logonce.
//
// It provides the Level type, used both as the severity of a record and as
// the threshold of a filter, the Entry type that represents a single log
// record, and the Field type for key-value context carried by bridged
// records.
//
// Levels are ordered Trace < Debug < Info < Warn < Error < Off. OffLevel is
// never the severity of a record, so a filter set to Off admits nothing.
// LevelFromInt holds the fixed table that turns the integer accepted by the
// initializer into a filter.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with GetEntry
// and return it with PutEntry once the backend has consumed it.
//
// The target of an Entry is a namespaced origin string. Records emitted
// through the logger package default it to the import path of the calling
// package, computed from the call site by PackagePath.
package core
