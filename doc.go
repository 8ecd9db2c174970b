// Package timecode deals with frame-accurate timecodes and time
// intervals, useful for operations on media timestamps. The two
// primary types in this package are:
//
//	type Timecode struct{ ... }
//
//	and
//
//	type Range struct{ ... }
//
// A Timecode is an immutable instant backed by an exact rational
// number of seconds; it parses from and renders to seven textual
// representations (SMPTE drop- and non-drop-frame, SRT, DLP cinema,
// FFmpeg, FCPX rational, raw frames, raw seconds) without ever
// passing through a binary float. A Range is a directed interval
// between two such instants.
//
// The Splice type collects Ranges and implements sort.Interface to
// assist with ordering intervals.
package timecode
