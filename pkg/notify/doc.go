// Package notify defines the contract between the session lifecycle
// components and whatever surface presents feedback to the user.
//
// The core only ever produces messages; it never inspects how they are
// rendered. Three implementations ship with the package: LogSink (structured
// logging), NoopSink (discard), and Recorder (test double).
package notify
