// Copyright (c) Pescador Authors.
// Licensed under the MIT License.

/*
Package types provides shared type definitions for the pescador library.

types is the lowest-level public package and depends on no other package in
the module. It defines the structured error type and the configuration-error
codes surfaced by multiplexer and streamer constructors.

Configuration errors are always raised synchronously at construction time,
before any iteration begins. Stream exhaustion is not an error and is
signalled separately (see the streamer package).
*/
package types
