// Package jcm implements the host-side wire protocol for the JCM family of
// banknote acceptor/recycler/escrow devices: a binary message codec plus the
// typed request/response/event records that ride on top of it.
//
// The protocol itself is transport-agnostic — jcm only needs a byte stream
// with per-operation read/write deadlines. The session package builds the
// request/response/event exchange discipline on top of this package; the
// transport package supplies a concrete USB bulk implementation of that byte
// stream.
package jcm
