// Package eutils defines the wire-level vocabulary of the NCBI Entrez
// E-utilities: the closed set of tools, the parameter allow-list, the
// history handle extracted from search responses, and the lazy line
// reader used to consume response bodies.
//
// The package holds no network code; it is consumed by pkg/transport
// and pkg/client.
package eutils
