// Package entrez provides a comprehensive client SDK for the NCBI Entrez
// E-utilities.
//
// The Entrez Programming Utilities (E-utilities) are the NCBI's public
// interface to the Entrez databases: PubMed, Nucleotide, Protein, Gene,
// Assembly and the rest. This package is the root of the Entrez SDK for
// Go, providing convenient exports of the core components from the
// sub-packages.
//
// # Overview
//
// The Entrez SDK consists of several sub-packages:
//
//   - pkg/client: Implements the query, selection and pagination surface
//   - pkg/eutils: Defines tools, parameters, history handles and line streams
//   - pkg/transport: Provides the HTTP round trip to the E-utilities endpoints
//   - pkg/pagination: Utilities for planning retstart/retmax windows
//   - pkg/errors: Structured error types with codes and categories
//   - pkg/logging: Structured logging used across the SDK
//   - pkg/observability: Prometheus metrics and OpenTelemetry tracing providers
//
// # Running a Query
//
// To run a single E-utility invocation and stream its response lines:
//
//	import (
//	    "context"
//	    "fmt"
//
//	    entrez "github.com/entrezutils/entrez-sdk-go"
//	    "github.com/entrezutils/entrez-sdk-go/pkg/eutils"
//	    "github.com/entrezutils/entrez-sdk-go/pkg/transport"
//	)
//
//	func main() {
//	    httpTransport := entrez.NewHTTPTransport(transport.DefaultConfig())
//	    client := entrez.NewClient(httpTransport)
//
//	    ctx := context.Background()
//	    lines, err := client.Query(ctx, entrez.ToolSearch, eutils.Params{
//	        eutils.ParamDB:   "pubmed",
//	        eutils.ParamTerm: "tardigrade",
//	    })
//	    if err != nil {
//	        // Handle error
//	    }
//	    defer lines.Close()
//
//	    for lines.Next() {
//	        fmt.Println(lines.Text())
//	    }
//	    if err := lines.Err(); err != nil {
//	        // Handle error
//	    }
//	}
//
// # Search Then Apply
//
// The common E-utilities workflow is a search that stores its result set
// on the server, followed by a second tool applied to the stored set in
// pages. SearchApply runs the whole pipeline and returns one stitched
// line stream:
//
//	pages, err := client.SearchApply(ctx, "protein", "archaea[orgn]",
//	    entrez.ToolFetch, "protein", eutils.Params{
//	        eutils.ParamRetType: "fasta",
//	        eutils.ParamRetMode: "text",
//	    })
//	if err != nil {
//	    // Handle error
//	}
//	defer pages.Close()
//
//	for pages.Next() {
//	    fmt.Println(pages.Text())
//	}
//
// Pages are fetched lazily, in ascending offset order, one at a time.
//
// # Examples
//
// The SDK includes several examples in the examples directory:
//
//   - simple-query: A basic one-shot esearch call
//   - search-fetch: The search-then-fetch pipeline over server history
//   - concurrent-search: Parallel searches across databases
//   - accession-lookup: Mapping sequence accessions to GI numbers
//   - observability: Metrics, tracing and JSON logging wired together
package entrez
