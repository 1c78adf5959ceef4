// Package pkg provides the core components of the Entrez E-utilities SDK.
//
// The E-utilities are the NCBI's programmatic interface to the Entrez
// databases. This package contains several sub-packages that implement
// different aspects of the client.
//
// # Client Usage
//
// To run a search and stream the response:
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
//	    client := entrez.NewClient(
//	        entrez.NewHTTPTransport(transport.DefaultConfig()),
//	    )
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
//	}
//
// # Sub-packages
//
// The Entrez SDK consists of several sub-packages:
//
//   - client: Implements the query, selection and pagination surface
//   - eutils: Defines tools, parameters, history handles and line streams
//   - transport: Provides the HTTP round trip to the E-utilities endpoints
//   - pagination: Utilities for planning retstart/retmax windows
//   - errors: Structured error types used throughout the SDK
//   - logging: Structured logging used throughout the SDK
//   - observability: Metrics and tracing providers
package pkg
