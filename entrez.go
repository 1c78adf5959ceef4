// Package entrez provides a Golang client SDK for the NCBI Entrez
// E-utilities (https://www.ncbi.nlm.nih.gov/books/NBK25501/)
package entrez

import (
	"github.com/entrezutils/entrez-sdk-go/pkg/client"
	"github.com/entrezutils/entrez-sdk-go/pkg/eutils"
	"github.com/entrezutils/entrez-sdk-go/pkg/pagination"
	"github.com/entrezutils/entrez-sdk-go/pkg/transport"
)

// Version represents the current version of the SDK
const Version = "1.0.0"

// These exports provide direct access to the core SDK components
var (
	// NewClient creates a new Entrez client
	NewClient = client.New

	// NewHTTPTransport creates a new HTTP transport against the
	// E-utilities base URL
	NewHTTPTransport = transport.NewHTTPTransport

	// NewHistoryScanner creates a scanner extracting WebEnv, QueryKey
	// and Count from response lines
	NewHistoryScanner = eutils.NewHistoryScanner
)

// E-utility tools
const (
	ToolInfo     = eutils.ToolInfo
	ToolSearch   = eutils.ToolSearch
	ToolPost     = eutils.ToolPost
	ToolSummary  = eutils.ToolSummary
	ToolFetch    = eutils.ToolFetch
	ToolLink     = eutils.ToolLink
	ToolGQuery   = eutils.ToolGQuery
	ToolCitMatch = eutils.ToolCitMatch
)

// Client options
var (
	WithLogger  = client.WithLogger
	WithMetrics = client.WithMetrics
	WithTracing = client.WithTracing
)

// Pagination options
var (
	WithPageSize = client.WithPageSize
)

// Pagination defaults
const (
	DefaultPageSize = pagination.DefaultPageSize
	MaxPageSize     = pagination.MaxPageSize
)

// DefaultBaseURL is the production E-utilities endpoint root.
const DefaultBaseURL = transport.DefaultBaseURL
