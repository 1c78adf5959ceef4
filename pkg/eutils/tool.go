package eutils

// Tool identifies one of the E-utilities. Each tool maps to an endpoint
// of the form e<tool>.fcgi on the Entrez server.
type Tool string

const (
	ToolInfo     Tool = "info"
	ToolSearch   Tool = "search"
	ToolPost     Tool = "post"
	ToolSummary  Tool = "summary"
	ToolFetch    Tool = "fetch"
	ToolLink     Tool = "link"
	ToolGQuery   Tool = "gquery"
	ToolCitMatch Tool = "citmatch"
)

// validTools is the closed set of remote operations. It is initialized
// once and never mutated.
var validTools = map[Tool]struct{}{
	ToolInfo:     {},
	ToolSearch:   {},
	ToolPost:     {},
	ToolSummary:  {},
	ToolFetch:    {},
	ToolLink:     {},
	ToolGQuery:   {},
	ToolCitMatch: {},
}

// IsValid reports whether t names a known E-utility.
func (t Tool) IsValid() bool {
	_, ok := validTools[t]
	return ok
}

// String returns the tool name as used in endpoint paths.
func (t Tool) String() string {
	return string(t)
}

// Endpoint returns the CGI script name for the tool, e.g. "esearch.fcgi".
func (t Tool) Endpoint() string {
	return "e" + string(t) + ".fcgi"
}

// Tools returns the full set of valid tools in a stable order.
func Tools() []Tool {
	return []Tool{
		ToolInfo, ToolSearch, ToolPost, ToolSummary,
		ToolFetch, ToolLink, ToolGQuery, ToolCitMatch,
	}
}
