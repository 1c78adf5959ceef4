package errors

// SDK error codes. The ranges group codes by concern so callers can
// switch on either the exact code or the category.
const (
	// Request validation (1000-1099)
	CodeInvalidTool      int = 1000 // tool not in the allowed set
	CodeUnknownParameter int = 1001 // parameter key not in the allow-list
	CodeMissingParameter int = 1002 // required parameter absent
	CodeInvalidPageSize  int = 1003 // page size outside the allowed range

	// History handle (1100-1199)
	CodeMissingHistory int = 1100 // pagination without WebEnv/QueryKey
	CodeInvalidCount   int = 1101 // Count present but not a non-negative integer

	// Transport (1200-1299)
	CodeTransportError int = 1200 // network failure during a round trip
	CodeHTTPStatus     int = 1201 // non-success HTTP status from the server
	CodeRequestBuild   int = 1202 // request could not be constructed

	// Decoding (1300-1399)
	CodeDecodingError int = 1300 // read failure while draining a response

	// Internal (1900-1999)
	CodeInternal int = 1900
)

// CodeInfo describes an error code.
type CodeInfo struct {
	Code        int
	Name        string
	Description string
	Category    Category
}

var codeRegistry = map[int]CodeInfo{
	CodeInvalidTool:      {CodeInvalidTool, "InvalidTool", "Tool not in the allowed set", CategoryValidation},
	CodeUnknownParameter: {CodeUnknownParameter, "UnknownParameter", "Parameter key not in the allow-list", CategoryValidation},
	CodeMissingParameter: {CodeMissingParameter, "MissingParameter", "Required parameter absent", CategoryValidation},
	CodeInvalidPageSize:  {CodeInvalidPageSize, "InvalidPageSize", "Page size outside the allowed range", CategoryValidation},
	CodeMissingHistory:   {CodeMissingHistory, "MissingHistory", "Pagination requires WebEnv and QueryKey", CategoryHistory},
	CodeInvalidCount:     {CodeInvalidCount, "InvalidCount", "Count is not a non-negative integer", CategoryHistory},
	CodeTransportError:   {CodeTransportError, "TransportError", "Network failure during a round trip", CategoryTransport},
	CodeHTTPStatus:       {CodeHTTPStatus, "HTTPStatus", "Non-success HTTP status", CategoryTransport},
	CodeRequestBuild:     {CodeRequestBuild, "RequestBuild", "Request could not be constructed", CategoryTransport},
	CodeDecodingError:    {CodeDecodingError, "DecodingError", "Malformed bytes in a response line", CategoryDecoding},
	CodeInternal:         {CodeInternal, "Internal", "Internal SDK error", CategoryInternal},
}

// LookupCode returns information about an error code.
func LookupCode(code int) (CodeInfo, bool) {
	info, ok := codeRegistry[code]
	return info, ok
}

// CodeName returns the symbolic name of an error code.
func CodeName(code int) string {
	if info, ok := codeRegistry[code]; ok {
		return info.Name
	}
	return "Unknown"
}
