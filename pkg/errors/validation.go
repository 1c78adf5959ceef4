package errors

import "fmt"

// ParameterErrorData carries structured data for parameter errors.
type ParameterErrorData struct {
	Parameter string `json:"parameter"`
	Value     string `json:"value,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// HistoryErrorData carries structured data for history handle errors.
type HistoryErrorData struct {
	WebEnv   string `json:"web_env,omitempty"`
	QueryKey string `json:"query_key,omitempty"`
	Count    string `json:"count,omitempty"`
	Reason   string `json:"reason"`
}

// InvalidTool creates an error for a tool outside the allowed set.
func InvalidTool(tool string) EntrezError {
	return New(
		CodeInvalidTool,
		fmt.Sprintf("invalid web tool: %q", tool),
		CategoryValidation,
		SeverityError,
	).WithData(&ParameterErrorData{
		Parameter: "tool",
		Value:     tool,
		Reason:    "not a known E-utility",
	})
}

// UnknownParameter creates an error for a key outside the allow-list.
func UnknownParameter(key string) EntrezError {
	return New(
		CodeUnknownParameter,
		fmt.Sprintf("unknown parameter: %q", key),
		CategoryValidation,
		SeverityError,
	).WithData(&ParameterErrorData{
		Parameter: key,
		Reason:    "not in the parameter allow-list",
	})
}

// MissingParameter creates an error for a required parameter that is absent.
func MissingParameter(key string) EntrezError {
	return New(
		CodeMissingParameter,
		fmt.Sprintf("missing required parameter: %s", key),
		CategoryValidation,
		SeverityError,
	).WithData(&ParameterErrorData{
		Parameter: key,
		Reason:    "required",
	})
}

// InvalidPageSize wraps a rejected pagination page size. cause carries
// the range detail.
func InvalidPageSize(size int, cause error) EntrezError {
	return Wrap(
		cause,
		CodeInvalidPageSize,
		fmt.Sprintf("invalid page size %d", size),
		CategoryValidation,
		SeverityError,
	).WithData(&ParameterErrorData{
		Parameter: "retmax",
		Value:     fmt.Sprintf("%d", size),
		Reason:    "outside the allowed range",
	})
}

// MissingHistory creates an error for pagination attempted without a
// usable session handle.
func MissingHistory(webEnv, queryKey string) EntrezError {
	reason := "WebEnv and QueryKey are required for pagination"
	switch {
	case webEnv == "" && queryKey != "":
		reason = "WebEnv is required for pagination"
	case webEnv != "" && queryKey == "":
		reason = "QueryKey is required for pagination"
	}

	return New(
		CodeMissingHistory,
		reason,
		CategoryHistory,
		SeverityError,
	).WithData(&HistoryErrorData{
		WebEnv:   webEnv,
		QueryKey: queryKey,
		Reason:   reason,
	})
}

// InvalidCount creates an error for a Count field that is present but
// not a non-negative integer.
func InvalidCount(count string) EntrezError {
	return New(
		CodeInvalidCount,
		fmt.Sprintf("invalid result count %q", count),
		CategoryHistory,
		SeverityError,
	).WithData(&HistoryErrorData{
		Count:  count,
		Reason: "not a non-negative integer",
	})
}
