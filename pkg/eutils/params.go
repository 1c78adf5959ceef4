package eutils

import (
	"net/url"
	"sort"

	entrezerrors "github.com/entrezutils/entrez-sdk-go/pkg/errors"
)

// Parameter names accepted by the E-utilities endpoints this SDK drives.
const (
	ParamDB         = "db"
	ParamDBFrom     = "dbfrom"
	ParamTerm       = "term"
	ParamID         = "id"
	ParamUseHistory = "usehistory"
	ParamQueryKey   = "query_key"
	ParamWebEnv     = "WebEnv"
	ParamRetType    = "rettype"
	ParamRetMode    = "retmode"
	ParamRetStart   = "retstart"
	ParamRetMax     = "retmax"
)

// validParams is the parameter allow-list. Like validTools it is
// process-wide constant configuration.
var validParams = map[string]struct{}{
	ParamDB:         {},
	ParamDBFrom:     {},
	ParamTerm:       {},
	ParamID:         {},
	ParamUseHistory: {},
	ParamQueryKey:   {},
	ParamWebEnv:     {},
	ParamRetType:    {},
	ParamRetMode:    {},
	ParamRetStart:   {},
	ParamRetMax:     {},
}

// Params is the keyed argument set of a single tool invocation.
type Params map[string]string

// IsValidParam reports whether name is in the parameter allow-list.
func IsValidParam(name string) bool {
	_, ok := validParams[name]
	return ok
}

// Validate checks every key against the allow-list. It returns an
// UnknownParameter error for the first offending key (keys are checked
// in sorted order so the result is deterministic).
func (p Params) Validate() error {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !IsValidParam(k) {
			return entrezerrors.UnknownParameter(k)
		}
	}
	return nil
}

// Clone returns a copy of p. A nil receiver yields an empty, usable map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Encode serializes the parameter set as an application/x-www-form-urlencoded
// body, the shape the eutils endpoints expect in a POST.
func (p Params) Encode() string {
	values := make(url.Values, len(p))
	for k, v := range p {
		values.Set(k, v)
	}
	return values.Encode()
}
