// Package pagination provides the offset-window arithmetic used to page
// through Entrez history result sets.
//
// A result set of Count elements is covered by windows of a fixed page
// size, addressed with the retstart/retmax parameters of the
// E-utilities. The package computes the window sequence; fetching the
// windows is the client's job:
//
//	plan, err := pagination.NewPlan(1200, pagination.DefaultPageSize)
//	if err != nil {
//	    return err
//	}
//	for _, w := range plan.Windows() {
//	    // issue a request with retstart=w.Start, retmax=w.Size
//	}
//
// Windows are always produced in ascending offset order; consumers that
// need strict server-side ordering can rely on it.
package pagination
