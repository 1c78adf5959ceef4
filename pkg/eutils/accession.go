package eutils

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Heuristics for the accession-number spellings seen in FASTA headers.
var (
	refseqChromosome = regexp.MustCompile(`NC_\d+`)
	refseqWGS        = regexp.MustCompile(`NZ_[A-Z0-9]+`)
	orfGeneSuffix    = regexp.MustCompile(`.orf\d*.gene$`)
	geneSuffix       = regexp.MustCompile(`.gene\d*$`)
)

// ParseAccession extracts the accession number from the raw leading
// token of a FASTA header. Examples:
//
//	X64695.1.gene9                 -> X64695.1
//	VanY-D_4_AY489045              -> AY489045
//	2:1314_M29695.1                -> M29695.1
//	(Tmt)DfrB4:FM87748469-305:237  -> FM87748469
func ParseAccession(raw string) (string, error) {
	switch {
	case refseqChromosome.MatchString(raw): // Eg: NC_013773
		return refseqChromosome.FindString(raw), nil
	case refseqWGS.MatchString(raw): // Eg: NZ_AGSO01000004.1
		return refseqWGS.FindString(raw), nil
	case strings.Contains(raw, "_"): // Eg: VanY-D_4_AY489045
		parts := strings.Split(raw, "_")
		return parts[len(parts)-1], nil
	case orfGeneSuffix.MatchString(raw): // Eg: EU177504.2.orf0.gene
		return raw[:strings.Index(raw, ".orf")], nil
	case geneSuffix.MatchString(raw): // Eg: AY139592.1.gene4
		return raw[:strings.Index(raw, ".gene")], nil
	case strings.Contains(raw, ":"): // Eg: (Tmt)DfrB4:FM87748469-305:237
		after := strings.SplitN(raw, ":", 2)[1]
		return strings.SplitN(after, "-", 2)[0], nil
	default:
		return "", fmt.Errorf("cannot parse accession from %q", raw)
	}
}

// ReadAccessions collects the accession numbers named in the headers of
// a FASTA stream. Unparseable headers abort the read.
func ReadAccessions(r io.Reader) ([]string, error) {
	var accessions []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ">") {
			continue
		}
		raw := strings.Trim(line, "> \n")
		if i := strings.IndexByte(raw, ' '); i >= 0 {
			raw = raw[:i]
		}
		acc, err := ParseAccession(raw)
		if err != nil {
			return nil, err
		}
		accessions = append(accessions, acc)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return accessions, nil
}
