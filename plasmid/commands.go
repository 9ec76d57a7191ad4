package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"bitbucket.org/Davydov/plasmid/bio"
	"bitbucket.org/Davydov/plasmid/enzyme"
	"bitbucket.org/Davydov/plasmid/restmap"
	"bitbucket.org/Davydov/plasmid/seq"
	"bitbucket.org/Davydov/plasmid/store"
)

// resolveEnzymes returns registry enzymes by name, or the whole
// registry if no names are given.
func resolveEnzymes(names []string) ([]*enzyme.Enzyme, error) {
	if len(names) == 0 {
		return enzyme.Registry(), nil
	}
	enzymes := make([]*enzyme.Enzyme, 0, len(names))
	for _, name := range names {
		e, ok := enzyme.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown enzyme: %s", name)
		}
		enzymes = append(enzymes, e)
	}
	return enzymes, nil
}

// prettyPrint prints a sequence, its complement and the amino acid
// of every codon.
func prettyPrint(w io.Writer, sequence string, strand Strand) error {
	s, err := seq.ParseDna(sequence)
	if err != nil {
		return err
	}
	var aas strings.Builder
	for it := s.Codons(); it.Next(); {
		aa, _ := it.Codon().Translate()
		fmt.Fprintf(&aas, " %c ", aa.Letter())
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n%s\n",
		strand.Format(s.ToNucleotideString()),
		strand.Complement().Format(s.ToReverseComplementString()),
		strand.Pad(aas.String()))
	return err
}

// match prints a sequence above a pattern and whether they match.
func match(w io.Writer, sequence, pattern string, strand Strand) error {
	s, err := seq.ParseDna(sequence)
	if err != nil {
		return err
	}
	p, err := bio.Decode[bio.IupacBase](pattern)
	if err != nil {
		return fmt.Errorf("pattern: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n-> Matches: %v\n",
		strand.Format(s.ToNucleotideString()),
		strand.Pad(bio.Letters(p)),
		s.Matches(p))
	return err
}

// translate prints the protein encoded by a DNA or RNA sequence.
func translate(w io.Writer, sequence string, rna, long bool) error {
	var aas []bio.AminoAcid
	if rna {
		s, err := seq.ParseRna(sequence)
		if err != nil {
			return err
		}
		aas, _ = s.Translate()
	} else {
		s, err := seq.ParseDna(sequence)
		if err != nil {
			return err
		}
		aas, _ = s.Translate()
	}
	if long {
		abbrevs := make([]string, len(aas))
		for i, aa := range aas {
			abbrevs[i] = aa.Abbrev()
		}
		_, err := fmt.Fprintln(w, strings.Join(abbrevs, "-"))
		return err
	}
	_, err := fmt.Fprintln(w, bio.Protein(aas))
	return err
}

// readRecords returns the records of a FASTA file, or a single
// record for a sequence given on the command line.
func readRecords(sequence, fastaFileName string) (bio.Records, error) {
	if fastaFileName == "" {
		if sequence == "" {
			return nil, errors.New("no sequence given")
		}
		return bio.Records{{Name: "sequence", Sequence: sequence}}, nil
	}
	f, err := os.Open(fastaFileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := bio.ParseFasta(f)
	if err != nil {
		return nil, err
	}
	log.Infof("Read %d sequences from %s", len(recs), fastaFileName)
	return recs, nil
}

// digest finds restriction sites and prints them as a table.
// Sequences are read as IUPAC so ambiguous FASTA input is accepted.
func digest(w io.Writer, sequence, fastaFileName string, names []string, jsonFileName string) error {
	enzymes, err := resolveEnzymes(names)
	if err != nil {
		return err
	}
	recs, err := readRecords(sequence, fastaFileName)
	if err != nil {
		return err
	}
	summary := &DigestSummary{
		Version:     version,
		CommandLine: os.Args,
		Enzymes:     len(enzymes),
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "sequence\tenzyme\tstart\tend\tcut")
	for _, rec := range recs {
		s, err := seq.ParseIupac(rec.Sequence)
		if err != nil {
			return fmt.Errorf("%s: %w", rec.Name, err)
		}
		anns := s.Annotate(enzymes)
		log.Infof("%s: %d bases, %d sites", rec.Name, s.Len(), len(anns))
		for _, a := range anns {
			cut := "-"
			if c, ok := a.Cut(); ok {
				cut = fmt.Sprint(c)
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", rec.Name, a.Name, a.Start, a.End, cut)
		}
		summary.Sequences = append(summary.Sequences, SequenceSites{
			Name:   rec.Name,
			Length: s.Len(),
			Sites:  anns,
		})
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if jsonFileName != "" {
		return writeJSON(jsonFileName, summary)
	}
	return nil
}

// writeJSON writes v in json format to a file.
func writeJSON(fileName string, v interface{}) error {
	j, err := json.Marshal(v)
	if err != nil {
		return err
	}
	log.Debug(string(j))
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("Error creating json output file: %w", err)
	}
	defer f.Close()
	_, err = f.Write(j)
	return err
}

// listEnzymes prints the registry.
func listEnzymes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tsite\tcut")
	for _, e := range enzyme.Registry() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name(), e.Site(), e.Mode())
	}
	return tw.Flush()
}

// export draws the restriction map of a sequence to a file.
func export(sequence, outFileName, format, title string, names []string) error {
	enzymes, err := resolveEnzymes(names)
	if err != nil {
		return err
	}
	s, err := seq.ParseDna(sequence)
	if err != nil {
		return err
	}
	s.Annotate(enzymes)

	cfg := restmap.DefaultConfig()
	cfg.Format = format
	cfg.Title = title

	f, err := os.Create(outFileName)
	if err != nil {
		return err
	}
	if err := restmap.Render(f, s, cfg); err != nil {
		f.Close()
		return err
	}
	log.Infof("Restriction map written to %s", outFileName)
	return f.Close()
}

// save annotates a DNA sequence and saves it to the database.
func save(w io.Writer, dbFileName, name, sequence string) error {
	s, err := seq.ParseDna(sequence)
	if err != nil {
		return err
	}
	anns := s.AnnotateRestrictionEnzymes()

	st, err := store.Open(dbFileName)
	if err != nil {
		return err
	}
	defer st.Close()
	if err := st.Put(name, store.FromSequence(s)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "saved %s: %d bases, %d sites\n", name, s.Len(), len(anns))
	return err
}

// load prints a saved sequence in FASTA format followed by its
// annotations.
func load(w io.Writer, dbFileName, name string) error {
	st, err := store.Open(dbFileName)
	if err != nil {
		return err
	}
	defer st.Close()
	rec, err := st.Get(name)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	fasta := bio.Record{Name: name, Sequence: rec.Sequence}
	if _, err := fmt.Fprint(w, fasta.String()); err != nil {
		return err
	}
	for _, a := range rec.Annotations {
		if _, err := fmt.Fprintf(w, "; %v\n", a); err != nil {
			return err
		}
	}
	return nil
}

// list prints the names of the saved sequences.
func list(w io.Writer, dbFileName string) error {
	st, err := store.Open(dbFileName)
	if err != nil {
		return err
	}
	defer st.Close()
	names, err := st.Names()
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
