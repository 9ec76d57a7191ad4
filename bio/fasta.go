package bio

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Record is a named sequence string read from or written to a FASTA
// file.
type Record struct {
	Name     string
	Sequence string
}

// Records stores multiple FASTA records.
type Records []Record

// ParseFasta parses FASTA records from a reader. Spaces inside
// sequence lines are removed and letters are uppercased; validation
// against an alphabet is left to the caller.
func ParseFasta(rd io.Reader) (recs Records, err error) {
	recs = make(Records, 0, 10)
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			recs = append(recs, Record{Name: strings.TrimSpace(line[1:])})
		} else {
			if len(recs) == 0 {
				return nil, errors.New("sequence w/o header")
			}
			line = strings.ToUpper(strings.Replace(line, " ", "", -1))
			recs[len(recs)-1].Sequence += line
		}
	}
	return recs, scanner.Err()
}

// Wrap inputs a string and wraps it so string length is n characters
// or less.
func Wrap(seq string, n int) (s string) {
	var b strings.Builder
	for i := 0; i < len(seq); i += n {
		end := i + n
		if end > len(seq) {
			end = len(seq)
		}
		b.WriteString(seq[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}

// String returns a record in FASTA format.
func (rec Record) String() string {
	return ">" + rec.Name + "\n" + Wrap(rec.Sequence, 80)
}

// String returns records in FASTA format.
func (recs Records) String() string {
	var b strings.Builder
	for _, rec := range recs {
		b.WriteString(rec.String())
	}
	return strings.TrimSuffix(b.String(), "\n")
}
