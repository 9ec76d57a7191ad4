// Package store keeps named sequences and their annotations in a
// bolt database.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Davydov/plasmid/bio"
	"bitbucket.org/Davydov/plasmid/enzyme"
	"bitbucket.org/Davydov/plasmid/seq"
)

// log is the global logging variable.
var log = logging.MustGetLogger("store")

// SEQUENCES is the bucket holding sequence records.
var SEQUENCES = []byte("sequences")

// ErrNotFound is returned for an unknown sequence name.
var ErrNotFound = errors.New("sequence not found")

// Record is a stored sequence.
type Record struct {
	Alphabet    string              `json:"alphabet"`
	Sequence    string              `json:"sequence"`
	Annotations []enzyme.Annotation `json:"annotations,omitempty"`
	Saved       time.Time           `json:"saved"`
}

// Store saves and loads records.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) a store file.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0666, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// New creates a store on top of an open database.
func New(db *bolt.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put saves a record under name, replacing any previous one.
func (s *Store) Put(name string, rec *Record) error {
	if name == "" {
		return errors.New("empty sequence name")
	}
	r := *rec
	if r.Saved.IsZero() {
		r.Saved = time.Now()
	}
	data, err := json.Marshal(&r)
	if err != nil {
		log.Error("Error serializing sequence", err)
		return err
	}
	err = SaveData(s.db, SEQUENCES, []byte(name), data)
	if err != nil {
		log.Error("Error saving sequence", err)
		return err
	}
	log.Debugf("Saved %s (%d bases, %d annotations)", name, len(rec.Sequence), len(rec.Annotations))
	return nil
}

// Get loads the record saved under name.
func (s *Store) Get(name string) (*Record, error) {
	b, err := LoadData(s.db, SEQUENCES, []byte(name))
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}
	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("sequence %s: %w", name, err)
	}
	return &rec, nil
}

// Delete removes a record. Deleting an unknown name is not an error.
func (s *Store) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(SEQUENCES)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(name))
	})
}

// Names returns all record names in key order.
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(SEQUENCES)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}

// SaveData saves a value in a bucket, creating the bucket if needed.
func SaveData(db *bolt.DB, bucket, key, data []byte) error {
	if db == nil {
		return nil
	}
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// LoadData loads a value from a bucket. A missing bucket or key
// gives nil.
func LoadData(db *bolt.DB, bucket, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		// values are only valid inside the transaction
		if v := b.Get(key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Alphabet returns the alphabet name of the base type B.
func Alphabet[B bio.Base[B]]() string {
	var zero B
	switch any(zero).(type) {
	case bio.DnaBase:
		return "DNA"
	case bio.RnaBase:
		return "RNA"
	case bio.IupacBase:
		return "IUPAC"
	}
	return fmt.Sprintf("%T", zero)
}

// FromSequence creates a record from a sequence and its
// annotations.
func FromSequence[B bio.Base[B]](s *seq.Sequence[B]) *Record {
	return &Record{
		Alphabet:    Alphabet[B](),
		Sequence:    s.ToNucleotideString(),
		Annotations: s.Annotations(),
	}
}

// ToSequence decodes a record. The record alphabet must be the
// alphabet of B.
func ToSequence[B bio.Base[B]](rec *Record) (*seq.Sequence[B], error) {
	if a := Alphabet[B](); rec.Alphabet != a {
		return nil, fmt.Errorf("record holds a %s sequence, not %s", rec.Alphabet, a)
	}
	s, err := seq.Parse[B](rec.Sequence)
	if err != nil {
		return nil, err
	}
	s.AddAnnotations(rec.Annotations...)
	return s, nil
}
