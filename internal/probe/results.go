package probe

import (
	"fmt"
	"sort"
	"time"

	memdb "github.com/hashicorp/go-memdb"
)

const resultTable = "results"

const (
	idIndex        = "id"
	reachableIndex = "reachable"
)

// Result is the outcome of probing one element
type Result struct {
	ElementID   string        `json:"element_id" yaml:"element_id" toml:"element_id"`
	ElementName string        `json:"element_name" yaml:"element_name" toml:"element_name"`
	Hostname    string        `json:"hostname" yaml:"hostname" toml:"hostname"`
	Reachable   bool          `json:"reachable" yaml:"reachable" toml:"reachable"`
	Method      string        `json:"method,omitempty" yaml:"method,omitempty" toml:"method,omitempty"` // "icmp" or "tcp"
	RTT         time.Duration `json:"rtt" yaml:"rtt" toml:"rtt"`
	MAC         string        `json:"mac,omitempty" yaml:"mac,omitempty" toml:"mac,omitempty"`
	Error       string        `json:"error,omitempty" yaml:"error,omitempty" toml:"error,omitempty"`
	CheckedAt   time.Time     `json:"checked_at" yaml:"checked_at" toml:"checked_at"`
}

func resultSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			resultTable: {
				Name: resultTable,
				Indexes: map[string]*memdb.IndexSchema{
					idIndex: {
						Name:    idIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ElementID"},
					},
					reachableIndex: {
						Name:    reachableIndex,
						Indexer: &memdb.BoolFieldIndex{Field: "Reachable"},
					},
				},
			},
		},
	}
}

// ResultStore keeps the latest result per element in memory
type ResultStore struct {
	db *memdb.MemDB
}

func NewResultStore() (*ResultStore, error) {
	db, err := memdb.NewMemDB(resultSchema())
	if err != nil {
		return nil, fmt.Errorf("create result table: %w", err)
	}
	return &ResultStore{db: db}, nil
}

// Put replaces the stored results and drops elements that are no longer probed.
func (s *ResultStore) Put(results []Result) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(resultTable, idIndex); err != nil {
		return fmt.Errorf("clear results: %w", err)
	}
	for i := range results {
		r := results[i]
		if err := txn.Insert(resultTable, &r); err != nil {
			return fmt.Errorf("insert result %s: %w", r.ElementID, err)
		}
	}
	txn.Commit()
	return nil
}

// Get returns the latest result for an element, or nil.
func (s *ResultStore) Get(elementID string) (*Result, error) {
	txn := s.db.Txn(false)
	raw, err := txn.First(resultTable, idIndex, elementID)
	if err != nil {
		return nil, fmt.Errorf("get result %s: %w", elementID, err)
	}
	if raw == nil {
		return nil, nil
	}
	r := *raw.(*Result)
	return &r, nil
}

// Results lists results ordered by element name, optionally filtered by reachability.
func (s *ResultStore) Results(reachable *bool) ([]Result, error) {
	txn := s.db.Txn(false)
	var it memdb.ResultIterator
	var err error
	if reachable != nil {
		it, err = txn.Get(resultTable, reachableIndex, *reachable)
	} else {
		it, err = txn.Get(resultTable, idIndex)
	}
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	results := []Result{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		results = append(results, *raw.(*Result))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].ElementName < results[j].ElementName
	})
	return results, nil
}
