package directory

import (
	"fmt"

	memdb "github.com/hashicorp/go-memdb"

	"github.com/maxpoletaev/meshconsole/mesh"
)

const (
	nodeTable = "nodes"
	keyIndex  = "id"
	addrIndex = "addr"
)

func snapshotSchema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			nodeTable: {
				Name: nodeTable,
				Indexes: map[string]*memdb.IndexSchema{
					keyIndex: {
						Name:    keyIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
					addrIndex: {
						Name:         addrIndex,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Addr"},
					},
				},
			},
		},
	}
}

// snapshotIndex holds the latest published node list, indexed by key and address.
type snapshotIndex struct {
	db *memdb.MemDB
}

func newSnapshotIndex() (*snapshotIndex, error) {
	db, err := memdb.NewMemDB(snapshotSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot index: %w", err)
	}

	return &snapshotIndex{db: db}, nil
}

// replace swaps the indexed nodes with the given list in one transaction.
func (s *snapshotIndex) replace(nodes []mesh.Node) error {
	txn := s.db.Txn(true)
	defer txn.Abort()

	if _, err := txn.DeleteAll(nodeTable, keyIndex); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	for i := range nodes {
		node := nodes[i]

		if node.Key == "" {
			continue
		}

		if err := txn.Insert(nodeTable, &node); err != nil {
			return fmt.Errorf("failed to index node %s: %w", node.Key, err)
		}
	}

	txn.Commit()

	return nil
}

// all returns the indexed nodes ordered by key.
func (s *snapshotIndex) all() []mesh.Node {
	txn := s.db.Txn(false)

	it, err := txn.Get(nodeTable, keyIndex)
	if err != nil {
		return nil
	}

	nodes := make([]mesh.Node, 0)
	for obj := it.Next(); obj != nil; obj = it.Next() {
		nodes = append(nodes, *obj.(*mesh.Node))
	}

	return nodes
}

func (s *snapshotIndex) first(index, value string) (mesh.Node, bool) {
	txn := s.db.Txn(false)

	obj, err := txn.First(nodeTable, index, value)
	if err != nil || obj == nil {
		return mesh.Node{}, false
	}

	return *obj.(*mesh.Node), true
}
