package catalog

import (
	"corrosionengine/domain/corecorr"
	"corrosionengine/domain/errs"

	"golang.org/x/sync/singleflight"
)

// Catalog is the process-wide view over the loaded Tables plus its content
// hash, used by tools/ to stamp provenance and by tests to assert that two
// loads of the same directory are bytewise identical (spec.md §8).
type Catalog struct {
	Tables *Tables
	Hash   corecorr.Hash
	dir    string
}

// LoadCatalog performs one synchronous, deterministic load of dataDir. It is
// the pure constructor: call it directly in tests or a single-shot CLI
// invocation. Long-running servers should prefer Manager, which memoizes
// this behind a singleflight so concurrent first-requests don't duplicate
// the I/O.
func LoadCatalog(dataDir string) (*Catalog, error) {
	t, err := Load(dataDir)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		Tables: t,
		Hash:   corecorr.NewHash(t.RawBytes),
		dir:    dataDir,
	}, nil
}

// Material looks up a material's composition by any known alias or its
// canonical common name.
func (c *Catalog) Material(name string) (MaterialComposition, bool) {
	canonical, _ := c.Tables.Aliases.Resolve(name)
	m, ok := c.Tables.Materials[canonical]
	return m, ok
}

// Manager memoizes Catalog construction per data directory so that
// concurrent first requests (e.g. the gin handlers in tools/) block on one
// shared load instead of racing to read the same files independently.
// Catalogs never change after a directory is first loaded — there is no
// invalidation path, matching the "immutable after construction" contract.
type Manager struct {
	group singleflight.Group
}

// NewManager builds an empty Manager.
func NewManager() *Manager {
	return &Manager{}
}

// Get returns the Catalog for dataDir, loading it on first use and reusing
// the result (and any in-flight load) on every subsequent call.
func (m *Manager) Get(dataDir string) (*Catalog, error) {
	v, err, _ := m.group.Do(dataDir, func() (interface{}, error) {
		return LoadCatalog(dataDir)
	})
	if err != nil {
		return nil, errs.NewCatalogLoad(dataDir, err)
	}
	return v.(*Catalog), nil
}
