package dataset

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"ferreteria.lasu.pe/internal/flatfile"
)

// Manager owns one Store per catalog resource. Every row set is loaded
// once at startup from its static source file, joined in memory against
// its reference resources, and from then on mutated only through the
// stores. Nothing is persisted back: restarting the process discards all
// changes, which is a deliberate property of the system.
type Manager struct {
	dataDir      string
	catalog      *Catalog
	stores       map[string]*Store
	logger       *slog.Logger
	shutdownOnce sync.Once
}

// InitManager creates the stores for every resource in the catalog and
// performs the one-shot load+join. Individual sources that fail to load
// come up as empty row sets rather than errors.
func InitManager(dataDir, catalogPath string, logger *slog.Logger) (*Manager, error) {
	catalog, err := LoadCatalog(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing dataset manager: %w", err)
	}

	manager := &Manager{
		dataDir: dataDir,
		catalog: catalog,
		stores:  make(map[string]*Store, len(catalog.Resources)),
		logger:  logger,
	}
	for _, spec := range catalog.Resources {
		manager.stores[spec.Name] = newStore(spec)
	}

	manager.load()
	return manager, nil
}

// load populates every store from its source file, then resolves joins.
// Join resolution runs after all sources are in so a resource may
// reference one that appears later in the catalog.
func (m *Manager) load() {
	for _, spec := range m.catalog.Resources {
		path := filepath.Join(m.dataDir, spec.Source)
		var rows []flatfile.Row
		switch spec.Format {
		case "json":
			rows = flatfile.LoadJSON(path, m.logger)
		default:
			rows = flatfile.LoadCSV(path, m.logger)
		}
		m.stores[spec.Name].populate(rows)
	}

	for _, spec := range m.catalog.Resources {
		if len(spec.Joins) == 0 {
			continue
		}
		store := m.stores[spec.Name]
		store.mu.Lock()
		for _, row := range store.rows {
			m.enrich(spec, row)
		}
		store.mu.Unlock()
	}
}

// enrich resolves each join spec into the row. A non-empty value already
// present under the target field wins: some source files carry the
// display name inline and that takes precedence over the cross-file match.
func (m *Manager) enrich(spec ResourceSpec, row flatfile.Row) {
	for _, join := range spec.Joins {
		if flatfile.String(row[join.As]) != "" {
			continue
		}
		ref := m.stores[join.Resource]
		ref.mu.RLock()
		row[join.As] = Resolve(row[join.Field], ref.rows, ref.spec.IDField, join.Display, join.Fallback)
		ref.mu.RUnlock()
	}
}

// Store returns the store for a named resource.
func (m *Manager) Store(name string) (*Store, bool) {
	store, ok := m.stores[name]
	return store, ok
}

// Catalog returns the loaded resource catalog.
func (m *Manager) Catalog() *Catalog {
	return m.catalog
}

// ResourceNames returns the catalog resource names in declaration order.
func (m *Manager) ResourceNames() []string {
	names := make([]string, 0, len(m.catalog.Resources))
	for _, spec := range m.catalog.Resources {
		names = append(names, spec.Name)
	}
	return names
}

// CreateRow resolves the resource's joins into the submitted fields and
// inserts the row.
func (m *Manager) CreateRow(resource string, fields flatfile.Row) (flatfile.Row, error) {
	store, ok := m.stores[resource]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}
	row := fields.Clone()
	delete(row, store.spec.IDField)
	m.enrich(store.spec, row)
	return store.Create(row)
}

// UpdateRow resolves joins and replaces the row matching id in place.
func (m *Manager) UpdateRow(resource, id string, fields flatfile.Row) (flatfile.Row, error) {
	store, ok := m.stores[resource]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}
	row := fields.Clone()
	m.enrich(store.spec, row)
	return store.Update(id, row)
}

// DeleteRow removes the row matching id behind the confirmation gate.
func (m *Manager) DeleteRow(resource, id string, confirmed bool) error {
	store, ok := m.stores[resource]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownResource, resource)
	}
	return store.Delete(id, confirmed)
}

// LogStatistics reports row counts per resource after the initial load.
func (m *Manager) LogStatistics() {
	if m.logger == nil {
		return
	}
	for _, spec := range m.catalog.Resources {
		m.logger.Info("resource loaded", "resource", spec.Name, "rows", m.stores[spec.Name].Len())
	}
}

// Shutdown tears the stores down. Load results that arrive afterwards are
// discarded.
func (m *Manager) Shutdown() {
	m.shutdownOnce.Do(func() {
		for _, store := range m.stores {
			store.Close()
		}
	})
}
