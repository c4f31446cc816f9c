package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"ferreteria.lasu.pe/internal/flatfile"
)

// Store holds the current in-memory row set for one resource after
// load+join. Mutations are visible only for the lifetime of the process;
// nothing is ever written back to the source file. A single RWMutex guards
// the HTTP surface; there is no transactional discipline beyond that
// because each resource is exclusively owned by its store.
type Store struct {
	mu     sync.RWMutex
	spec   ResourceSpec
	rows   []flatfile.Row
	nextID int64
	page   int
	closed bool
}

func newStore(spec ResourceSpec) *Store {
	return &Store{spec: spec, rows: []flatfile.Row{}, nextID: 1001, page: 1}
}

// Spec returns the resource configuration this store was built from.
func (s *Store) Spec() ResourceSpec {
	return s.spec
}

// populate installs a freshly loaded row set, sorted newest-first by the
// numeric part of the id, and seeds the synthetic id counter above every
// loaded id. Results arriving after Close are discarded as a no-op; that
// guards the stale-update race when a load completes after shutdown.
func (s *Store) populate(rows []flatfile.Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return numericPart(flatfile.String(rows[i][s.spec.IDField])) >
			numericPart(flatfile.String(rows[j][s.spec.IDField]))
	})

	maxID := int64(1000)
	for _, row := range rows {
		if n := numericPart(flatfile.String(row[s.spec.IDField])); n > maxID {
			maxID = n
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.rows = rows
	s.nextID = maxID + 1
}

// Close marks the store as torn down. Any load result that arrives
// afterwards is ignored.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Len returns the current number of rows.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// Rows returns a copy of the full ordered row set.
func (s *Store) Rows() []flatfile.Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]flatfile.Row, len(s.rows))
	for i, row := range s.rows {
		out[i] = row.Clone()
	}
	return out
}

// Get returns the row whose id matches after string coercion.
func (s *Store) Get(id string) (flatfile.Row, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.rows[i].Clone(), true
	}
	return nil, false
}

// Select returns copies of the rows the filter accepts, in store order.
func (s *Store) Select(keep func(flatfile.Row) bool) []flatfile.Row {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []flatfile.Row
	for _, row := range s.rows {
		if keep(row) {
			out = append(out, row.Clone())
		}
	}
	return out
}

// Create validates required fields, assigns a synthetic identifier and
// inserts the row at the resource's configured position. The new row is
// returned. Synthetic ids are monotonically distinct within the session;
// they are not guaranteed unique against a future reload of the source,
// which is a known non-goal.
func (s *Store) Create(fields flatfile.Row) (flatfile.Row, error) {
	if err := s.validate(fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	row := fields.Clone()
	row[s.spec.IDField] = s.syntheticID()

	if s.spec.Insert == "append" {
		s.rows = append(s.rows, row)
	} else {
		s.rows = append([]flatfile.Row{row}, s.rows...)
	}
	return row.Clone(), nil
}

// Update replaces the row matching id in place, position preserved. The id
// field itself cannot be changed. Returns ErrNotFound for an unknown id.
func (s *Store) Update(id string, fields flatfile.Row) (flatfile.Row, error) {
	if err := s.validate(fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("updating %s %q: %w", s.spec.Name, id, ErrNotFound)
	}

	row := fields.Clone()
	row[s.spec.IDField] = s.rows[i][s.spec.IDField]
	s.rows[i] = row
	return row.Clone(), nil
}

// Delete removes at most one row matching id. It refuses without the
// confirmation gate. When the removal empties the current page and an
// earlier page exists, the current page steps back by one so the visible
// page stays non-empty.
func (s *Store) Delete(id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("deleting %s %q: %w", s.spec.Name, id, ErrNotFound)
	}

	visible := len(Paginate(s.rows, s.page, s.spec.PageSize))
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	if visible == 1 && s.page > 1 {
		s.page--
	}
	return nil
}

// DeleteMatching removes every row the predicate accepts and returns the
// number removed. It is the internal cascade used when a purchase or sale
// replaces its line items; it does not pass the confirmation gate and does
// not touch the current page.
func (s *Store) DeleteMatching(match func(flatfile.Row) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.rows[:0]
	removed := 0
	for _, row := range s.rows {
		if match(row) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	s.rows = kept
	return removed
}

// Page returns the current 1-based page number.
func (s *Store) Page() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// SetPage moves the current page. Navigating outside [1, PageCount] is
// disallowed.
func (s *Store) SetPage(page int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page < 1 || page > PageCount(len(s.rows), s.spec.PageSize) {
		return fmt.Errorf("page %d out of range", page)
	}
	s.page = page
	return nil
}

// CurrentPage returns copies of the rows on the current page plus the
// page number and total page count.
func (s *Store) CurrentPage() ([]flatfile.Row, int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slice := Paginate(s.rows, s.page, s.spec.PageSize)
	out := make([]flatfile.Row, len(slice))
	for i, row := range slice {
		out[i] = row.Clone()
	}
	return out, s.page, PageCount(len(s.rows), s.spec.PageSize)
}

func (s *Store) validate(fields flatfile.Row) error {
	fieldErrors := make(map[string][]string)
	for _, name := range s.spec.Required {
		if flatfile.String(fields[name]) == "" {
			fieldErrors[name] = append(fieldErrors[name], fmt.Sprintf("Field %q is required.", name))
		}
	}
	if len(fieldErrors) > 0 {
		return &ValidationError{Fields: fieldErrors}
	}
	return nil
}

// syntheticID issues the next identifier for a locally created row.
// Callers must hold the write lock.
func (s *Store) syntheticID() string {
	id := s.nextID
	s.nextID++
	if s.spec.IDPrefix != "" {
		return fmt.Sprintf("%s-%d", s.spec.IDPrefix, id)
	}
	return strconv.FormatInt(id, 10)
}

// indexOf finds a row by string-coerced id. Callers must hold a lock.
func (s *Store) indexOf(id string) int {
	for i, row := range s.rows {
		if flatfile.String(row[s.spec.IDField]) == id {
			return i
		}
	}
	return -1
}

// numericPart extracts the digits of an id for ordering, so "VENTA-1020"
// and 87 sort on 1020 and 87.
func numericPart(id string) int64 {
	var digits []byte
	for i := 0; i < len(id); i++ {
		if id[i] >= '0' && id[i] <= '9' {
			digits = append(digits, id[i])
		}
	}
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
