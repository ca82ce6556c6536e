package adam

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/noamBarkai/adam/types"
)

// ObservationTable aggregates observations grouped by covariate key.
//
// A table owns exactly one CovariateSpace by reference and a mutable mapping
// from key to observation. It is mutated in place through Add, Observe, and
// Merge; iteration order is not meaningful until sorted via ExportSorted.
//
// Tables carry no internal synchronization and are not safe for concurrent
// mutation. Build one table per shard of residues and combine the partial
// tables through Merge in a caller-serialized reduction step; since the
// observation merge is associative and commutative, any reduction order
// yields an identical final table.
type ObservationTable struct {
	space   *CovariateSpace
	entries map[string]*tableEntry
	order   []string
	logger  types.Logger
	metrics types.MetricsCollector
}

type tableEntry struct {
	key *CovariateKey
	obs Observation
}

// Entry is one exported (key, observation) pair.
type Entry struct {
	Key         *CovariateKey
	Observation Observation
}

// NewObservationTable creates an empty table over the given covariate space.
//
// Parameters:
//   - space: Covariate space shared by every key in the table
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *ObservationTable: Empty table
//   - error: ErrSpaceRequired if space is nil
func NewObservationTable(space *CovariateSpace, opts ...Option) (*ObservationTable, error) {
	if space == nil {
		return nil, types.ErrSpaceRequired
	}

	options := defaultTableOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &ObservationTable{
		space:   space,
		entries: make(map[string]*tableEntry),
		logger:  options.logger,
		metrics: options.metrics,
	}, nil
}

// TableFromResidues creates a table seeded from a sequence of residues: each
// residue is projected to its key and a unit observation is folded into that
// key's entry (a group-by-sum over the input).
//
// Parameters:
//   - space: Covariate space used for projection
//   - residues: Residues to aggregate
//   - opts: Optional configuration (WithLogger, WithMetrics)
//
// Returns:
//   - *ObservationTable: Seeded table
//   - error: ErrSpaceRequired if space is nil
func TableFromResidues(space *CovariateSpace, residues []types.Residue, opts ...Option) (*ObservationTable, error) {
	t, err := NewObservationTable(space, opts...)
	if err != nil {
		return nil, err
	}

	for _, r := range residues {
		t.Add(r)
	}
	t.metrics.RecordObservations(len(residues))

	return t, nil
}

// Space returns the covariate space the table aggregates over.
func (t *ObservationTable) Space() *CovariateSpace {
	return t.space
}

// Add projects a residue through the table's space and folds a unit
// observation into the entry for its key.
func (t *ObservationTable) Add(r types.Residue) {
	t.fold(t.space.ProjectResidue(r), UnitObservation(r.IsMismatch()))
}

// Observe folds an observation into the entry for the given key.
//
// The key must have been produced by a space structurally equal to the
// table's own; a key with the wrong dimension count is rejected.
//
// Returns:
//   - error: ErrIncompatibleSpace if the key's dimension count differs
func (t *ObservationTable) Observe(key *CovariateKey, obs Observation) error {
	if key.Len() != t.space.Len() {
		return fmt.Errorf("%w: key has %d dimensions, space %q has %d",
			types.ErrIncompatibleSpace, key.Len(), t.space, t.space.Len())
	}

	t.fold(key, obs)

	return nil
}

func (t *ObservationTable) fold(key *CovariateKey, obs Observation) {
	entry, ok := t.entries[key.canon]
	if !ok {
		t.entries[key.canon] = &tableEntry{key: key, obs: obs}
		t.order = append(t.order, key.canon)

		return
	}

	entry.obs = entry.obs.Merge(obs)
}

// Merge folds every entry of other into the receiver, inserting the identity
// observation first for keys the receiver has not seen. The receiver is
// mutated and returned for chaining; other is left untouched.
//
// Both tables must aggregate over structurally equal covariate spaces; this
// is always checked, never assumed.
//
// Parameters:
//   - other: Table to merge in
//
// Returns:
//   - *ObservationTable: The receiver
//   - error: ErrIncompatibleSpace if the spaces differ
func (t *ObservationTable) Merge(other *ObservationTable) (*ObservationTable, error) {
	if !t.space.Equal(other.space) {
		return nil, fmt.Errorf("%w: %q vs %q", types.ErrIncompatibleSpace, t.space, other.space)
	}

	for _, canon := range other.order {
		entry := other.entries[canon]
		t.fold(entry.key, entry.obs)
	}

	t.logger.Debug("merged observation table", "entries", len(other.entries), "size", len(t.entries))
	t.metrics.RecordMerge(len(other.entries))

	return t, nil
}

// Len returns the number of distinct keys in the table.
func (t *ObservationTable) Len() int {
	return len(t.entries)
}

// Get returns the observation recorded for the given key.
//
// Returns:
//   - Observation: The entry's aggregate (zero value if absent)
//   - bool: true if the key is present
func (t *ObservationTable) Get(key *CovariateKey) (Observation, bool) {
	entry, ok := t.entries[key.canon]
	if !ok {
		return Observation{}, false
	}

	return entry.obs, true
}

// ExportSorted returns a snapshot of the table's entries ordered by the
// space's key comparator.
//
// The result is deterministic for a given table content and is unaffected by
// later mutation of the table.
func (t *ObservationTable) ExportSorted() []Entry {
	start := time.Now()

	out := make([]Entry, 0, len(t.entries))
	for _, canon := range t.order {
		entry := t.entries[canon]
		out = append(out, Entry{Key: entry.key, Observation: entry.obs})
	}

	cmp := t.space.Comparator()
	sort.Slice(out, func(i, j int) bool {
		return cmp(out[i].Key, out[j].Key) < 0
	})

	t.metrics.RecordExport(len(out), time.Since(start).Seconds())

	return out
}

// String renders the table one line per entry, in insertion order, as
// "key<TAB>mismatches / total (quality)". Use ExportSorted for deterministic
// ordering.
func (t *ObservationTable) String() string {
	var b strings.Builder
	for _, canon := range t.order {
		entry := t.entries[canon]
		fmt.Fprintf(&b, "%s\t%s\n", entry.key, entry.obs)
	}

	return b.String()
}
