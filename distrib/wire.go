package distrib

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/noamBarkai/adam"
	"github.com/noamBarkai/adam/types"
)

// tablePayload is the wire form of a partial observation table.
type tablePayload struct {
	// Space is the ordered covariate name list of the producing space, used
	// for compatibility checking on the receiving side.
	Space []string `json:"space"`

	// Rows are the table entries, one per distinct key.
	Rows []rowPayload `json:"rows"`
}

// rowPayload is one (key, observation) entry on the wire.
type rowPayload struct {
	Key        []string `json:"key"`
	Total      int64    `json:"total"`
	Mismatches int64    `json:"mismatches"`
}

// Encode serializes a table for transport.
//
// Entries are exported in sorted order, so equal tables produce identical
// payloads.
//
// Parameters:
//   - table: Table to serialize
//
// Returns:
//   - []byte: JSON payload
//   - error: Marshalling failure
func Encode(table *adam.ObservationTable) ([]byte, error) {
	entries := table.ExportSorted()
	payload := tablePayload{
		Space: table.Space().Names(),
		Rows:  make([]rowPayload, 0, len(entries)),
	}
	for _, entry := range entries {
		payload.Rows = append(payload.Rows, rowPayload{
			Key:        entry.Key.Strings(),
			Total:      entry.Observation.Total(),
			Mismatches: entry.Observation.Mismatches(),
		})
	}

	return json.Marshal(payload)
}

// Decode deserializes a partial table produced by Encode into a new table
// over the given space.
//
// Every covariate of the space must implement types.ValueCodec. The payload's
// space name list must equal the target space's; a mismatch means the shards
// were configured differently and the partial must not be merged.
//
// Parameters:
//   - space: Covariate space the receiving accumulator aggregates over
//   - data: JSON payload from Encode
//
// Returns:
//   - *adam.ObservationTable: Decoded partial table
//   - error: ErrDecodeFailed, ErrIncompatibleSpace, ErrCodecUnsupported, or
//     an observation invariant violation
func Decode(space *adam.CovariateSpace, data []byte) (*adam.ObservationTable, error) {
	var payload tablePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrDecodeFailed, err)
	}

	if !slices.Equal(payload.Space, space.Names()) {
		return nil, fmt.Errorf("%w: payload space %v, local space %v",
			types.ErrIncompatibleSpace, payload.Space, space.Names())
	}

	codecs, err := spaceCodecs(space)
	if err != nil {
		return nil, err
	}

	table, err := adam.NewObservationTable(space)
	if err != nil {
		return nil, err
	}

	for _, row := range payload.Rows {
		if len(row.Key) != space.Len() {
			return nil, fmt.Errorf("%w: row key has %d dimensions, space has %d",
				types.ErrDecodeFailed, len(row.Key), space.Len())
		}

		values := make([]any, len(row.Key))
		for i, part := range row.Key {
			v, err := codecs[i].ParseValue(part)
			if err != nil {
				return nil, fmt.Errorf("%w: dimension %d: %w", types.ErrDecodeFailed, i, err)
			}
			values[i] = v
		}

		key, err := space.KeyOf(values...)
		if err != nil {
			return nil, err
		}
		obs, err := adam.NewObservation(row.Total, row.Mismatches)
		if err != nil {
			return nil, err
		}
		if err := table.Observe(key, obs); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// spaceCodecs collects the ValueCodec of every covariate in the space.
func spaceCodecs(space *adam.CovariateSpace) ([]types.ValueCodec, error) {
	covariates := space.Covariates()
	codecs := make([]types.ValueCodec, len(covariates))
	for i, cov := range covariates {
		codec, ok := cov.(types.ValueCodec)
		if !ok {
			return nil, fmt.Errorf("%w: %s", types.ErrCodecUnsupported, cov.Name())
		}
		codecs[i] = codec
	}

	return codecs, nil
}
