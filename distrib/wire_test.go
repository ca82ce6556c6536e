package distrib

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noamBarkai/adam"
	"github.com/noamBarkai/adam/covariate"
	recaltest "github.com/noamBarkai/adam/testing"
	"github.com/noamBarkai/adam/types"
)

func buildTable(t *testing.T, space *adam.CovariateSpace) *adam.ObservationTable {
	t.Helper()

	table, err := adam.TableFromResidues(space, []types.Residue{
		recaltest.Residue{ReadCycle: 1, Context: "AC", Mismatch: true},
		recaltest.Residue{ReadCycle: 1, Context: "AC"},
		recaltest.Residue{ReadCycle: 2, Context: "GT"},
	})
	require.NoError(t, err)

	return table
}

func TestEncodeDecode(t *testing.T) {
	space, err := adam.NewCovariateSpace(covariate.NewCycle(), covariate.NewDinucleotide())
	require.NoError(t, err)

	t.Run("round-trips a table", func(t *testing.T) {
		table := buildTable(t, space)

		payload, err := Encode(table)
		require.NoError(t, err)

		decoded, err := Decode(space, payload)
		require.NoError(t, err)
		require.Equal(t, table.ExportSorted(), decoded.ExportSorted())
	})

	t.Run("equal tables produce identical payloads", func(t *testing.T) {
		p1, err := Encode(buildTable(t, space))
		require.NoError(t, err)
		p2, err := Encode(buildTable(t, space))
		require.NoError(t, err)
		require.Equal(t, p1, p2)
	})

	t.Run("rejects a different space", func(t *testing.T) {
		payload, err := Encode(buildTable(t, space))
		require.NoError(t, err)

		narrow, err := adam.NewCovariateSpace(covariate.NewCycle())
		require.NoError(t, err)
		_, err = Decode(narrow, payload)
		require.ErrorIs(t, err, types.ErrIncompatibleSpace)
	})

	t.Run("rejects covariates without a codec", func(t *testing.T) {
		opaque, err := adam.NewCovariateSpace(noCodecCovariate{})
		require.NoError(t, err)
		table, err := adam.NewObservationTable(opaque)
		require.NoError(t, err)

		payload, err := Encode(table)
		require.NoError(t, err)
		_, err = Decode(opaque, payload)
		require.ErrorIs(t, err, types.ErrCodecUnsupported)
	})

	t.Run("rejects garbage payloads", func(t *testing.T) {
		_, err := Decode(space, []byte("not json"))
		require.ErrorIs(t, err, types.ErrDecodeFailed)
	})

	t.Run("rejects corrupt counts", func(t *testing.T) {
		payload := []byte(`{"space":["cycle","dinucleotide"],"rows":[{"key":["1","AC"],"total":1,"mismatches":9}]}`)
		_, err := Decode(space, payload)
		require.ErrorIs(t, err, types.ErrMismatchesExceedTotal)
	})
}

// noCodecCovariate implements types.Covariate but not types.ValueCodec.
type noCodecCovariate struct{}

func (noCodecCovariate) Name() string { return "opaque" }
func (noCodecCovariate) Compute(_ types.Residue) any { return "x" }
func (noCodecCovariate) Compare(_, _ any) int { return 0 }
func (noCodecCovariate) FormatValue(v any) string { return v.(string) }
