package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeightsAreComplete(t *testing.T) {
	require.NoError(t, DefaultWeights().Validate())
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		w, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultWeights(), w)
	})

	t.Run("repository weights file mirrors the defaults", func(t *testing.T) {
		w, err := Load(filepath.Join("..", "..", "..", "weights.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultWeights(), w)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("unparseable yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "weights.yaml")
		require.NoError(t, os.WriteFile(path, []byte("version: [unclosed"), 0o600))
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("incomplete table is rejected at load time", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "weights.yaml")
		// Valid YAML, but nearly every lookup table is missing.
		require.NoError(t, os.WriteFile(path, []byte("version: \"9.9\"\n"), 0o600))
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing entry")
	})
}

func TestWeightsValidate(t *testing.T) {
	t.Run("missing version", func(t *testing.T) {
		w := DefaultWeights()
		w.Version = ""
		require.Error(t, w.Validate())
	})

	t.Run("hole in an answer table", func(t *testing.T) {
		w := DefaultWeights()
		delete(w.Legal.ArbitrationComfort, "strongly_prefer_courts")
		err := w.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "legal.arbitrationComfort")
	})

	t.Run("field weights must sum to one", func(t *testing.T) {
		w := DefaultWeights()
		w.Financial.FieldWeights["paymentApproach"] = 0.9
		err := w.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "financial.fieldWeights")
	})

	t.Run("axis weights must sum to one", func(t *testing.T) {
		w := DefaultWeights()
		w.Overall.AxisWeights["legal"] = 0
		require.Error(t, w.Validate())
	})

	t.Run("rank cutoff bounds", func(t *testing.T) {
		w := DefaultWeights()
		w.Overall.TopFactorRankCutoff = 0
		require.Error(t, w.Validate())

		w = DefaultWeights()
		w.Overall.TopFactorRankCutoff = 12
		require.Error(t, w.Validate())
	})

	t.Run("style buckets must not overlap", func(t *testing.T) {
		w := DefaultWeights()
		w.Style.LowToleranceMax = 7
		w.Style.HighToleranceMin = 6
		require.Error(t, w.Validate())
	})
}
