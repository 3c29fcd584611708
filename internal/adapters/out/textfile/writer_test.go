package textfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"opsworker/internal/adapters/out/textfile"
	"opsworker/internal/core/ports"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteGauges(t *testing.T) {
	t.Run("should write the family in text format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gamas.prom")
		family := ports.GaugeFamily{
			Name:       "gamas",
			Help:       "Mass incidents per link.",
			LabelNames: []string{"region", "link", "start"},
			Samples: []ports.GaugeSample{
				{LabelValues: []string{"medan", "olt-b", "2024-05-14 12:30"}, Value: 9},
				{LabelValues: []string{"medan", "olt-a", "2024-05-14 12:00"}, Value: 3},
			},
		}

		require.NoError(t, textfile.NewWriter().WriteGauges(t.Context(), path, family))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		want := `# HELP gamas Mass incidents per link.
# TYPE gamas gauge
gamas{link="olt-a",region="medan",start="2024-05-14 12:00"} 3
gamas{link="olt-b",region="medan",start="2024-05-14 12:30"} 9
`
		if diff := cmp.Diff(want, string(got)); diff != "" {
			t.Errorf("metric file mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should replace the previous file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "speed.prom")
		require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))

		family := ports.GaugeFamily{Name: "over_speed_blocked_subscriber", LabelNames: []string{"csid", "acc"}}
		require.NoError(t, textfile.NewWriter().WriteGauges(t.Context(), path, family))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("should reject a sample with the wrong label count", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.prom")
		family := ports.GaugeFamily{
			Name:       "gamas",
			LabelNames: []string{"region"},
			Samples:    []ports.GaugeSample{{LabelValues: []string{"a", "b"}, Value: 1}},
		}

		assert.Error(t, textfile.NewWriter().WriteGauges(t.Context(), path, family))
		assert.NoFileExists(t, path)
	})
}
