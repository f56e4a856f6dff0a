package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vetdesk/client-go/internal/utils"
)

type record struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Photo string `json:"photo,omitempty"`
}

func TestDiff(t *testing.T) {
	t.Run("keeps only changed fields", func(t *testing.T) {
		delta, err := utils.Diff(
			record{Name: "Jane Doe", Email: "jane@example.com"},
			record{Name: "Jane A. Doe", Email: "jane@example.com"},
		)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"name": "Jane A. Doe"}, delta)
	})

	t.Run("empty delta when nothing changed", func(t *testing.T) {
		r := record{Name: "Jane Doe", Email: "jane@example.com"}
		delta, err := utils.Diff(r, r)
		require.NoError(t, err)
		require.Empty(t, delta)
	})

	t.Run("omitted fields are not considered", func(t *testing.T) {
		delta, err := utils.Diff(
			record{Name: "Jane Doe", Email: "jane@example.com"},
			record{Name: "Jane Doe"}, // email left out entirely
		)
		require.NoError(t, err)
		require.Empty(t, delta)
	})

	t.Run("fields new to desired are included", func(t *testing.T) {
		delta, err := utils.Diff(
			record{Name: "Jane Doe"},
			record{Name: "Jane Doe", Photo: "https://example.com/jane.png"},
		)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"photo": "https://example.com/jane.png"}, delta)
	})

	t.Run("different shapes compare by key", func(t *testing.T) {
		delta, err := utils.Diff(
			map[string]any{"name": "Jane Doe", "role": "vet"},
			record{Name: "Jane Doe", Email: "jane@example.com"},
		)
		require.NoError(t, err)
		require.Equal(t, map[string]any{"email": "jane@example.com"}, delta)
	})

	t.Run("nil current treats everything as changed", func(t *testing.T) {
		delta, err := utils.Diff(nil, record{Name: "Jane Doe"})
		require.NoError(t, err)
		require.Equal(t, map[string]any{"name": "Jane Doe"}, delta)
	})
}

func TestPointerHelpers(t *testing.T) {
	v := utils.Ptr(42)
	require.Equal(t, 42, utils.Value(v))
	require.Zero(t, utils.Value[int](nil))
}
