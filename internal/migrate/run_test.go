package migrate

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedVersions(t *testing.T) {
	versions, err := embeddedVersions()
	require.NoError(t, err)
	require.NotEmpty(t, versions)

	assert.True(t, sort.StringsAreSorted(versions), "migrations must apply in filename order")

	seen := make(map[string]bool, len(versions))
	for _, v := range versions {
		assert.False(t, strings.HasSuffix(v, ".sql"), "version %q should be the bare filename stem", v)
		assert.False(t, seen[v], "duplicate migration version %q", v)
		seen[v] = true
	}
}

func TestEmbeddedMigrationsAreReadable(t *testing.T) {
	versions, err := embeddedVersions()
	require.NoError(t, err)

	for _, v := range versions {
		stmts, readErr := schemaFS.ReadFile(schemaDir + "/" + v + ".sql")
		require.NoError(t, readErr)
		assert.NotEmpty(t, strings.TrimSpace(string(stmts)), "migration %s is empty", v)
	}
}
