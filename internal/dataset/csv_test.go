package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "f1,f2,l1,f3,l2\n1.0,2.0,0.0,3.0,1.0\n4.0,5.0,1.0,6.0,0.0\n")

	d, err := LoadCSV(path, []int{4, 2}, true)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, d.Inputs())
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, d.Targets())
}

func TestLoadCSVErrors(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), []int{0}, false)
	assert.Error(t, err)

	_, err = LoadCSV(writeFile(t, "a,b\n"), []int{0}, true)
	assert.True(t, errors.Is(err, ErrEmpty))

	_, err = LoadCSV(writeFile(t, "1,x\n"), []int{0}, false)
	assert.Error(t, err)

	_, err = LoadCSV(writeFile(t, "1,2\n"), []int{5}, false)
	assert.True(t, errors.Is(err, ErrShape))
}
