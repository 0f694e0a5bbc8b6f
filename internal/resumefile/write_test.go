package resumefile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_RoundTrip(t *testing.T) {
	original, err := Load(filepath.Join(testdataDir, "valid", "resume.json"))
	require.NoError(t, err)

	for _, name := range []string{"out.json", "out.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			require.NoError(t, Write(path, *original))

			reloaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, original, reloaded)
		})
	}
}

func TestMarshal_YAMLUsesCamelCaseKeys(t *testing.T) {
	original, err := Load(filepath.Join(testdataDir, "valid", "resume.json"))
	require.NoError(t, err)

	data, err := Marshal("resume.yaml", *original)
	require.NoError(t, err)
	assert.Contains(t, string(data), "personalInfo:")
	assert.Contains(t, string(data), "isCurrentRole: true")
	assert.Contains(t, string(data), "graduationDate:")
}
