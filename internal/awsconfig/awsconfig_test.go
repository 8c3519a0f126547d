package awsconfig

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const path = "/home/u/.aws/config"

func TestEnsure_Creates(t *testing.T) {
	fs := afero.NewMemMapFs()

	outcome, err := Ensure(fs, path)
	require.NoError(t, err)
	assert.Equal(t, Created, outcome)

	got, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, string(got))
}

func TestEnsure_AppendsWhenDefaultMissing(t *testing.T) {
	tests := []struct {
		name     string
		original string
	}{
		{"other profile", "[profile dev]\nregion = us-east-1\n"},
		{"default with other region", "[default]\nregion = us-east-1\noutput = json\n"},
		{"default with text output", "[default]\nregion = eu-west-1\noutput = text\n"},
		{"default with extra key in between", "[default]\nregion = eu-west-1\ncli_pager =\noutput = json\n"},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, path, []byte(tt.original), 0644))

			outcome, err := Ensure(fs, path)
			require.NoError(t, err)
			assert.Equal(t, Appended, outcome)

			got, err := afero.ReadFile(fs, path)
			require.NoError(t, err)
			assert.Equal(t, tt.original+"\n\n"+DefaultConfig, string(got))
		})
	}
}

func TestEnsure_LeavesMatchingFileAlone(t *testing.T) {
	tests := []struct {
		name     string
		original string
	}{
		{"canonical", DefaultConfig},
		{"yaml output", "[default]\nregion = eu-west-1\noutput = yaml\n"},
		{"upper case", "[DEFAULT]\nREGION = EU-WEST-1\nOUTPUT = JSON"},
		{"no spaces", "[default]\nregion=eu-west-1\noutput=json\n"},
		{"after other sections", "[profile dev]\nregion = us-east-1\n\n[default]\nregion = eu-west-1\noutput = json\n"},
		{"crlf", "[default]\r\nregion = eu-west-1\r\noutput = json\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, path, []byte(tt.original), 0644))

			outcome, err := Ensure(fs, path)
			require.NoError(t, err)
			assert.Equal(t, Unchanged, outcome)

			got, err := afero.ReadFile(fs, path)
			require.NoError(t, err)
			assert.Equal(t, tt.original, string(got))
		})
	}
}

func TestEnsure_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, path, []byte("[profile dev]\n"), 0644))

	first, err := Ensure(fs, path)
	require.NoError(t, err)
	second, err := Ensure(fs, path)
	require.NoError(t, err)

	assert.Equal(t, Appended, first)
	assert.Equal(t, Unchanged, second)
}

func TestEnsure_ReadOnly(t *testing.T) {
	_, err := Ensure(afero.NewReadOnlyFs(afero.NewMemMapFs()), path)
	assert.Error(t, err)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "created", Created.String())
	assert.Equal(t, "appended", Appended.String())
	assert.Equal(t, "unchanged", Unchanged.String())
}
