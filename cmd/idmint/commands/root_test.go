package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMake_NoUnique(t *testing.T) {
	out, err := execute(t, "", "make", "--no-unique", "--timestamp", "2017-10-21T06:47:18.153304", "", "foo")
	require.NoError(t, err)
	assert.Equal(t, "/8c2dcb\n/46ee55\n", out)

	out, err = execute(t, "", "make", "--no-unique", "-n", "bar", "-l", "3", "-t", "2017-10-21T06:47:18.153304", "foo")
	require.NoError(t, err)
	assert.Equal(t, "/bar/46ee55\n", out)
}

func TestMake_Stdin(t *testing.T) {
	out, err := execute(t, "foo\nfoo\n", "make", "--no-unique", "--stdin", "-t", "2017-10-21T06:47:18.153304")
	require.NoError(t, err)
	assert.Equal(t, "/46ee55\n/46ee55\n", out)
}

func TestMake_Errors(t *testing.T) {
	_, err := execute(t, "", "make", "--no-unique")
	assert.Error(t, err, "content is required")

	_, err = execute(t, "", "make", "foo")
	assert.Error(t, err, "registry is required when enforcing uniqueness")

	_, err = execute(t, "", "make", "--no-unique", "-t", "later", "foo")
	assert.Error(t, err)
}

func TestInitAndMake(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "", "init", "places", "--registry", dir, "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "places\n", out)

	out, err = execute(t, "", "make", "foo", "foo", "-r", dir, "-n", "places", "-t", "2017-10-21T06:47:18.153304", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "/places/46ee55\n/places/ee950528\n", out)

	data, err := os.ReadFile(filepath.Join(dir, "places"))
	require.NoError(t, err)
	assert.Equal(t, "46ee55\nee950528", string(data))
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nstest"), []byte("46ee55\n"), 0644))
	configFile := filepath.Join(dir, "idmint.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("registryPath: "+dir+"\nnamespace: nstest\nlogLevel: error\n"), 0644))

	out, err := execute(t, "", "make", "foo", "-c", configFile, "-t", "2017-10-21T06:47:18.153304")
	require.NoError(t, err)
	assert.Equal(t, "/nstest/ee950528\n", out)
}
