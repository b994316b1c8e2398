package fs_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wflang/docvet/internal/adapters/fs"
)

var digestPattern = regexp.MustCompile(`^sha256:[a-f0-9]{64}$`)

func writeFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestFingerprint_Format(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.wfl", []byte("display \"hello\"\n"))

	digest, err := fs.NewFingerprinter().Fingerprint(path)
	require.NoError(t, err)
	assert.Regexp(t, digestPattern, digest)
}

func TestFingerprint_Deterministic(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.wfl", []byte("store x as 1\n"))
	b := writeFile(t, dir, "b.wfl", []byte("store x as 1\n"))

	fp := fs.NewFingerprinter()
	first, err := fp.Fingerprint(a)
	require.NoError(t, err)
	again, err := fp.Fingerprint(a)
	require.NoError(t, err)
	other, err := fp.Fingerprint(b)
	require.NoError(t, err)

	assert.Equal(t, first, again)
	assert.Equal(t, first, other, "identical content must yield identical digests")
}

func TestFingerprint_SingleByteChange(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.wfl", []byte("store x as 1\n"))
	b := writeFile(t, dir, "b.wfl", []byte("store x as 2\n"))

	fp := fs.NewFingerprinter()
	da, err := fp.Fingerprint(a)
	require.NoError(t, err)
	db, err := fp.Fingerprint(b)
	require.NoError(t, err)

	assert.NotEqual(t, da, db)
}

func TestFingerprint_MissingFile(t *testing.T) {
	_, err := fs.NewFingerprinter().Fingerprint(filepath.Join(t.TempDir(), "nope.wfl"))
	assert.Error(t, err)
}

func TestSum_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("digest is well-formed", prop.ForAll(
		func(data []byte) bool {
			return digestPattern.MatchString(fs.Sum(data))
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("equal content yields equal digests", prop.ForAll(
		func(data []byte) bool {
			return fs.Sum(data) == fs.Sum(append([]byte(nil), data...))
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("appending a byte changes the digest", prop.ForAll(
		func(data []byte, extra byte) bool {
			return fs.Sum(data) != fs.Sum(append(append([]byte(nil), data...), extra))
		},
		gen.SliceOf(gen.UInt8()),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

func TestSum_MatchesFileFingerprint(t *testing.T) {
	content := []byte("display \"hello\"\n")
	path := writeFile(t, t.TempDir(), "a.wfl", content)

	fromFile, err := fs.NewFingerprinter().Fingerprint(path)
	require.NoError(t, err)
	assert.Equal(t, fs.Sum(content), fromFile)
}
