package output

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = time.Date(2026, 2, 10, 13, 13, 31, 97_000_000, time.UTC)

func TestResolveDerived(t *testing.T) {
	r := Resolver{Root: "qr_codes"}

	p := r.Resolve(Website, "", sample)
	assert.Equal(t, filepath.Join("qr_codes", "2026-02-10_131331097_website_information"), p.Dir)
	assert.Equal(t, "qrcode_131331097.png", p.Name)
	assert.Equal(t, filepath.Join("qr_codes", "2026-02-10_131331097_website_information", "qrcode_131331097.png"), p.Path())

	c := r.Resolve(Contact, "", sample)
	assert.Equal(t, filepath.Join("qr_codes", "2026-02-10_131331097_contact_info"), c.Dir)
	assert.Equal(t, p.Name, c.Name)
}

func TestResolveKindsDifferOnlyInLabel(t *testing.T) {
	r := Resolver{Root: "out"}
	w := r.Resolve(Website, "", sample)
	c := r.Resolve(Contact, "", sample)

	wDir := filepath.Base(w.Dir)
	cDir := filepath.Base(c.Dir)
	assert.Equal(t,
		strings.TrimSuffix(wDir, Website.Label()),
		strings.TrimSuffix(cDir, Contact.Label()))
	assert.Equal(t, w.Name, c.Name)
}

func TestResolveExplicit(t *testing.T) {
	r := Resolver{Root: "qr_codes"}
	for _, kind := range []Kind{Website, Contact} {
		for _, now := range []time.Time{sample, time.Unix(0, 0), time.Now()} {
			p := r.Resolve(kind, "custom.png", now)
			assert.Equal(t, "custom.png", p.Path())
			assert.Empty(t, p.Dir)
		}
	}

	p := r.Resolve(Website, "./sub/../custom.png", sample)
	assert.Equal(t, "./sub/../custom.png", p.Path(), "explicit path is not cleaned")
}

func TestNaming(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		dir  string
		file string
	}{
		{"millis padded", time.Date(2026, 1, 2, 3, 4, 5, 7_000_000, time.UTC), "2026-01-02_030405007_contact_info", "qrcode_030405007.png"},
		{"millis truncated", time.Date(2026, 12, 31, 23, 59, 59, 999_999_999, time.UTC), "2026-12-31_235959999_contact_info", "qrcode_235959999.png"},
		{"zero millis", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), "2025-06-01_000000000_contact_info", "qrcode_000000000.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.dir, DirName(Contact, tt.now))
			assert.Equal(t, tt.file, FileName(tt.now))
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("website")
	require.NoError(t, err)
	assert.Equal(t, Website, k)

	k, err = ParseKind(" Contact ")
	require.NoError(t, err)
	assert.Equal(t, Contact, k)

	_, err = ParseKind("wifi")
	assert.ErrorIs(t, err, ErrUnknownKind)

	assert.Equal(t, "website", Website.String())
	assert.Equal(t, "contact", Contact.String())
}

func TestEnsure(t *testing.T) {
	t.Run("creates derived directory", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "qr_codes")
		p := Resolver{Root: root}.Resolve(Contact, "", sample)

		require.NoError(t, Ensure(p))
		info, err := os.Stat(p.Dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		require.NoError(t, Ensure(p), "existing directory is fine")
	})

	t.Run("creates explicit parent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "code.png")
		require.NoError(t, Ensure(ResolvedPath{Name: path}))
		_, err := os.Stat(filepath.Dir(path))
		assert.NoError(t, err)
	})

	t.Run("fails under a file", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		p := Resolver{Root: blocker}.Resolve(Website, "", sample)
		err := Ensure(p)
		assert.ErrorIs(t, err, ErrPathCreation)
	})
}
