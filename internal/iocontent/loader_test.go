package iocontent_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voidtraders/voidtrade/internal/iocontent"
	"github.com/voidtraders/voidtrade/internal/iotesting"
	"github.com/voidtraders/voidtrade/pkg/errcode"
)

func TestLoad(t *testing.T) {
	dir := iotesting.ContentDir(t)
	l := iocontent.New(dir)

	bundle, reg, err := l.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, bundle)
	require.NotNil(t, reg)

	assert.Len(t, bundle.Systems, 1)
	assert.Equal(t, "Test", bundle.Systems[0].Name)
	assert.Len(t, bundle.Systems[0].Celestials, 2)
	assert.Len(t, bundle.Commodities, 2)
	assert.Len(t, bundle.Events, 2)
	assert.True(t, reg.Contains("CommodityType", "illegal"))
}

func TestLoadCachesRegistryAndBundle(t *testing.T) {
	dir := iotesting.ContentDir(t)
	l := iocontent.New(dir)

	reg1, err := l.Registry()
	require.NoError(t, err)
	bundle1, reg2, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, reg1, reg2)

	// deleting the files does not matter anymore: repeat loads come
	// from the cache without re-reading
	require.NoError(t, os.Remove(filepath.Join(dir, iocontent.TypesFile)))
	require.NoError(t, os.Remove(filepath.Join(dir, iocontent.BaseFile)))

	bundle2, reg3, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, bundle1, bundle2)
	assert.Same(t, reg1, reg3)
}

func TestLoadMissingFiles(t *testing.T) {
	l := iocontent.New(t.TempDir())

	_, _, err := l.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, errcode.ReadFileError, errcode.Of(err))
}

func TestLoadInvalidContent(t *testing.T) {
	dir := iotesting.ContentDir(t)
	bad := `version: 1
commodities:
  - name: drugs
    categories: [granite]
systems: []
`
	path := filepath.Join(dir, iocontent.SystemsFile)
	require.NoError(t, os.WriteFile(path, []byte(bad), 0644))

	l := iocontent.New(dir)
	_, _, err := l.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, errcode.UnknownCategoryError, errcode.Of(err))
}
