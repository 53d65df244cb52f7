package client

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDownload() *Download {
	return &Download{
		Name:        "interview-questions.csv",
		ContentType: "text/csv; charset=utf-8",
		Data:        []byte(`"PM","Tech"`),
	}
}

func TestDelivery_Save(t *testing.T) {
	dir := t.TempDir()
	d := NewDelivery(dir)

	path, err := d.Save(testDownload())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "interview-questions.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `"PM","Tech"`, string(data))
}

func TestDelivery_Open(t *testing.T) {
	d := NewDelivery(t.TempDir())
	d.cleanupDelay = 20 * time.Millisecond

	var opened string
	d.openFunc = func(path string) error {
		opened = path
		return nil
	}

	path, err := d.Open(testDownload())
	require.NoError(t, err)
	assert.Equal(t, path, opened)
	assert.Equal(t, ".csv", filepath.Ext(path))

	// The transient file exists until the cleanup delay elapses.
	_, err = os.Stat(path)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := os.Stat(path)
		return os.IsNotExist(err)
	}, time.Second, 10*time.Millisecond)
}

func TestDelivery_OpenFailureRemovesFile(t *testing.T) {
	d := NewDelivery(t.TempDir())
	var attempted string
	d.openFunc = func(path string) error {
		attempted = path
		return errors.New("no viewer available")
	}

	_, err := d.Open(testDownload())
	require.Error(t, err)

	_, statErr := os.Stat(attempted)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDelivery_Deliver(t *testing.T) {
	dir := t.TempDir()
	d := NewDelivery(dir)
	d.cleanupDelay = 10 * time.Millisecond
	d.openFunc = func(string) error { return nil }

	saved, err := d.Deliver(testDownload(), false)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(saved))

	openedDownload := testDownload()
	openedDownload.Name = "interview-questions.html"
	opened, err := d.Deliver(openedDownload, true)
	require.NoError(t, err)
	assert.NotEqual(t, dir, filepath.Dir(opened))
}
