package client

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/browser"
)

// openCleanupDelay is how long an opened transient file is kept before
// removal. Cleanup is time-based, not load-based, so a very slow viewer can
// lose the race; known imprecision, acceptable here.
const openCleanupDelay = 1000 * time.Millisecond

// Delivery hands an export payload to the user: either saved under its
// suggested name or opened in the default viewer via a transient file.
type Delivery struct {
	// DownloadDir is where saved exports land.
	DownloadDir string

	// openFunc opens a path in the OS default application.
	openFunc func(path string) error
	// cleanupDelay overrides openCleanupDelay in tests.
	cleanupDelay time.Duration
}

// NewDelivery creates a delivery targeting the given download directory.
func NewDelivery(downloadDir string) *Delivery {
	return &Delivery{
		DownloadDir:  downloadDir,
		openFunc:     browser.OpenFile,
		cleanupDelay: openCleanupDelay,
	}
}

// Save writes the payload into the download directory under its suggested
// name and returns the path.
func (d *Delivery) Save(download *Download) (string, error) {
	path := filepath.Join(d.DownloadDir, download.Name)
	if err := os.WriteFile(path, download.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save export: %w", err)
	}
	return path, nil
}

// Open writes the payload to a transient file, opens it in the default
// viewer, and removes the file after a fixed delay to give the viewer time
// to load.
func (d *Delivery) Open(download *Download) (string, error) {
	f, err := os.CreateTemp("", "interview-forge-*"+filepath.Ext(download.Name))
	if err != nil {
		return "", fmt.Errorf("failed to create transient file: %w", err)
	}
	path := f.Name()

	if _, err := f.Write(download.Data); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write transient file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	if err := d.openFunc(path); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to open export: %w", err)
	}

	time.AfterFunc(d.cleanupDelay, func() {
		os.Remove(path)
	})
	return path, nil
}

// Deliver saves or opens the payload depending on the inline flag the
// export format dictates: view formats open, download formats save.
func (d *Delivery) Deliver(download *Download, inline bool) (string, error) {
	if inline {
		return d.Open(download)
	}
	return d.Save(download)
}
