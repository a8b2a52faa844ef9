package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Disk stores uploaded listing images on the local filesystem under a root
// that is served statically at /uploads. Product rows keep only the
// relative path returned by Save.
type Disk struct {
	Root string
}

func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: mkdir %s: %w", root, err)
	}
	return &Disk{Root: root}, nil
}

// Save writes r under a random hex name, keeping the original extension,
// and returns the public relative path ("uploads/<hex><ext>").
func (d *Disk) Save(r io.Reader, originalName string) (string, error) {
	var suffix [16]byte
	if _, err := rand.Read(suffix[:]); err != nil {
		return "", fmt.Errorf("storage: random name: %w", err)
	}
	name := hex.EncodeToString(suffix[:]) + strings.ToLower(filepath.Ext(originalName))

	f, err := os.Create(filepath.Join(d.Root, name))
	if err != nil {
		return "", fmt.Errorf("storage: create %s: %w", name, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", name, err)
	}
	return path.Join("uploads", name), nil
}

// Remove deletes a file previously returned by Save, given its public
// relative path.
func (d *Disk) Remove(rel string) error {
	return os.Remove(filepath.Join(d.Root, path.Base(rel)))
}
