package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
)

// Meta describes one archived map document. It is written next to the
// compressed map as `<name>.meta.json`.
type Meta struct {
	Name       string `json:"name"`
	Source     string `json:"source"`
	Size       int    `json:"size"`
	SHA256     string `json:"sha256"`
	Tiles      int    `json:"tiles"`
	ArchivedAt string `json:"archived_at"`
}

// Write stores doc under dir as `<name>.map.zst` plus a JSON meta sidecar
// and returns the path of the compressed copy. Size, SHA256 and ArchivedAt
// are filled in from doc; the caller supplies the rest.
func Write(dir string, meta Meta, doc []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	sum := sha256.Sum256(doc)
	meta.Size = len(doc)
	meta.SHA256 = hex.EncodeToString(sum[:])
	meta.ArchivedAt = time.Now().UTC().Format(time.RFC3339Nano)

	dst := filepath.Join(dir, meta.Name+".map.zst")
	if err := writeCompressed(dst, doc); err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, meta.Name+".meta.json"), b, 0o644); err != nil {
		return "", err
	}
	return dst, nil
}

func writeCompressed(path string, doc []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	if _, err := enc.Write(doc); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Read decompresses an archived map document.
func Read(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return io.ReadAll(dec)
}

// List reads every meta sidecar under dir, newest first.
func List(dir string) ([]Meta, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var metas []Meta
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".meta.json") {
			continue
		}
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		var m Meta
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		metas = append(metas, m)
	}

	sort.Slice(metas, func(i, j int) bool {
		ti, _ := time.Parse(time.RFC3339Nano, metas[i].ArchivedAt)
		tj, _ := time.Parse(time.RFC3339Nano, metas[j].ArchivedAt)
		if ti.Equal(tj) {
			return metas[i].Name < metas[j].Name
		}
		return ti.After(tj)
	})
	return metas, nil
}
