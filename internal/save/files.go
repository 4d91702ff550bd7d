package save

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// bundleFile is one encoded file of a save bundle.
type bundleFile struct {
	path string
	data []byte
}

// staged is an encoded file written to a temp path and waiting to be renamed
// over its final name.
type staged struct {
	tmp  string
	path string
}

// stageFile writes data to a temp file next to path and fsyncs it.
func stageFile(path string, data []byte) (staged, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return staged{}, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return staged{}, fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return staged{}, fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return staged{}, fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return staged{}, fmt.Errorf("closing temp file: %w", err)
	}
	return staged{tmp: tmpName, path: path}, nil
}

// writeBundle stages every file first and renames only once all are on disk,
// so a failure while staging leaves the previous bundle untouched. Each
// rename is atomic; a failure between two renames can still leave a mixed
// bundle, which Load tolerates only if both files decode.
func writeBundle(files []bundleFile) error {
	var done []staged
	cleanup := func() {
		for _, s := range done {
			os.Remove(s.tmp)
		}
	}

	for _, f := range files {
		s, err := stageFile(f.path, f.data)
		if err != nil {
			cleanup()
			return err
		}
		done = append(done, s)
	}

	for i, s := range done {
		if err := os.Rename(s.tmp, s.path); err != nil {
			for _, rest := range done[i:] {
				os.Remove(rest.tmp)
			}
			return fmt.Errorf("renaming %s: %w", filepath.Base(s.path), err)
		}
	}
	return nil
}

// readFile decodes the save file at path into a fresh V.
func readFile[V any](path string) (V, error) {
	var v V
	data, err := os.ReadFile(path)
	if err != nil {
		return v, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	if err := Unmarshal(data, &v); err != nil {
		var zero V
		return zero, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return v, nil
}

// exists reports whether path names an existing file.
func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
