package fs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/hmm/pkg/core"
)

// TempFilePrefix names the scratch files a save leaves behind only if the
// process dies between create and rename.
const TempFilePrefix = ".hmm-tmp-"

// defaultPerm applies when the thoughts file does not exist yet.
const defaultPerm os.FileMode = 0644

// replaceFile streams write into a scratch file next to path and swaps it in
// with a rename once it is on disk. Readers see the old content or the new
// one, never a mix. An existing file keeps its permission bits.
// Every failure, including one returned by write, wraps core.ErrIO.
func replaceFile(path string, write func(io.Writer) error) (err error) {
	perm := defaultPerm
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	scratch, err := os.CreateTemp(filepath.Dir(path), TempFilePrefix+"*")
	if err != nil {
		return ioError("create scratch file", err)
	}
	defer func() {
		if err != nil {
			scratch.Close()
			os.Remove(scratch.Name())
		}
	}()

	buf := bufio.NewWriter(scratch)
	if err := write(buf); err != nil {
		return ioError("write scratch file", err)
	}
	if err := buf.Flush(); err != nil {
		return ioError("write scratch file", err)
	}
	if err := scratch.Sync(); err != nil {
		return ioError("sync scratch file", err)
	}
	if err := scratch.Chmod(perm); err != nil {
		return ioError("chmod scratch file", err)
	}
	if err := scratch.Close(); err != nil {
		return ioError("close scratch file", err)
	}
	if err := os.Rename(scratch.Name(), path); err != nil {
		return ioError("replace "+path, err)
	}
	return nil
}

func ioError(op string, err error) error {
	return fmt.Errorf("failed to %s: %w: %w", op, core.ErrIO, err)
}
