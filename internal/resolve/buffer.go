package resolve

import (
	"bytes"
	"io"
	"os"

	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
)

// InMemoryThreshold is the recommended in-memory buffering cutoff from
// spec §4.1: streams at or below this size are buffered into memory;
// larger streams spill to a temp file.
const InMemoryThreshold = 16 << 20 // 16 MiB

// noopCloser is returned when there is nothing to clean up (e.g. an
// in-memory buffer that the garbage collector will reclaim on its own).
func noopCloser() error { return nil }

// bufferSeekable drains r into either a bytes.Reader (small inputs) or a
// spilled temp file (large inputs), giving the dispatcher the seekable,
// rewindable stream it requires regardless of how unseekable the original
// source (an HTTP response body, stdin) was.
func bufferSeekable(r io.Reader) (dispatch.Stream, func() error, error) {
	limited := io.LimitReader(r, InMemoryThreshold+1)
	buf, err := io.ReadAll(limited)
	if err != nil {
		return nil, nil, err
	}

	if len(buf) <= InMemoryThreshold {
		return bytes.NewReader(buf), noopCloser, nil
	}

	tmp, err := os.CreateTemp("", "voidlight-markitdown-*.spill")
	if err != nil {
		return nil, nil, err
	}
	if _, err := tmp.Write(buf); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, nil, err
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, nil, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, nil, err
	}

	name := tmp.Name()
	cleanup := func() error {
		tmp.Close()
		return os.Remove(name)
	}
	return tmp, cleanup, nil
}
