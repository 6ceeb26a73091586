package wheel

import (
	"archive/zip"
	"bytes"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/wheelhouse-py/wheelhouse/pkg/errors"
)

// Validate confirms that payload is a well-formed wheel archive.
//
// The payload is opened as a zip container and every entry is enumerated
// and read to completion; a corrupt, truncated, or non-archive payload
// fails with an INVALID_ARCHIVE error. There is no partial acceptance:
// completing the walk is the proof of validity, and Validate returns no
// other value.
func Validate(payload []byte) error {
	r, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidArchive, err, "payload is not a wheel archive")
	}
	r.RegisterDecompressor(zip.Deflate, func(in io.Reader) io.ReadCloser {
		return flate.NewReader(in)
	})

	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidArchive, err, "cannot open archive entry %s", f.Name)
		}
		_, err = io.Copy(io.Discard, rc)
		rc.Close()
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidArchive, err, "cannot read archive entry %s", f.Name)
		}
	}
	return nil
}
