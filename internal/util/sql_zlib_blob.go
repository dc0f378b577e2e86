package util

import (
	"bytes"
	"compress/zlib"
	"database/sql/driver"
	"fmt"
	"io"
	"io/ioutil"
)

// ZLIBBlob is an arbitrary blob stored as a zlib-compressed binary blob
// The data is compressed at rest.
type ZLIBBlob []byte

// NewZLIBBlob creates a new blob from uncompressed data.
func NewZLIBBlob(v []byte) (ZLIBBlob, error) {
	var b bytes.Buffer
	w, err := zlib.NewWriterLevel(&b, zlib.BestCompression)
	if err != nil {
		return nil, err
	}

	if _, err := w.Write(v); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	return ZLIBBlob(b.Bytes()), nil
}

func (a ZLIBBlob) Value() (driver.Value, error) {
	return []byte(a), nil
}

func (a *ZLIBBlob) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		*a = append(ZLIBBlob(nil), src...)
		return nil
	case string:
		*a = ZLIBBlob(src)
		return nil
	default:
		return fmt.Errorf("expected []byte or string, got %T", src)
	}
}

// Uncompressed returns the decompressed contents of the blob.
func (a ZLIBBlob) Uncompressed() ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader([]byte(a)))
	if err != nil {
		return nil, fmt.Errorf("invalid zlib blob of length %d: %w", len([]byte(a)), err)
	}
	defer r.Close()

	return ioutil.ReadAll(io.LimitReader(r, 16<<20))
}
