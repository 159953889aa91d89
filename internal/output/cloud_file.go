package output

import (
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go/source"

	"github.com/chrisdamba/menuengine/internal/cloudwriter"
)

// CloudParquetFile adapts a write-only object to source.ParquetFile.
type CloudParquetFile struct {
	object cloudwriter.ObjectWriter
	offset int64
}

func NewCloudParquetFile(object cloudwriter.ObjectWriter) *CloudParquetFile {
	return &CloudParquetFile{object: object}
}

// Open and Create return the receiver; the object only exists once Close
// uploads it.
func (c *CloudParquetFile) Open(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Create(name string) (source.ParquetFile, error) {
	return c, nil
}

func (c *CloudParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		c.offset = offset
	case io.SeekCurrent:
		c.offset += offset
	default:
		return 0, fmt.Errorf("seek from end not supported for %s", c.object.Key())
	}
	return c.offset, nil
}

func (c *CloudParquetFile) Read(p []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for %s", c.object.Key())
}

func (c *CloudParquetFile) Write(p []byte) (int, error) {
	n, err := c.object.Write(p)
	c.offset += int64(n)
	return n, err
}

func (c *CloudParquetFile) Close() error {
	return c.object.Close()
}
