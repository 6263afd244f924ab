package ports

import "io"

// RecordSink receives formatted records. Close flushes buffered output and
// releases the destination.
type RecordSink interface {
	io.Writer
	Close() error
}
