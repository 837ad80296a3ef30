// Package stream adapts arbitrary byte streams onto the byteorder codec.
//
// Reader and Writer wrap an io.Reader or io.Writer together with a
// byteorder.ByteOrder and expose typed read/write operations for every value
// the codec supports. They are the recoverable-error counterpart to the core
// package: a stream that runs out of bytes surfaces io.EOF or
// io.ErrUnexpectedEOF instead of panicking, so callers can distinguish
// truncated input from their own bugs.
//
//	rdr := stream.NewReader(bytes.NewReader([]byte{2, 5, 3, 0}), byteorder.BigEndian)
//	a, _ := rdr.ReadUint16() // 517
//	b, _ := rdr.ReadUint16() // 768
//
// Precondition violations (an nbytes outside its valid range, a value that
// does not fit in the requested width) still panic, exactly as in the core
// package: widths are statically known to correct callers.
//
// Reader and Writer keep a small internal scratch buffer, so a single
// instance must not be used from multiple goroutines concurrently.
package stream
