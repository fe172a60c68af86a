package server

import (
	"io"
	"os"
)

// stdioConn adapts stdin/stdout into the io.ReadWriteCloser the JSON-RPC
// stream wants. Closing only closes stdout so a pending read on stdin cannot
// block shutdown.
type stdioConn struct {
	in  io.Reader
	out io.WriteCloser
}

func newStdioConn() *stdioConn {
	return &stdioConn{in: os.Stdin, out: os.Stdout}
}

func (c *stdioConn) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c *stdioConn) Write(p []byte) (int, error) { return c.out.Write(p) }
func (c *stdioConn) Close() error                { return c.out.Close() }
