package tcp

import (
	"fmt"
	"net"
	"time"

	"github.com/ValentinKolb/dWrite/rpc/common"
	"github.com/ValentinKolb/dWrite/rpc/transport"
	"github.com/ValentinKolb/dWrite/rpc/transport/base"
)

// clientConnector implements the IClientConnector interface for TCP sockets
type clientConnector struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see base.IClientConnector)
// --------------------------------------------------------------------------

func (c *clientConnector) GetName() string {
	return "tcp"
}

func (c *clientConnector) Connect(endpoint string) (net.Conn, error) {
	return net.Dial("tcp", endpoint)
}

func (c *clientConnector) UpgradeConnection(conn net.Conn, config common.ClientConfig) error {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return fmt.Errorf("expected *net.TCPConn, got %T", conn)
	}

	// Socket buffer sizes
	if size := config.Transport.SocketConf.WriteBufferSize; size > 0 {
		if err := tcpConn.SetWriteBuffer(size); err != nil {
			return err
		}
	}
	if size := config.Transport.SocketConf.ReadBufferSize; size > 0 {
		if err := tcpConn.SetReadBuffer(size); err != nil {
			return err
		}
	}

	// TCP specific options
	if err := tcpConn.SetNoDelay(config.Transport.TCPConf.TCPNoDelay); err != nil {
		return err
	}
	if sec := config.Transport.TCPConf.TCPKeepAliveSec; sec > 0 {
		if err := tcpConn.SetKeepAlive(true); err != nil {
			return err
		}
		if err := tcpConn.SetKeepAlivePeriod(time.Duration(sec) * time.Second); err != nil {
			return err
		}
	}
	if sec := config.Transport.TCPConf.TCPLingerSec; sec > 0 {
		if err := tcpConn.SetLinger(sec); err != nil {
			return err
		}
	}

	return nil
}

// --------------------------------------------------------------------------
// Client Transport Factory Method
// --------------------------------------------------------------------------

// NewTCPClientTransport creates a new TCP client transport
func NewTCPClientTransport() transport.IRPCClientTransport {
	return base.NewBaseClientTransport(&clientConnector{})
}
