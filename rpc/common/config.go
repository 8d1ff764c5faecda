package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// RPC client configuration structs
// --------------------------------------------------------------------------

// SocketConf holds buffer settings applied to socket based transports
// (TCP, Unix). Ignored by the HTTP transport.
type SocketConf struct {
	WriteBufferSize int
	ReadBufferSize  int
}

// TCPConf holds TCP specific socket options. Ignored by all other transports.
type TCPConf struct {
	TCPKeepAliveSec int
	TCPLingerSec    int
	TCPNoDelay      bool
}

// ClientTransportConfig bundles all transport level settings of a client.
type ClientTransportConfig struct {
	// Endpoints to connect to. Transports that support load balancing
	// distribute requests over all of them (round-robin).
	Endpoints []string
	// RetryCount is how many times a request is attempted before giving up.
	RetryCount int
	// ConnectionsPerEndpoint is the number of simultaneous connections
	// opened per endpoint - for transports that support this feature.
	ConnectionsPerEndpoint int

	SocketConf SocketConf
	TCPConf    TCPConf
}

// ClientConfig holds all configuration parameters for an RPC client.
type ClientConfig struct {
	TimeoutSecond int
	LogLevel      string
	Transport     ClientTransportConfig
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// General Client Settings
	addSection("Client Configuration")
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	addField("Log Level", c.LogLevel)
	addField("Retry Count", strconv.Itoa(c.Transport.RetryCount))
	addField("Connections Per Endpoint", strconv.Itoa(int(math.Max(1, float64(c.Transport.ConnectionsPerEndpoint)))))

	// Endpoints
	addSection("Endpoints")
	for i, endpoint := range c.Transport.Endpoints {
		addField(strconv.Itoa(i), endpoint)
	}

	return sb.String()
}
