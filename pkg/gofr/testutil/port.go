package testutil

import (
	"fmt"
	"net"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// ServerConfigs are the addresses of the HTTP and metrics servers of an app started by a test.
type ServerConfigs struct {
	HTTPPort    int
	HTTPHost    string
	MetricsPort int
	MetricsHost string
}

// NewServerConfigs reserves two distinct free ports and exports them as HTTP_PORT and METRICS_PORT
// for the rest of the test.
func NewServerConfigs(t *testing.T) *ServerConfigs {
	t.Helper()

	ports := freePorts(t, 2)

	t.Setenv("HTTP_PORT", strconv.Itoa(ports[0]))
	t.Setenv("METRICS_PORT", strconv.Itoa(ports[1]))

	return &ServerConfigs{
		HTTPPort:    ports[0],
		HTTPHost:    fmt.Sprintf("http://localhost:%d", ports[0]),
		MetricsPort: ports[1],
		MetricsHost: fmt.Sprintf("http://localhost:%d", ports[1]),
	}
}

// freePorts returns n ports that were free when it returned. All listeners stay open until every
// port is known, so no port is handed out twice.
func freePorts(t *testing.T, n int) []int {
	t.Helper()

	ports := make([]int, 0, n)
	lc := net.ListenConfig{}

	for range n {
		l, err := lc.Listen(t.Context(), "tcp", "localhost:0")
		require.NoError(t, err, "reserving a free port")

		defer l.Close()

		ports = append(ports, l.Addr().(*net.TCPAddr).Port)
	}

	return ports
}
