package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddURIFlags(t *testing.T) {
	cmd := &cobra.Command{}
	AddURIFlags(cmd)

	flag := cmd.Flags().Lookup("uri")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestAddBulkFlags(t *testing.T) {
	cmd := &cobra.Command{}
	AddBulkFlags(cmd)

	for _, name := range []string{"input", "output", "auto-approve", "metrics-addr"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s should be registered", name)
	}
}

func TestAddConnectFlags(t *testing.T) {
	cmd := &cobra.Command{}
	AddConnectFlags(cmd)

	for _, name := range []string{"connect-timeout", "max-retries"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s should be registered", name)
	}
}
