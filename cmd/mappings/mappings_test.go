package mappings_test

import (
	"testing"

	"connect/tally/cmd/mappings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "mappings", mappings.Cmd.Use)
	assert.Contains(t, mappings.Cmd.Short, "keyword mapping table")
	assert.NotNil(t, mappings.Cmd.Run)
}

func TestMappingsCommand_Flags(t *testing.T) {
	customFlag := mappings.Cmd.Flags().Lookup("custom-only")
	require.NotNil(t, customFlag)
	assert.Equal(t, "false", customFlag.DefValue)

	clearFlag := mappings.Cmd.Flags().Lookup("clear")
	require.NotNil(t, clearFlag)
	assert.Equal(t, "false", clearFlag.DefValue)
}
