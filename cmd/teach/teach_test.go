package teach_test

import (
	"testing"

	"connect/tally/cmd/teach"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeachCommand_Metadata(t *testing.T) {
	assert.Equal(t, "teach", teach.Cmd.Use)
	assert.Contains(t, teach.Cmd.Short, "keyword mapping")
	assert.NotNil(t, teach.Cmd.Run)
}

func TestTeachCommand_Flags(t *testing.T) {
	keywordFlag := teach.Cmd.Flags().Lookup("keyword")
	require.NotNil(t, keywordFlag)
	assert.Equal(t, "k", keywordFlag.Shorthand)

	fieldFlag := teach.Cmd.Flags().Lookup("field")
	require.NotNil(t, fieldFlag)
	assert.Equal(t, "f", fieldFlag.Shorthand)
}
