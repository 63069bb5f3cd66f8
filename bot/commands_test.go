package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommands_AreRestricted(t *testing.T) {
	commands := Commands()

	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name)

		require.NotNil(t, cmd.DefaultMemberPermissions, cmd.Name)
		assert.Equal(t, int64(discordgo.PermissionAdministrator), *cmd.DefaultMemberPermissions, cmd.Name)
		require.NotNil(t, cmd.DMPermission, cmd.Name)
		assert.False(t, *cmd.DMPermission, cmd.Name)

		require.Len(t, cmd.Options, 1, cmd.Name)
		assert.Equal(t, discordgo.ApplicationCommandOptionString, cmd.Options[0].Type, cmd.Name)
		assert.True(t, cmd.Options[0].Required, cmd.Name)
	}

	assert.ElementsMatch(t, []string{"lookup", "inventory", "record", "live"}, names)
}
