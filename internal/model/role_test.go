package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleRanks(t *testing.T) {
	assert.Equal(t, 1, RoleUser.Rank())
	assert.Equal(t, 2, RoleEditor.Rank())
	assert.Equal(t, 3, RoleModerator.Rank())
	assert.Equal(t, 4, RoleAdmin.Rank())
	assert.Equal(t, 0, Role("superuser").Rank())
	assert.Equal(t, 0, Role("").Rank())
}

func TestRoleSatisfies(t *testing.T) {
	ordered := []Role{RoleUser, RoleEditor, RoleModerator, RoleAdmin}

	// Monotonic: every permission granted to a rank is granted to all
	// higher ranks, and to no lower rank.
	for i, required := range ordered {
		for j, held := range ordered {
			expected := j >= i
			assert.Equal(t, expected, held.Satisfies(required),
				"held=%s required=%s", held, required)
		}
	}
}

func TestRoleSatisfiesEdgeCases(t *testing.T) {
	t.Run("empty requirement always satisfied", func(t *testing.T) {
		assert.True(t, RoleUser.Satisfies(""))
		assert.True(t, RoleAdmin.Satisfies(""))
		assert.True(t, Role("garbage").Satisfies(""))
	})

	t.Run("unrecognized held role fails every check", func(t *testing.T) {
		for _, required := range []Role{RoleUser, RoleEditor, RoleModerator, RoleAdmin} {
			assert.False(t, Role("superuser").Satisfies(required))
		}
	})
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("moderator")
	require.NoError(t, err)
	assert.Equal(t, RoleModerator, role)

	_, err = ParseRole("root")
	require.Error(t, err)

	_, err = ParseRole("")
	require.Error(t, err)

	// No silent case folding: roles are stored lowercase.
	_, err = ParseRole("Admin")
	require.Error(t, err)
}
