package core_test

import (
	"strings"
	"testing"

	"github.com/KirkDiggler/bnb-bot-discord/internal/discord/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomID_EncodeParse(t *testing.T) {
	tests := []struct {
		name    string
		id      *core.CustomID
		encoded string
	}{
		{
			name:    "domain and action",
			id:      core.NewCustomID("actor", "list"),
			encoded: "actor:list",
		},
		{
			name:    "with target",
			id:      core.NewCustomID("actor", "show").WithTarget("abc"),
			encoded: "actor:show:abc",
		},
		{
			name:    "with args",
			id:      core.NewCustomID("damage", "melee").WithTarget("abc").WithArgs("melee", "2", "1", "pdc"),
			encoded: "damage:melee:abc:melee:2:1:pdc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := tt.id.Encode()
			require.NoError(t, err)
			assert.Equal(t, tt.encoded, encoded)

			parsed, err := core.ParseCustomID(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.id.Domain, parsed.Domain)
			assert.Equal(t, tt.id.Action, parsed.Action)
			assert.Equal(t, tt.id.Target, parsed.Target)
			assert.Equal(t, len(tt.id.Args), len(parsed.Args))
			for i := range tt.id.Args {
				assert.Equal(t, tt.id.Args[i], parsed.Arg(i))
			}
		})
	}
}

func TestCustomID_Errors(t *testing.T) {
	_, err := core.NewCustomID("actor", "show").WithTarget(strings.Repeat("x", 120)).Encode()
	assert.Error(t, err)

	_, err = core.NewCustomID("actor", "show").WithTarget("a:b").Encode()
	assert.Error(t, err)

	_, err = core.ParseCustomID("")
	assert.Error(t, err)

	_, err = core.ParseCustomID("onlydomain")
	assert.Error(t, err)
}

func TestCustomID_ArgOutOfRange(t *testing.T) {
	id, err := core.ParseCustomID("damage:melee:abc")
	require.NoError(t, err)

	assert.Equal(t, "", id.Arg(0))
	assert.Equal(t, "", id.Arg(-1))
}

func TestCustomIDBuilder_Button(t *testing.T) {
	b := core.NewCustomIDBuilder("damage")

	id, err := b.Button("melee", "actor-1", "melee", "1")
	require.NoError(t, err)
	assert.Equal(t, "damage:melee:actor-1:melee:1", id)
}
