package command

import (
	"testing"
	"timebot/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	cr := &Registry{}
	mr := NewHelp("test")

	cr.Register(mr)
	assert.Len(t, cr.states, 1)
}

func TestGetNotRegistered(t *testing.T) {
	cr := &Registry{}

	_, err := cr.Get("test")
	require.EqualError(t, err, "can't fetch command, registry not initialized")
}

func TestGetCommandNotFound(t *testing.T) {
	cr := &Registry{}
	cr.Register(NewHelp("test"))

	_, err := cr.Get("foo")
	require.EqualError(t, err, "command not found")
}

func TestGetCommandFound(t *testing.T) {
	cr := &Registry{}
	cr.Register(NewHelp("test"))

	cmd, err := cr.Get("test")
	require.NoError(t, err)
	assert.NotNil(t, cmd)

	assert.Equal(t, "test", cmd.GetCommand())
}

func TestListCommands(t *testing.T) {
	cr := &Registry{}
	cr.Register(NewHelp("foo"))
	cr.Register(NewHelp("bar"))

	assert.Equal(t, []string{"foo", "bar"}, cr.ListCommands())
}

func TestRegisterReplaceKeepsOrder(t *testing.T) {
	cr := &Registry{}
	cr.Register(NewHelp("foo"))
	cr.Register(NewHelp("bar"))
	cr.Register(NewDisplayFormat("foo"))

	assert.Equal(t, []string{"foo", "bar"}, cr.ListCommands())

	state, err := cr.Get("foo")
	require.NoError(t, err)
	assert.IsType(t, &DisplayFormat{}, state)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		states  []*Start
		wantErr string
	}{
		{
			name:   "empty registry",
			states: nil,
		},
		{
			name:   "targets registered later are fine",
			states: []*Start{NewStart("a", "b"), NewStart("b", "")},
		},
		{
			name:    "missing target",
			states:  []*Start{NewStart("a", "b"), NewStart("c", "d")},
			wantErr: "c falls through to unregistered d",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cr := &Registry{}
			for _, state := range tc.states {
				cr.Register(state)
			}

			err := cr.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, domain.ErrUnknownTransition)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestNewChain(t *testing.T) {
	chain := NewChain(new(MockResolver), &failingFormatter{})

	assert.Equal(t, []string{
		"start", "help", "getTimeByLocation", "get_time_for_timezone", "set_display_format",
	}, chain.ListCommands())
	require.NoError(t, chain.Validate())

	transitions := map[string]string{
		"start":                 "help",
		"help":                  "",
		"getTimeByLocation":     "get_time_for_timezone",
		"get_time_for_timezone": "",
		"set_display_format":    "",
	}

	for name, next := range transitions {
		state, err := chain.Get(name)
		require.NoError(t, err)
		assert.Equal(t, next, state.Next(), name)
	}
}
