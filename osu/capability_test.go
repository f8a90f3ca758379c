package osu

import (
	"context"
	"errors"
	"testing"

	"github.com/kionell/osu-api/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type usersOnlyClient struct{}

func (usersOnlyClient) Server() model.Server { return model.ServerGatari }

func (usersOnlyClient) Capabilities() CapabilitySet {
	return NewCapabilitySet(CapabilityUsers, CapabilityTop)
}

func (usersOnlyClient) GetUser(context.Context, *model.UserRequestOptions) (*model.UserInfo, error) {
	return model.NewUserInfo(), nil
}

func TestCapabilitySet(t *testing.T) {
	set := NewCapabilitySet(CapabilityUsers, CapabilityBeatmaps)

	assert.True(t, set.Has(CapabilityUsers))
	assert.True(t, set.Has(CapabilityBeatmaps))
	assert.False(t, set.Has(CapabilityAttributes))
	assert.Equal(t, []Capability{CapabilityBeatmaps, CapabilityUsers}, set.List())
	assert.Empty(t, CapabilitySet(0).List())
}

func TestCapability_String(t *testing.T) {
	assert.Equal(t, "difficulty attributes", CapabilityAttributes.String())
	assert.Equal(t, "Capability(42)", Capability(42).String())
}

func TestRequire(t *testing.T) {
	client := usersOnlyClient{}

	users, err := Require[HasUsers](client, CapabilityUsers)
	require.NoError(t, err)
	info, err := users.GetUser(context.Background(), &model.UserRequestOptions{User: "cookiezi"})
	require.NoError(t, err)
	assert.Equal(t, "XX", info.CountryCode)

	_, err = Require[HasAttributes](client, CapabilityAttributes)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotSupported)
	var unsupported *NotSupportedError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, model.ServerGatari, unsupported.Server)
	assert.Equal(t, CapabilityAttributes, unsupported.Capability)
	assert.Equal(t, "Gatari API does not support difficulty attributes", err.Error())

	// declared but not implemented
	_, err = Require[HasTop](client, CapabilityTop)
	assert.ErrorIs(t, err, ErrNotSupported)

	_, err = Require[HasUsers](nil, CapabilityUsers)
	assert.ErrorIs(t, err, ErrNotSupported)
}
