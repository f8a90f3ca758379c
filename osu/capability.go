package osu

import (
	"context"
	"errors"
	"fmt"

	"github.com/kionell/osu-api/model"
)

type Capability int

//goland:noinspection ALL
const (
	CapabilityBeatmaps Capability = iota
	CapabilityLeaderboard
	CapabilityRecent
	CapabilityTop
	CapabilityFirsts
	CapabilityUsers
	CapabilityAttributes
	CapabilityScores
)

var capabilityNames = [...]string{
	CapabilityBeatmaps:    "beatmaps",
	CapabilityLeaderboard: "leaderboards",
	CapabilityRecent:      "recent scores",
	CapabilityTop:         "top scores",
	CapabilityFirsts:      "first place scores",
	CapabilityUsers:       "users",
	CapabilityAttributes:  "difficulty attributes",
	CapabilityScores:      "scores",
}

func (c Capability) String() string {
	if c < 0 || int(c) >= len(capabilityNames) {
		return fmt.Sprintf("Capability(%d)", int(c))
	}
	return capabilityNames[c]
}

// CapabilitySet is fixed when a client is constructed.
type CapabilitySet uint16

func NewCapabilitySet(capabilities ...Capability) CapabilitySet {
	var set CapabilitySet
	for _, c := range capabilities {
		set |= 1 << c
	}
	return set
}

func (s CapabilitySet) Has(c Capability) bool {
	return s&(1<<c) != 0
}

func (s CapabilitySet) List() []Capability {
	var result []Capability
	for c := CapabilityBeatmaps; int(c) < len(capabilityNames); c++ {
		if s.Has(c) {
			result = append(result, c)
		}
	}
	return result
}

var ErrNotSupported = errors.New("operation is not supported")

type NotSupportedError struct {
	Server     model.Server
	Capability Capability
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s API does not support %s", e.Server, e.Capability)
}

func (e *NotSupportedError) Unwrap() error {
	return ErrNotSupported
}

// APIClient is implemented by every server adapter.
type APIClient interface {
	Server() model.Server
	Capabilities() CapabilitySet
}

type HasBeatmaps interface {
	APIClient
	GetBeatmap(ctx context.Context, options *model.BeatmapRequestOptions) (*model.BeatmapInfo, error)
}

type HasLeaderboard interface {
	APIClient
	GetLeaderboard(ctx context.Context, options *model.LeaderboardRequestOptions) ([]*model.ScoreInfo, error)
}

type HasRecent interface {
	APIClient
	GetUserRecent(ctx context.Context, options *model.ScoreListRequestOptions) ([]*model.ScoreInfo, error)
}

type HasTop interface {
	APIClient
	GetUserBest(ctx context.Context, options *model.ScoreListRequestOptions) ([]*model.ScoreInfo, error)
}

type HasFirsts interface {
	APIClient
	GetUserFirsts(ctx context.Context, options *model.ScoreListRequestOptions) ([]*model.ScoreInfo, error)
}

type HasUsers interface {
	APIClient
	GetUser(ctx context.Context, options *model.UserRequestOptions) (*model.UserInfo, error)
}

type HasAttributes interface {
	APIClient
	GetDifficulty(ctx context.Context, options *model.DifficultyRequestOptions) (model.DifficultyAttributes, error)
}

type HasScores interface {
	APIClient
	GetScore(ctx context.Context, options *model.ScoreRequestOptions) (*model.ScoreInfo, error)
}

// Require returns client as T when it declares capability.
// Otherwise the error is a *NotSupportedError.
func Require[T APIClient](client APIClient, capability Capability) (T, error) {
	var zero T
	if client == nil {
		return zero, fmt.Errorf("%w: no client", ErrNotSupported)
	}
	unsupported := &NotSupportedError{Server: client.Server(), Capability: capability}
	if !client.Capabilities().Has(capability) {
		return zero, unsupported
	}
	typed, ok := client.(T)
	if !ok {
		return zero, unsupported
	}
	return typed, nil
}
