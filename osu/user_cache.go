package osu

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/kionell/osu-api/model"
)

// UserIdCache remembers numeric ids of users looked up by name or id.
// Entries live as long as the client.
type UserIdCache struct {
	mu    sync.RWMutex
	users map[string]int
}

func NewUserIdCache() *UserIdCache {
	return &UserIdCache{users: make(map[string]int)}
}

func userKey(user string) string {
	return strings.ToLower(strings.TrimSpace(user))
}

func (c *UserIdCache) Get(user string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	id, ok := c.users[userKey(user)]
	return id, ok
}

// Remember stores both the name and the id of a resolved user.
func (c *UserIdCache) Remember(username string, id int) {
	if id == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if username != "" {
		c.users[userKey(username)] = id
	}
	c.users[strconv.Itoa(id)] = id
}

// Resolve returns the numeric id of user, calling lookup on a cache miss.
// Zero means the user does not exist.
func (c *UserIdCache) Resolve(ctx context.Context, user string, lookup func(ctx context.Context, user string) (*model.UserInfo, error)) (int, error) {
	if id, ok := c.Get(user); ok {
		return id, nil
	}
	info, err := lookup(ctx, user)
	if err != nil || info == nil || info.Id == 0 {
		return 0, err
	}
	c.Remember(info.Username, info.Id)
	// the name the caller used may differ from the display name
	c.mu.Lock()
	c.users[userKey(user)] = info.Id
	c.mu.Unlock()
	return info.Id, nil
}
