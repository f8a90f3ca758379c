package osu

import (
	"fmt"
	"net/url"

	"github.com/kionell/osu-api/model"
)

// URLGenerator builds user-facing links of a server.
type URLGenerator interface {
	Server() model.Server
	UserURL(user string) string
	BeatmapURL(beatmapId int, mode *model.GameMode) string
	BeatmapsetURL(beatmapsetId int) string
	AvatarURL(userId int) string
	BeatmapCoverURL(beatmapsetId int) string
	BeatmapThumbnailURL(beatmapsetId int) string
}

// BaseURLGenerator holds the link shapes shared by osu!-like servers.
// Server generators embed it and override what differs.
type BaseURLGenerator struct {
	ServerName  model.Server
	ServerRoot  string
	AssetsRoot  string
	AvatarsRoot string
}

func (g BaseURLGenerator) Server() model.Server {
	return g.ServerName
}

func (g BaseURLGenerator) UserURL(user string) string {
	return fmt.Sprintf("%s/u/%s", g.ServerRoot, url.PathEscape(user))
}

func (g BaseURLGenerator) BeatmapURL(beatmapId int, mode *model.GameMode) string {
	link := fmt.Sprintf("%s/b/%d", g.ServerRoot, beatmapId)
	if mode != nil {
		link += fmt.Sprintf("?m=%d", *mode)
	}
	return link
}

func (g BaseURLGenerator) BeatmapsetURL(beatmapsetId int) string {
	return fmt.Sprintf("%s/s/%d", g.ServerRoot, beatmapsetId)
}

func (g BaseURLGenerator) AvatarURL(userId int) string {
	return fmt.Sprintf("%s/%d", g.AvatarsRoot, userId)
}

func (g BaseURLGenerator) BeatmapCoverURL(beatmapsetId int) string {
	return fmt.Sprintf("%s/beatmaps/%d/covers/cover.jpg", g.AssetsRoot, beatmapsetId)
}

func (g BaseURLGenerator) BeatmapThumbnailURL(beatmapsetId int) string {
	return fmt.Sprintf("%s/beatmaps/%d/covers/list.jpg", g.AssetsRoot, beatmapsetId)
}

// Query is a small builder keeping parameters in insertion order.
type Query struct {
	keys   []string
	values []string
}

func (q *Query) Add(key, value string) *Query {
	q.keys = append(q.keys, key)
	q.values = append(q.values, value)
	return q
}

func (q *Query) AddInt(key string, value int) *Query {
	return q.Add(key, fmt.Sprint(value))
}

// AddIf adds key only when value is not empty.
func (q *Query) AddIf(key, value string) *Query {
	if value == "" {
		return q
	}
	return q.Add(key, value)
}

// AddPositive adds key only when value is above zero.
func (q *Query) AddPositive(key string, value int) *Query {
	if value <= 0 {
		return q
	}
	return q.AddInt(key, value)
}

func (q *Query) Encode() string {
	result := ""
	for i, key := range q.keys {
		if i > 0 {
			result += "&"
		}
		result += url.QueryEscape(key) + "=" + url.QueryEscape(q.values[i])
	}
	return result
}

// With appends the query to link.
func (q *Query) With(link string) string {
	encoded := q.Encode()
	if encoded == "" {
		return link
	}
	return link + "?" + encoded
}
