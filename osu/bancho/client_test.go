package bancho

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kionell/osu-api/model"
	"github.com/kionell/osu-api/osu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeServer struct {
	*httptest.Server
	tokens   atomic.Int32
	requests atomic.Int32
}

func newFakeServer(t *testing.T) *fakeServer {
	fake := &fakeServer{}
	mux := http.NewServeMux()
	reply := func(w http.ResponseWriter, status int, body string) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
	api := func(handler func(w http.ResponseWriter, r *http.Request)) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			fake.requests.Add(1)
			if r.Header.Get("Authorization") != "Bearer access-token" {
				reply(w, http.StatusUnauthorized, `{"authentication":"basic"}`)
				return
			}
			handler(w, r)
		}
	}

	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		fake.tokens.Add(1)
		assert.NoError(t, r.ParseForm())
		if r.PostForm.Get("client_id") != "id" || r.PostForm.Get("client_secret") != "secret" {
			reply(w, http.StatusUnauthorized, `{"error":"invalid_client"}`)
			return
		}
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "public", r.PostForm.Get("scope"))
		reply(w, http.StatusOK, `{"access_token":"access-token","token_type":"Bearer","expires_in":86400}`)
	})
	mux.HandleFunc("GET /api/v2/beatmaps/lookup", api(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("id") == "75" || r.URL.Query().Get("checksum") == "a5b99395a42bd55bc5eb1d2411cbdf8b" {
			reply(w, http.StatusOK, beatmapJSON)
			return
		}
		reply(w, http.StatusNotFound, `{"error":"Specified beatmap couldn't be found."}`)
	}))
	mux.HandleFunc("GET /api/v2/beatmapsets/search", api(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "any", r.URL.Query().Get("s"))
		if r.URL.Query().Get("m") == "1" {
			reply(w, http.StatusOK, `{"beatmapsets":[]}`)
			return
		}
		reply(w, http.StatusOK, `{"beatmapsets":[{"id":1,"title":"DISCOPRINCE","artist":"Kenji Ninuma","creator":"peppy",
			"beatmaps":[{"id":75,"version":"Normal"},{"id":76,"version":"Hard"}]}]}`)
	}))
	mux.HandleFunc("GET /api/v2/users/{user}", api(func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("user") != "peppy" && r.PathValue("user") != "2" {
			reply(w, http.StatusNotFound, `{"error":null}`)
			return
		}
		reply(w, http.StatusOK, userJSON)
	}))
	mux.HandleFunc("GET /api/v2/users/2/scores/best", api(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		reply(w, http.StatusOK, "["+scoreJSON+"]")
	}))
	mux.HandleFunc("GET /api/v2/users/2/scores/recent", api(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("include_fails"))
		reply(w, http.StatusOK, `{"scores":[`+lazerScoreJSON+`]}`)
	}))
	mux.HandleFunc("GET /api/v2/users/2/scores/firsts", api(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `[]`)
	}))
	mux.HandleFunc("GET /api/v2/beatmaps/75/scores", api(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"scores":[`+scoreJSON+`,`+lazerScoreJSON+`]}`)
	}))
	mux.HandleFunc("GET /api/v2/beatmaps/75/scores/users/2/all", api(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, `{"scores":[`+scoreJSON+`]}`)
	}))
	mux.HandleFunc("GET /api/v2/scores/{id}", api(func(w http.ResponseWriter, r *http.Request) {
		reply(w, http.StatusOK, scoreJSON)
	}))
	mux.HandleFunc("POST /api/v2/beatmaps/75/attributes", api(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]int
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]int{"mods": 72, "ruleset_id": 1}, body)
		reply(w, http.StatusOK, `{"attributes":{"star_rating":5.5,"max_combo":1200,"stamina_difficulty":2,"great_hit_window":30}}`)
	}))

	fake.Server = httptest.NewServer(mux)
	t.Cleanup(fake.Close)
	return fake
}

func newTestClient(t *testing.T) (*Client, *fakeServer) {
	fake := newFakeServer(t)
	client := NewClientWithGenerator(NewURLGeneratorWithRoot(fake.URL), osu.WithMaxRetries(0))
	client.AddCredentials("id", "secret")
	return client, fake
}

func TestClient_Capabilities(t *testing.T) {
	client := NewClient()

	assert.Equal(t, model.ServerBancho, client.Server())
	assert.Len(t, client.Capabilities().List(), 8)
	assert.Equal(t, "https://osu.ppy.sh", client.URLGenerator().ServerRoot)
}

func TestClient_RequiresCredentials(t *testing.T) {
	fake := newFakeServer(t)
	client := NewClientWithGenerator(NewURLGeneratorWithRoot(fake.URL))

	_, err := client.GetUser(context.Background(), &model.UserRequestOptions{User: "peppy"})
	assert.ErrorIs(t, err, osu.ErrMissingCredentials)
	assert.Equal(t, int32(0), fake.requests.Load())
}

func TestClient_GetBeatmap(t *testing.T) {
	client, fake := newTestClient(t)
	ctx := context.Background()

	beatmap, err := client.GetBeatmap(ctx, &model.BeatmapRequestOptions{BeatmapId: 75})
	require.NoError(t, err)
	require.NotNil(t, beatmap)
	assert.Equal(t, "DISCOPRINCE", beatmap.Title)

	beatmap, err = client.GetBeatmap(ctx, &model.BeatmapRequestOptions{Hash: "a5b99395a42bd55bc5eb1d2411cbdf8b"})
	require.NoError(t, err)
	require.NotNil(t, beatmap)
	assert.Equal(t, 75, beatmap.Id)

	beatmap, err = client.GetBeatmap(ctx, &model.BeatmapRequestOptions{BeatmapId: 1})
	assert.NoError(t, err)
	assert.Nil(t, beatmap)

	beatmap, err = client.GetBeatmap(ctx, &model.BeatmapRequestOptions{Search: "hard"})
	require.NoError(t, err)
	require.NotNil(t, beatmap)
	assert.Equal(t, 76, beatmap.Id)
	assert.Equal(t, "peppy", beatmap.Creator)

	beatmap, err = client.GetBeatmap(ctx, &model.BeatmapRequestOptions{Search: "hard", Mode: model.GameModeTaiko.Ptr()})
	assert.NoError(t, err)
	assert.Nil(t, beatmap)

	beatmap, err = client.GetBeatmap(ctx, &model.BeatmapRequestOptions{})
	assert.NoError(t, err)
	assert.Nil(t, beatmap)

	// the token is requested once and reused
	assert.Equal(t, int32(1), fake.tokens.Load())
}

func TestClient_GetUser(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	user, err := client.GetUser(ctx, &model.UserRequestOptions{User: "peppy"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 2, user.Id)
	assert.Equal(t, "AU", user.CountryCode)

	user, err = client.GetUser(ctx, &model.UserRequestOptions{User: "nobody"})
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = client.GetUser(ctx, nil)
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestClient_UserScores(t *testing.T) {
	client, fake := newTestClient(t)
	ctx := context.Background()

	best, err := client.GetUserBest(ctx, &model.ScoreListRequestOptions{User: "peppy", Limit: 1})
	require.NoError(t, err)
	require.Len(t, best, 1)
	assert.Equal(t, int64(4000), best[0].Id)

	recent, err := client.GetUserRecent(ctx, &model.ScoreListRequestOptions{User: "PEPPY", IncludeFails: true})
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.False(t, recent[0].Passed)

	firsts, err := client.GetUserFirsts(ctx, &model.ScoreListRequestOptions{User: "2"})
	require.NoError(t, err)
	assert.Empty(t, firsts)

	// the user id is looked up once
	assert.Equal(t, int32(4), fake.requests.Load())

	missing, err := client.GetUserBest(ctx, &model.ScoreListRequestOptions{User: "nobody"})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestClient_GetLeaderboard(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	scores, err := client.GetLeaderboard(ctx, &model.LeaderboardRequestOptions{BeatmapId: 75})
	require.NoError(t, err)
	assert.Len(t, scores, 2)

	scores, err = client.GetLeaderboard(ctx, &model.LeaderboardRequestOptions{BeatmapId: 75, User: "peppy"})
	require.NoError(t, err)
	assert.Len(t, scores, 1)
}

func TestClient_GetScore(t *testing.T) {
	client, _ := newTestClient(t)

	score, err := client.GetScore(context.Background(), &model.ScoreRequestOptions{ScoreId: 4000})
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.Equal(t, "chocomint", score.Username)

	score, err = client.GetScore(context.Background(), &model.ScoreRequestOptions{})
	assert.NoError(t, err)
	assert.Nil(t, score)
}

func TestClient_GetDifficulty(t *testing.T) {
	client, _ := newTestClient(t)

	attributes, err := client.GetDifficulty(context.Background(), &model.DifficultyRequestOptions{
		BeatmapId: 75,
		Mode:      model.GameModeTaiko.Ptr(),
		Mods:      "HDDT",
	})
	require.NoError(t, err)
	require.NotNil(t, attributes)

	taiko, ok := attributes.(*model.TaikoDifficultyAttributes)
	require.True(t, ok)
	assert.Equal(t, 5.5, taiko.StarRating)
	assert.Equal(t, 1200, taiko.MaxCombo)
	assert.Equal(t, 2.0, taiko.StaminaDifficulty)
	assert.Equal(t, "HDDT", taiko.Mods.Acronyms())
}

func TestClient_InvalidCredentials(t *testing.T) {
	fake := newFakeServer(t)
	client := NewClientWithGenerator(NewURLGeneratorWithRoot(fake.URL), osu.WithMaxRetries(0))
	client.AddCredentials("id", "wrong")

	user, err := client.GetUser(context.Background(), &model.UserRequestOptions{User: "peppy"})
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.False(t, client.IsAuthorized())
	assert.Error(t, client.Authorize(context.Background()))
}
