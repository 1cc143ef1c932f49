//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/focusquest/platform/internal/auth"
	"github.com/focusquest/platform/test/integration/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_NewPlayerStartsAtLevelOne(t *testing.T) {
	env := testutil.NewTestEnv(t)
	resp := env.POST("/auth/register", map[string]string{
		"email": "fresh@test.com", "password": "securepass123",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Token string `json:"token"`
		Level int    `json:"level"`
		XP    int    `json:"xp"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, 1, result.Level)
	assert.Equal(t, 0, result.XP)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.RegisterPlayer("dup@test.com", "securepass123")

	resp := env.POST("/auth/register", map[string]string{
		"email": "dup@test.com", "password": "securepass123",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestLogin_WrongPasswordRejected(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.RegisterPlayer("wrongpw@test.com", "securepass123")

	resp := env.POST("/auth/login", map[string]string{
		"email": "wrongpw@test.com", "password": "not-the-password",
	}, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGameState_RequiresAuth(t *testing.T) {
	env := testutil.NewTestEnv(t)
	resp := env.GET("/game/state")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProcessEvent_AwardsXPAndStartsStreak(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterPlayer("eventer@test.com", "securepass123")

	outcome := env.PostEvent(token, map[string]interface{}{
		"type": "task_complete", "xp": 10,
	})

	assert.Equal(t, float64(10), outcome["xp_awarded"])
	assert.Equal(t, float64(10), outcome["xp"])
	assert.Equal(t, float64(1), outcome["level"])

	streak, ok := outcome["streak"].(map[string]interface{})
	require.True(t, ok, "first event should report a streak")
	assert.Equal(t, float64(1), streak["current_streak"])
}

func TestProcessEvent_LevelUpUnlocksFeature(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterPlayer("climber@test.com", "securepass123")

	// 200 XP crosses into level 3, unlocking today_view and projects.
	outcome := env.PostEvent(token, map[string]interface{}{
		"type": "task_complete", "xp": 200,
	})

	assert.Equal(t, true, outcome["leveled_up"])
	assert.Equal(t, float64(3), outcome["new_level"])

	unlocked, ok := outcome["newly_unlocked"].([]interface{})
	require.True(t, ok)
	assert.Contains(t, unlocked, "today_view")
	assert.Contains(t, unlocked, "projects")

	// Unlocks persist to the state view.
	resp := env.AuthGET("/game/state", token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var state struct {
		Level    int      `json:"level"`
		Features []string `json:"features"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&state))
	assert.Equal(t, 3, state.Level)
	assert.Contains(t, state.Features, "inbox")
	assert.Contains(t, state.Features, "today_view")
}

func TestProcessEvent_SameDayDoesNotDoubleCountStreak(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterPlayer("streaker@test.com", "securepass123")

	env.PostEvent(token, map[string]interface{}{"type": "task_complete", "xp": 5})
	outcome := env.PostEvent(token, map[string]interface{}{"type": "task_complete", "xp": 5})

	streak, ok := outcome["streak"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), streak["current_streak"])
}

func TestProcessEvent_DuplicateIdempotencyKeyRejected(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterPlayer("idem@test.com", "securepass123")

	body := map[string]interface{}{"type": "task_complete", "xp": 10}
	data, _ := json.Marshal(body)

	send := func() *http.Response {
		req, err := http.NewRequest(http.MethodPost, env.Server.URL+"/game/events", bytes.NewReader(data))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Idempotency-Key", "same-key-twice")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	first := send()
	first.Body.Close()
	assert.Equal(t, http.StatusOK, first.StatusCode)

	second := send()
	second.Body.Close()
	assert.Equal(t, http.StatusConflict, second.StatusCode)
}

func TestDailyQuests_BoardIsStableAcrossReads(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterPlayer("quester@test.com", "securepass123")

	readBoard := func() []map[string]interface{} {
		resp := env.AuthGET("/quests/today", token)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Quests []map[string]interface{} `json:"quests"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		return result.Quests
	}

	first := readBoard()
	require.Len(t, first, 3)

	second := readBoard()
	require.Len(t, second, 3)
	for i := range first {
		assert.Equal(t, first[i]["template_id"], second[i]["template_id"])
	}
}

func TestQuestProgress_CompletionAwardsXP(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterPlayer("finisher@test.com", "securepass123")

	resp := env.AuthGET("/quests/today", token)
	var board struct {
		Quests []struct {
			ID     string `json:"id"`
			Target int    `json:"target"`
		} `json:"quests"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&board))
	resp.Body.Close()
	require.NotEmpty(t, board.Quests)

	quest := board.Quests[0]
	progResp := env.POST("/quests/"+quest.ID+"/progress",
		map[string]int{"increment": quest.Target}, token)
	defer progResp.Body.Close()
	require.Equal(t, http.StatusOK, progResp.StatusCode)

	var result struct {
		Quest struct {
			Completed bool `json:"completed"`
		} `json:"quest"`
		Outcome *struct {
			XPAwarded int `json:"xp_awarded"`
		} `json:"outcome"`
	}
	require.NoError(t, json.NewDecoder(progResp.Body).Decode(&result))
	assert.True(t, result.Quest.Completed)
	require.NotNil(t, result.Outcome)
	assert.Greater(t, result.Outcome.XPAwarded, 0)
}

func TestQuestProgress_OtherPlayersQuestHidden(t *testing.T) {
	env := testutil.NewTestEnv(t)
	ownerToken, _ := env.RegisterPlayer("owner@test.com", "securepass123")
	otherToken, _ := env.RegisterPlayer("other@test.com", "securepass123")

	resp := env.AuthGET("/quests/today", ownerToken)
	var board struct {
		Quests []struct {
			ID string `json:"id"`
		} `json:"quests"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&board))
	resp.Body.Close()
	require.NotEmpty(t, board.Quests)

	progResp := env.POST("/quests/"+board.Quests[0].ID+"/progress",
		map[string]int{"increment": 1}, otherToken)
	defer progResp.Body.Close()
	assert.Equal(t, http.StatusNotFound, progResp.StatusCode)
}

func TestQuestProgress_RepeatPostDoesNotReAward(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterPlayer("repeater@test.com", "securepass123")

	resp := env.AuthGET("/quests/today", token)
	var board struct {
		Quests []struct {
			ID       string `json:"id"`
			Target   int    `json:"target"`
			XPReward int    `json:"xp_reward"`
		} `json:"quests"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&board))
	resp.Body.Close()
	require.NotEmpty(t, board.Quests)
	quest := board.Quests[0]

	first := env.POST("/quests/"+quest.ID+"/progress",
		map[string]int{"increment": quest.Target}, token)
	first.Body.Close()
	require.Equal(t, http.StatusOK, first.StatusCode)

	second := env.POST("/quests/"+quest.ID+"/progress",
		map[string]int{"increment": quest.Target}, token)
	defer second.Body.Close()
	require.Equal(t, http.StatusOK, second.StatusCode)

	var result struct {
		Quest struct {
			Completed bool `json:"completed"`
		} `json:"quest"`
		Outcome *struct{} `json:"outcome"`
	}
	require.NoError(t, json.NewDecoder(second.Body).Decode(&result))
	assert.True(t, result.Quest.Completed)
	assert.Nil(t, result.Outcome, "a completed quest must not fire a second award")

	stateResp := env.AuthGET("/game/state", token)
	defer stateResp.Body.Close()
	var state struct {
		XP int `json:"xp"`
	}
	require.NoError(t, json.NewDecoder(stateResp.Body).Decode(&state))
	assert.Equal(t, quest.XPReward, state.XP)
}

func TestQuestProgress_ConcurrentPostsAwardOnce(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterPlayer("racer@test.com", "securepass123")

	resp := env.AuthGET("/quests/today", token)
	var board struct {
		Quests []struct {
			ID       string `json:"id"`
			Target   int    `json:"target"`
			XPReward int    `json:"xp_reward"`
		} `json:"quests"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&board))
	resp.Body.Close()
	require.NotEmpty(t, board.Quests)
	quest := board.Quests[0]

	const workers = 8
	outcomes := make([]bool, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			body, _ := json.Marshal(map[string]int{"increment": quest.Target})
			req, err := http.NewRequest(http.MethodPost,
				env.Server.URL+"/quests/"+quest.ID+"/progress", bytes.NewReader(body))
			if err != nil {
				errs[i] = err
				return
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				errs[i] = err
				return
			}
			defer resp.Body.Close()

			var result struct {
				Outcome *struct{} `json:"outcome"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
				errs[i] = err
				return
			}
			outcomes[i] = result.Outcome != nil
		}(i)
	}
	wg.Wait()

	awarded := 0
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		if outcomes[i] {
			awarded++
		}
	}
	assert.Equal(t, 1, awarded, "exactly one post may complete the quest")

	stateResp := env.AuthGET("/game/state", token)
	defer stateResp.Body.Close()
	var state struct {
		XP int `json:"xp"`
	}
	require.NoError(t, json.NewDecoder(stateResp.Body).Decode(&state))
	assert.Equal(t, quest.XPReward, state.XP, "the quest XP must be awarded exactly once")
}

func TestAdmin_PlayerTokenRejected(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterPlayer("notadmin@test.com", "securepass123")

	resp := env.AuthGET("/admin/stats", token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdmin_StatsAndLeaderboard(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterPlayer("onboard@test.com", "securepass123")
	env.PostEvent(token, map[string]interface{}{"type": "task_complete", "xp": 150})

	adminToken := env.AdminToken(auth.RoleViewer)

	statsResp := env.AuthGET("/admin/stats", adminToken)
	defer statsResp.Body.Close()
	require.Equal(t, http.StatusOK, statsResp.StatusCode)

	var stats struct {
		TotalPlayers int `json:"total_players"`
	}
	require.NoError(t, json.NewDecoder(statsResp.Body).Decode(&stats))
	assert.Equal(t, 1, stats.TotalPlayers)

	boardResp := env.AuthGET("/admin/leaderboard", adminToken)
	defer boardResp.Body.Close()
	require.Equal(t, http.StatusOK, boardResp.StatusCode)

	var board struct {
		Players []struct {
			XP int `json:"xp"`
		} `json:"players"`
	}
	require.NoError(t, json.NewDecoder(boardResp.Body).Decode(&board))
	require.Len(t, board.Players, 1)
	assert.Equal(t, 150, board.Players[0].XP)
}

func TestAdmin_GrantShieldsNeedsWriteRole(t *testing.T) {
	env := testutil.NewTestEnv(t)
	_, playerID := env.RegisterPlayer("shielded@test.com", "securepass123")

	viewerResp := env.POST("/admin/players/"+playerID.String()+"/shields",
		map[string]int{"amount": 2}, env.AdminToken(auth.RoleViewer))
	viewerResp.Body.Close()
	assert.Equal(t, http.StatusForbidden, viewerResp.StatusCode)

	adminResp := env.POST("/admin/players/"+playerID.String()+"/shields",
		map[string]int{"amount": 5}, env.AdminToken(auth.RoleAdmin))
	defer adminResp.Body.Close()
	require.Equal(t, http.StatusOK, adminResp.StatusCode)

	var state struct {
		StreakShields int `json:"streak_shields"`
	}
	require.NoError(t, json.NewDecoder(adminResp.Body).Decode(&state))
	assert.Equal(t, 3, state.StreakShields, "grants clamp at the shield cap")
}

func TestOutbox_EventsQueuedForPublish(t *testing.T) {
	env := testutil.NewTestEnv(t)
	token, _ := env.RegisterPlayer("published@test.com", "securepass123")
	env.PostEvent(token, map[string]interface{}{"type": "task_complete", "xp": 100})

	var count int
	err := env.Pool.QueryRow(t.Context(),
		"SELECT COUNT(*) FROM event_outbox WHERE event_type = 'fq.game.level_up'").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
