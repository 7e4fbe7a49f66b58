package handlers

import (
	"net/http"

	"github.com/holytrinity/portal/internal/httpserver/deps"
	"github.com/holytrinity/portal/internal/minecraft"
)

type leaderboardEntry struct {
	Rank         int    `json:"rank"`
	Name         string `json:"name"`
	Playtime     string `json:"playtime,omitempty"`
	Achievements int    `json:"achievements,omitempty"`
	UUID         string `json:"uuid,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
}

type leaderboardResponse struct {
	Entries []leaderboardEntry `json:"entries"`
}

// Leaderboard serves placeholder standings until a stats plugin API is
// wired up. TODO: fetch real data from the Plan plugin once the server
// exposes its API.
func Leaderboard(d deps.Deps) http.HandlerFunc {
	entries := []leaderboardEntry{
		{Rank: 1, Name: "ServerChampion", Playtime: "156h 23m", Achievements: 89, UUID: "069a79f4-44e9-4726-a5be-fca90e38aaf5"},
		{Rank: 2, Name: "BuildMaster", Playtime: "142h 15m", Achievements: 76, UUID: "61699b2e-d327-4a01-9f1e-0ea8c3f06bc6"},
		{Rank: 3, Name: "Explorer_Pro", Playtime: "138h 47m", Achievements: 71, UUID: "853c80ef-3c37-49fd-aa49-938b674adae6"},
		{Rank: 4, Name: "RedstoneWiz", Playtime: "129h 33m", Achievements: 68},
		{Rank: 5, Name: "CraftingKing", Playtime: "115h 52m", Achievements: 62},
	}
	for i := range entries {
		if entries[i].UUID != "" {
			entries[i].Avatar = minecraft.AvatarURL(entries[i].UUID)
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "s-maxage=300, stale-while-revalidate=600")
		writeJSON(w, http.StatusOK, leaderboardResponse{Entries: entries})
	}
}
