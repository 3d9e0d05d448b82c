package progression

import "testing"

func TestRankFromXP(t *testing.T) {
	tests := []struct {
		xp    int
		tier  Tier
		badge string
	}{
		{0, TierNewbie, "🌱"},
		{49, TierNewbie, "🌱"},
		{50, TierBronze, "🥉"},
		{199, TierBronze, "🥉"},
		{200, TierSilver, "🥈"},
		{499, TierSilver, "🥈"},
		{500, TierGold, "🥇"},
		{10000, TierGold, "🥇"},
	}

	for _, tt := range tests {
		got := RankFromXP(tt.xp)
		if got.Tier != tt.tier || got.Badge != tt.badge {
			t.Errorf("RankFromXP(%d) = %v, want %s %s", tt.xp, got, tt.badge, tt.tier)
		}
	}
}
