package progression

// Tier is an XP-threshold rank label
type Tier string

const (
	TierNewbie Tier = "Newbie"
	TierBronze Tier = "Bronze"
	TierSilver Tier = "Silver"
	TierGold   Tier = "Gold"
)

// Rank pairs a tier with its badge
type Rank struct {
	Tier  Tier
	Badge string
}

func (r Rank) String() string {
	return r.Badge + " " + string(r.Tier)
}

// tiers is ordered from the highest threshold down
var tiers = []struct {
	minXP int
	rank  Rank
}{
	{500, Rank{Tier: TierGold, Badge: "🥇"}},
	{200, Rank{Tier: TierSilver, Badge: "🥈"}},
	{50, Rank{Tier: TierBronze, Badge: "🥉"}},
}

// RankFromXP returns the highest tier whose threshold xp reaches
func RankFromXP(xp int) Rank {
	for _, t := range tiers {
		if xp >= t.minXP {
			return t.rank
		}
	}
	return Rank{Tier: TierNewbie, Badge: "🌱"}
}
