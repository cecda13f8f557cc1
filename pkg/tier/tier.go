package tier

// Tier is a collaborator classification derived from the count of approved
// enrollments. It is computed on demand and never stored.
type Tier string

const (
	Rookie   Tier = "rookie"
	Bronze   Tier = "bronze"
	Silver   Tier = "silver"
	Gold     Tier = "gold"
	Platinum Tier = "platinum"
)

// Config holds display metadata and the approval-count threshold for a tier
type Config struct {
	Label     string `json:"label"`
	Threshold int    `json:"threshold"`
}

// Order lists tiers from lowest to highest
var Order = []Tier{Rookie, Bronze, Silver, Gold, Platinum}

// Configs maps each tier to its threshold and label
var Configs = map[Tier]Config{
	Rookie:   {Label: "Rookie", Threshold: 0},
	Bronze:   {Label: "Bronze", Threshold: 3},
	Silver:   {Label: "Silver", Threshold: 10},
	Gold:     {Label: "Gold", Threshold: 25},
	Platinum: {Label: "Platinum", Threshold: 50},
}

// Progress describes how far a collaborator is toward the next tier
type Progress struct {
	Current    int     `json:"current"`
	Target     int     `json:"target"`
	Percentage float64 `json:"percentage"`
}

// Compute returns the highest tier whose threshold the approved count meets or exceeds
func Compute(approvedCount int) Tier {
	for i := len(Order) - 1; i >= 0; i-- {
		if approvedCount >= Configs[Order[i]].Threshold {
			return Order[i]
		}
	}
	return Rookie
}

// Next returns the tier above the given one, or "" for the top tier
func Next(current Tier) Tier {
	for i, t := range Order {
		if t == current && i < len(Order)-1 {
			return Order[i+1]
		}
	}
	return ""
}

// ProgressToNext reports progress from the current tier threshold toward the
// next one, clamped to 100%. The top tier always reports 100%.
func ProgressToNext(approvedCount int) Progress {
	current := Compute(approvedCount)
	next := Next(current)

	if next == "" {
		return Progress{Current: approvedCount, Target: approvedCount, Percentage: 100}
	}

	currentThreshold := Configs[current].Threshold
	nextThreshold := Configs[next].Threshold
	progress := approvedCount - currentThreshold
	needed := nextThreshold - currentThreshold

	pct := float64(progress) / float64(needed) * 100
	if pct > 100 {
		pct = 100
	}

	return Progress{Current: progress, Target: needed, Percentage: pct}
}
