package fault

// levelRecommendations are the maintenance actions keyed by damage level.
var levelRecommendations = map[string][]string{
	LevelHealthy:  {"System is operating normally. Continue routine monitoring."},
	LevelSlight:   {"Minor abnormalities detected. Increase monitoring frequency."},
	LevelModerate: {"Moderate wear detected. Schedule inspection within 2-4 weeks."},
	LevelSevere: {
		"Severe damage detected. Schedule immediate inspection.",
		"Consider reducing operational load until maintenance.",
	},
	LevelCritical: {
		"CRITICAL: Shutdown recommended to prevent catastrophic failure.",
		"Immediate maintenance required.",
	},
}

// typeRecommendations are the per-fault-type actions. The general
// abnormality fallback intentionally has no entry.
var typeRecommendations = map[string]string{
	TypeBearingFault: "Inspect bearings for wear, contamination, or lubrication issues.",
	TypeUnbalance:    "Check rotor balance and perform balancing if necessary.",
	TypeMisalignment: "Check shaft alignment and realign if necessary.",
	TypeGearFault:    "Inspect gear teeth for wear, pitting, or damage.",
}

// recommendations returns the level-based strings followed by one string per
// detected fault type, in detection order. Output is fully deterministic.
func (c *Calculator) recommendations(level string, types []Hypothesis) []string {
	recs := append([]string(nil), levelRecommendations[level]...)

	for _, h := range types {
		if r, ok := typeRecommendations[h.Type]; ok {
			recs = append(recs, r)
		}
	}

	return recs
}
