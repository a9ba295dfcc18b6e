package pet

const (
	// DefaultDecayRate is the per-minute vital drift applied by decay ticks.
	DefaultDecayRate = 3

	// Happiness stops draining once it falls to this floor.
	HappinessDrainFloor = 20

	HungerPenaltySevere      = 8
	HungerPenaltyMild        = 4
	HappinessPenaltySevere   = 6
	HappinessPenaltyMild     = 3
	CleanlinessPenaltySevere = 7
	CleanlinessPenaltyMild   = 3
	SicknessPenalty          = 10

	HungerSevereThreshold      = 90
	HungerMildThreshold        = 70
	HappinessSevereThreshold   = 10
	HappinessMildThreshold     = 30
	CleanlinessSevereThreshold = 10
	CleanlinessMildThreshold   = 30

	SickChanceFilthy   = 0.5
	SickChanceDirty    = 0.3
	SickChanceFrail    = 0.4
	SickChanceWeak     = 0.2
	SickChanceStarving = 0.3

	SickCleanlinessFilthy = 10
	SickCleanlinessDirty  = 20
	SickHealthFrail       = 20
	SickHealthWeak        = 40
	SickHungerStarving    = 90

	CleanGainBase    = 30
	CleanGainDivisor = 5

	SleepHealthPerMinute = 2
	HealHealthRestore    = 30

	GameHappinessCap = 50
	GameExpBase      = 10
	GameExpDivisor   = 10

	StatusVeryHungry = 80
	StatusVerySad    = 20
	StatusVeryDirty  = 20
	StatusNeedsCare  = 30
	StatusVeryHappy  = 80
)

// Tiered coin rewards for mini-game scores, highest threshold first.
var coinRewardTiers = []struct {
	MinScore int
	Coins    int
}{
	{90, 50},
	{80, 40},
	{70, 30},
	{60, 20},
	{50, 15},
}

const coinRewardFloor = 10

// Score bonuses added to score/2 before the happiness cap.
var happinessBonusTiers = []struct {
	MinScore int
	Bonus    int
}{
	{90, 20},
	{80, 10},
	{70, 5},
}
