package economy

import "time"

// MiniGameSession is one completed mini-game, recorded append-only.
type MiniGameSession struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	PetID       string    `json:"pet_id"`
	GameType    string    `json:"game_type"`
	Score       int       `json:"score"`
	CoinsEarned int       `json:"coins_earned"`
	ExpEarned   int       `json:"exp_earned"`
	PlayedAt    time.Time `json:"played_at"`
}

const (
	scoreTimeLimitSeconds = 300
	scoreTimeBonusWeight  = 20
)

// ScoreForPerformance converts raw mini-game performance into a score in
// [0,100]: accuracy carries the bulk, with a small bonus for finishing well
// under the five minute limit.
func ScoreForPerformance(correct, total, timeTakenSeconds int) int {
	if total <= 0 {
		return 0
	}
	if correct < 0 {
		correct = 0
	}
	if correct > total {
		correct = total
	}

	accuracy := float64(correct) / float64(total)
	timeBonus := 1.0 - float64(timeTakenSeconds)/scoreTimeLimitSeconds
	if timeBonus < 0 {
		timeBonus = 0
	}

	score := int(accuracy*100) + int(timeBonus*scoreTimeBonusWeight)
	if score > 100 {
		score = 100
	}
	return score
}
