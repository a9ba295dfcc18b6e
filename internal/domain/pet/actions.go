package pet

import (
	"fmt"
	"time"

	"quackmate/internal/domain/catalog"
)

// Feed applies a food's computed effects and stamps the feeding time. The
// caller is responsible for inventory ownership; this only enforces the
// state-machine guard. On decline the returned pet is unchanged.
func (s CareService) Feed(p Pet, f catalog.Food, now time.Time) (Pet, Decline) {
	if d := GuardCanAct(p); d != DeclineNone {
		return p, d
	}

	p.SetHunger(p.Hunger - catalog.HungerReduction(f))
	p.SetHappiness(p.Happiness + catalog.HappinessBonus(f))
	p.SetHealth(p.Health + f.HealthRestore)
	p.State = StateEating
	p.LastFed = now
	p.UpdatedAt = now
	return p, DeclineNone
}

// Clean is allowed even while sick so a neglected pet can be nursed back.
// The gain shrinks as cleanliness approaches full.
func (s CareService) Clean(p Pet, now time.Time) (Pet, Decline) {
	if !p.Alive {
		return p, DeclineDead
	}

	gain := CleanGainBase + (100-p.Cleanliness)/CleanGainDivisor
	p.SetCleanliness(p.Cleanliness + gain)
	p.State = StateBathing
	p.LastCleaned = now
	p.UpdatedAt = now
	return p, DeclineNone
}

// Play moves the pet into the playing state. Vitals are untouched here; the
// mini-game outcome lands later through ApplyGameResult.
func (s CareService) Play(p Pet, now time.Time) (Pet, Decline) {
	if d := GuardCanAct(p); d != DeclineNone {
		return p, d
	}

	p.State = StatePlaying
	p.LastPlayed = now
	p.UpdatedAt = now
	return p, DeclineNone
}

func (s CareService) Sleep(p Pet, now time.Time) (Pet, Decline) {
	if d := GuardCanAct(p); d != DeclineNone {
		return p, d
	}

	p.State = StateSleeping
	p.SleepStartedAt = now
	p.UpdatedAt = now
	return p, DeclineNone
}

// Wake restores health in proportion to time actually slept, measured from
// the sleep-start stamp.
func (s CareService) Wake(p Pet, now time.Time) (Pet, Decline) {
	if p.State != StateSleeping {
		return p, DeclineNotSleeping
	}

	slept := 0
	if !p.SleepStartedAt.IsZero() {
		slept = int(now.Sub(p.SleepStartedAt) / time.Minute)
	}
	if slept > 0 {
		p.SetHealth(p.Health + SleepHealthPerMinute*slept)
	}
	p.State = StateIdle
	p.SleepStartedAt = time.Time{}
	p.UpdatedAt = now
	return p, DeclineNone
}

// Heal clears sickness and restores a chunk of health. It works in any
// activity state but requires the pet to actually be sick.
func (s CareService) Heal(p Pet, now time.Time) (Pet, Decline) {
	if !p.Alive {
		return p, DeclineDead
	}
	if !p.Sick {
		return p, DeclineNotSick
	}

	p.Sick = false
	p.SetHealth(p.Health + HealHealthRestore)
	p.UpdatedAt = now
	return p, DeclineNone
}

// ApplyGameResult settles a finished mini-game on a playing pet: happiness
// from the score, tiered coin and experience rewards, and a return to idle.
func (s CareService) ApplyGameResult(p Pet, score int, now time.Time) (Pet, GameResult, Decline) {
	if p.State != StatePlaying {
		return p, GameResult{}, DeclineInvalidState
	}

	gain := happinessFromScore(score)
	p.SetHappiness(p.Happiness + gain)
	p.State = StateIdle
	p.UpdatedAt = now

	return p, GameResult{
		HappinessGain: gain,
		CoinReward:    CoinRewardForScore(score),
		ExpGain:       ExpForScore(score),
		GameScore:     score,
		Success:       true,
		Message:       gradeMessage(score),
	}, DeclineNone
}

// CoinRewardForScore returns the tiered coin payout for a mini-game score.
func CoinRewardForScore(score int) int {
	for _, tier := range coinRewardTiers {
		if score >= tier.MinScore {
			return tier.Coins
		}
	}
	return coinRewardFloor
}

// ExpForScore returns the experience grant for a mini-game score.
func ExpForScore(score int) int {
	return GameExpBase + score/GameExpDivisor
}

func happinessFromScore(score int) int {
	gain := score / 2
	for _, tier := range happinessBonusTiers {
		if score >= tier.MinScore {
			gain += tier.Bonus
			break
		}
	}
	if gain > GameHappinessCap {
		gain = GameHappinessCap
	}
	return gain
}

func gradeMessage(score int) string {
	switch {
	case score >= 90:
		return fmt.Sprintf("Perfect! %d/100", score)
	case score >= 80:
		return fmt.Sprintf("Great! %d/100", score)
	case score >= 70:
		return fmt.Sprintf("Good! %d/100", score)
	case score >= 60:
		return fmt.Sprintf("OK! %d/100", score)
	default:
		return fmt.Sprintf("Practice more! %d/100", score)
	}
}

// GuardCanAct is the shared precondition for care actions: the pet must be
// alive, well, and idle. Checked before any resource lookups so a blocked
// pet declines on state, not on inventory.
func GuardCanAct(p Pet) Decline {
	if !p.Alive {
		return DeclineDead
	}
	if !p.CanAct() {
		return DeclineInvalidState
	}
	return DeclineNone
}
