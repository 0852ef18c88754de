package config

import "strings"

// BotDifficulty affects how quickly and how aggressively the scripted
// player fights.
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

func (d BotDifficulty) String() string {
	switch d {
	case BotDifficultyEasy:
		return "easy"
	case BotDifficultyNormal:
		return "normal"
	case BotDifficultyHard:
		return "hard"
	}
	return "unknown"
}

// ParseBotDifficulty maps a name to a difficulty, defaulting to normal.
func ParseBotDifficulty(s string) BotDifficulty {
	switch strings.ToLower(s) {
	case "easy":
		return BotDifficultyEasy
	case "hard":
		return BotDifficultyHard
	}
	return BotDifficultyNormal
}

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay    float64 // Seconds between attack presses
	AttackRange      float64 // Horizontal distance to the boss centre to start attacking
	RetreatRange     float64 // Distance kept from the boss while retreating
	RetreatThreshold float64 // Health ratio below which the bot retreats in phase 2
	UseBurst         bool
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:    0.5,
				AttackRange:      2.5,
				RetreatRange:     12,
				RetreatThreshold: 0.2,
			},
			BotDifficultyNormal: {
				ReactionDelay:    0.25,
				AttackRange:      2.5,
				RetreatRange:     15,
				RetreatThreshold: 0.3,
				UseBurst:         true,
			},
			BotDifficultyHard: {
				ReactionDelay:    0.05,
				AttackRange:      2.5,
				RetreatRange:     18,
				RetreatThreshold: 0.15,
				UseBurst:         true,
			},
		},
	}
}
