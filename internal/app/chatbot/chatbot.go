/*
Package chatbot answers free-text gaming questions.

Every question is answered on its own: no conversation history is kept between calls.
The default Responder is a canned keyword matcher; when an Ark model is configured the
LLM responder is used and falls back to the canned answers on failure.
*/
package chatbot

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyQuestion is returned for blank questions.
var ErrEmptyQuestion = errors.New("chatbot: question is empty")

// Responder produces an answer for a single question.
type Responder interface {
	Answer(ctx context.Context, question string) (string, error)
}

// Rule maps any of its keywords to a canned answer.
type Rule struct {
	Keywords []string
	Answer   string
}

// DefaultAnswer is returned when no rule matches.
const DefaultAnswer = "I'm not sure about that one. Try asking about strategy, speedruns, boss fights, achievements or a specific genre!"

// DefaultRules is the built-in tip table. Rules are checked in order; the first match wins.
var DefaultRules = []Rule{
	{
		Keywords: []string{"speedrun", "speed run", "faster", "fast"},
		Answer:   "Speedrun tip: learn the route first, then practice individual segments. Save states and a split timer help you find where you lose time.",
	},
	{
		Keywords: []string{"boss", "raid"},
		Answer:   "Boss tip: spend the first attempts only watching attack patterns. Most bosses telegraph their big moves, so dodge first and attack in the openings.",
	},
	{
		Keywords: []string{"achievement", "trophy", "100%", "completion", "collect"},
		Answer:   "Achievement tip: check a list before you start so you don't miss anything tied to a one-time choice. Collectibles are easiest to sweep after the story.",
	},
	{
		Keywords: []string{"fps", "shooter", "aim"},
		Answer:   "Shooter tip: lower your sensitivity until you can track a target smoothly, keep your crosshair at head height and always move between fights.",
	},
	{
		Keywords: []string{"rpg", "level", "grind", "build"},
		Answer:   "RPG tip: focus one build instead of spreading points everywhere, and do side quests near your level; they usually pay more than grinding.",
	},
	{
		Keywords: []string{"strategy", "rts", "economy"},
		Answer:   "Strategy tip: never stop producing workers early on. A strong economy wins more games than a clever opening.",
	},
	{
		Keywords: []string{"platformer", "jump", "precision"},
		Answer:   "Platformer tip: most tough jumps are about timing, not speed. Count the rhythm out loud and release the button at the same beat every time.",
	},
	{
		Keywords: []string{"hello", "hi", "hey"},
		Answer:   "Hi! Ask me anything about games, strategies or tips.",
	},
}

// Canned answers by keyword matching.
type Canned struct {
	rules    []Rule
	fallback string
}

// NewCanned returns a responder over rules. A nil slice uses DefaultRules.
func NewCanned(rules []Rule) *Canned {
	if rules == nil {
		rules = DefaultRules
	}
	return &Canned{rules: rules, fallback: DefaultAnswer}
}

// Answer returns the first rule whose keyword appears as a word or phrase in question.
// Keywords longer than three characters also match as the start of a word, so "boss"
// covers "bosses"; they never match inside a word.
func (c *Canned) Answer(_ context.Context, question string) (string, error) {
	q := normalize(question)
	if q == "" {
		return "", ErrEmptyQuestion
	}

	padded := " " + q + " "
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			kw = normalize(kw)
			if strings.Contains(padded, " "+kw+" ") || (len(kw) > 3 && strings.Contains(padded, " "+kw)) {
				return rule.Answer, nil
			}
		}
	}
	return c.fallback, nil
}

// normalize lowercases s and replaces punctuation other than '%' with spaces.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '%':
			return r
		default:
			return ' '
		}
	}, s)
	return strings.Join(strings.Fields(mapped), " ")
}
