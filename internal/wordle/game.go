package wordle

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/core"
	"github.com/vovakirdan/tui-wordle/internal/registry"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

// Mode selects how the target word is chosen.
type Mode string

const (
	ModeClassic Mode = "classic" // Uniformly random target per round
	ModeDaily   Mode = "daily"   // One target per UTC day
)

// Phase is the presentation state of the current round.
type Phase int

const (
	PhaseAwaitingInput Phase = iota // Player is composing a guess
	PhaseSubmitted                  // Guess scored, tiles are flipping
	PhaseRoundOver                  // Round finished, play-again prompt shown
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingInput:
		return "awaiting_input"
	case PhaseSubmitted:
		return "submitted"
	case PhaseRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}

// User-visible messages.
const (
	msgNotEnoughLetters = "Not enough letters!"
	msgNotInWordList    = "Not in word list!"
	msgCorrect          = "Correct!"
)

// Game is a playable round with input handling and the reveal animation.
type Game struct {
	mode  Mode
	vocab *words.Vocabulary
	anim  config.AnimationConfig
	salt  string
	now   func() time.Time
	rng   *rand.Rand
	tick  uint64

	round   *Round
	current []byte
	phase   Phase
	reveal  *Reveal

	message      string
	messageTicks int // Remaining ticks; 0 with a message means it stays

	flipTicks    int
	staggerTicks int
	flashTicks   int

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game in the given mode. A missing vocabulary falls back to the
// embedded word list and missing timing to the default configuration.
func New(mode Mode, env registry.Env) *Game {
	vocab := env.Vocabulary
	if vocab.Len() == 0 {
		vocab = words.NewVocabulary(words.Fallback())
	}
	anim := env.Config.Animation
	if anim.FlipMS <= 0 || anim.StaggerMS < 0 || anim.FlashMS <= 0 {
		anim = config.DefaultConfig().Animation
	}
	now := env.Now
	if now == nil {
		now = time.Now
	}
	return &Game{
		mode:  mode,
		vocab: vocab,
		anim:  anim,
		salt:  env.Config.Daily.Salt,
		now:   now,
	}
}

func init() {
	registry.Register(string(ModeClassic), func(env registry.Env) registry.Game {
		return New(ModeClassic, env)
	})
	registry.Register(string(ModeDaily), func(env registry.Env) registry.Game {
		return New(ModeDaily, env)
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDaily {
		return "Wordle (Daily)"
	}
	return "Wordle"
}

// Reset starts a fresh round with a new target.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.flipTicks = cfg.Ticks(g.anim.Flip())
	g.staggerTicks = 0
	if g.anim.StaggerMS > 0 {
		g.staggerTicks = cfg.Ticks(g.anim.Stagger())
	}
	g.flashTicks = cfg.Ticks(g.anim.Flash())

	g.round = NewRound(g.pickTarget(), g.vocab)
	g.current = g.current[:0]
	g.phase = PhaseAwaitingInput
	g.reveal = nil
	g.message = ""
	g.messageTicks = 0

	g.checkScreenSize()
}

// pickTarget chooses the secret word for the new round.
func (g *Game) pickTarget() string {
	if g.mode == ModeDaily {
		return g.vocab.At(DailyIndex(g.now(), g.salt, g.vocab.Len()))
	}
	return g.vocab.Random(g.rng)
}

// Resize adapts to a new terminal size without touching the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the grid.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.updateMessage()

	switch g.phase {
	case PhaseAwaitingInput:
		g.handleInput(in)
	case PhaseSubmitted:
		if g.reveal.Done(g.tick) {
			g.finishReveal()
		}
	case PhaseRoundOver:
		// Play-again is decided by the platform
	}

	return core.StepResult{State: g.State()}
}

// handleInput applies typed letters, erase and submit in arrival order.
func (g *Game) handleInput(in core.InputFrame) {
	for _, ev := range in.Events {
		switch ev.Action {
		case core.ActionLetter:
			r := ev.Rune | 0x20 // ASCII lowercase
			if r >= 'a' && r <= 'z' && len(g.current) < WordLen {
				g.current = append(g.current, byte(r))
			}
		case core.ActionErase:
			if len(g.current) > 0 {
				g.current = g.current[:len(g.current)-1]
			}
		case core.ActionConfirm:
			if g.submit() {
				return
			}
		}
	}
}

// submit scores the current guess. Returns true if it was accepted.
func (g *Game) submit() bool {
	_, err := g.round.Submit(string(g.current))
	switch {
	case errors.Is(err, ErrNotEnoughLetters):
		g.flash(msgNotEnoughLetters)
		return false
	case errors.Is(err, ErrNotInWordList):
		g.flash(msgNotInWordList)
		return false
	case err != nil:
		return false
	}

	g.reveal = &Reveal{
		Row:     g.round.Attempts() - 1,
		Start:   g.tick,
		Flip:    g.flipTicks,
		Stagger: g.staggerTicks,
	}
	g.current = g.current[:0]
	g.message = ""
	g.phase = PhaseSubmitted
	return true
}

// finishReveal leaves the Submitted phase once all tiles have flipped.
func (g *Game) finishReveal() {
	if !g.round.Over() {
		g.phase = PhaseAwaitingInput
		return
	}

	g.phase = PhaseRoundOver
	if g.round.Outcome() == Won {
		g.setMessage(msgCorrect)
	} else {
		g.setMessage(strings.ToUpper(g.round.Target()))
	}
}

// flash shows a message for the configured flash duration.
func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = g.flashTicks
}

// setMessage shows a message until replaced.
func (g *Game) setMessage(msg string) {
	g.message = msg
	g.messageTicks = 0
}

// updateMessage expires flashed messages.
func (g *Game) updateMessage() {
	if g.messageTicks == 0 {
		return
	}
	g.messageTicks--
	if g.messageTicks == 0 {
		g.message = ""
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	state := core.GameState{
		GameOver: g.phase == PhaseRoundOver,
		Paused:   g.tooSmall,
	}
	if state.GameOver {
		state.Score = g.round.Points()
	}
	return state
}

// Result describes the round for persistence.
func (g *Game) Result() core.RoundResult {
	records := g.round.Records()
	guesses := make([]string, len(records))
	for i, rec := range records {
		guesses[i] = rec.Word
	}
	return core.RoundResult{
		Mode:     string(g.mode),
		Target:   g.round.Target(),
		Guesses:  guesses,
		Won:      g.round.Outcome() == Won,
		Attempts: g.round.Attempts(),
		Score:    g.round.Points(),
	}
}

// Replayable reports whether a finished round may be followed by another.
// The daily word is played once.
func (g *Game) Replayable() bool {
	return g.mode != ModeDaily
}

// Phase returns the presentation state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Message returns the message currently displayed, if any.
func (g *Game) Message() string {
	return g.message
}

// Current returns the guess being composed.
func (g *Game) Current() string {
	return string(g.current)
}

// Round returns the active round.
func (g *Game) Round() *Round {
	return g.round
}
