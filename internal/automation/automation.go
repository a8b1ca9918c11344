package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/cubelife/internal/app"
	"github.com/san-kum/cubelife/internal/config"
	"github.com/san-kum/cubelife/internal/life"
	"github.com/san-kum/cubelife/internal/rotation"
	"gopkg.in/yaml.v3"
)

var ErrUnknownAction = errors.New("automation: unknown action")

// Scenario is a scripted sequence of board commands.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Board       *config.Config `yaml:"board"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is one command. Only the fields its action reads are used.
type ScenarioStep struct {
	Action  string         `yaml:"action"`
	Count   int            `yaml:"count"`
	Pattern string         `yaml:"pattern"`
	At      *life.Coord    `yaml:"at"`
	Cells   []life.Coord   `yaml:"cells"`
	From    rotation.Point `yaml:"from"`
	To      rotation.Point `yaml:"to"`
	Width   float64        `yaml:"width"`
}

// StepResult records the board after a step ran.
type StepResult struct {
	Step       int
	Action     string
	Generation int
	Population int
	Visible    int
	Angles     rotation.Angles
	Mobile     bool
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// board fields missing from the file keep their defaults
	scenario := Scenario{Board: config.DefaultConfig()}
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// Config is the board the scenario starts on.
func (s *Scenario) Config() *config.Config {
	if s.Board == nil {
		return config.DefaultConfig()
	}
	return s.Board
}

// RunScenario executes all steps against s, stopping at the first failure.
func RunScenario(ctx context.Context, scenario *Scenario, s *app.Session) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if err := apply(s, step); err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, StepResult{
			Step:       i + 1,
			Action:     step.Action,
			Generation: s.Grid().Generation(),
			Population: s.Grid().Population(),
			Visible:    s.Scene().VisibleCount(),
			Angles:     s.Rotation().Angles(),
			Mobile:     s.Scaler().Mobile(),
		})
	}

	return results, nil
}

func apply(s *app.Session, step ScenarioStep) error {
	switch step.Action {
	case "step":
		for n := max(step.Count, 1); n > 0; n-- {
			s.StepOnce()
		}
	case "clear":
		s.Clear()
	case "randomize":
		s.Randomize()
	case "colorize":
		s.ToggleColorize()
	case "toggle":
		for _, c := range step.Cells {
			s.ToggleCell(c)
		}
	case "pattern":
		p, err := life.LookupPattern(step.Pattern)
		if err != nil {
			return err
		}
		at := s.Grid().Center(p)
		if step.At != nil {
			at = *step.At
		}
		return s.Grid().Apply(p, at)
	case "drag":
		rot := s.Rotation()
		if !rot.Press(step.From) {
			return nil
		}
		rot.Move(step.To)
		rot.Release()
	case "resize":
		s.Resize(step.Width)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, step.Action)
	}
	return nil
}
