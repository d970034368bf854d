package regenerator

import (
	"fmt"

	"github.com/t14raptor/regen/token"
)

// Config names the runtime helpers the rewritten code calls and the
// parameters appended to every rewritten generator.
type Config struct {
	// Adapter wraps each rewritten function, e.g. GeneratorFunction(fn).
	Adapter string
	// Result builds a {value, done} pair, e.g. generatorResult(x, false).
	Result string
	// ResumeParam receives the value passed to next().
	ResumeParam string
	// StepParam receives the step index.
	StepParam string
}

func DefaultConfig() Config {
	return Config{
		Adapter:     "GeneratorFunction",
		Result:      "generatorResult",
		ResumeParam: "v",
		StepParam:   "step",
	}
}

// withDefaults fills empty fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Adapter == "" {
		c.Adapter = d.Adapter
	}
	if c.Result == "" {
		c.Result = d.Result
	}
	if c.ResumeParam == "" {
		c.ResumeParam = d.ResumeParam
	}
	if c.StepParam == "" {
		c.StepParam = d.StepParam
	}
	return c
}

func (c Config) validate() error {
	for _, f := range []struct{ field, name string }{
		{"adapter", c.Adapter},
		{"result", c.Result},
		{"resume parameter", c.ResumeParam},
		{"step parameter", c.StepParam},
	} {
		if !isIdentifier(f.name) {
			return fmt.Errorf("invalid %s name %q", f.field, f.name)
		}
	}
	if c.ResumeParam == c.StepParam {
		return fmt.Errorf("resume and step parameters are both named %q", c.StepParam)
	}
	return nil
}

func isIdentifier(name string) bool {
	if name == "" || token.IsKeyword(name) {
		return false
	}
	for i, r := range name {
		switch {
		case r == '$', r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
