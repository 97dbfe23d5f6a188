package zdebug

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Rules is a parsed sequence of directives configuring an [Environment].
// Within one Rules value, later directives win over earlier ones.
// The zero value is a valid, empty rule set.
type Rules struct {
	// Each op mutates environment state while Apply holds the write lock.
	ops []func(*Environment)
}

// RulesFromString parses a comma-separated list of directives.
func RulesFromString(in string) (Rules, error) {
	var r Rules
	if in == "" {
		// Splitting an empty string yields one empty directive,
		// which would be rejected below. Return early instead.
		return r, nil
	}

	for _, d := range strings.Split(in, ",") {
		if err := r.parseSingleDirective(d); err != nil {
			return Rules{}, err
		}
	}

	return r, nil
}

// ParseRules parses directives from rd, one line at a time.
// Compared to [RulesFromString], ParseRules allows for comments and blank lines.
func ParseRules(rd io.Reader) (Rules, error) {
	var r Rules

	scanner := bufio.NewScanner(rd)
	// Directives are short lines;
	// no need for the scanner's default 64k buffer.
	scanner.Buffer(make([]byte, 0, 512), 511)

	lineIdx := 0
	nErrs := 0
	const errLimit = 5
	var errs error
	for scanner.Scan() {
		lineIdx++
		line := scanner.Text()

		// Allowed only in the line-based form.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := r.parseSingleDirective(line); err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", lineIdx, err))
			nErrs++
			if nErrs >= errLimit {
				errs = errors.Join(errs, fmt.Errorf("stopped parsing after %d errors", nErrs))
				return Rules{}, errs
			}
		}
	}
	if err := scanner.Err(); err != nil {
		errs = errors.Join(errs, err)
	}

	if errs != nil {
		return Rules{}, errs
	}

	return r, nil
}

func (r *Rules) parseSingleDirective(d string) error {
	if len(d) == 0 {
		return errors.New("received empty directive")
	}

	if key, val, isKV := strings.Cut(d, "="); isKV {
		switch key {
		case "asserts":
			var on bool
			switch val {
			case "on":
				on = true
			case "off":
				on = false
			default:
				return fmt.Errorf("invalid directive %q: asserts must be on or off", d)
			}
			r.ops = append(r.ops, func(e *Environment) { e.assertsEnabled = on })
			return nil

		case "exit-action":
			a, err := ParseExitAction(val)
			if err != nil {
				return fmt.Errorf("invalid directive %q: %w", d, err)
			}
			r.ops = append(r.ops, func(e *Environment) { e.exitAction = a })
			return nil

		case "debug-action":
			a, err := ParseAction(val)
			if err != nil {
				return fmt.Errorf("invalid directive %q: %w", d, err)
			}
			r.ops = append(r.ops, func(e *Environment) { e.debugAction = a })
			return nil

		default:
			return fmt.Errorf("invalid directive %q: unknown key %q", d, key)
		}
	}

	if strings.Contains(d, "!") {
		tag, wasPrefix := strings.CutPrefix(d, "!")
		if !wasPrefix || tag == "" || strings.Contains(tag, "!") {
			return fmt.Errorf("invalid directive %q: ! may only occur at the start of the directive, indicating a disabled tag", d)
		}
		r.ops = append(r.ops, func(e *Environment) { e.disableDebugLocked(tag) })
		return nil
	}

	// No key and no exclamation point, so this enables a tag.
	tag := d
	r.ops = append(r.ops, func(e *Environment) { e.enableDebugLocked(tag) })
	return nil
}

// Apply performs every directive in r against e, in order,
// as one atomic operation with respect to e's other methods.
// State not mentioned by any directive is left as is.
func (e *Environment) Apply(r Rules) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, op := range r.ops {
		op(e)
	}
}
