package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ovh/ovhdata-cli/internal/adapters/driving/tui/picker"
	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

// Connector parameter types.
const (
	paramString  = "string"
	paramSecret  = "secret"
	paramInt     = "int"
	paramBoolean = "boolean"
)

// resolveParameters merges the values given on the command line over the
// current ones, then prompts for the mandatory connector parameters still
// missing. It reports whether anything was prompted.
func resolveParameters(
	ctx context.Context,
	given, current []domain.Parameter,
	connector []domain.ConnectorParameter,
) ([]domain.Parameter, bool, error) {
	merged := make([]domain.Parameter, 0, len(current)+len(given))
	index := make(map[string]int, len(current)+len(given))
	for _, p := range append(append([]domain.Parameter{}, current...), given...) {
		if i, ok := index[p.Name]; ok {
			merged[i] = p
			continue
		}
		index[p.Name] = len(merged)
		merged = append(merged, p)
	}

	prompted := false
	for _, cp := range domain.MissingMandatory(connector, merged) {
		value, err := askParameter(ctx, cp)
		if err != nil {
			return nil, prompted, err
		}
		prompted = true
		merged = append(merged, domain.Parameter{Name: cp.Name, Value: value})
	}
	return merged, prompted, nil
}

func validatorHelp(cp domain.ConnectorParameter) string {
	switch cp.Type {
	case paramBoolean:
		return "true or false"
	case paramInt:
		if cp.Validator == nil || cp.Validator.Min == cp.Validator.Max {
			return "any integer"
		}
		return fmt.Sprintf("integer between %d and %d", cp.Validator.Min, cp.Validator.Max)
	default:
		return "string"
	}
}

func askParameter(ctx context.Context, cp domain.ConnectorParameter) (string, error) {
	prompt := fmt.Sprintf("%s (%s)", cp.Name, validatorHelp(cp))
	if cp.Description != "" {
		prompt = fmt.Sprintf("%s - %s", prompt, cp.Description)
	}
	initial := ""
	if cp.Default != nil {
		initial = *cp.Default
	}

	var (
		value string
		err   error
	)
	switch cp.Type {
	case paramSecret:
		value, err = prompter.Secret(prompt)
	case paramBoolean:
		start := 0
		if b, perr := strconv.ParseBool(initial); perr == nil && b {
			start = 1
		}
		var idx int
		idx, err = prompter.Select(ctx, prompt, []picker.Item{{Label: "false"}, {Label: "true"}}, start)
		value = strconv.FormatBool(idx == 1)
	default:
		value, err = prompter.Input(prompt, initial)
	}
	if err != nil {
		return "", err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: parameter %s is mandatory", domain.ErrInvalidInput, cp.Name)
	}
	if cp.Type == paramInt {
		if err := checkInt(cp, value); err != nil {
			return "", err
		}
	}
	return value, nil
}

func checkInt(cp domain.ConnectorParameter, value string) error {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: parameter %s must be an integer", domain.ErrInvalidInput, cp.Name)
	}
	v := cp.Validator
	if v == nil || v.Min == v.Max {
		return nil
	}
	if n < v.Min || n > v.Max {
		return fmt.Errorf("%w: parameter %s must be between %d and %d",
			domain.ErrInvalidInput, cp.Name, v.Min, v.Max)
	}
	return nil
}

// hideSecretParameters masks the values of secret-typed parameters for display.
func hideSecretParameters(params []domain.Parameter, connector []domain.ConnectorParameter) []domain.Parameter {
	secret := make(map[string]bool, len(connector))
	for _, cp := range connector {
		if cp.Type == paramSecret {
			secret[cp.Name] = true
		}
	}
	out := make([]domain.Parameter, len(params))
	for i, p := range params {
		if secret[p.Name] {
			p.Value = domain.HiddenSecret
		}
		out[i] = p
	}
	return out
}
