package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/imamik/srmkit/internal/config"
)

var (
	// interactive reports whether prompts can be shown.
	interactive = isInteractiveTTY

	// runPrompt asks for the missing region and rule.
	runPrompt = promptMissing
)

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// needsPrompt reports whether region or rule is missing. A rule of the wrong
// type is not prompted for; it is rejected by validation.
func needsPrompt(cfg *config.Config) bool {
	return cfg.Region == "" || cfg.Rule == nil
}

// promptMissing fills region and rule on an interactive terminal.
func promptMissing(ctx context.Context, cfg *config.Config) error {
	region := cfg.Region
	rule, _ := cfg.Rule.(string)

	var fields []huh.Field
	if cfg.Region == "" {
		fields = append(fields, huh.NewInput().
			Title("Region").
			Description("Region the resources are provisioned in").
			Placeholder("cn-hangzhou").
			Value(&region).
			Validate(requireValue("region")))
	}
	if cfg.Rule == nil {
		fields = append(fields, huh.NewInput().
			Title("Rule").
			Description("Names the network, subnets, security group and file share").
			Placeholder("my-app").
			Value(&rule).
			Validate(requireValue("rule")))
	}
	if len(fields) == 0 {
		return nil
	}

	if err := huh.NewForm(huh.NewGroup(fields...).Title("Provisioning Target")).RunWithContext(ctx); err != nil {
		return fmt.Errorf("prompt canceled: %w", err)
	}

	cfg.Region = strings.TrimSpace(region)
	if cfg.Rule == nil {
		cfg.Rule = strings.TrimSpace(rule)
	}
	return nil
}

func requireValue(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}
