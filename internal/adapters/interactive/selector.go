package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
	run    func(prompt *promptui.Select) (int, string, error)
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{
		config: cfg,
		run: func(prompt *promptui.Select) (int, string, error) {
			return prompt.Run()
		},
	}
}

// SelectAccount selects the deploying account from the node's accounts
func (s *SelectorAdapter) SelectAccount(ctx context.Context, accounts []common.Address, prompt string) (common.Address, error) {
	if len(accounts) == 0 {
		return common.Address{}, fmt.Errorf("no accounts provided for selection")
	}
	if len(accounts) == 1 {
		return accounts[0], nil
	}

	// In non-interactive mode, we can't select
	if s.config.NonInteractive {
		return common.Address{}, fmt.Errorf("interactive selection not available in non-interactive mode, pass --from")
	}

	options := formatAccountOptions(accounts)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, / to search, Enter to select"),
	}

	promptSelect := &promptui.Select{
		Label:     prompt,
		Items:     options,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(options),
	}

	index, _, err := s.run(promptSelect)
	if err != nil {
		return common.Address{}, fmt.Errorf("selection cancelled: %w", err)
	}

	return accounts[index], nil
}

// formatAccountOptions creates display strings like "#0  0xf39F…"
func formatAccountOptions(accounts []common.Address) []string {
	options := make([]string, len(accounts))
	for i, account := range accounts {
		options[i] = fmt.Sprintf("#%d  %s", i, account.Hex())
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		// First try simple substring match
		if strings.Contains(item, input) {
			return true
		}

		// Then try fuzzy match
		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.AccountSelector = (*SelectorAdapter)(nil)
