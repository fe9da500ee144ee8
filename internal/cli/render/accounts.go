package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// AccountsRenderer renders the node's accounts
type AccountsRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewAccountsRenderer creates a new accounts renderer
func NewAccountsRenderer(out io.Writer, format config.OutputFormat) Renderer[*usecase.ListAccountsResult] {
	return &AccountsRenderer{out: out, format: format}
}

type accountView struct {
	Address string `json:"address" yaml:"address"`
	Balance string `json:"balance" yaml:"balance"`
}

type accountsView struct {
	ChainID  uint64        `json:"chainId" yaml:"chainId"`
	Accounts []accountView `json:"accounts" yaml:"accounts"`
}

// Render writes the account list in the configured format
func (r *AccountsRenderer) Render(result *usecase.ListAccountsResult) error {
	if r.format != config.OutputText {
		return writeStructured(r.out, r.format, accountsView{
			ChainID: result.ChainID,
			Accounts: lo.Map(result.Accounts, func(a domain.Account, _ int) accountView {
				return accountView{Address: a.Address.Hex(), Balance: valueOrZero(a.Balance).String()}
			}),
		})
	}

	if len(result.Accounts) == 0 {
		fmt.Fprintln(r.out, "No accounts managed by the node")
		return nil
	}

	fmt.Fprintln(r.out, headerStyle.Sprintf("Accounts on chain %d:", result.ChainID))
	fmt.Fprintln(r.out)

	t := newTable()
	t.AppendHeader(table.Row{"#", "Address", "Balance (ETH)"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	for i, account := range result.Accounts {
		t.AppendRow(table.Row{i, account.Address.Hex(), domain.FormatEther(valueOrZero(account.Balance))})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}
