package render

import (
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// DeployRenderer renders the outcome of a deployment
type DeployRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer, format config.OutputFormat) Renderer[*usecase.DeployContractResult] {
	return &DeployRenderer{out: out, format: format}
}

type deployView struct {
	Contract    string `json:"contract" yaml:"contract"`
	Artifact    string `json:"artifact" yaml:"artifact"`
	ChainID     uint64 `json:"chainId" yaml:"chainId"`
	Sender      string `json:"sender" yaml:"sender"`
	SenderKind  string `json:"senderKind" yaml:"senderKind"`
	DryRun      bool   `json:"dryRun" yaml:"dryRun"`
	Gas         uint64 `json:"gas" yaml:"gas"`
	GasPrice    string `json:"gasPrice" yaml:"gasPrice"`
	Value       string `json:"value" yaml:"value"`
	DataSize    int    `json:"dataSize" yaml:"dataSize"`
	Address     string `json:"address,omitempty" yaml:"address,omitempty"`
	TxHash      string `json:"txHash,omitempty" yaml:"txHash,omitempty"`
	BlockNumber uint64 `json:"blockNumber,omitempty" yaml:"blockNumber,omitempty"`
	GasUsed     uint64 `json:"gasUsed,omitempty" yaml:"gasUsed,omitempty"`
}

// Render writes the deployment result in the configured format
func (r *DeployRenderer) Render(result *usecase.DeployContractResult) error {
	if r.format != config.OutputText {
		return writeStructured(r.out, r.format, newDeployView(result))
	}

	if result.DryRun {
		return r.renderDryRun(result)
	}

	fmt.Fprintf(r.out, "Contract deployed at address: %s\n", addressStyle.Sprint(result.ContractAddress.Hex()))
	fmt.Fprintln(r.out, kvTable([][2]string{
		{"Contract", result.Artifact.Name},
		{"Transaction", result.TxHash.Hex()},
		{"Block", strconv.FormatUint(result.BlockNumber, 10)},
		{"Sender", fmt.Sprintf("%s (%s)", result.Sender.Hex(), result.SenderKind)},
		{"Gas used", fmt.Sprintf("%d / %d", result.GasUsed, result.Tx.Gas)},
	}))
	return nil
}

func (r *DeployRenderer) renderDryRun(result *usecase.DeployContractResult) error {
	fmt.Fprintln(r.out, FormatWarning("Dry run, transaction not sent"))
	fmt.Fprintln(r.out, kvTable([][2]string{
		{"Contract", fmt.Sprintf("%s (%s)", result.Artifact.Name, result.Artifact.Path)},
		{"Chain ID", strconv.FormatUint(result.ChainID, 10)},
		{"Sender", fmt.Sprintf("%s (%s)", result.Sender.Hex(), result.SenderKind)},
		{"Gas", strconv.FormatUint(result.Tx.Gas, 10)},
		{"Gas price", formatWei(result.Tx.GasPrice)},
		{"Value", domain.FormatEther(valueOrZero(result.Tx.Value)) + " ETH"},
		{"Max cost", domain.FormatEther(result.Cost()) + " ETH"},
		{"Data", fmt.Sprintf("%d bytes", len(result.Tx.Data))},
	}))
	return nil
}

func newDeployView(result *usecase.DeployContractResult) deployView {
	view := deployView{
		Contract:   result.Artifact.Name,
		Artifact:   result.Artifact.Path,
		ChainID:    result.ChainID,
		Sender:     result.Sender.Hex(),
		SenderKind: string(result.SenderKind),
		DryRun:     result.DryRun,
		Gas:        result.Tx.Gas,
		GasPrice:   valueOrZero(result.Tx.GasPrice).String(),
		Value:      valueOrZero(result.Tx.Value).String(),
		DataSize:   len(result.Tx.Data),
	}
	if !result.DryRun {
		view.Address = result.ContractAddress.Hex()
		view.TxHash = result.TxHash.Hex()
		view.BlockNumber = result.BlockNumber
		view.GasUsed = result.GasUsed
	}
	return view
}

func valueOrZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
