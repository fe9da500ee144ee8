package render

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out    io.Writer
	format config.OutputFormat
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, format config.OutputFormat) Renderer[*usecase.ListNetworksResult] {
	return &NetworksRenderer{
		out:    out,
		format: format,
	}
}

type networkView struct {
	Name    string `json:"name" yaml:"name"`
	RPCURL  string `json:"rpcUrl,omitempty" yaml:"rpcUrl,omitempty"`
	ChainID uint64 `json:"chainId,omitempty" yaml:"chainId,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Render renders the list of networks
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if r.format != config.OutputText {
		return writeStructured(r.out, r.format, lo.Map(result.Networks, func(n usecase.NetworkStatus, _ int) networkView {
			view := networkView{Name: n.Name, RPCURL: n.RPCURL, ChainID: n.ChainID}
			if n.Error != nil {
				view.Error = n.Error.Error()
			}
			return view
		}))
	}

	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in foundry.toml [rpc_endpoints]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, network := range result.Networks {
		if network.Error != nil {
			fmt.Fprintf(r.out, "  %s\n", FormatError(fmt.Sprintf("%s - Error: %v", network.Name, network.Error)))
		} else {
			fmt.Fprintf(r.out, "  %s\n", FormatSuccess(fmt.Sprintf("%s - Chain ID: %d", network.Name, network.ChainID)))
		}
	}

	return nil
}
