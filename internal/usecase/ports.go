package usecase

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/sling/internal/domain"
)

// ArtifactRepository locates and loads compiled contract artifacts
type ArtifactRepository interface {
	// Resolve turns a path or contract name into an artifact file path
	Resolve(ctx context.Context, ref string) (string, error)
	// Load reads an artifact; contractName selects within multi-contract files
	Load(ctx context.Context, path string, contractName string) (*domain.Artifact, error)
	List(ctx context.Context) ([]domain.ArtifactRef, error)
}

// DeploymentEncoder builds contract-creation calldata
type DeploymentEncoder interface {
	EncodeDeployment(artifact *domain.Artifact, args []string) ([]byte, error)
}

// NodeClient talks to the configured EVM node
type NodeClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	Accounts(ctx context.Context) ([]common.Address, error)
	Balance(ctx context.Context, account common.Address) (*big.Int, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, tx domain.CreationTx) (uint64, error)
	// SendTransaction sends from a node-managed account; the node signs
	SendTransaction(ctx context.Context, tx domain.CreationTx) (common.Hash, error)
	// SendSignedTransaction signs locally with key and sends the raw transaction
	SendSignedTransaction(ctx context.Context, key *ecdsa.PrivateKey, tx domain.CreationTx) (common.Hash, error)
	WaitForReceipt(ctx context.Context, hash common.Hash) (*domain.Receipt, error)
	CodeAt(ctx context.Context, account common.Address) ([]byte, error)
}

// ChainIDProbe fetches the chain ID behind an arbitrary node URL
type ChainIDProbe interface {
	ProbeChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// AccountSelector picks one account out of several
type AccountSelector interface {
	SelectAccount(ctx context.Context, accounts []common.Address, prompt string) (common.Address, error)
}

// Progress tracking interfaces

// ExecutionStage represents a stage in the deployment process
type ExecutionStage string

const (
	StageLoading   ExecutionStage = "Loading"
	StageAccounts  ExecutionStage = "Accounts"
	StageSending   ExecutionStage = "Sending"
	StageMining    ExecutionStage = "Mining"
	StageCompleted ExecutionStage = "Completed"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   ExecutionStage
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}
