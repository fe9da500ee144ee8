package usecase

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
)

// SenderKind tells who signs the deployment transaction
type SenderKind string

const (
	SenderNode       SenderKind = "node"
	SenderPrivateKey SenderKind = "private-key"
)

// DeployContractParams contains parameters for deploying a contract
type DeployContractParams struct {
	ArtifactRef  string   // path to an artifact JSON file, or a contract name
	ContractName string   // selects a contract inside multi-contract artifacts
	Args         []string // constructor arguments, passed through to the encoder
}

// DeployContractResult contains the result of a deployment
type DeployContractResult struct {
	Artifact   *domain.Artifact
	ChainID    uint64
	Sender     common.Address
	SenderKind SenderKind
	Tx         domain.CreationTx
	DryRun     bool

	// Populated once the transaction is mined
	TxHash          common.Hash
	ContractAddress common.Address
	BlockNumber     uint64
	GasUsed         uint64
}

// DeployContract loads an artifact and sends its contract-creation transaction
type DeployContract struct {
	config    *config.RuntimeConfig
	artifacts ArtifactRepository
	encoder   DeploymentEncoder
	node      NodeClient
	selector  AccountSelector
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	artifacts ArtifactRepository,
	encoder DeploymentEncoder,
	node NodeClient,
	selector AccountSelector,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		artifacts: artifacts,
		encoder:   encoder,
		node:      node,
		selector:  selector,
		progress:  progress,
		log:       log,
	}
}

// Run executes the deployment
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	result, err := uc.run(ctx, params)
	if err != nil {
		uc.progress.Error("deployment failed")
		return nil, err
	}
	return result, nil
}

func (uc *DeployContract) run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	// Parse transaction settings up front so bad flags fail before any I/O
	gasLimit, err := domain.ParseGasLimit(uc.config.Gas)
	if err != nil {
		return nil, err
	}
	gasPrice, err := domain.ParseGasPrice(uc.config.GasPrice)
	if err != nil {
		return nil, err
	}
	value, err := domain.ParseWei(uc.config.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid value %q: %w", uc.config.Value, err)
	}

	// Stage 1: Load the artifact
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageLoading, Message: "Loading artifact", Spinner: true})
	path, err := uc.artifacts.Resolve(ctx, params.ArtifactRef)
	if err != nil {
		return nil, err
	}
	artifact, err := uc.artifacts.Load(ctx, path, params.ContractName)
	if err != nil {
		return nil, err
	}
	data, err := uc.encoder.EncodeDeployment(artifact, params.Args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode deployment of %s: %w", artifact.Name, err)
	}
	uc.log.Debug("artifact loaded", "name", artifact.Name, "path", artifact.Path, "format", artifact.Format, "calldata", len(data))

	// Stage 2: Fetch accounts and pick the sender
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageAccounts, Message: "Fetching accounts", Spinner: true})
	chainID, err := uc.node.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	accounts, err := uc.node.Accounts(ctx)
	if err != nil {
		// Hosted nodes often reject eth_accounts; a local key does not need them
		if uc.config.PrivateKey == "" {
			return nil, fmt.Errorf("failed to get accounts: %w", err)
		}
		uc.log.Debug("node accounts unavailable, signing locally", "error", err)
		accounts = []common.Address{}
	}
	uc.log.Debug("node accounts", "chainId", chainID, "count", len(accounts))

	sender, key, err := uc.resolveSender(ctx, accounts)
	if err != nil {
		return nil, err
	}

	// Stage 3: Build the creation transaction
	tx := domain.CreationTx{
		From:  sender,
		Data:  data,
		Value: value,
	}
	if gasPrice.Auto {
		if tx.GasPrice, err = uc.node.SuggestGasPrice(ctx); err != nil {
			return nil, fmt.Errorf("failed to get gas price: %w", err)
		}
	} else {
		tx.GasPrice = gasPrice.Value
	}
	if gasLimit.Auto {
		if tx.Gas, err = uc.node.EstimateGas(ctx, tx); err != nil {
			return nil, fmt.Errorf("failed to estimate gas: %w", err)
		}
		uc.progress.Info(fmt.Sprintf("Estimated gas: %d", tx.Gas))
	} else {
		tx.Gas = gasLimit.Value.Uint64()
	}

	result := &DeployContractResult{
		Artifact:   artifact,
		ChainID:    chainID.Uint64(),
		Sender:     sender,
		SenderKind: SenderNode,
		Tx:         tx,
		DryRun:     uc.config.DryRun,
	}
	if key != nil {
		result.SenderKind = SenderPrivateKey
	}

	if uc.config.DryRun {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted, Message: "Dry run, transaction not sent"})
		return result, nil
	}

	// Stage 4: Send and wait for the receipt
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageSending, Message: "Sending transaction", Spinner: true})
	var hash common.Hash
	if key != nil {
		hash, err = uc.node.SendSignedTransaction(ctx, key, tx)
	} else {
		hash, err = uc.node.SendTransaction(ctx, tx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to send deployment transaction: %w", err)
	}
	result.TxHash = hash
	uc.log.Debug("deployment transaction sent", "hash", hash.Hex())

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageMining, Message: fmt.Sprintf("Waiting for %s", hash.Hex()), Spinner: true})
	receipt, err := uc.node.WaitForReceipt(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt for %s: %w", hash.Hex(), err)
	}
	result.BlockNumber = receipt.BlockNumber
	result.GasUsed = receipt.GasUsed

	if receipt.Status == types.ReceiptStatusFailed {
		return nil, fmt.Errorf("%w: %s (gas used %d of %d)", domain.ErrDeploymentReverted, hash.Hex(), receipt.GasUsed, tx.Gas)
	}
	if receipt.ContractAddress == (common.Address{}) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoContractAddress, hash.Hex())
	}

	code, err := uc.node.CodeAt(ctx, receipt.ContractAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to check code at %s: %w", receipt.ContractAddress.Hex(), err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoCode, receipt.ContractAddress.Hex())
	}

	result.ContractAddress = receipt.ContractAddress
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted, Message: "Deployed"})

	return result, nil
}

// resolveSender picks the deploying account. A configured private key wins,
// then an explicit --from, then the node's own accounts.
func (uc *DeployContract) resolveSender(ctx context.Context, accounts []common.Address) (common.Address, *ecdsa.PrivateKey, error) {
	var from *common.Address
	if uc.config.From != "" {
		if !common.IsHexAddress(uc.config.From) {
			return common.Address{}, nil, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, uc.config.From)
		}
		addr := common.HexToAddress(uc.config.From)
		from = &addr
	}

	if uc.config.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(uc.config.PrivateKey, "0x"))
		if err != nil {
			return common.Address{}, nil, fmt.Errorf("invalid private key: %w", err)
		}
		addr := crypto.PubkeyToAddress(key.PublicKey)
		if from != nil && *from != addr {
			return common.Address{}, nil, fmt.Errorf("--from %s does not match the private key's address %s", from.Hex(), addr.Hex())
		}
		return addr, key, nil
	}

	if from != nil {
		if !lo.Contains(accounts, *from) {
			return common.Address{}, nil, fmt.Errorf("%w: %s", domain.ErrSenderNotAvailable, from.Hex())
		}
		return *from, nil, nil
	}

	switch {
	case len(accounts) == 0:
		return common.Address{}, nil, fmt.Errorf("%w: the node manages no accounts, pass --private-key", domain.ErrNoSender)
	case len(accounts) == 1 || uc.config.NonInteractive:
		return accounts[0], nil, nil
	}

	// The prompt needs the terminal to itself
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageAccounts, Message: "Choosing sender"})
	addr, err := uc.selector.SelectAccount(ctx, accounts, "Select deployer account")
	if err != nil {
		return common.Address{}, nil, err
	}
	return addr, nil, nil
}

// Cost returns the upper bound of the fee the transaction can burn
func (r *DeployContractResult) Cost() *big.Int {
	if r.Tx.GasPrice == nil {
		return new(big.Int)
	}
	return new(big.Int).Mul(r.Tx.GasPrice, new(big.Int).SetUint64(r.Tx.Gas))
}
