package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/trebuchet-org/sling/internal/domain"
	"github.com/trebuchet-org/sling/internal/domain/config"
	"github.com/trebuchet-org/sling/internal/usecase"
)

// ClientAdapter implements the NodeClient interface using ethclient
type ClientAdapter struct {
	rpcURL       string
	pollInterval time.Duration
	log          *slog.Logger

	mu     sync.Mutex
	rpc    *rpc.Client
	client *ethclient.Client
}

// NewClientAdapter creates a node client that dials the configured URL on first use
func NewClientAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ClientAdapter {
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &ClientAdapter{
		rpcURL:       cfg.RPCURL(),
		pollInterval: pollInterval,
		log:          log,
	}
}

// ProvideClientAdapter creates the node client for Wire along with the
// cleanup that closes its connection
func ProvideClientAdapter(cfg *config.RuntimeConfig, log *slog.Logger) (*ClientAdapter, func()) {
	c := NewClientAdapter(cfg, log)
	return c, c.Close
}

// NewClientAdapterFromRPC wraps an already connected RPC client
func NewClientAdapterFromRPC(c *rpc.Client, pollInterval time.Duration, log *slog.Logger) *ClientAdapter {
	return &ClientAdapter{
		pollInterval: pollInterval,
		log:          log,
		rpc:          c,
		client:       ethclient.NewClient(c),
	}
}

// connect establishes the connection to the node
func (c *ClientAdapter) connect(ctx context.Context) (*ethclient.Client, *rpc.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, c.rpc, nil
	}
	if c.rpcURL == "" {
		return nil, nil, fmt.Errorf("%w: pass --rpc-url or --network", domain.ErrNotConnected)
	}

	c.log.Debug("dialing node", "url", c.rpcURL)
	rpcClient, err := rpc.DialContext(ctx, c.rpcURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	c.rpc = rpcClient
	c.client = ethclient.NewClient(rpcClient)
	return c.client, c.rpc, nil
}

// Close releases the connection if one was made
func (c *ClientAdapter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rpc != nil {
		c.log.Debug("closing node connection", "url", c.rpcURL)
		c.rpc.Close()
	}
	c.rpc, c.client = nil, nil
}

// ChainID returns the node's chain ID
func (c *ClientAdapter) ChainID(ctx context.Context) (*big.Int, error) {
	client, _, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	return client.ChainID(ctx)
}

// Accounts returns the node-managed accounts (eth_accounts)
func (c *ClientAdapter) Accounts(ctx context.Context) ([]common.Address, error) {
	_, rpcClient, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	var accounts []common.Address
	if err := rpcClient.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []common.Address{}
	}
	return accounts, nil
}

// Balance returns the latest balance of an account
func (c *ClientAdapter) Balance(ctx context.Context, account common.Address) (*big.Int, error) {
	client, _, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	return client.BalanceAt(ctx, account, nil)
}

// SuggestGasPrice asks the node for a gas price
func (c *ClientAdapter) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	client, _, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	return client.SuggestGasPrice(ctx)
}

// EstimateGas asks the node for the gas a creation transaction needs
func (c *ClientAdapter) EstimateGas(ctx context.Context, tx domain.CreationTx) (uint64, error) {
	client, _, err := c.connect(ctx)
	if err != nil {
		return 0, err
	}
	return client.EstimateGas(ctx, ethereum.CallMsg{
		From:     tx.From,
		GasPrice: tx.GasPrice,
		Value:    tx.Value,
		Data:     tx.Data,
	})
}

// sendTxArgs mirrors the eth_sendTransaction parameter object
type sendTxArgs struct {
	From     common.Address  `json:"from"`
	Gas      hexutil.Uint64  `json:"gas"`
	GasPrice *hexutil.Big    `json:"gasPrice,omitempty"`
	Value    *hexutil.Big    `json:"value,omitempty"`
	Data     hexutil.Bytes   `json:"data"`
	To       *common.Address `json:"to"`
}

// SendTransaction submits the transaction for the node to sign with one of its accounts
func (c *ClientAdapter) SendTransaction(ctx context.Context, tx domain.CreationTx) (common.Hash, error) {
	_, rpcClient, err := c.connect(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	args := sendTxArgs{
		From: tx.From,
		Gas:  hexutil.Uint64(tx.Gas),
		Data: tx.Data,
	}
	if tx.GasPrice != nil {
		args.GasPrice = (*hexutil.Big)(tx.GasPrice)
	}
	if tx.Value != nil && tx.Value.Sign() > 0 {
		args.Value = (*hexutil.Big)(tx.Value)
	}

	var hash common.Hash
	if err := rpcClient.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		return common.Hash{}, err
	}
	return hash, nil
}

// SendSignedTransaction signs a legacy transaction locally and sends it raw
func (c *ClientAdapter) SendSignedTransaction(ctx context.Context, key *ecdsa.PrivateKey, tx domain.CreationTx) (common.Hash, error) {
	client, _, err := c.connect(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get chain ID: %w", err)
	}
	nonce, err := client.PendingNonceAt(ctx, tx.From)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get nonce: %w", err)
	}

	value := tx.Value
	if value == nil {
		value = new(big.Int)
	}
	signed, err := types.SignTx(types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: tx.GasPrice,
		Gas:      tx.Gas,
		Value:    value,
		Data:     tx.Data,
	}), types.LatestSignerForChainID(chainID), key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, err
	}
	return signed.Hash(), nil
}

// WaitForReceipt polls for the receipt until it exists or ctx is done
func (c *ClientAdapter) WaitForReceipt(ctx context.Context, hash common.Hash) (*domain.Receipt, error) {
	client, _, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := client.TransactionReceipt(ctx, hash)
		if err == nil {
			return toDomainReceipt(receipt), nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}
		c.log.Debug("receipt not yet available", "hash", hash.Hex())

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// CodeAt returns the latest code at an address
func (c *ClientAdapter) CodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	client, _, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	return client.CodeAt(ctx, account, nil)
}

func toDomainReceipt(r *types.Receipt) *domain.Receipt {
	receipt := &domain.Receipt{
		TxHash:          r.TxHash,
		ContractAddress: r.ContractAddress,
		GasUsed:         r.GasUsed,
		Status:          r.Status,
	}
	if r.BlockNumber != nil {
		receipt.BlockNumber = r.BlockNumber.Uint64()
	}
	return receipt
}

// Ensure the adapter implements the interface
var _ usecase.NodeClient = (*ClientAdapter)(nil)
