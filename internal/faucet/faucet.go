package faucet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"makeabet/internal/chain"
)

const (
	nativeGasLimit = 21_000
	tokenGasLimit  = 100_000

	// TokenDecimals is the precision of PYUSD and the local mock.
	TokenDecimals = 6
	// NativeDecimals is the precision of ETH.
	NativeDecimals = 18
)

const erc20TransferABI = `[{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}]`

var erc20ABI = mustABI(erc20TransferABI)

func mustABI(s string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return parsed
}

var (
	// ErrBusy is returned while another request holds the faucet.
	ErrBusy = errors.New("faucet request already in flight")
	// ErrCooldown is returned when the address was funded too recently.
	ErrCooldown = errors.New("address funded too recently")
	// ErrReverted is returned when a transfer is mined with a failed status.
	ErrReverted = errors.New("transaction reverted")
)

// Client is the part of ethclient.Client the faucet needs.
type Client interface {
	bind.DeployBackend
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// Config holds the signer and amounts of one faucet.
type Config struct {
	ChainID *big.Int
	Key     *ecdsa.PrivateKey

	NativeAmount *big.Int
	// Token is the ERC-20 to hand out; the zero address disables it.
	Token       common.Address
	TokenAmount *big.Int

	// Cooldown is the minimum time between two fundings of one address.
	Cooldown       time.Duration
	ReceiptTimeout time.Duration
}

// Faucet sends test ETH and tokens from a funded local account.
type Faucet struct {
	client Client
	cfg    Config
	from   common.Address
	signer types.Signer
	log    *zap.Logger

	sem *semaphore.Weighted

	mu     sync.Mutex
	funded map[common.Address]time.Time
	now    func() time.Time
}

// New returns a Faucet signing with cfg.Key.
func New(client Client, cfg Config, log *zap.Logger) (*Faucet, error) {
	if cfg.Key == nil {
		return nil, errors.New("faucet: private key is required")
	}
	if cfg.ChainID == nil || cfg.ChainID.Sign() <= 0 {
		return nil, errors.New("faucet: chain id is required")
	}
	if cfg.NativeAmount == nil {
		cfg.NativeAmount = new(big.Int)
	}
	if cfg.TokenAmount == nil {
		cfg.TokenAmount = new(big.Int)
	}
	if cfg.ReceiptTimeout <= 0 {
		cfg.ReceiptTimeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Faucet{
		client: client,
		cfg:    cfg,
		from:   crypto.PubkeyToAddress(cfg.Key.PublicKey),
		signer: types.NewEIP155Signer(cfg.ChainID),
		log:    log,
		sem:    semaphore.NewWeighted(1),
		funded: make(map[common.Address]time.Time),
		now:    time.Now,
	}, nil
}

// Address is the account the faucet pays from.
func (f *Faucet) Address() common.Address { return f.from }

// TokenEnabled reports whether requests also receive the ERC-20.
func (f *Faucet) TokenEnabled() bool {
	return f.cfg.Token != (common.Address{}) && f.cfg.TokenAmount.Sign() > 0
}

// Fund sends the native amount and then, if configured, the token amount to
// to. It returns the transaction hashes in send order. Only one call runs at
// a time; a concurrent call fails fast with ErrBusy.
func (f *Faucet) Fund(ctx context.Context, to string) ([]string, error) {
	if !chain.IsHexAddress(to) {
		return nil, chain.ErrInvalidAddress
	}
	if !f.sem.TryAcquire(1) {
		return nil, ErrBusy
	}
	defer f.sem.Release(1)

	recipient := common.HexToAddress(to)
	if err := f.checkCooldown(recipient); err != nil {
		return nil, err
	}

	nonce, err := f.client.PendingNonceAt(ctx, f.from)
	if err != nil {
		return nil, fmt.Errorf("pending nonce: %w", err)
	}
	gasPrice, err := f.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}

	var hashes []string
	tx := types.NewTransaction(nonce, recipient, f.cfg.NativeAmount, nativeGasLimit, gasPrice, nil)
	hash, err := f.send(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("native transfer: %w", err)
	}
	hashes = append(hashes, hash)
	nonce++

	if f.TokenEnabled() {
		data, err := erc20ABI.Pack("transfer", recipient, f.cfg.TokenAmount)
		if err != nil {
			return hashes, fmt.Errorf("pack token transfer: %w", err)
		}
		tx = types.NewTransaction(nonce, f.cfg.Token, big.NewInt(0), tokenGasLimit, gasPrice, data)
		hash, err = f.send(ctx, tx)
		if err != nil {
			return hashes, fmt.Errorf("token transfer: %w", err)
		}
		hashes = append(hashes, hash)
	}

	f.markFunded(recipient)
	f.log.Info("faucet funded address",
		zap.String("to", recipient.Hex()),
		zap.Strings("transactions", hashes),
	)
	return hashes, nil
}

// send signs tx, broadcasts it and waits for a successful receipt.
func (f *Faucet) send(ctx context.Context, tx *types.Transaction) (string, error) {
	signed, err := types.SignTx(tx, f.signer, f.cfg.Key)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}
	if err := f.client.SendTransaction(ctx, signed); err != nil {
		return "", err
	}
	hash := signed.Hash().Hex()
	f.log.Debug("faucet transaction sent",
		zap.String("tx_hash", hash),
		zap.Uint64("nonce", signed.Nonce()),
	)

	waitCtx, cancel := context.WithTimeout(ctx, f.cfg.ReceiptTimeout)
	defer cancel()
	receipt, err := bind.WaitMined(waitCtx, f.client, signed)
	if err != nil {
		return "", fmt.Errorf("wait for %s: %w", hash, err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return "", fmt.Errorf("%s: %w", hash, ErrReverted)
	}
	return hash, nil
}

func (f *Faucet) checkCooldown(addr common.Address) error {
	if f.cfg.Cooldown <= 0 {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if last, ok := f.funded[addr]; ok && f.now().Sub(last) < f.cfg.Cooldown {
		return ErrCooldown
	}
	return nil
}

func (f *Faucet) markFunded(addr common.Address) {
	if f.cfg.Cooldown <= 0 {
		return
	}
	f.mu.Lock()
	f.funded[addr] = f.now()
	f.mu.Unlock()
}
