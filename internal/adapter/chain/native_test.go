package chain

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundraise-ledger/internal/core/domain"
)

type chainFixture struct {
	sim         *simulated.Backend
	client      simulated.Client
	custody     *Custody
	custodyKey  string
	native      *Native
	contributor *ecdsa.PrivateKey
	chainID     *big.Int
}

func newChainFixture(t *testing.T) *chainFixture {
	t.Helper()
	custodyKey, err := crypto.GenerateKey()
	require.NoError(t, err)
	contributor, err := crypto.GenerateKey()
	require.NoError(t, err)

	funds := new(big.Int).Mul(big.NewInt(100), big.NewInt(params.Ether))
	sim := simulated.NewBackend(types.GenesisAlloc{
		crypto.PubkeyToAddress(custodyKey.PublicKey):  {Balance: funds},
		crypto.PubkeyToAddress(contributor.PublicKey): {Balance: funds},
	})
	t.Cleanup(func() { _ = sim.Close() })

	client := sim.Client()
	chainID, err := client.ChainID(context.Background())
	require.NoError(t, err)

	keyHex := "0x" + hex.EncodeToString(crypto.FromECDSA(custodyKey))
	custody, err := NewCustody(client, keyHex, chainID.Int64(), 30*time.Second)
	require.NoError(t, err)

	return &chainFixture{
		sim:         sim,
		client:      client,
		custody:     custody,
		custodyKey:  keyHex,
		native:      NewNative(custody),
		contributor: contributor,
		chainID:     chainID,
	}
}

// deposit sends value wei from key to to and mines it.
func (f *chainFixture) deposit(t *testing.T, key *ecdsa.PrivateKey, to common.Address, value *big.Int) string {
	t.Helper()
	ctx := context.Background()
	from := crypto.PubkeyToAddress(key.PublicKey)

	nonce, err := f.client.PendingNonceAt(ctx, from)
	require.NoError(t, err)
	tip, err := f.client.SuggestGasTipCap(ctx)
	require.NoError(t, err)
	head, err := f.client.HeaderByNumber(ctx, nil)
	require.NoError(t, err)

	tx, err := types.SignNewTx(key, types.LatestSignerForChainID(f.chainID), &types.DynamicFeeTx{
		ChainID:   f.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2))),
		Gas:       valueTransferGas,
		To:        &to,
		Value:     value,
	})
	require.NoError(t, err)
	require.NoError(t, f.client.SendTransaction(ctx, tx))
	f.sim.Commit()
	return tx.Hash().Hex()
}

// mine commits blocks until stop is closed.
func (f *chainFixture) mine(stop <-chan struct{}) {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			f.sim.Commit()
		}
	}
}

func TestNewCustody_RejectsBadKey(t *testing.T) {
	_, err := NewCustody(nil, "not-a-key", 1, time.Second)
	assert.Error(t, err)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	_, err = NewCustody(nil, hex.EncodeToString(crypto.FromECDSA(key)), 0, time.Second)
	assert.Error(t, err)

	c, err := NewCustody(nil, hex.EncodeToString(crypto.FromECDSA(key)), 1, time.Second)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), c.Address())
}

func TestNative_Receive(t *testing.T) {
	f := newChainFixture(t)
	from := crypto.PubkeyToAddress(f.contributor.PublicKey)
	value := new(big.Int).Mul(big.NewInt(15), big.NewInt(params.Ether/10))

	ref := f.deposit(t, f.contributor, f.custody.Address(), value)

	got, err := f.native.Receive(context.Background(), from, ref)
	require.NoError(t, err)
	assert.Equal(t, value, got.ToBig())
}

func TestNative_ReceiveRejectsForeignDeposits(t *testing.T) {
	f := newChainFixture(t)
	from := crypto.PubkeyToAddress(f.contributor.PublicKey)
	ctx := context.Background()

	toElsewhere := f.deposit(t, f.contributor, common.HexToAddress("0x01"), big.NewInt(1))
	_, err := f.native.Receive(ctx, from, toElsewhere)
	assert.ErrorIs(t, err, ErrDepositRecipient)

	ref := f.deposit(t, f.contributor, f.custody.Address(), big.NewInt(1))
	_, err = f.native.Receive(ctx, common.HexToAddress("0x02"), ref)
	assert.ErrorIs(t, err, ErrDepositSender)

	_, err = f.native.Receive(ctx, from, "0x"+hex.EncodeToString(common.HexToHash(ref).Bytes()[:31]))
	assert.ErrorIs(t, err, ErrDepositReference)
}

func TestNative_Transfer(t *testing.T) {
	f := newChainFixture(t)
	to := common.HexToAddress("0x00000000000000000000000000000000000000b2")
	amount := uint256.NewInt(params.Ether)

	stop := make(chan struct{})
	go f.mine(stop)
	err := f.native.Transfer(context.Background(), to, amount)
	close(stop)
	require.NoError(t, err)

	balance, err := f.client.BalanceAt(context.Background(), to, nil)
	require.NoError(t, err)
	assert.Equal(t, amount.ToBig(), balance)
}

func TestNative_TransferNeverMined(t *testing.T) {
	f := newChainFixture(t)
	custody, err := NewCustody(f.client, f.custodyKey, f.chainID.Int64(), 300*time.Millisecond)
	require.NoError(t, err)
	to := common.HexToAddress("0x00000000000000000000000000000000000000b2")

	// no block is committed while the custody waits
	start := time.Now()
	err = NewNative(custody).Transfer(context.Background(), to, uint256.NewInt(1))
	require.ErrorIs(t, err, domain.ErrTransferPending)
	assert.NotErrorIs(t, err, domain.ErrTransferFailed)
	assert.GreaterOrEqual(t, time.Since(start), 300*time.Millisecond)

	// the transaction was broadcast and lands once a block is mined
	f.sim.Commit()
	balance, err := f.client.BalanceAt(context.Background(), to, nil)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), balance)
}
