package httpadapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/patrickmn/go-cache"
)

const (
	HeaderAccount   = "X-Account"
	HeaderTimestamp = "X-Timestamp"
	HeaderNonce     = "X-Nonce"
	HeaderSignature = "X-Signature"

	maxClockSkew = 5 * time.Minute
	maxBodyBytes = 1 << 20
	maxNonceLen  = 64
)

var (
	errBadAccount        = errors.New("missing or invalid " + HeaderAccount)
	errBadTimestamp      = errors.New("missing or invalid " + HeaderTimestamp)
	errExpired           = errors.New("request timestamp outside the accepted window")
	errBadNonce          = errors.New("missing or invalid " + HeaderNonce)
	errReplayed          = errors.New("request was already accepted")
	errBadSignature      = errors.New("missing or invalid " + HeaderSignature)
	errSignatureMismatch = errors.New("signature does not match " + HeaderAccount)
)

type callerKey struct{}

// callerFrom returns the account authenticated for the request.
func callerFrom(ctx context.Context) common.Address {
	caller, _ := ctx.Value(callerKey{}).(common.Address)
	return caller
}

// SigningMessage is the text a client signs with personal_sign to
// authenticate a request. nonce must be unique per account among requests
// inside the accepted clock skew.
func SigningMessage(method, path string, timestamp int64, nonce string, body []byte) []byte {
	return []byte(fmt.Sprintf("%s %s\n%d\n%s\n%s", method, path, timestamp, nonce, crypto.Keccak256Hash(body).Hex()))
}

// newNonceCache remembers accepted nonces for as long as their timestamp can
// still pass the skew check.
func newNonceCache() *cache.Cache {
	return cache.New(2*maxClockSkew, time.Minute)
}

// authenticate verifies the signed request headers and stores the signer as
// the caller of the operation.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := h.verifyRequest(r)
		if err != nil {
			h.logger.Warn("unauthenticated request",
				slog.String("path", r.URL.Path),
				slog.Any("error", err))
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerKey{}, caller)))
	})
}

// verifyRequest recovers the signer of r and consumes its nonce. The body is
// read and replaced so handlers can decode it again.
func (h *Handler) verifyRequest(r *http.Request) (common.Address, error) {
	account := r.Header.Get(HeaderAccount)
	if !common.IsHexAddress(account) {
		return common.Address{}, errBadAccount
	}
	timestamp, err := strconv.ParseInt(r.Header.Get(HeaderTimestamp), 10, 64)
	if err != nil {
		return common.Address{}, errBadTimestamp
	}
	if skew := h.now().Sub(time.Unix(timestamp, 0)); skew > maxClockSkew || skew < -maxClockSkew {
		return common.Address{}, errExpired
	}
	nonce := r.Header.Get(HeaderNonce)
	if nonce == "" || len(nonce) > maxNonceLen {
		return common.Address{}, errBadNonce
	}
	sig, err := hexutil.Decode(r.Header.Get(HeaderSignature))
	if err != nil || len(sig) != crypto.SignatureLength {
		return common.Address{}, errBadSignature
	}
	// wallets emit V as 27 or 28
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return common.Address{}, fmt.Errorf("read body: %w", err)
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	msg := SigningMessage(r.Method, r.URL.Path, timestamp, nonce, body)
	pub, err := crypto.SigToPub(accounts.TextHash(msg), sig)
	if err != nil {
		return common.Address{}, errBadSignature
	}
	signer := crypto.PubkeyToAddress(*pub)
	if signer != common.HexToAddress(account) {
		return common.Address{}, errSignatureMismatch
	}
	if err = h.nonces.Add(signer.Hex()+"/"+nonce, struct{}{}, cache.DefaultExpiration); err != nil {
		return common.Address{}, errReplayed
	}
	return signer, nil
}
