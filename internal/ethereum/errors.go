package ethereum

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/rpc"
)

// JSON-RPC 2.0 error codes.
const (
	codeInternalError  = -32603
	codeServerErrorMin = -32099
	codeServerErrorMax = -32000
)

var (
	ErrConnection        error = errors.New("node connection failed")
	ErrSubmission        error = errors.New("transaction submission failed")
	ErrInclusionTimeout  error = errors.New("transaction not included before timeout")
	ErrChainRegression   error = errors.New("chain head moved backwards")
	ErrIncompleteReceipt error = errors.New("receipt has no block number")
)

// IsTransient reports whether a lookup error is worth retrying inside a poll
// loop. Context cancellation and deadline errors are never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, geth.NotFound) {
		return true
	}

	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= http.StatusInternalServerError
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return transientCode(rpcErr.ErrorCode())
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// transientCode keeps internal and implementation defined server errors, such
// as a lagging backend answering "header not found", retryable. Malformed
// requests and unknown methods fail the same way on every attempt.
func transientCode(code int) bool {
	switch {
	case code == codeInternalError:
		return true
	case code >= codeServerErrorMin && code <= codeServerErrorMax:
		return true
	default:
		return false
	}
}
