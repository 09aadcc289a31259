package ethereum

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// WaitForReceipt polls for the receipt of hash every interval until it shows
// up or timeout elapses. Not-found and other transient lookup errors are
// retried; anything else aborts the wait.
func (s *NodeService) WaitForReceipt(ctx context.Context, hash common.Hash, timeout, interval time.Duration) (*Receipt, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		receipt, err := s.receipt(ctx, hash)
		if err == nil {
			s.logs.Infow("transaction mined",
				"tx_hash", hash.Hex(),
				"block_number", derefUint(receipt.BlockNumber),
				"attempts", attempt)
			return receipt, nil
		}
		if !IsTransient(err) {
			return nil, fmt.Errorf("get receipt of %s: %w", hash.Hex(), err)
		}
		s.logs.Debugw("receipt not available yet", "tx_hash", hash.Hex(), "attempt", attempt, "error", err)

		select {
		case <-deadline.C:
			return nil, fmt.Errorf("%w: %s after %s", ErrInclusionTimeout, hash.Hex(), timeout)
		default:
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("wait for receipt: %w", ctx.Err())
		case <-deadline.C:
			return nil, fmt.Errorf("%w: %s after %s", ErrInclusionTimeout, hash.Hex(), timeout)
		case <-ticker.C:
		}
	}
}

// WaitForConfirmations blocks until the block holding receipt is buried under
// enough blocks for depth confirmations, counting the block itself. There is
// no built-in timeout: bound the wait through ctx. A head lower than one seen
// earlier fails with ErrChainRegression.
func (s *NodeService) WaitForConfirmations(ctx context.Context, receipt *Receipt, depth uint64, interval time.Duration) (Confirmation, error) {
	if receipt == nil || receipt.BlockNumber == nil {
		return Confirmation{}, ErrIncompleteReceipt
	}

	state := Confirmation{TargetBlock: *receipt.BlockNumber}
	observed := false

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		head, err := s.client.BlockNumber(ctx)
		switch {
		case err != nil && !IsTransient(err):
			return state, fmt.Errorf("get chain head: %w", err)
		case err != nil:
			s.logs.Debugw("chain head lookup failed, retrying", "error", err)
		case observed && head < state.Head:
			return state, fmt.Errorf("%w: from %d to %d", ErrChainRegression, state.Head, head)
		case !observed || head > state.Head:
			observed = true
			state.Head = head
			state.Confirmations = confirmations(state.TargetBlock, head)
			s.logs.Infow("confirmations updated",
				"head", head,
				"confirmations", state.Confirmations,
				"required", depth)
		}

		if observed && state.Confirmations >= depth {
			return state, nil
		}

		select {
		case <-ctx.Done():
			return state, fmt.Errorf("wait for confirmations: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func confirmations(target, head uint64) uint64 {
	if head < target {
		return 0
	}
	return head - target + 1
}

func derefUint(v *uint64) any {
	if v == nil {
		return nil
	}
	return *v
}
