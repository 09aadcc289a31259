package ethereum_test

import (
	"context"
	"errors"
	"ethsend/internal/ethereum"
	"fmt"
	"io"
	"net"
	"net/http"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/rpc"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type jsonRPCError struct {
	code int
	msg  string
}

func (e jsonRPCError) Error() string  { return e.msg }
func (e jsonRPCError) ErrorCode() int { return e.code }

var _ = DescribeTable("IsTransient",
	func(err error, transient bool) {
		Expect(ethereum.IsTransient(err)).To(Equal(transient))
	},
	Entry("nil", nil, false),
	Entry("not found", geth.NotFound, true),
	Entry("wrapped not found", fmt.Errorf("lookup: %w", geth.NotFound), true),
	Entry("json-rpc server error", jsonRPCError{code: -32000, msg: "header not found"}, true),
	Entry("json-rpc server error range end", jsonRPCError{code: -32099, msg: "backend busy"}, true),
	Entry("json-rpc internal error", jsonRPCError{code: -32603, msg: "internal error"}, true),
	Entry("wrapped json-rpc server error", fmt.Errorf("head: %w", jsonRPCError{code: -32005, msg: "limit exceeded"}), true),
	Entry("method not found", jsonRPCError{code: -32601, msg: "the method eth_blockNumber does not exist"}, false),
	Entry("invalid params", jsonRPCError{code: -32602, msg: "invalid argument 0"}, false),
	Entry("invalid request", jsonRPCError{code: -32600, msg: "invalid request"}, false),
	Entry("parse error", jsonRPCError{code: -32700, msg: "parse error"}, false),
	Entry("execution reverted", jsonRPCError{code: 3, msg: "execution reverted"}, false),
	Entry("rate limited", rpc.HTTPError{StatusCode: http.StatusTooManyRequests}, true),
	Entry("bad gateway", rpc.HTTPError{StatusCode: http.StatusBadGateway}, true),
	Entry("unauthorized", rpc.HTTPError{StatusCode: http.StatusUnauthorized}, false),
	Entry("network error", &net.OpError{Op: "dial", Err: errors.New("connection refused")}, true),
	Entry("dropped connection", io.ErrUnexpectedEOF, true),
	Entry("cancelled", context.Canceled, false),
	Entry("deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), false),
	Entry("anything else", errors.New("invalid argument"), false),
)
