package executor

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/sprintertech/across-relayer/chains/evm/calls/consts"
)

// RevertError is an on-chain revert with a decoded reason.
type RevertError struct {
	Reason string
}

func (e *RevertError) Error() string {
	return fmt.Sprintf("execution reverted: %s", e.Reason)
}

// ExecutionError is a failed call that could not be decoded into a revert reason.
type ExecutionError struct {
	Name string
	Err  error
}

func (e *ExecutionError) Error() string {
	return e.Name
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Classify maps a simulation or submission error onto a RevertError when the
// revert reason can be decoded and onto an ExecutionError otherwise.
func Classify(err error) error {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		reason, ok := decodeRevert(dataErr.ErrorData())
		if ok {
			return &RevertError{Reason: reason}
		}
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return &ExecutionError{
			Name: fmt.Sprintf("%s (code %d)", rpcErr.Error(), rpcErr.ErrorCode()),
			Err:  err,
		}
	}

	return &ExecutionError{
		Name: err.Error(),
		Err:  err,
	}
}

func decodeRevert(errorData interface{}) (string, bool) {
	encoded, ok := errorData.(string)
	if !ok {
		return "", false
	}
	data, err := hexutil.Decode(encoded)
	if err != nil || len(data) < 4 {
		return "", false
	}

	reason, err := abi.UnpackRevert(data)
	if err == nil {
		return reason, true
	}

	for name, e := range consts.SpokePoolABI.Errors {
		if bytes.Equal(e.ID[:4], data[:4]) {
			return name, true
		}
	}
	return "", false
}
