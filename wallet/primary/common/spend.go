// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package common

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/logging"
	safemath "github.com/ava-labs/avalanche-wallet-core/utils/math"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/vms/components/avax"
	"github.com/ava-labs/avalanche-wallet-core/vms/platformvm/stakeable"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
)

// ErrInsufficientFunds is the sentinel every InsufficientFundsError matches
// via errors.Is.
var ErrInsufficientFunds = errors.New("insufficient funds")

// InsufficientFundsError reports which asset's demand went unmet and by
// how much.
type InsufficientFundsError struct {
	AssetID   ids.ID
	Shortfall uint64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: asset %s short by %d", e.AssetID, e.Shortfall)
}

func (e *InsufficientFundsError) Is(target error) bool { return target == ErrInsufficientFunds }

// ErrMixedFeeAsset rejects an Import whose fee asset isn't among the
// imported funds (or isn't imported in sufficient amount), rather than
// silently funding the fee from the chain's ordinary UTXO balance.
var ErrMixedFeeAsset = errors.New("import fee asset not covered by imported funds")

// Demand is one asset's (amount, burn) pair in an AssetAmountDestination:
// [Amount] is paid out to Destinations, [Burn] is consumed without
// producing an output (typically a fee).
type Demand struct {
	Amount uint64
	Burn   uint64
}

type demandState struct {
	demand  *Demand
	spent   uint64
	change  uint64
	done    bool
}

// AssetAmountDestination is Spend's input: the per-asset demands plus the
// addresses funding and receiving them.
type AssetAmountDestination struct {
	Demands         map[ids.ID]*Demand
	Senders         set.Set[ids.ShortID]
	Destinations    []ids.ShortID
	// ChangeAddresses receive change outputs; when empty, change goes back
	// to Senders.
	ChangeAddresses []ids.ShortID
	AsOf            uint64
	Locktime        uint64
	Threshold       uint32

	// AllowStakeableLocked permits spending a stakeable.LockOut whose lock
	// has elapsed by unwrapping it to its inner transfer output. Still-locked
	// outputs are never selected.
	AllowStakeableLocked bool

	// Metrics, if set, records this call's scan/select counts and
	// whether it failed with ErrInsufficientFunds.
	Metrics *SpendMetrics

	// Log, if set, receives a Debug line per skipped UTXO and a Warn line
	// on insufficient funds. Nil is a valid no-op logger's zero value, so
	// check before use rather than requiring NewNopLogger() everywhere.
	Log *logging.Logger
}

func (req *AssetAmountDestination) debug(msg string, fields ...zap.Field) {
	if req.Log != nil {
		req.Log.Debug(msg, fields...)
	}
}

// Spend is a greedy, deterministic solver: it walks [utxos] in set order,
// consuming whole UTXOs toward each asset's demand until every demand is
// satisfied, then emits one destination output and (if needed) one change
// output per asset.
func Spend(utxos *avax.UTXOSet, req *AssetAmountDestination) ([]*avax.TransferableInput, []*avax.TransferableOutput, error) {
	states := make(map[ids.ID]*demandState, len(req.Demands))
	for assetID, d := range req.Demands {
		if _, err := safemath.Add64(d.Amount, d.Burn); err != nil {
			return nil, nil, err
		}
		states[assetID] = &demandState{demand: d}
	}

	var ins []*avax.TransferableInput
	var overflow error
	scanned := 0
	utxos.Iterate(func(u *avax.UTXO) bool {
		scanned++
		state, demanded := states[u.Asset.ID]
		if !demanded {
			req.debug("skipping utxo: asset not demanded", zap.String("assetID", u.Asset.ID.String()))
			return true
		}
		if state.done {
			req.debug("skipping utxo: demand already satisfied", zap.String("assetID", u.Asset.ID.String()))
			return true
		}
		out := u.Out
		if lockOut, isLocked := out.(*stakeable.LockOut); isLocked {
			if !req.AllowStakeableLocked || lockOut.Locktime > req.AsOf {
				req.debug("skipping utxo: stakeable lock", zap.Uint64("locktime", lockOut.Locktime))
				return true
			}
			out = &lockOut.TransferOut
		}
		transferOut, ok := out.(*secp256k1fx.TransferOutput)
		if !ok {
			req.debug("skipping utxo: non-transfer output variant") // non-transfer variants (NFTs, mint rights) are silently skipped
			return true
		}
		if !transferOut.MeetsThreshold(req.Senders, req.AsOf) {
			req.debug("skipping utxo: threshold not met by senders", zap.String("assetID", u.Asset.ID.String()))
			return true
		}

		sigIndices := sigIndicesFor(transferOut, req.Senders, req.AsOf)
		ins = append(ins, &avax.TransferableInput{
			UTXOID: u.UTXOID,
			Asset:  u.Asset,
			In: &secp256k1fx.TransferInput{
				Amt:   transferOut.Amt,
				Input: secp256k1fx.Input{SigIndices: sigIndices},
			},
		})

		spent, err := safemath.Add64(state.spent, transferOut.Amt)
		if err != nil {
			overflow = err
			return false
		}
		state.spent = spent
		need := state.demand.Amount + state.demand.Burn
		if state.spent >= need {
			state.done = true
			state.change = state.spent - need
			req.debug("demand satisfied", zap.String("assetID", u.Asset.ID.String()), zap.Uint64("change", state.change))
		}
		return true
	})
	if overflow != nil {
		return nil, nil, overflow
	}

	for assetID, state := range states {
		if !state.done {
			need := state.demand.Amount + state.demand.Burn
			err := &InsufficientFundsError{AssetID: assetID, Shortfall: need - state.spent}
			if req.Log != nil {
				req.Log.Warn("insufficient funds", zap.String("assetID", assetID.String()), zap.Uint64("shortfall", err.Shortfall))
			}
			req.Metrics.observe(scanned, len(ins), err)
			return nil, nil, err
		}
	}

	destOwners := secp256k1fx.NewOutputOwners(req.Locktime, req.Threshold, req.Destinations)
	changeAddrs := req.ChangeAddresses
	if len(changeAddrs) == 0 {
		changeAddrs = req.Senders.List()
	}
	changeOwners := secp256k1fx.NewOutputOwners(0, 1, changeAddrs)

	var outs []*avax.TransferableOutput
	for assetID, state := range states {
		if state.demand.Amount > 0 {
			outs = append(outs, &avax.TransferableOutput{
				Asset: avax.Asset{ID: assetID},
				Out:   &secp256k1fx.TransferOutput{Amt: state.demand.Amount, OutputOwners: *destOwners},
			})
		}
		if state.change > 0 {
			outs = append(outs, &avax.TransferableOutput{
				Asset: avax.Asset{ID: assetID},
				Out:   &secp256k1fx.TransferOutput{Amt: state.change, OutputOwners: *changeOwners},
			})
		}
	}

	avax.SortTransferableInputs(ins)
	avax.SortTransferableOutputs(outs)
	req.Metrics.observe(scanned, len(ins), nil)
	return ins, outs, nil
}

// sigIndicesFor returns the positions, into out's address list, of the
// addresses out.Spenders selects from [from]. Spenders returns them in the
// output's own (ascending) order, so the indices are strictly increasing.
func sigIndicesFor(out *secp256k1fx.TransferOutput, from set.Set[ids.ShortID], asOf uint64) []uint32 {
	spenders := out.Spenders(from, asOf)
	indices := make([]uint32, 0, len(spenders))
	for _, addr := range spenders {
		if idx := out.AddressIndex(addr); idx >= 0 {
			indices = append(indices, uint32(idx))
		}
	}
	return indices
}
