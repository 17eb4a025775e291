// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package common holds the plumbing every chain's builder shares:
// MatchOwners (a standalone owners -> sigIndices resolution for callers
// holding only an OutputOwners), the Spend solver, and the functional
// Options a build call is parameterized by.
package common

import (
	"sort"

	"github.com/ava-labs/avalanche-wallet-core/ids"
	"github.com/ava-labs/avalanche-wallet-core/utils/logging"
	"github.com/ava-labs/avalanche-wallet-core/utils/set"
	"github.com/ava-labs/avalanche-wallet-core/vms/secp256k1fx"
)

// MatchOwners returns the sigIndices of the addresses in [owners] that
// intersect [addrs], and whether that intersection meets the owners'
// threshold as of [minIssuanceTime]. This is the same computation
// OutputOwners.Spenders/MeetsThreshold perform, exposed standalone because
// callers that only hold a *secp256k1fx.OutputOwners (not a full
// codec.Output) need it directly.
func MatchOwners(owners *secp256k1fx.OutputOwners, addrs set.Set[ids.ShortID], minIssuanceTime uint64) ([]uint32, bool) {
	if owners.Locktime > minIssuanceTime {
		return nil, false
	}
	sigIndices := make([]uint32, 0, owners.Threshold)
	for i, addr := range owners.Addrs {
		if addrs.Contains(addr) {
			sigIndices = append(sigIndices, uint32(i))
		}
	}
	if uint32(len(sigIndices)) < owners.Threshold {
		return nil, false
	}
	sort.Slice(sigIndices, func(i, j int) bool { return sigIndices[i] < sigIndices[j] })
	return sigIndices, true
}

// Options bundles the per-call parameters a builder needs beyond the raw
// spend amounts: which addresses may sign, where change goes, and the
// as-of time threshold/locktime checks are evaluated against.
type Options struct {
	minIssuanceTime       uint64
	customAddresses       set.Set[ids.ShortID]
	changeOwner           *secp256k1fx.OutputOwners
	allowStakeableLocked  bool
	memo                  []byte
	log                   *logging.Logger
}

// Option mutates an Options value; NewOptions folds a list of them into
// one value.
type Option func(*Options)

// NewOptions applies [ops] in order over a zero-valued Options.
func NewOptions(ops []Option) *Options {
	o := &Options{}
	for _, op := range ops {
		op(o)
	}
	return o
}

// WithMinIssuanceTime sets the as-of time locktime/threshold checks use.
func WithMinIssuanceTime(t uint64) Option {
	return func(o *Options) { o.minIssuanceTime = t }
}

// WithCustomAddresses restricts which addresses are treated as signers,
// overriding the keychain's full address set.
func WithCustomAddresses(addrs set.Set[ids.ShortID]) Option {
	return func(o *Options) { o.customAddresses = addrs }
}

// WithChangeOwner sets the owners clause change outputs are addressed to.
func WithChangeOwner(owner *secp256k1fx.OutputOwners) Option {
	return func(o *Options) { o.changeOwner = owner }
}

// WithAllowStakeableLocked permits the solver to select stakeable.LockOut
// UTXOs whose lock has elapsed as of the issuance time; still-locked
// outputs are never selected.
func WithAllowStakeableLocked(allow bool) Option {
	return func(o *Options) { o.allowStakeableLocked = allow }
}

// WithMemo sets the BaseTx memo field (at most 256 bytes).
func WithMemo(memo []byte) Option {
	return func(o *Options) { o.memo = memo }
}

// WithLogger attaches a Logger the solver emits skipped-UTXO and
// insufficient-funds lines through.
func WithLogger(log *logging.Logger) Option {
	return func(o *Options) { o.log = log }
}

func (o *Options) MinIssuanceTime() uint64 { return o.minIssuanceTime }

// Addresses returns [fallback] unless custom addresses were set.
func (o *Options) Addresses(fallback set.Set[ids.ShortID]) set.Set[ids.ShortID] {
	if o.customAddresses == nil {
		return fallback
	}
	return o.customAddresses
}

// ChangeOwner returns the configured change owners, or [fallback] if none
// was set.
func (o *Options) ChangeOwner(fallback *secp256k1fx.OutputOwners) *secp256k1fx.OutputOwners {
	if o.changeOwner == nil {
		return fallback
	}
	return o.changeOwner
}

func (o *Options) AllowStakeableLocked() bool { return o.allowStakeableLocked }

func (o *Options) Memo() []byte { return o.memo }

// Log returns the configured Logger, or nil if none was set.
func (o *Options) Log() *logging.Logger { return o.log }
