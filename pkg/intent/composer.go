package intent

import (
	"context"
	"crypto/ed25519"
	"fmt"
	"math"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/code-payments/ixkit/pkg/cache"
	"github.com/code-payments/ixkit/pkg/metrics"
	"github.com/code-payments/ixkit/pkg/solana"
	compute_budget "github.com/code-payments/ixkit/pkg/solana/computebudget"
	"github.com/code-payments/ixkit/pkg/solana/token"
)

const (
	metricsStructName = "intent.Composer"

	// Each entry weighs one
	associatedAccountCacheBudget = 4096
)

// Intent is an ordered group of instructions meant to land in one
// transaction, along with the notable addresses derived while composing it.
type Intent struct {
	Name         string
	Instructions []solana.Instruction
	Accounts     map[string]ed25519.PublicKey
}

func (i *Intent) add(ixns ...solana.Instruction) {
	i.Instructions = append(i.Instructions, ixns...)
}

// Composer turns high level intents into instruction sequences. Beyond its
// configuration it only keeps a memo of associated account addresses, and it
// is safe for concurrent use.
type Composer struct {
	log  *logrus.Entry
	conf *conf

	associatedAccounts cache.Cache[ed25519.PublicKey]
}

func NewComposer(configProvider ConfigProvider) *Composer {
	return &Composer{
		log:                logrus.StandardLogger().WithField("type", "intent/composer"),
		conf:               configProvider(),
		associatedAccounts: cache.NewCache[ed25519.PublicKey](associatedAccountCacheBudget),
	}
}

func (c *Composer) compose(ctx context.Context, method string, build func(intent *Intent) error) (*Intent, error) {
	tracer := metrics.TraceMethodCall(ctx, metricsStructName, method)
	defer tracer.End()

	log := c.log.WithField("method", method)

	intent := &Intent{
		Name:     method,
		Accounts: make(map[string]ed25519.PublicKey),
	}
	if err := build(intent); err != nil {
		log.WithError(err).Debug("failure composing intent")
		tracer.OnError(err)
		return nil, err
	}

	tracer.AddAttribute("instructions", len(intent.Instructions))
	metrics.RecordCount(ctx, fmt.Sprintf("Intent/%s/Instructions", method), uint64(len(intent.Instructions)))

	log = log.WithField("instructions", len(intent.Instructions))
	for name, address := range intent.Accounts {
		log = log.WithField(name, base58.Encode(address))
	}
	log.Debug("composed intent")

	return intent, nil
}

// computeBudget returns the configured compute budget instructions, which
// must come first in a transaction.
func (c *Composer) computeBudget(ctx context.Context) ([]solana.Instruction, error) {
	var ixns []solana.Instruction

	limit := c.conf.computeUnitLimit.Get(ctx)
	if limit > math.MaxUint32 {
		return nil, errors.Errorf("compute unit limit %d exceeds %d", limit, uint32(math.MaxUint32))
	}
	if limit > 0 {
		ixn, err := compute_budget.SetComputeUnitLimit(uint32(limit))
		if err != nil {
			return nil, errors.Wrap(err, "error creating compute unit limit instruction")
		}
		ixns = append(ixns, ixn)
	}

	if price := c.conf.computeUnitPrice.Get(ctx); price > 0 {
		ixn, err := compute_budget.SetComputeUnitPrice(price)
		if err != nil {
			return nil, errors.Wrap(err, "error creating compute unit price instruction")
		}
		ixns = append(ixns, ixn)
	}

	return ixns, nil
}

// associatedAccount derives the associated token account of wallet for mint,
// memoizing the result. Returned keys are copies.
func (c *Composer) associatedAccount(wallet, mint, tokenProgram ed25519.PublicKey) (ed25519.PublicKey, error) {
	// Keys are fixed width once validated, so concatenation is unambiguous
	for _, key := range []ed25519.PublicKey{wallet, mint, tokenProgram} {
		if len(key) != ed25519.PublicKeySize {
			return nil, errors.Wrap(solana.ErrMissingAccountInput, "invalid associated account input")
		}
	}
	cacheKey := string(wallet) + string(mint) + string(tokenProgram)

	if cached, ok := c.associatedAccounts.Retrieve(cacheKey); ok {
		return append(ed25519.PublicKey(nil), cached...), nil
	}

	address, err := token.GetAssociatedAccountWithProgram(wallet, mint, tokenProgram)
	if err != nil {
		return nil, err
	}

	// A concurrent lookup of the same account may have won the insert
	_ = c.associatedAccounts.Insert(cacheKey, append(ed25519.PublicKey(nil), address...), 1)
	return address, nil
}
