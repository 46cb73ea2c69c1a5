package mw

import (
	"golang.org/x/sync/errgroup"

	"github.com/silentledger/mimble/pkg/pedersen"
)

// VerifyBatch verifies a set of transactions concurrently.
//
// Independent transfers share no mutable state, so each verification can run
// on its own worker. The first failure is returned; a nil result means every
// transaction verified.
func VerifyBatch(p *pedersen.Parameters, txs ...*Transaction) error {
	g := new(errgroup.Group)
	for _, tx := range txs {
		tx := tx
		g.Go(func() error {
			return tx.Verify(p)
		})
	}
	return g.Wait()
}
