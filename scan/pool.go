package scan

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// Scanners used by the convenience functions are short-lived objects.
// To avoid multiple allocation of small objects we will pool them.
type scannerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScannerPool *scannerPool

func init() {
	globalScannerPool = &scannerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return NewScanner(), nil
		})
	globalScannerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScannerPool.opool = pool.NewObjectPool(globalScannerPool.ctx, factory, config)
}

// borrowScanner returns a pooled scanner, initialized for text.
// Clients must not keep a reference after calling release.
func borrowScanner(text string, includeNonEmoji bool) *Scanner {
	var s *Scanner
	if o, err := globalScannerPool.opool.BorrowObject(globalScannerPool.ctx); err == nil {
		s = o.(*Scanner)
	} else {
		tracer().Errorf("cannot borrow scanner: %v", err)
		s = NewScanner()
	}
	s.nonEmoji = includeNonEmoji
	s.InitString(text)
	return s
}

// Clears the scanner and puts it back into the pool.
func (s *Scanner) release() {
	s.Init(nil)
	s.nonEmoji = false
	_ = globalScannerPool.opool.ReturnObject(globalScannerPool.ctx, s)
}
