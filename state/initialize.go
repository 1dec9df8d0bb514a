package state

import (
	"os"
	"time"

	"go.uber.org/zap"
)

// newLocalEnv creates a new LocalEnv with defaults usable before
// configuration is loaded.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		Log:   zap.NewNop(),
		Out:   os.Stdout,
		start: time.Now(),
	}
}
