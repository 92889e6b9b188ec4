package ops

import (
	"math/rand"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/folio-lang/folio/flags"
	"github.com/folio-lang/folio/fx"
)

// Session is the ambient service set for operator evaluation: the pushdown
// flags, the logger, the randomness source, and the limit on concurrent
// row evaluations. The zero value of every field has a usable default.
type Session struct {
	Flags      flags.Flags
	Logger     *log.Logger
	Rand       fx.RandSource
	MaxWorkers int
}

const defaultMaxWorkers = 8

func NewSession() *Session {
	return &Session{Flags: flags.Default()}
}

func (ses *Session) flags() flags.Flags {
	if ses.Flags != nil {
		return ses.Flags
	}
	return flags.Default()
}

func (ses *Session) logger() *log.Logger {
	if ses.Logger != nil {
		return ses.Logger
	}
	return log.StandardLogger()
}

func (ses *Session) workers() int {
	if ses.MaxWorkers > 0 {
		return ses.MaxWorkers
	}
	return defaultMaxWorkers
}

func (ses *Session) randSource() fx.RandSource {
	if ses.Rand != nil {
		return ses.Rand
	}
	return defaultRand
}

type lockedRand struct {
	mutex sync.Mutex
	rnd   *rand.Rand
}

func (lr *lockedRand) NextFloat64() float64 {
	lr.mutex.Lock()
	defer lr.mutex.Unlock()
	return lr.rnd.Float64()
}

var defaultRand = &lockedRand{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
