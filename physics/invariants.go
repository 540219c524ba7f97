package physics

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/boxcollide/components"
	"github.com/yohamta/donburi"
)

// InvariantError is the panic value raised when entity composition is broken
// and the package is built without the release tag.
type InvariantError struct {
	Entity donburi.Entity
	Msg    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("physics invariant: entity %v: %s", e.Entity, e.Msg)
}

var reported sync.Map

// assertf panics in debug builds. Release builds log each message once and
// let the caller degrade.
func assertf(entity donburi.Entity, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if debugAssertions {
		panic(&InvariantError{Entity: entity, Msg: msg})
	}
	if _, seen := reported.LoadOrStore(msg, struct{}{}); !seen {
		log.Printf("[physics] invariant: entity %v: %s", entity, msg)
	}
}

// CheckInvariants verifies entity composition. Violations are host bugs, so
// they are never returned as errors.
func (p *Pipeline[RxK, TxK, C]) CheckInvariants(w donburi.World) {
	p.velNoPos.Each(w, func(e *donburi.Entry) {
		assertf(e.Entity(), "has Velocity but no Position")
	})
	p.bothStaticRoles.Each(w, func(e *donburi.Entry) {
		assertf(e.Entity(), "is both a StaticRx and a StaticTx")
	})
	p.movingStaticTx.Each(w, func(e *donburi.Entry) {
		if components.Velocity.Get(e).X != 0 {
			assertf(e.Entity(), "StaticTx moves horizontally")
		}
	})
}
