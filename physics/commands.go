package physics

import "github.com/yohamta/donburi"

// Commands queues world mutations requested while records are being read,
// so nothing is added or removed in the middle of a pass. The queue is
// flushed at the start of the next Tick.
type Commands struct {
	queue []func(donburi.World)
}

// Push queues an arbitrary mutation.
func (c *Commands) Push(fn func(donburi.World)) {
	c.queue = append(c.queue, fn)
}

// Despawn queues the removal of ent. Already removed entities are ignored.
func (c *Commands) Despawn(ent donburi.Entity) {
	c.Push(func(w donburi.World) {
		if w.Valid(ent) {
			w.Remove(ent)
		}
	})
}

func (c *Commands) Len() int { return len(c.queue) }

// Flush applies queued mutations in order. Mutations queued during the flush
// run in the same flush.
func (c *Commands) Flush(w donburi.World) {
	for i := 0; i < len(c.queue); i++ {
		c.queue[i](w)
	}
	clear(c.queue)
	c.queue = c.queue[:0]
}
