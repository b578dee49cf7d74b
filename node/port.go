package node

// Slot is a one-value mailbox.
type Slot struct {
	value int
	full  bool
}

// Put stores a value in the slot, replacing any prior value.
func (s *Slot) Put(value int) {
	s.value = value
	s.full = true
}

// Take removes the value from the slot, if present.
func (s *Slot) Take() (value int, ok bool) {
	if !s.full {
		return
	}

	value, ok = s.value, true
	s.value = 0
	s.full = false

	return
}

// Peek returns the value in the slot, if present.
func (s *Slot) Peek() (value int, ok bool) {
	return s.value, s.full
}

// Full returns true if the slot holds a value.
func (s *Slot) Full() bool {
	return s.full
}

// Links holds the grid index of the neighbor in each direction.
// The zero value has no neighbors.
type Links struct {
	neighbor [DIRECTIONS]int // Grid index + 1, 0 if unlinked.
}

// SetNeighbor links a direction to the unit at a grid index.
func (l *Links) SetNeighbor(dir Direction, index int) {
	l.neighbor[dir] = index + 1
}

// Neighbor returns the grid index of the neighbor in a direction.
func (l *Links) Neighbor(dir Direction) (index int, ok bool) {
	if l.neighbor[dir] == 0 {
		return
	}

	return l.neighbor[dir] - 1, true
}

// Only returns the first linked direction, for units with a single neighbor.
func (l *Links) Only() (dir Direction, index int, ok bool) {
	for dir = range DIRECTIONS {
		index, ok = l.Neighbor(dir)
		if ok {
			return
		}
	}

	return
}

// Peer is the writer side of a link, as seen by a reader.
type Peer interface {
	// Take removes the value a blocked writer has published toward a
	// reader that reads in direction dir, completing the pending write.
	Take(dir Direction) (value int, ok bool)
}

// Fabric resolves grid indexes to units.
type Fabric interface {
	Peer(index int) (peer Peer, ok bool)
}

// Unit is anything that can be placed on the grid and ticked.
type Unit interface {
	Peer
	Link() *Links
	BeforeTick(fab Fabric)
	Tick() error
	AfterTick()
}

// Port is the port register state shared by every kind of unit.
//
// Slot[d] is the outgoing mailbox toward direction d. Only its owner
// puts values in it; a reader clears it through Take. Latch[d] holds a
// value taken from the neighbor in direction d, until the blocked
// instruction consumes it.
type Port struct {
	Links

	Slot  [DIRECTIONS]Slot
	Latch [DIRECTIONS]Slot

	State      State
	Blocked    bool
	Deadlocked bool

	reading Direction // Direction of the pending read.
}

// Link returns the neighbor links.
func (p *Port) Link() *Links {
	return &p.Links
}

// ResetPort clears the port state, but keeps the links.
func (p *Port) ResetPort() {
	clear(p.Slot[:])
	clear(p.Latch[:])
	p.State = STATE_IDLE
	p.Blocked = false
	p.Deadlocked = false
	p.reading = DIR_LEFT
}

// Write publishes a value toward a direction, and blocks until a
// reader takes it.
func (p *Port) Write(dir Direction, value int) {
	p.Slot[dir].Put(value)
	p.Blocked = true
	p.State = STATE_WRITING
}

// Read consumes a value received from a direction. If none has been
// received yet, it blocks until Retry takes one from the neighbor.
func (p *Port) Read(dir Direction) (value int, ok bool) {
	value, ok = p.Latch[dir].Take()
	if ok {
		p.Blocked = false
		return
	}

	p.Blocked = true
	p.State = STATE_READING
	p.reading = dir

	return
}

// Yield is the writer side of a rendezvous. A reader reading in
// direction dir reaches the writer's opposite-facing slot.
func (p *Port) Yield(dir Direction) (value int, ok bool) {
	if !p.Blocked || p.State != STATE_WRITING {
		return
	}

	value, ok = p.Slot[dir.Opposite()].Take()
	if !ok {
		return
	}

	p.Blocked = false
	p.Deadlocked = false
	p.State = STATE_IDLE

	return
}

// Retry is the reader side of a rendezvous. A unit blocked reading
// asks its neighbor for the value, and latches it on success.
func (p *Port) Retry(fab Fabric) (ok bool) {
	if !p.Blocked || p.State != STATE_READING {
		return
	}

	index, ok := p.Neighbor(p.reading)
	if !ok {
		return
	}

	peer, ok := fab.Peer(index)
	if !ok {
		return
	}

	value, ok := peer.Take(p.reading)
	if !ok {
		return
	}

	p.Latch[p.reading].Put(value)
	p.Blocked = false
	p.Deadlocked = false
	p.State = STATE_IDLE

	return
}

// AfterTick marks a unit still blocked at the end of a tick as deadlocked.
func (p *Port) AfterTick() {
	p.Deadlocked = p.Blocked
}
