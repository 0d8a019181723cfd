package ledger

import (
	"errors"
	"github.com/QuangTung97/poolparty/model"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// ErrNotFound when the identity is absent or inactive
var ErrNotFound = errors.New("participant not found")

// ErrCorruptIndex when loaded records do not form a dense list
var ErrCorruptIndex = errors.New("participant list index corrupted")

// Ledger keeps the participants of one campaign.
// Records live in an arena, the active ones are referenced by a dense slice
// and each record keeps its position in that slice as ListIndex.
type Ledger struct {
	campaignID int64

	records []model.Participant
	slots   map[common.Address]int
	active  []int

	dirty map[int]struct{}

	recording bool
	undo      []func()
}

// New creates an empty ledger
func New(campaignID int64) *Ledger {
	return &Ledger{
		campaignID: campaignID,
		slots:      map[common.Address]int{},
		dirty:      map[int]struct{}{},
	}
}

// Load rebuilds a ledger from persisted records
func Load(campaignID int64, participants []model.Participant) (*Ledger, error) {
	l := New(campaignID)

	numActive := 0
	for _, p := range participants {
		if p.Active {
			numActive++
		}
	}

	l.active = make([]int, numActive)
	for i := range l.active {
		l.active[i] = -1
	}

	for _, p := range participants {
		if _, existed := l.slots[p.Address]; existed {
			return nil, ErrCorruptIndex
		}

		pos := len(l.records)
		l.records = append(l.records, p)
		l.slots[p.Address] = pos

		if !p.Active {
			continue
		}
		if p.ListIndex < 0 || p.ListIndex >= numActive || l.active[p.ListIndex] >= 0 {
			return nil, ErrCorruptIndex
		}
		l.active[p.ListIndex] = pos
	}
	return l, nil
}

// Add increases the balance of an active participant or appends a new active record
func (l *Ledger) Add(addr common.Address, amount decimal.Decimal) model.Participant {
	pos, existed := l.slots[addr]
	if !existed {
		pos = len(l.records)
		l.records = append(l.records, model.Participant{
			CampaignID: l.campaignID,
			Address:    addr,
			Balance:    amount,
			ListIndex:  len(l.active),
			Active:     true,
		})
		l.slots[addr] = pos
		l.active = append(l.active, pos)
		l.markDirty(pos)

		l.record(func() {
			l.active = l.active[:len(l.active)-1]
			l.records = l.records[:pos]
			delete(l.slots, addr)
			delete(l.dirty, pos)
		})
		return l.records[pos]
	}

	old := l.records[pos]
	p := &l.records[pos]
	if p.Active {
		p.Balance = p.Balance.Add(amount)
		l.markDirty(pos)
		l.record(func() {
			l.records[pos] = old
		})
		return *p
	}

	p.Active = true
	p.Balance = amount
	p.ListIndex = len(l.active)
	p.EjectReason = ""
	l.active = append(l.active, pos)
	l.markDirty(pos)

	l.record(func() {
		l.active = l.active[:len(l.active)-1]
		l.records[pos] = old
	})
	return *p
}

// Remove zeroes the balance and deactivates the participant, returning the record before removal
func (l *Ledger) Remove(addr common.Address) (model.Participant, error) {
	pos, existed := l.slots[addr]
	if !existed || !l.records[pos].Active {
		return model.Participant{}, ErrNotFound
	}

	removed := l.records[pos]
	idx := removed.ListIndex
	last := len(l.active) - 1
	movedPos := l.active[last]

	l.active[idx] = movedPos
	l.records[movedPos].ListIndex = idx
	l.active = l.active[:last]

	p := &l.records[pos]
	p.Balance = decimal.Zero
	p.Active = false
	p.ListIndex = -1

	l.markDirty(pos)
	l.markDirty(movedPos)

	l.record(func() {
		l.active = append(l.active, movedPos)
		l.active[idx] = pos
		l.records[movedPos].ListIndex = last
		l.records[pos] = removed
	})
	return removed, nil
}

// Get ...
func (l *Ledger) Get(addr common.Address) (model.Participant, bool) {
	pos, existed := l.slots[addr]
	if !existed {
		return model.Participant{}, false
	}
	return l.records[pos], true
}

// Update applies fn to an existing record, fn must not touch Active or ListIndex
func (l *Ledger) Update(addr common.Address, fn func(p *model.Participant)) (model.Participant, error) {
	pos, existed := l.slots[addr]
	if !existed {
		return model.Participant{}, ErrNotFound
	}

	old := l.records[pos]
	p := &l.records[pos]
	fn(p)
	p.Active = old.Active
	p.ListIndex = old.ListIndex
	l.markDirty(pos)

	l.record(func() {
		l.records[pos] = old
	})
	return *p, nil
}

// UpdateAll applies fn to every record ever added, in insertion order
func (l *Ledger) UpdateAll(fn func(p *model.Participant)) {
	for pos := range l.records {
		pos := pos
		old := l.records[pos]
		p := &l.records[pos]
		fn(p)
		p.Active = old.Active
		p.ListIndex = old.ListIndex
		l.markDirty(pos)

		l.record(func() {
			l.records[pos] = old
		})
	}
}

// Count returns the number of active participants
func (l *Ledger) Count() int {
	return len(l.active)
}

// At returns the active participant at list position i
func (l *Ledger) At(i int) model.Participant {
	return l.records[l.active[i]]
}

// Active returns the active participants in list order
func (l *Ledger) Active() []model.Participant {
	result := make([]model.Participant, 0, len(l.active))
	for _, pos := range l.active {
		result = append(result, l.records[pos])
	}
	return result
}

// Records returns every record including inactive ones
func (l *Ledger) Records() []model.Participant {
	result := make([]model.Participant, len(l.records))
	copy(result, l.records)
	return result
}

// Dirty returns records changed since the last ClearDirty
func (l *Ledger) Dirty() []model.Participant {
	var result []model.Participant
	for pos := range l.records {
		if _, ok := l.dirty[pos]; ok {
			result = append(result, l.records[pos])
		}
	}
	return result
}

// ClearDirty ...
func (l *Ledger) ClearDirty() {
	l.dirty = map[int]struct{}{}
}

// Begin starts journaling changes so they can be undone by Rollback
func (l *Ledger) Begin() {
	l.recording = true
	l.undo = l.undo[:0]
}

// Commit keeps the changes made since Begin
func (l *Ledger) Commit() {
	l.recording = false
	l.undo = l.undo[:0]
}

// Rollback undoes the changes made since Begin
func (l *Ledger) Rollback() {
	for i := len(l.undo) - 1; i >= 0; i-- {
		l.undo[i]()
	}
	l.recording = false
	l.undo = l.undo[:0]
}

func (l *Ledger) record(fn func()) {
	if !l.recording {
		return
	}
	l.undo = append(l.undo, fn)
}

func (l *Ledger) markDirty(pos int) {
	l.dirty[pos] = struct{}{}
}
