package components

import "github.com/yohamta/donburi"

// DamageSource identifies what dealt a hit.
type DamageSource int

const (
	DamageSlash DamageSource = iota
	DamageBurstSlash
	DamageExplosion
	DamageMissile
	DamageFall
)

func (s DamageSource) String() string {
	switch s {
	case DamageSlash:
		return "slash"
	case DamageBurstSlash:
		return "burst-slash"
	case DamageExplosion:
		return "explosion"
	case DamageMissile:
		return "missile"
	case DamageFall:
		return "fall"
	}
	return "unknown"
}

type Hit struct {
	Amount int
	Source DamageSource
}

// DamageEventData queues the hits an entity received this frame. Several
// sources can land on the same frame, so hits accumulate until combat
// drains them.
type DamageEventData struct {
	Hits []Hit
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

// QueueDamage adds a hit to the entity's pending damage.
func QueueDamage(e *donburi.Entry, amount int, source DamageSource) {
	if amount <= 0 || !e.Valid() {
		return
	}
	if e.HasComponent(DamageEvent) {
		ev := DamageEvent.Get(e)
		ev.Hits = append(ev.Hits, Hit{Amount: amount, Source: source})
		return
	}
	donburi.Add(e, DamageEvent, &DamageEventData{Hits: []Hit{{Amount: amount, Source: source}}})
}
