package systems

import (
	"github.com/automoto/bossfight/components"
	cfg "github.com/automoto/bossfight/config"
	"github.com/automoto/bossfight/events"
	"github.com/automoto/bossfight/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat drains queued hits, keeps health within range, charges the
// burst meter and latches the defeat notifications.
func UpdateCombat(ecs *ecs.ECS) {
	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		dmg := components.DamageEvent.Get(e)
		if len(dmg.Hits) == 0 {
			return
		}
		hits := dmg.Hits
		dmg.Hits = dmg.Hits[:0]

		switch {
		case e.HasComponent(tags.Boss):
			damageBoss(ecs, e, hits)
		case e.HasComponent(tags.Player):
			damagePlayer(ecs, e, hits)
		}
	})

	for e := range components.Health.Iter(ecs.World) {
		components.Health.Get(e).Clamp()
	}
}

func damageBoss(ecs *ecs.ECS, e *donburi.Entry, hits []components.Hit) {
	boss := components.Boss.Get(e)
	hp := components.Health.Get(e)
	if boss.Phase == cfg.Defeated || hp.Current <= 0 {
		return
	}

	charge := 0
	for _, h := range hits {
		hp.Current -= h.Amount
		if h.Source == components.DamageSlash {
			charge += cfg.Burst.ChargePerHit
		}
	}
	hp.Clamp()

	events.HealthChangedEvent.Publish(ecs.World, events.HealthChanged{
		Who:     events.CombatantBoss,
		Current: hp.Current,
		Max:     hp.Max,
	})
	if charge > 0 {
		chargeBurst(ecs, charge)
	}
	CheckBossPhase(ecs, e)
}

func damagePlayer(ecs *ecs.ECS, e *donburi.Entry, hits []components.Hit) {
	player := components.Player.Get(e)
	hp := components.Health.Get(e)
	if hp.Current <= 0 {
		return
	}

	for _, h := range hits {
		hp.Current -= h.Amount
	}
	hp.Clamp()

	events.HealthChangedEvent.Publish(ecs.World, events.HealthChanged{
		Who:     events.CombatantPlayer,
		Current: hp.Current,
		Max:     hp.Max,
	})

	if hp.Current == 0 && !player.DefeatNotified {
		player.DefeatNotified = true
		player.Attack = cfg.AttackIdle
		player.Combo = components.ComboData{}
		events.PlayerDefeatedEvent.Publish(ecs.World, events.PlayerDefeated{})
		PlaySFX(ecs, cfg.SoundPlayerDefeated)
	}
}

// chargeBurst adds melee charge to the player's meter, capped at the max.
func chargeBurst(ecs *ecs.ECS, amount int) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		burst := components.Burst.Get(e)
		if burst.Charge >= cfg.Burst.MaxCharge {
			return
		}
		burst.Charge = min(cfg.Burst.MaxCharge, burst.Charge+amount)
		burst.Ready = burst.Charge >= cfg.Burst.MaxCharge
		events.BurstChangedEvent.Publish(ecs.World, events.BurstChanged{
			Percent: burst.Charge * 100 / cfg.Burst.MaxCharge,
			Ready:   burst.Ready,
		})
	})
}
