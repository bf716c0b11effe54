package systems

import (
	"log"

	"github.com/automoto/tower-climb/components"
	cfg "github.com/automoto/tower-climb/config"
	"github.com/automoto/tower-climb/systems/factory"
	"github.com/automoto/tower-climb/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWorld advances the simulation by the frame delta the scheduler put
// on the level, then clears whatever input the frame consumed.
func UpdateWorld(ecs *ecs.ECS) {
	lvl, ok := getLevel(ecs)
	if !ok {
		return
	}
	w := lvl.World
	ctl := lvl.Controls

	if ctl.ConsumeInteract() {
		if link := w.Interact(); link != "" {
			lvl.Link = link
			log.Printf("[systems] dialogue link: %s", link)
		}
	}

	ev := w.Update(lvl.DeltaTime, ctl.Snapshot())
	ctl.Apply(ev.Player)
	lvl.Events = ev

	if ev.SectionChange != nil || ev.Respawned {
		ctl.Reset()
		showBanner(ecs, w.SectionTitle())
	}
	if lvl.Notices != nil {
		lvl.Notices.Tick()
	}
}

// UpdateEntities mirrors the world into the render entities.
func UpdateEntities(ecs *ecs.ECS) {
	lvl, ok := getLevel(ecs)
	if !ok {
		return
	}
	w := lvl.World
	p := w.Player()

	if entry, ok := tags.Player.First(ecs.World); ok {
		obj := components.Object.Get(entry)
		obj.AABB = p.Body().Bounds

		data := components.Player.Get(entry)
		data.FacingRight = p.FacingRight()
		data.State = p.State()
		data.Charging = p.Charge().IsCharging()
		data.Charge = p.Charge().Percent() / 100
		data.Offset = w.Transition().PlayerOffset()

		anim := components.Animation.Get(entry)
		anim.SetAnimation(data.State)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(lvl.DeltaTime)
		}
	}

	nearby := w.NearbyNPC()
	tags.NPC.Each(ecs.World, func(e *donburi.Entry) {
		n := components.NPC.Get(e)
		n.Nearby = n.Actor == nearby
		n.Talking = w.Dialogue().IsTalkingTo(n.Actor.ID())
		components.Object.Get(e).AABB = factory.NPCBounds(n.Actor)
	})
}

// UpdateMessage counts the section banner down.
func UpdateMessage(ecs *ecs.ECS) {
	lvl, ok := getLevel(ecs)
	if !ok {
		return
	}
	state := getOrCreateMessageState(ecs)
	if state.Remaining <= 0 {
		return
	}
	state.Remaining -= lvl.DeltaTime
	if state.Remaining <= 0 {
		state.Remaining = 0
		state.TitleKey = ""
	}
}

func showBanner(ecs *ecs.ECS, titleKey string) {
	state := getOrCreateMessageState(ecs)
	state.TitleKey = titleKey
	state.Remaining = cfg.UI.BannerDuration
}

// getOrCreateMessageState returns the singleton MessageState component
func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
