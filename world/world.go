// Package world runs one frame of the tower: NPCs, transitions, the player
// against nearby terrain, the camera, section change notices, fall-out
// respawns and the background latch.
package world

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/tower-climb/camera"
	"github.com/automoto/tower-climb/chargejump"
	"github.com/automoto/tower-climb/clock"
	"github.com/automoto/tower-climb/dialogue"
	"github.com/automoto/tower-climb/notification"
	"github.com/automoto/tower-climb/npc"
	"github.com/automoto/tower-climb/player"
	"github.com/automoto/tower-climb/shared/leveldata"
	"github.com/automoto/tower-climb/tower"
	"github.com/automoto/tower-climb/transition"
)

// Notifier receives the popups the world raises.
type Notifier interface {
	Show(kind notification.Kind, title, message string) string
}

// Events is what happened during one Update.
type Events struct {
	Player        player.Events
	SectionChange *camera.Change
	Respawned     bool
}

type World struct {
	tower      *tower.Tower
	player     *player.Controller
	camera     *camera.Controller
	transition *transition.Manager
	dialogue   *dialogue.Manager
	notifier   Notifier

	npcs   []*npc.Actor
	nearby *npc.Actor
	clouds bool
}

// New builds the world around t and puts the player at the spawn point. A
// nil clock uses the wall clock; a nil notifier drops notices.
func New(t *tower.Tower, c clock.Clock, n Notifier) *World {
	w := &World{
		tower:      t,
		player:     player.New(chargejump.New(c)),
		camera:     camera.New(t),
		transition: transition.New(),
		dialogue:   dialogue.NewManager(),
		notifier:   n,
		npcs:       npc.NewActors(t.NPCs()),
	}
	w.spawn()
	return w
}

func (w *World) spawn() {
	first := w.tower.First()
	w.player.InitAtEntry(leveldata.EntryPoint{
		X:         w.tower.SpawnPoint().X,
		Kind:      leveldata.EntryFall,
		Direction: leveldata.Right,
	}, w.tower.GroundLevel(first))
}

// Update advances the world by one frame. Input is ignored while a
// transition runs or a dialogue is open.
func (w *World) Update(dt time.Duration, in player.Input) Events {
	var ev Events

	if w.transition.IsActive() || w.dialogue.IsOpen() {
		// Dropping the jump hold reads as a release, so a running charge
		// must go first or it would fire.
		w.player.Charge().CancelCharge()
		in = player.Input{}
	}

	w.updateNPCs(dt)
	w.transition.Update(dt)

	body := w.player.Body()
	colliders := w.tower.CollidersNear(body.Bounds)
	ev.Player = w.player.Update(dt, in, colliders, w.tower.LadderColliders())

	playerY := body.Position.Y
	w.camera.Update(playerY)

	if change, ok := w.camera.SectionChange(); ok {
		ev.SectionChange = &change
		w.notify(notification.Info, w.tower.SectionTitle(change.To), "world.entered_"+string(change.Direction))
		w.camera.ClearSectionChange()
	}

	if w.tower.IsBelowTower(playerY) {
		w.respawn(playerY)
		ev.Respawned = true
	}

	w.nearby = npc.Nearest(w.npcs, w.player.VisualPosition())
	w.updateBackground()
	return ev
}

func (w *World) updateNPCs(dt time.Duration) {
	pos := w.player.VisualPosition()
	for _, a := range w.npcs {
		paused := a.IsNear(pos) || w.dialogue.IsTalkingTo(a.ID())
		a.Update(dt, paused)
	}
}

// respawn puts the player back on the first section's ground and drops
// them in from above.
func (w *World) respawn(fellAt float64) {
	log.Printf("[world] player fell out at y=%.0f, respawning", fellAt)

	w.spawn()
	w.camera.SetPosition(0, 0)
	w.tower.UpdateCurrentSection(0)
	w.notify(notification.Info, "world.respawn.title", "world.respawn.message")

	if !w.transition.IsActive() {
		if err := w.transition.StartEntry(transition.Fall, leveldata.Down, nil); err != nil {
			log.Printf("[world] respawn entry: %v", err)
		}
	}
}

// updateBackground latches the cloud sky once the player climbs the ladder
// in a cloud section or teleports into one. Leaving the section clears it.
func (w *World) updateBackground() {
	cloudy := w.tower.BackgroundType(w.tower.CurrentSection()) == leveldata.BackgroundClouds

	if w.player.ConsumeTeleport() {
		if cloudy {
			w.clouds = true
		}
		return
	}
	if cloudy && w.player.IsClimbing() {
		w.clouds = true
	} else if !cloudy {
		w.clouds = false
	}
}

// TeleportToSection fades out, moves the player next to the section's first
// NPC and fades back in. It fails with transition.ErrBusy while another
// transition runs.
func (w *World) TeleportToSection(id leveldata.SectionID) error {
	w.tower.SectionIndex(id)
	w.dialogue.Close()

	return w.transition.StartExit(id, transition.Door, leveldata.Down, func() {
		pos := w.tower.NPCPositionForSection(id)
		w.player.TeleportTo(pos.X, pos.Y)
		w.tower.SetCurrentSection(id)
		w.camera.SnapTo(w.player.Body().Position.Y)
		log.Printf("[world] teleported to %s", id)

		if err := w.transition.StartEntry(transition.Door, leveldata.Down, nil); err != nil {
			log.Printf("[world] teleport entry: %v", err)
		}
	})
}

// Interact talks to the nearby NPC, or pages the open dialogue. When the
// last page closes on an NPC with an external link, the link is returned
// and announced.
func (w *World) Interact() (link string) {
	if w.transition.IsActive() {
		return ""
	}

	if w.dialogue.IsOpen() {
		speaker, _ := w.dialogue.Speaker()
		link, closed := w.dialogue.Next()
		if closed && link != "" {
			w.notify(notification.Info, speaker.Name, link)
		}
		return link
	}

	if w.nearby != nil {
		w.dialogue.Open(w.nearby.NPC)
	}
	return ""
}

func (w *World) notify(kind notification.Kind, title, message string) {
	if w.notifier != nil {
		w.notifier.Show(kind, title, message)
	}
}

func (w *World) Tower() *tower.Tower                 { return w.tower }
func (w *World) Player() *player.Controller          { return w.player }
func (w *World) Camera() *camera.Controller          { return w.camera }
func (w *World) Transition() *transition.Manager     { return w.transition }
func (w *World) Dialogue() *dialogue.Manager         { return w.dialogue }
func (w *World) NPCs() []*npc.Actor                  { return w.npcs }
func (w *World) NearbyNPC() *npc.Actor               { return w.nearby }
func (w *World) Clouds() bool                        { return w.clouds }
func (w *World) CurrentSection() leveldata.SectionID { return w.tower.CurrentSection() }

// Background is the sky to draw behind the tower.
func (w *World) Background() leveldata.BackgroundType {
	if w.clouds {
		return leveldata.BackgroundClouds
	}
	return leveldata.BackgroundTrees
}

// SectionTitle is the title key of the current section.
func (w *World) SectionTitle() string {
	return w.tower.SectionTitle(w.tower.CurrentSection())
}

// String summarises the player for debug overlays.
func (w *World) String() string {
	b := w.player.Body()
	return fmt.Sprintf("section=%s pos=(%.0f,%.0f) vel=(%.2f,%.2f) grounded=%t state=%s",
		w.tower.CurrentSection(), b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y, b.Grounded, w.player.State())
}
