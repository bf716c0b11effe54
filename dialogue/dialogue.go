// Package dialogue pages through an NPC's lines one key at a time.
package dialogue

import "github.com/automoto/tower-climb/shared/leveldata"

type Manager struct {
	npc  *leveldata.NPC
	page int
}

func NewManager() *Manager {
	return &Manager{}
}

// Open starts a conversation on the first page, replacing any open one.
func (m *Manager) Open(n leveldata.NPC) {
	m.npc = &n
	m.page = 0
}

// Next advances one page. On the last page it closes the dialogue and
// returns the NPC's external link, if any, for the caller to open.
func (m *Manager) Next() (link string, closed bool) {
	if m.npc == nil {
		return "", false
	}
	if m.IsLastPage() {
		link = m.npc.ExternalLink
		m.Close()
		return link, true
	}
	m.page++
	return "", false
}

func (m *Manager) Close() {
	m.npc = nil
	m.page = 0
}

func (m *Manager) IsOpen() bool { return m.npc != nil }
func (m *Manager) Page() int    { return m.page }

func (m *Manager) TotalPages() int {
	if m.npc == nil {
		return 0
	}
	return len(m.npc.Dialogue)
}

func (m *Manager) IsLastPage() bool {
	return m.page >= m.TotalPages()-1
}

// CurrentKey is the translation key of the visible line, or "" when closed.
func (m *Manager) CurrentKey() string {
	if m.npc == nil || m.page >= len(m.npc.Dialogue) {
		return ""
	}
	return m.npc.Dialogue[m.page]
}

// Speaker returns the NPC being talked to.
func (m *Manager) Speaker() (leveldata.NPC, bool) {
	if m.npc == nil {
		return leveldata.NPC{}, false
	}
	return *m.npc, true
}

func (m *Manager) HasExternalLink() bool {
	return m.npc != nil && m.npc.ExternalLink != ""
}

// IsTalkingTo reports whether id is the current speaker.
func (m *Manager) IsTalkingTo(id string) bool {
	return m.npc != nil && m.npc.ID == id
}
