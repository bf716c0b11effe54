// Package leveldata describes the hand-authored tower sections as plain data.
// Only the TMX loader reaches outside the standard library.
package leveldata

// SectionID names one authored section of the tower
type SectionID string

const (
	Hero     SectionID = "hero"
	About    SectionID = "about"
	Skills   SectionID = "skills"
	Projects SectionID = "projects"
	Contact  SectionID = "contact"
)

// SectionOrder is the canonical bottom-to-top stacking order.
var SectionOrder = []SectionID{Hero, About, Skills, Projects, Contact}

type TerrainType string

const (
	TerrainGrass  TerrainType = "grass"
	TerrainSand   TerrainType = "sand"
	TerrainPurple TerrainType = "purple"
	TerrainStone  TerrainType = "stone"
)

type BackgroundType string

const (
	BackgroundHills     BackgroundType = "hills"
	BackgroundTrees     BackgroundType = "trees"
	BackgroundMushrooms BackgroundType = "mushrooms"
	BackgroundDesert    BackgroundType = "desert"
	BackgroundClouds    BackgroundType = "clouds"
)

// EntryKind is how the player arrives in a section
type EntryKind string

const (
	EntryPipe EntryKind = "pipe"
	EntryDoor EntryKind = "door"
	EntryFall EntryKind = "fall"
)

type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// TerrainTile is a single tile-sized piece of terrain
type TerrainTile struct {
	ID    string
	X, Y  float64
	Frame string
	Solid bool
}

// Decoration is a non-solid sprite placed in a section
type Decoration struct {
	ID    string
	X, Y  float64
	Frame string
	Sheet string
}

// PatrolRange bounds an NPC's back-and-forth walk. Speed is pixels per frame.
type PatrolRange struct {
	MinX, MaxX float64
	Speed      float64
}

// NPC is a friendly creature with paged dialogue
type NPC struct {
	ID           string
	X, Y         float64
	Sprite       string
	Name         string   // i18n key shown as the speaker
	Dialogue     []string // i18n keys, one per page
	ExternalLink string   // Opened after the last page when set
	Patrol       *PatrolRange
}

// Ladder is a climbable column one tile wide
type Ladder struct {
	ID          string
	X           float64
	TopY        float64
	HeightTiles int
}

// EntryPoint is where the player appears in a section
type EntryPoint struct {
	X         float64
	Kind      EntryKind
	Direction Direction
}

// WorldSection is one immutable, hand-authored page of the tower
type WorldSection struct {
	ID             SectionID
	Width          float64
	Height         float64
	GroundLevel    float64
	TerrainType    TerrainType
	BackgroundType BackgroundType
	Terrain        []TerrainTile
	Decorations    []Decoration
	NPCs           []NPC
	Ladders        []Ladder
	Entry          EntryPoint
	Title          string // i18n key
}
