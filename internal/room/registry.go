package room

import "github.com/solarlune/tetraroom/internal/scene"

// Tag is the role of an interactive object.
type Tag int

const (
	TagNone Tag = iota
	TagBook
	TagSwitchBoard
	TagProject
	TagCelebrationButton
)

func (t Tag) String() string {
	switch t {
	case TagBook:
		return "book"
	case TagSwitchBoard:
		return "switchboard"
	case TagProject:
		return "project"
	case TagCelebrationButton:
		return "celebration button"
	default:
		return "none"
	}
}

// Object names shared with the room model.
const (
	NameBook        = "Book"
	NameBookCover   = "Book001"
	NameSwitchBoard = "SwitchBoard"
	NameSwitch      = "Switch"
	NameStand       = "Stand"
	NameCPU         = "CPU"
	NameWall        = "Wall"
	NameProject     = "project"
)

// Registry holds typed handles to the room's notable objects. It's filled once by Build; any handle may be nil
// if the model lacks the object.
type Registry struct {
	Book        *scene.Node
	BookCover   *scene.Node
	SwitchBoard *scene.Node
	Switch      *scene.Node
	Screen      *scene.Node // The video screen mounted on the stand.
	Wall        *scene.Node
	CPUGlass    []*scene.Node

	Video *scene.TexturePlayer // Plays on the screen; nil if no video was loaded.

	Card     *scene.Node
	Button   *scene.Node
	Projects []*scene.Node
	Text     []*scene.Node // Wall text; each has a face and a side material.

	// Rest positions of the celebration props, before they're lifted into view.
	CardRest, ButtonRest scene.Vector3

	tags map[*scene.Node]Tag
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{tags: map[*scene.Node]Tag{}}
}

// Tag marks the nodes given with the tag.
func (reg *Registry) Tag(tag Tag, nodes ...*scene.Node) {
	for _, node := range nodes {
		if node != nil {
			reg.tags[node] = tag
		}
	}
}

// TagOf returns the tag of a node struck by a ray, or TagNone if it isn't interactive.
func (reg *Registry) TagOf(node *scene.Node) Tag {
	return reg.tags[node]
}
