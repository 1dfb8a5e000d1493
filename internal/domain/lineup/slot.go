package lineup

// SlotID is the stable identity of a weekly lineup slot.
type SlotID string

const (
	SlotGuard1           SlotID = "guard1"
	SlotGuard2           SlotID = "guard2"
	SlotForward1         SlotID = "forward1"
	SlotForward2         SlotID = "forward2"
	SlotCentre           SlotID = "centre"
	SlotGuardForward     SlotID = "guardForward"
	SlotForwardCentre    SlotID = "forwardCentre"
	SlotFlex1            SlotID = "flex1"
	SlotFlex2            SlotID = "flex2"
	SlotGuardRes         SlotID = "guardRes"
	SlotForwardCentreRes SlotID = "forwardCentreRes"
	SlotFlexRes          SlotID = "flexRes"
)

// Class is the position family a slot accepts.
type Class string

const (
	ClassGuard         Class = "G"
	ClassForward       Class = "F"
	ClassCentre        Class = "C"
	ClassGuardForward  Class = "G/F"
	ClassForwardCentre Class = "F/C"
	ClassAny           Class = "ANY"
)

// Slot is one of the twelve fixed lineup positions.
type Slot struct {
	ID      SlotID
	Label   string
	Class   Class
	Reserve bool
}

var slots = []Slot{
	{ID: SlotGuard1, Label: "Guard 1", Class: ClassGuard},
	{ID: SlotGuard2, Label: "Guard 2", Class: ClassGuard},
	{ID: SlotForward1, Label: "Forward 1", Class: ClassForward},
	{ID: SlotForward2, Label: "Forward 2", Class: ClassForward},
	{ID: SlotCentre, Label: "Centre", Class: ClassCentre},
	{ID: SlotGuardForward, Label: "Guard/Forward", Class: ClassGuardForward},
	{ID: SlotForwardCentre, Label: "Forward/Centre", Class: ClassForwardCentre},
	{ID: SlotFlex1, Label: "Flex 1", Class: ClassAny},
	{ID: SlotFlex2, Label: "Flex 2", Class: ClassAny},
	{ID: SlotGuardRes, Label: "Res Guard", Class: ClassGuard, Reserve: true},
	{ID: SlotForwardCentreRes, Label: "Res Forward/Center", Class: ClassForwardCentre, Reserve: true},
	{ID: SlotFlexRes, Label: "Res Flex", Class: ClassAny, Reserve: true},
}

// SlotCount is the number of slots a complete lineup fills.
const SlotCount = 12

// Slots returns the fixed slots in display and submit order.
func Slots() []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

func SlotByID(id SlotID) (Slot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}
