package catalog

// Kind enumerates the entry types the viewer knows how to colour.
// KindUnknown covers every other name the catalog might return.
type Kind int

const (
	KindUnknown Kind = iota
	KindNormal
	KindFire
	KindWater
	KindElectric
	KindGrass
	KindIce
	KindFighting
	KindPoison
	KindGround
	KindFlying
	KindPsychic
	KindBug
	KindRock
	KindGhost
	KindDragon
	KindDark
	KindSteel
	KindFairy
)

var kindNames = map[string]Kind{
	"normal":   KindNormal,
	"fire":     KindFire,
	"water":    KindWater,
	"electric": KindElectric,
	"grass":    KindGrass,
	"ice":      KindIce,
	"fighting": KindFighting,
	"poison":   KindPoison,
	"ground":   KindGround,
	"flying":   KindFlying,
	"psychic":  KindPsychic,
	"bug":      KindBug,
	"rock":     KindRock,
	"ghost":    KindGhost,
	"dragon":   KindDragon,
	"dark":     KindDark,
	"steel":    KindSteel,
	"fairy":    KindFairy,
}

// ParseKind maps a catalog type name to its Kind. Names are matched exactly
// as the catalog spells them (lower case); anything else is KindUnknown.
func ParseKind(name string) Kind {
	if k, ok := kindNames[name]; ok {
		return k
	}
	return KindUnknown
}

// KnownKinds returns the recognised kinds in declaration order.
func KnownKinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := KindNormal; k <= KindFairy; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the catalog spelling of the kind, or "unknown".
func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}
