package catalog

// Reference is one row of a listing window: the entry's name and the URL of
// its detail document.
type Reference struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Page is a listing window returned by the paged listing endpoint.
type Page struct {
	// Count is the total number of entries the catalog reports.
	Count   int         `json:"count"`
	Results []Reference `json:"results"`
}

// TypeRef names one of an entry's types, in slot order.
type TypeRef struct {
	Name string
}

// Ability is one of an entry's abilities, in slot order.
type Ability struct {
	Name   string
	Hidden bool
}

// Entry is a full catalog record. It is never mutated after decoding.
type Entry struct {
	ID        int
	Name      string
	SpriteURL string
	Types     []TypeRef
	Abilities []Ability
	// Height in decimetres.
	Height int
	// Weight in hectograms.
	Weight int
}

// HeightMetres returns the height converted from decimetres.
func (e Entry) HeightMetres() float64 {
	return float64(e.Height) / 10
}

// WeightKilograms returns the weight converted from hectograms.
func (e Entry) WeightKilograms() float64 {
	return float64(e.Weight) / 10
}

// TypeNames returns the entry's type names in slot order.
func (e Entry) TypeNames() []string {
	names := make([]string, len(e.Types))
	for i, t := range e.Types {
		names[i] = t.Name
	}
	return names
}

// wireEntry mirrors the detail document. Only the fields pokebox renders
// are declared; the rest of the payload is ignored by the decoder.
type wireEntry struct {
	ID      *int   `json:"id"`
	Name    string `json:"name"`
	Sprites struct {
		FrontDefault *string `json:"front_default"`
	} `json:"sprites"`
	Types []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Abilities []struct {
		Slot     int  `json:"slot"`
		IsHidden bool `json:"is_hidden"`
		Ability  struct {
			Name string `json:"name"`
		} `json:"ability"`
	} `json:"abilities"`
	Height int `json:"height"`
	Weight int `json:"weight"`
}

// toEntry converts the wire shape into an Entry. It reports false when the
// document lacks the identity fields every rendered entry needs.
func (w *wireEntry) toEntry() (Entry, bool) {
	if w.ID == nil || w.Name == "" {
		return Entry{}, false
	}

	e := Entry{
		ID:     *w.ID,
		Name:   w.Name,
		Height: w.Height,
		Weight: w.Weight,
	}
	if w.Sprites.FrontDefault != nil {
		e.SpriteURL = *w.Sprites.FrontDefault
	}

	e.Types = make([]TypeRef, 0, len(w.Types))
	for _, t := range w.Types {
		e.Types = append(e.Types, TypeRef{Name: t.Type.Name})
	}

	e.Abilities = make([]Ability, 0, len(w.Abilities))
	for _, a := range w.Abilities {
		e.Abilities = append(e.Abilities, Ability{Name: a.Ability.Name, Hidden: a.IsHidden})
	}

	return e, true
}
