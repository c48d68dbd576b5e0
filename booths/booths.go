// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package booths

import "github.com/danielhkuo/kultura-quest/models"

// Registry is an immutable, ordered set of booth definitions. It is
// built once at startup and injected into handlers; nothing mutates it
// at runtime.
type Registry struct {
	booths []models.Booth
}

// New copies the given definitions into a Registry, preserving order.
func New(defs []models.Booth) *Registry {
	booths := make([]models.Booth, len(defs))
	copy(booths, defs)
	return &Registry{booths: booths}
}

// Default returns the registry with the event's six reference booths.
func Default() *Registry {
	return New(defaultBooths)
}

// ListPublic returns all booths with the gating password stripped, in
// registry order.
func (r *Registry) ListPublic() []models.BoothPublic {
	public := make([]models.BoothPublic, 0, len(r.booths))
	for _, b := range r.booths {
		public = append(public, models.BoothPublic{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
		})
	}
	return public
}

// FindByID returns the full definition, password included. Only the
// completion-gate check should use the result; it is never serialized
// to clients.
func (r *Registry) FindByID(id string) (models.Booth, bool) {
	for _, b := range r.booths {
		if b.ID == id {
			return b, true
		}
	}
	return models.Booth{}, false
}

var defaultBooths = []models.Booth{
	{
		ID:          "tumbang",
		Name:        "Tumbang Preso",
		Description: "Knock down the lata with slippers in this classic Filipino street game.",
		Password:    "preso2024",
	},
	{
		ID:          "calamansi",
		Name:        "Calamansi Relay",
		Description: "Balance a calamansi on a spoon and dash for your team!",
		Password:    "whyareurunning7",
	},
	{
		ID:          "baybayin",
		Name:        "Baybayin Calligraphy",
		Description: "Write your name using the pre-colonial Baybayin script.",
		Password:    "baybayink05",
	},
	{
		ID:          "pamahiin",
		Name:        "Pamahiin Quiz",
		Description: "Test your knowledge of Filipino superstitions and beliefs.",
		Password:    "swerteak0",
	},
	{
		ID:          "maskara",
		Name:        "Maskara Making",
		Description: "Design a colorful mask inspired by the MassKara Festival.",
		Password:    "maskar4rt",
	},
	{
		ID:          "imahe",
		Name:        "Imahe",
		Description: "Pose with your maskara and post an instagram story tagging @kaist.one .",
		Password:    "imah3h3",
	},
}
