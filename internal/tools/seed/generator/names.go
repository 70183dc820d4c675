package generator

import (
	"fmt"
	"strings"
)

const seedEmailDomain = "example.com"

var firstNames = []string{
	"Ada", "Bruno", "Camila", "Dmitri", "Elena", "Farid", "Grace", "Hiro",
	"Ingrid", "João", "Kwame", "Lucía", "Mei", "Nadia", "Omar", "Priya",
}

var lastNames = []string{
	"Almeida", "Brandt", "Chen", "Duarte", "Evans", "Fischer", "Gomez",
	"Haddad", "Ito", "Kowalski", "Lindqvist", "Moreau", "Novak", "Okafor",
}

var postTitles = []string{
	"Notes from the weekend hackathon",
	"Why we moved our builds to ARM",
	"A short review of my new keyboard",
	"Things I learned migrating to Postgres",
	"Three small habits that improved my reviews",
	"Trip report: the mountain railway",
	"Favorite recipes for busy weeks",
	"Reading list for the autumn",
}

var commentBodies = []string{
	"Great write-up, thanks for sharing.",
	"I ran into the same issue last month.",
	"Could you expand on the second point?",
	"Bookmarked for later.",
	"This matches what we saw in production.",
	"Nice photos!",
	"I disagree a little, but good arguments.",
}

// nameRegistry keeps generated names unique within a run so seeded emails
// stay unique too.
type nameRegistry struct {
	counts map[string]int
}

func newNameRegistry() *nameRegistry {
	return &nameRegistry{counts: make(map[string]int)}
}

func (r *nameRegistry) uniqueDisplayName(base string) string {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return base
	}
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	count := r.counts[trimmed]
	r.counts[trimmed] = count + 1
	if count == 0 {
		return trimmed
	}
	return fmt.Sprintf("%s %d", trimmed, count+1)
}

func (g *Generator) uniqueDisplayName(base string) string {
	if g.nameRegistry == nil {
		g.nameRegistry = newNameRegistry()
	}
	return g.nameRegistry.uniqueDisplayName(base)
}

func (g *Generator) pickName() string {
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]
	return first + " " + last
}

// seedPrimaryEmail derives an ASCII local part from a display name.
func (g *Generator) seedPrimaryEmail(displayName string) string {
	base := strings.TrimSpace(strings.ToLower(displayName))
	var b strings.Builder
	for _, ch := range base {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == ' ' || ch == '_' || ch == '-':
			b.WriteRune('.')
		}
	}
	local := strings.Trim(b.String(), ".")
	if len(local) > 40 {
		local = strings.Trim(local[:40], ".")
	}
	if local == "" {
		local = "seed.user"
	}
	return local + "@" + seedEmailDomain
}
