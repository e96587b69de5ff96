// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package resolve

import "strings"

// shortQueryMax caps the number of candidates taken from the letter table.
const shortQueryMax = 10

// commonNamesByLetter maps a lowercase first letter to common compound
// names. The autocomplete endpoint returns nothing useful for one- or
// two-character queries, so short queries resolve through this table
// instead. Letters without an entry fall through to autocomplete.
var commonNamesByLetter = map[byte][]string{
	'a': {"acetone", "ammonia", "aspirin", "acetic acid", "acetaminophen", "argon", "arsenic"},
	'b': {"benzene", "butane", "boric acid", "bromine", "barium sulfate"},
	'c': {"caffeine", "chlorine", "citric acid", "carbon dioxide", "calcium carbonate", "cholesterol"},
	'd': {"dopamine", "dextrose", "diethyl ether", "dichloromethane"},
	'e': {"ethanol", "ethylene", "ethylene glycol", "epinephrine", "ethyl acetate"},
	'f': {"formaldehyde", "fluorine", "fructose", "formic acid"},
	'g': {"glucose", "glycerol", "glycine", "glutamine"},
	'h': {"hydrogen peroxide", "helium", "hexane", "histamine", "hydrochloric acid"},
	'i': {"ibuprofen", "iodine", "isopropyl alcohol", "indigo"},
	'l': {"lactic acid", "lithium carbonate", "lidocaine"},
	'm': {"methane", "methanol", "morphine", "magnesium sulfate", "menthol"},
	'n': {"nitrogen", "nicotine", "naphthalene", "nitric acid"},
	'o': {"oxygen", "octane", "oxalic acid", "ozone"},
	'p': {"propane", "phenol", "potassium chloride", "propylene glycol", "penicillin g"},
	'r': {"radon", "ribose", "retinol", "resorcinol"},
	's': {"sucrose", "sodium chloride", "sulfuric acid", "sodium bicarbonate", "styrene"},
	't': {"toluene", "testosterone", "tartaric acid", "thymine"},
	'u': {"urea", "uracil", "uric acid"},
	'v': {"vanillin", "vinyl chloride", "valine"},
	'w': {"water"},
	'x': {"xylene", "xenon"},
	'z': {"zinc oxide", "zinc sulfate"},
}

// shortQueryCandidates returns the common-name candidates for a 1-2
// character query, lowercased. A one-character query selects the whole
// per-letter list; a two-character query keeps only names starting with
// the query. At most 10 candidates are returned. An empty result means
// the caller should fall through to autocomplete.
func shortQueryCandidates(query string) []string {
	q := strings.ToLower(query)
	if q == "" {
		return nil
	}

	names, ok := commonNamesByLetter[q[0]]
	if !ok {
		return nil
	}

	var candidates []string
	for _, name := range names {
		if len(q) == 2 && !strings.HasPrefix(name, q) {
			continue
		}
		candidates = append(candidates, name)
		if len(candidates) == shortQueryMax {
			break
		}
	}
	return candidates
}
