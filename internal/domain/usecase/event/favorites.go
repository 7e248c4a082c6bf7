package event

import (
	"sort"
	"strings"
)

// Favorites is the set of favorited event ids of one browser
type Favorites map[string]struct{}

// ParseFavorites reads the comma separated cookie value. Blank entries are ignored.
func ParseFavorites(value string) Favorites {
	favorites := make(Favorites)
	for _, id := range strings.Split(value, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			favorites[id] = struct{}{}
		}
	}
	return favorites
}

// Has reports whether id is a favorite
func (f Favorites) Has(id string) bool {
	_, ok := f[id]
	return ok
}

// String encodes the set as a sorted comma separated list
func (f Favorites) String() string {
	ids := make([]string, 0, len(f))
	for id := range f {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

func (f Favorites) clone() Favorites {
	copied := make(Favorites, len(f))
	for id := range f {
		copied[id] = struct{}{}
	}
	return copied
}
