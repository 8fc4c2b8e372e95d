package scene

import (
	"slices"
	"sync"
)

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name     string
	registry map[ItemID]Item
	nextID   ItemID
}

// Scene manages the registry of items the render pipeline draws from. It is
// the "current item set" collaborator: the fetch stage queries it each
// frame for candidates, and draw stages resolve items back from their IDs.
// Thread-safe for concurrent access; candidate lists are returned in
// ascending ID order so a fixed item set always yields the same list.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Add registers an item and assigns it an ID if it does not carry one.
	//
	// Parameters:
	//   - it: the item to register
	//
	// Returns:
	//   - ItemID: the item's assigned ID
	Add(it Item) ItemID

	// Remove unregisters an item by ID. Removing an unknown ID is a no-op.
	//
	// Parameters:
	//   - id: the item's ID
	Remove(id ItemID)

	// Item retrieves a registered item by ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the item's ID
	//
	// Returns:
	//   - Item: the item or nil
	Item(id ItemID) Item

	// Count returns the number of registered items.
	//
	// Returns:
	//   - int: the item count
	Count() int

	// FetchItems returns the ID and bound of every registered item passing
	// the filter, in ascending ID order.
	//
	// Parameters:
	//   - filter: the item filter to apply
	//
	// Returns:
	//   - ItemBounds: the matching candidates
	FetchItems(filter ItemFilter) ItemBounds
}

var _ Scene = &scene{}

// NewScene creates a new Scene configured with the provided options.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:       &sync.RWMutex{},
		name:     name,
		registry: make(map[ItemID]Item),
		nextID:   1,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Add(it Item) ItemID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if it.ID() == 0 {
		it.SetID(s.nextID)
		s.nextID++
	}
	s.registry[it.ID()] = it
	return it.ID()
}

func (s *scene) Remove(id ItemID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) Item(id ItemID) Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) FetchItems(filter ItemFilter) ItemBounds {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(ItemBounds, 0, len(s.registry))
	for _, it := range s.registry {
		if filter.Test(it) {
			out = append(out, ItemBound{ID: it.ID(), Bound: it.Bound()})
		}
	}
	// Registry iteration order is random; candidate lists must be stable
	// frame to frame for a fixed item set.
	slices.SortFunc(out, func(a, b ItemBound) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		default:
			return 0
		}
	})
	return out
}
