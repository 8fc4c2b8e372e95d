package scene

// SceneBuilderOption is a function that configures a scene instance during construction.
type SceneBuilderOption func(*scene)

// WithItems is an option builder that registers items at construction.
//
// Parameters:
//   - items: the items to register
//
// Returns:
//   - SceneBuilderOption: a function that applies the items option to a scene
func WithItems(items ...Item) SceneBuilderOption {
	return func(s *scene) {
		for _, it := range items {
			if it.ID() == 0 {
				it.SetID(s.nextID)
				s.nextID++
			}
			s.registry[it.ID()] = it
		}
	}
}
