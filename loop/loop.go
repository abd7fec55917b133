package loop

// Position is an absolute pixel position inside a container with no layout.
type Position struct {
	X int
	Y int
}

// Add returns p shifted by (dx, dy). There is no bounds checking.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Binding moves Target by (DX, DY) whenever Key is pressed.
type Binding struct {
	Key    string
	Target string
	DX     int
	DY     int
}

// Apply returns pos shifted by the binding's offset.
func (b Binding) Apply(pos Position) Position {
	return pos.Add(b.DX, b.DY)
}

// Matching returns every binding for key, in declaration order. Several
// bindings may share a key and a target; each one applies.
func Matching(key string, bindings []Binding) []Binding {
	var matched []Binding
	for _, b := range bindings {
		if b.Key == key {
			matched = append(matched, b)
		}
	}
	return matched
}

// Keys lists the distinct keys bound in bindings, in first-use order.
func Keys(bindings []Binding) []string {
	seen := make(map[string]bool, len(bindings))
	var keys []string
	for _, b := range bindings {
		if !seen[b.Key] {
			seen[b.Key] = true
			keys = append(keys, b.Key)
		}
	}
	return keys
}
