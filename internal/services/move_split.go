package services

// SplitMovePath extracts the implicit routing path from a nested move
// value. The path is the maximal chain of single-key object layers
// whose nested value is itself an object; it stops at the first layer
// with more than one key or whose value is not an object. The returned
// remainder is the value authorized against that path.
func SplitMovePath(move interface{}) ([]string, interface{}) {
	path := []string{}
	current := move

	for {
		obj, ok := current.(map[string]interface{})
		if !ok || len(obj) != 1 {
			break
		}
		var key string
		var next interface{}
		for k, v := range obj {
			key, next = k, v
		}
		// A hierarchical move needs the actual move value (without the
		// path) to still be a JSON object.
		if _, ok := next.(map[string]interface{}); !ok {
			break
		}
		path = append(path, key)
		current = next
	}

	return path, current
}
