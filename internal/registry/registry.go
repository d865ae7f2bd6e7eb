package registry

// New returns an empty registry.
func New() *Registry {
	return &Registry{Categories: []Category{}}
}

// NewCategory returns a category with no variables.
func NewCategory(name string) Category {
	return Category{Name: name, Variables: []Variable{}}
}

// Category returns the first category named name. The pointer refers into
// the registry and is invalidated by AddCategory or RemoveCategory.
func (r *Registry) Category(name string) (*Category, bool) {
	for i := range r.Categories {
		if r.Categories[i].Name == name {
			return &r.Categories[i], true
		}
	}
	return nil, false
}

// AddCategory appends c unless a category with the same name is already
// registered, in which case it reports false and leaves r unchanged.
func (r *Registry) AddCategory(c Category) bool {
	if _, ok := r.Category(c.Name); ok {
		return false
	}
	if c.Variables == nil {
		c.Variables = []Variable{}
	}
	r.Categories = append(r.Categories, c)
	return true
}

// RemoveCategory removes the first category named name.
func (r *Registry) RemoveCategory(name string) bool {
	for i := range r.Categories {
		if r.Categories[i].Name == name {
			r.Categories = append(r.Categories[:i], r.Categories[i+1:]...)
			return true
		}
	}
	return false
}

// Lookup resolves a category and a variable within it.
func (r *Registry) Lookup(category, key string) (Variable, error) {
	c, ok := r.Category(category)
	if !ok {
		return Variable{}, ErrCategoryNotFound
	}
	v, ok := c.Variable(key)
	if !ok {
		return Variable{}, ErrVariableNotFound
	}
	return v, nil
}

// AddVariable appends a variable unless key is already present. A false
// result means the existing value was kept.
func (c *Category) AddVariable(key, value string) bool {
	if _, ok := c.Variable(key); ok {
		return false
	}
	c.Variables = append(c.Variables, Variable{Key: key, Value: value})
	return true
}

// SetVariable overwrites the value of an existing key.
func (c *Category) SetVariable(key, value string) bool {
	for i := range c.Variables {
		if c.Variables[i].Key == key {
			c.Variables[i].Value = value
			return true
		}
	}
	return false
}

// RemoveVariable removes the first variable with the given key.
func (c *Category) RemoveVariable(key string) bool {
	for i := range c.Variables {
		if c.Variables[i].Key == key {
			c.Variables = append(c.Variables[:i], c.Variables[i+1:]...)
			return true
		}
	}
	return false
}

// Variable looks up a variable by key.
func (c *Category) Variable(key string) (Variable, bool) {
	for _, v := range c.Variables {
		if v.Key == key {
			return v, true
		}
	}
	return Variable{}, false
}

// Validate reports structural problems a hand-edited registry file may
// contain. Registries built through AddCategory and AddVariable have none.
func (r *Registry) Validate() []Issue {
	var issues []Issue
	seen := make(map[string]bool)
	for _, c := range r.Categories {
		if c.Name == "" {
			issues = append(issues, Issue{Key: c.Name, Reason: "empty category name"})
		} else if seen[c.Name] {
			issues = append(issues, Issue{Key: c.Name, Reason: "duplicate category"})
		}
		seen[c.Name] = true

		keys := make(map[string]bool)
		for _, v := range c.Variables {
			key := c.Name + KeySeparator + v.Key
			if v.Key == "" {
				issues = append(issues, Issue{Key: key, Reason: "empty variable key"})
			} else if keys[v.Key] {
				issues = append(issues, Issue{Key: key, Reason: "duplicate variable"})
			}
			keys[v.Key] = true
		}
	}
	return issues
}
