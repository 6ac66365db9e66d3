package types

// NewTag returns a tag with both key and value set.
func NewTag(key, value string) *Tag {
	return new(Tag).WithKey(key).WithValue(value)
}

// NewFilter returns a filter matching any of values.
func NewFilter(name string, values ...string) *Filter {
	return new(Filter).WithName(name).WithValues(values...)
}

// NewTagSpecification returns a specification applying tags to resources
// of type rt on creation.
func NewTagSpecification(rt ResourceType, tags ...*Tag) *TagSpecification {
	return new(TagSpecification).WithResourceType(rt).WithTags(tags...)
}

// TagsToMap flattens tags into a map. Tags without a key are skipped and
// later keys win.
func TagsToMap(tags []*Tag) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		if t == nil || t.Key() == nil {
			continue
		}
		v := ""
		if t.Value() != nil {
			v = *t.Value()
		}
		m[*t.Key()] = v
	}
	return m
}
