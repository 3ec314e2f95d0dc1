package utils

import "gopkg.in/yaml.v3"

// Listable accepts either a single scalar or a sequence in yaml.
type Listable[T any] []T

func (l *Listable[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var list []T
		err := value.Decode(&list)
		if err != nil {
			return err
		}
		*l = list
		return nil
	}
	var single T
	err := value.Decode(&single)
	if err != nil {
		return err
	}
	*l = []T{single}
	return nil
}

func (l Listable[T]) MarshalYAML() (any, error) {
	if len(l) == 1 {
		return l[0], nil
	}
	return []T(l), nil
}
