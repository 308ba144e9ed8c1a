// Package registry keeps the audio backends, each registered with a priority.
package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

type prioritized[F any] struct {
	Priority int
	TypeName string
	Factory  F
}

type factoryRegistry[F any] struct {
	Kind      string
	locker    sync.Mutex
	factories map[reflect.Type]prioritized[F]
}

func newFactoryRegistry[F any](kind string) *factoryRegistry[F] {
	return &factoryRegistry[F]{
		Kind:      kind,
		factories: map[reflect.Type]prioritized[F]{},
	}
}

// register panics if a factory of the same type (pointer or not) is already registered.
func (r *factoryRegistry[F]) register(priority int, factory F) {
	t := reflect.ValueOf(factory).Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	r.locker.Lock()
	defer r.locker.Unlock()
	if _, ok := r.factories[t]; ok {
		panic(fmt.Errorf("there is already registered a factory of %s of type %v", r.Kind, t))
	}
	r.factories[t] = prioritized[F]{
		Priority: priority,
		TypeName: t.String(),
		Factory:  factory,
	}
}

// sorted returns the factories, the highest priority first; ties are ordered by type name.
func (r *factoryRegistry[F]) sorted() []F {
	r.locker.Lock()
	items := make([]prioritized[F], 0, len(r.factories))
	for _, item := range r.factories {
		items = append(items, item)
	}
	r.locker.Unlock()

	sort.Slice(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority > items[j].Priority
		}
		return items[i].TypeName < items[j].TypeName
	})

	result := make([]F, 0, len(items))
	for _, item := range items {
		result = append(result, item.Factory)
	}
	return result
}
