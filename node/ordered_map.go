package node

// entry is one key of an orderedMap, linked in insertion order.
type entry struct {
	key        string
	value      *Node
	prev, next *entry
}

// orderedMap is a string keyed hash map that enumerates in insertion order.
type orderedMap struct {
	index      map[string]*entry
	head, tail *entry
}

func newOrderedMap() orderedMap {
	return orderedMap{index: make(map[string]*entry)}
}

func (m *orderedMap) len() int {
	return len(m.index)
}

func (m *orderedMap) has(key string) bool {
	_, ok := m.index[key]
	return ok
}

func (m *orderedMap) get(key string) *Node {
	if e, ok := m.index[key]; ok {
		return e.value
	}

	return nil
}

// set stores value under key and returns the replaced value, if any.
// A replaced key keeps its position.
func (m *orderedMap) set(key string, value *Node) *Node {
	if e, ok := m.index[key]; ok {
		old := e.value
		e.value = value

		return old
	}

	e := &entry{key: key, value: value, prev: m.tail}
	if m.tail != nil {
		m.tail.next = e
	} else {
		m.head = e
	}
	m.tail = e
	m.index[key] = e

	return nil
}

// remove deletes key and returns its value, or nil when absent.
func (m *orderedMap) remove(key string) *Node {
	e, ok := m.index[key]
	if !ok {
		return nil
	}

	delete(m.index, key)
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		m.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		m.tail = e.prev
	}
	e.prev, e.next = nil, nil

	return e.value
}

func (m *orderedMap) keys() []string {
	keys := make([]string, 0, len(m.index))
	for e := m.head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}

	return keys
}
